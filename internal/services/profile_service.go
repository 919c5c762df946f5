package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"botaniq/internal/models"
	"botaniq/internal/repositories"
	"botaniq/internal/storage"
)

// AvatarStorage persists uploaded profile pictures.
type AvatarStorage interface {
	Stage(src io.Reader, originalName string) (*storage.StagedFile, error)
	Remove(name string) error
}

// AvatarUpload is an incoming profile picture.
type AvatarUpload struct {
	Filename string
	Content  io.Reader
}

// ProfileService reads and edits user profiles.
type ProfileService struct {
	userRepo repositories.UserRepository
	avatars  AvatarStorage
	events   EventPublisher
}

// NewProfileService creates a new ProfileService. events may be nil.
func NewProfileService(userRepo repositories.UserRepository, avatars AvatarStorage, events EventPublisher) *ProfileService {
	return &ProfileService{
		userRepo: userRepo,
		avatars:  avatars,
		events:   events,
	}
}

// GetProfile returns the stored profile of the user with id.
func (s *ProfileService) GetProfile(ctx context.Context, id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// StageAvatar writes an incoming avatar for the caller's own profile to the
// staging area. The content is streamed straight to disk; the returned file
// stays unpublished until UpdateProfile commits it.
func (s *ProfileService) StageAvatar(principal models.Principal, userID string, avatar AvatarUpload) (*storage.StagedFile, error) {
	if principal.ID != userID {
		return nil, ErrNotFoundOrForbidden
	}
	staged, err := s.avatars.Stage(avatar.Content, avatar.Filename)
	if err != nil {
		return nil, fmt.Errorf("failed to store avatar: %w", err)
	}
	return staged, nil
}

// UpdateProfile applies changes and an optional staged avatar to the caller's own profile.
//
// The avatar is published only after the row update. On any failure the staged
// file is discarded and, if publishing fails after the update, the row is pointed
// back at the previous avatar. The previous avatar is removed best-effort.
func (s *ProfileService) UpdateProfile(ctx context.Context, principal models.Principal, userID string, changes models.ProfileUpdate, staged *storage.StagedFile) (*models.User, error) {
	published := false
	if staged != nil {
		defer func() {
			if published {
				return
			}
			if err := staged.Discard(); err != nil {
				log.Printf("Failed to discard staged avatar %s: %v", staged.Name, err)
			}
		}()
	}

	if principal.ID != userID {
		return nil, ErrNotFoundOrForbidden
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFoundOrForbidden
		}
		return nil, err
	}

	changes.Apply(user)
	previousAvatar := user.Avatar
	if staged != nil {
		user.Avatar = staged.Name
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFoundOrForbidden
		}
		return nil, err
	}

	if staged != nil {
		if err := staged.Commit(); err != nil {
			s.restoreAvatar(ctx, user, previousAvatar)
			return nil, err
		}
		published = true
		if previousAvatar != "" && previousAvatar != staged.Name {
			if err := s.avatars.Remove(previousAvatar); err != nil {
				log.Printf("Failed to delete old avatar %s: %v", previousAvatar, err)
			} else {
				log.Printf("Old avatar %s deleted", previousAvatar)
			}
		}
	}

	publishEvent(s.events, models.EventUserUpdated, user.ID, user.ID, "")
	return user, nil
}

// restoreAvatar points the row back at previous after the new avatar could not be published.
func (s *ProfileService) restoreAvatar(ctx context.Context, user *models.User, previous string) {
	stranded := user.Avatar
	user.Avatar = previous
	user.UpdatedAt = time.Now()
	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		log.Printf("Failed to restore avatar of %s to %q, row still references %s: %v", user.ID, previous, stranded, err)
	}
}
