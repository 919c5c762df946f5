package services

import (
	"context"
	"errors"

	"botaniq/internal/models"
	"botaniq/internal/repositories"
)

// GardenService handles per-user garden entries.
type GardenService struct {
	repo   repositories.GardenRepository
	events EventPublisher
}

// NewGardenService creates a new GardenService. events may be nil.
func NewGardenService(repo repositories.GardenRepository, events EventPublisher) *GardenService {
	return &GardenService{
		repo:   repo,
		events: events,
	}
}

// GetAllEntries retrieves every garden entry of every user.
func (s *GardenService) GetAllEntries(ctx context.Context) ([]models.GardenEntry, error) {
	return s.repo.GetAll(ctx)
}

// GetEntriesByUser retrieves the garden of one user.
func (s *GardenService) GetEntriesByUser(ctx context.Context, userID string) ([]models.GardenEntry, error) {
	return s.repo.GetByUserID(ctx, userID)
}

// CreateEntry stores entry for the principal, adding its family to the catalog if missing.
func (s *GardenService) CreateEntry(ctx context.Context, principal models.Principal, entry *models.GardenEntry) error {
	entry.ID = ""
	entry.UserID = principal.ID
	if err := s.repo.CreateWithCatalog(ctx, entry); err != nil {
		return err
	}
	publishEvent(s.events, models.EventGardenCreated, principal.ID, entry.ID, entry.Family)
	return nil
}

// UpdateEntry edits an entry the principal owns.
func (s *GardenService) UpdateEntry(ctx context.Context, principal models.Principal, id string, changes models.GardenChanges) error {
	if err := s.repo.UpdateOwned(ctx, id, principal.ID, changes); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFoundOrForbidden
		}
		return err
	}
	publishEvent(s.events, models.EventGardenUpdated, principal.ID, id, "")
	return nil
}

// DeleteEntry removes an entry the principal owns.
func (s *GardenService) DeleteEntry(ctx context.Context, principal models.Principal, id string) error {
	if err := s.repo.DeleteOwned(ctx, id, principal.ID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFoundOrForbidden
		}
		return err
	}
	publishEvent(s.events, models.EventGardenDeleted, principal.ID, id, "")
	return nil
}
