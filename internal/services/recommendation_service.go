package services

import (
	"context"

	"botaniq/internal/models"
	"botaniq/internal/repositories"
)

// RecommendationService handles the plant catalog.
type RecommendationService struct {
	repo   repositories.RecommendationRepository
	events EventPublisher
}

// NewRecommendationService creates a new RecommendationService. events may be nil.
func NewRecommendationService(repo repositories.RecommendationRepository, events EventPublisher) *RecommendationService {
	return &RecommendationService{
		repo:   repo,
		events: events,
	}
}

// GetAllRecommendations retrieves the whole catalog.
func (s *RecommendationService) GetAllRecommendations(ctx context.Context) ([]models.Recommendation, error) {
	return s.repo.GetAll(ctx)
}

// CreateRecommendation stores rec and enrolls the principal's garden in its family.
func (s *RecommendationService) CreateRecommendation(ctx context.Context, principal models.Principal, rec *models.Recommendation) (*models.GardenEntry, error) {
	rec.ID = ""
	entry := &models.GardenEntry{
		UserID: principal.ID,
		Family: rec.Family,
	}
	if err := s.repo.CreateWithEnrollment(ctx, rec, entry); err != nil {
		return nil, err
	}

	publishEvent(s.events, models.EventRecommendationCreated, principal.ID, rec.ID, rec.Family)
	publishEvent(s.events, models.EventGardenCreated, principal.ID, entry.ID, entry.Family)
	return entry, nil
}
