package repositories

import (
	"context"

	"botaniq/internal/models"
)

// RecommendationRepository defines the interface for plant catalog data access.
type RecommendationRepository interface {
	GetAll(ctx context.Context) ([]models.Recommendation, error)
	// CreateWithEnrollment inserts rec and entry in one transaction.
	CreateWithEnrollment(ctx context.Context, rec *models.Recommendation, entry *models.GardenEntry) error
}
