package repositories

import (
	"context"
	"fmt"

	"botaniq/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMRecommendationRepository is a GORM implementation of RecommendationRepository.
type GORMRecommendationRepository struct {
	db *gorm.DB
}

// NewGORMRecommendationRepository creates a new instance of GORMRecommendationRepository.
func NewGORMRecommendationRepository(db *gorm.DB) *GORMRecommendationRepository {
	return &GORMRecommendationRepository{
		db: db,
	}
}

// GetAll retrieves every catalog entry.
func (r *GORMRecommendationRepository) GetAll(ctx context.Context) ([]models.Recommendation, error) {
	recs := []models.Recommendation{}
	if err := r.db.WithContext(ctx).Order("created_at").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to get all recommendations: %w", err)
	}
	return recs, nil
}

// CreateWithEnrollment inserts the catalog row and then the caller's garden row for the
// same family. Either both rows are committed or neither is.
func (r *GORMRecommendationRepository) CreateWithEnrollment(ctx context.Context, rec *models.Recommendation, entry *models.GardenEntry) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	entry.Family = rec.Family

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(rec).Error; err != nil {
			return fmt.Errorf("failed to insert recommendation: %w", err)
		}
		if err := tx.Create(entry).Error; err != nil {
			return fmt.Errorf("failed to insert garden entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("recommendation transaction rolled back: %w", err)
	}
	return nil
}
