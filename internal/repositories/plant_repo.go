package repositories

import (
	"context"
	"fmt"

	"botaniq/internal/models"

	"gorm.io/gorm"
)

// PlantRepository reads the static plant reference tables.
type PlantRepository interface {
	GetAllPlants(ctx context.Context) ([]models.Plant, error)
	GetAllPlantFamilies(ctx context.Context) ([]models.PlantFamily, error)
}

// GORMPlantRepository is a GORM implementation of PlantRepository.
type GORMPlantRepository struct {
	db *gorm.DB
}

// NewGORMPlantRepository creates a new instance of GORMPlantRepository.
func NewGORMPlantRepository(db *gorm.DB) *GORMPlantRepository {
	return &GORMPlantRepository{db: db}
}

func (r *GORMPlantRepository) GetAllPlants(ctx context.Context) ([]models.Plant, error) {
	plants := []models.Plant{}
	if err := r.db.WithContext(ctx).Order("id").Find(&plants).Error; err != nil {
		return nil, fmt.Errorf("failed to get plants: %w", err)
	}
	return plants, nil
}

func (r *GORMPlantRepository) GetAllPlantFamilies(ctx context.Context) ([]models.PlantFamily, error) {
	families := []models.PlantFamily{}
	if err := r.db.WithContext(ctx).Order("id").Find(&families).Error; err != nil {
		return nil, fmt.Errorf("failed to get plant families: %w", err)
	}
	return families, nil
}
