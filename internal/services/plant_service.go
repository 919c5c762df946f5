package services

import (
	"context"

	"botaniq/internal/models"
	"botaniq/internal/repositories"
)

// PlantService exposes the read-only plant reference data.
type PlantService struct {
	repo repositories.PlantRepository
}

func NewPlantService(repo repositories.PlantRepository) *PlantService {
	return &PlantService{repo: repo}
}

func (s *PlantService) GetPlants(ctx context.Context) ([]models.Plant, error) {
	return s.repo.GetAllPlants(ctx)
}

func (s *PlantService) GetPlantFamilies(ctx context.Context) ([]models.PlantFamily, error) {
	return s.repo.GetAllPlantFamilies(ctx)
}
