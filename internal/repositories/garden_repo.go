package repositories

import (
	"context"

	"botaniq/internal/models"
)

// GardenRepository defines the interface for garden entry data access.
type GardenRepository interface {
	GetAll(ctx context.Context) ([]models.GardenEntry, error)
	GetByUserID(ctx context.Context, userID string) ([]models.GardenEntry, error)
	// CreateWithCatalog inserts a catalog row for entry.Family when none exists,
	// then entry itself, in one transaction.
	CreateWithCatalog(ctx context.Context, entry *models.GardenEntry) error
	// UpdateOwned and DeleteOwned return ErrNotFound when no row has both id and ownerID.
	UpdateOwned(ctx context.Context, id, ownerID string, changes models.GardenChanges) error
	DeleteOwned(ctx context.Context, id, ownerID string) error
}
