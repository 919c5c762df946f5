package repositories

import (
	"context"
	"fmt"
	"time"

	"botaniq/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMGardenRepository is a GORM implementation of GardenRepository.
type GORMGardenRepository struct {
	db *gorm.DB
}

// NewGORMGardenRepository creates a new instance of GORMGardenRepository.
func NewGORMGardenRepository(db *gorm.DB) *GORMGardenRepository {
	return &GORMGardenRepository{
		db: db,
	}
}

// GetAll retrieves every garden entry.
func (r *GORMGardenRepository) GetAll(ctx context.Context) ([]models.GardenEntry, error) {
	entries := []models.GardenEntry{}
	if err := r.db.WithContext(ctx).Order("created_at").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to get all garden entries: %w", err)
	}
	return entries, nil
}

// GetByUserID retrieves the garden entries owned by userID.
func (r *GORMGardenRepository) GetByUserID(ctx context.Context, userID string) ([]models.GardenEntry, error) {
	entries := []models.GardenEntry{}
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to get garden entries for user %s: %w", userID, err)
	}
	return entries, nil
}

// CreateWithCatalog makes sure a catalog row exists for the entry's family and inserts the entry.
//
// The family column is not unique, so on PostgreSQL concurrent calls for the same
// family are serialized with a transaction-scoped advisory lock keyed on the family.
// SQLite serializes writers on its own.
func (r *GORMGardenRepository) CreateWithCatalog(ctx context.Context, entry *models.GardenEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if tx.Dialector.Name() == "postgres" {
			if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", entry.Family).Error; err != nil {
				return fmt.Errorf("failed to lock catalog family %s: %w", entry.Family, err)
			}
		}

		var rec models.Recommendation
		err := tx.Where("family = ?", entry.Family).
			Attrs(models.Recommendation{ID: uuid.New().String(), Family: entry.Family}).
			FirstOrCreate(&rec).Error
		if err != nil {
			return fmt.Errorf("failed to ensure catalog row for family %s: %w", entry.Family, err)
		}
		if err := tx.Create(entry).Error; err != nil {
			return fmt.Errorf("failed to insert garden entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("garden transaction rolled back: %w", err)
	}
	return nil
}

// UpdateOwned rewrites the editable columns of the entry, scoped to its owner.
func (r *GORMGardenRepository) UpdateOwned(ctx context.Context, id, ownerID string, changes models.GardenChanges) error {
	res := r.db.WithContext(ctx).
		Model(&models.GardenEntry{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Updates(map[string]interface{}{
			"plant_name":         changes.PlantName,
			"growth":             changes.Growth,
			"soil":               changes.Soil,
			"sunlight":           changes.Sunlight,
			"watering":           changes.Watering,
			"fertilization_type": changes.FertilizationType,
			"updated_at":         time.Now(),
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update garden entry %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("garden entry %s for owner %s: %w", id, ownerID, ErrNotFound)
	}
	return nil
}

// DeleteOwned removes the entry, scoped to its owner.
func (r *GORMGardenRepository) DeleteOwned(ctx context.Context, id, ownerID string) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).Delete(&models.GardenEntry{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete garden entry %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("garden entry %s for owner %s: %w", id, ownerID, ErrNotFound)
	}
	return nil
}
