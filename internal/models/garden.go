package models

import "time"

// GardenEntry is one plant tracked in a user's garden.
type GardenEntry struct {
	ID                string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID            string    `json:"user_id" gorm:"index;type:varchar(36);not null"`
	PlantName         string    `json:"plant_name" gorm:"type:varchar(255)" validate:"max=255"`
	Growth            string    `json:"growth" gorm:"type:varchar(255)"`
	Soil              string    `json:"soil" gorm:"type:varchar(255)"`
	Sunlight          string    `json:"sunlight" gorm:"type:varchar(255)"`
	Watering          string    `json:"watering" gorm:"type:varchar(255)"`
	FertilizationType string    `json:"fertilization_type" gorm:"type:varchar(255)"`
	Family            string    `json:"family" gorm:"index;type:varchar(255)" validate:"required,max=255"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (GardenEntry) TableName() string { return "manajemen_kebun" }

// GardenChanges are the owner-editable columns of a garden entry.
type GardenChanges struct {
	PlantName         string `json:"plant_name" validate:"max=255"`
	Growth            string `json:"growth"`
	Soil              string `json:"soil"`
	Sunlight          string `json:"sunlight"`
	Watering          string `json:"watering"`
	FertilizationType string `json:"fertilization_type"`
}
