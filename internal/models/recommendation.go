package models

import "time"

// Recommendation is a plant catalog entry. Family is the loose join key to garden entries.
type Recommendation struct {
	ID             string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Latin          string    `json:"latin" gorm:"type:varchar(255)"`
	Family         string    `json:"family" gorm:"index;type:varchar(255)" validate:"required,max=255"`
	Category       string    `json:"category" gorm:"type:varchar(255)"`
	Climate        string    `json:"climate" gorm:"type:varchar(255)"`
	IdealLight     string    `json:"ideal_light" gorm:"type:varchar(255)"`
	ToleratedLight string    `json:"tolerated_light" gorm:"type:varchar(255)"`
	Watering       string    `json:"watering" gorm:"type:text"`
	Insects        string    `json:"insects" gorm:"type:text"`
	PlantUse       string    `json:"plant_use" gorm:"type:text"`
	TempMaxCelsius *float64  `json:"temp_max_celsius"`
	TempMinCelsius *float64  `json:"temp_min_celsius"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (Recommendation) TableName() string { return "rekomendasi_tanaman" }
