package models

// Plant is a row of the cleaned plant reference dataset.
type Plant struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Latin    string `json:"latin"`
	Common   string `json:"common"`
	Family   string `json:"family" gorm:"index"`
	Category string `json:"category"`
	Climate  string `json:"climate"`
}

func (Plant) TableName() string { return "cleaned_plants" }

// PlantFamily maps a plant name to its botanical family.
type PlantFamily struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Plant  string `json:"plant"`
	Family string `json:"family" gorm:"index"`
}

func (PlantFamily) TableName() string { return "plantsandfamily" }
