package entity

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	Icon        string  `json:"icon"`

	IsAvailable bool `gorm:"not null;default:true" json:"isAvailable"`
	OrderIndex  int  `gorm:"not null;default:0;index" json:"orderIndex"`

	Metadata datatypes.JSON `json:"metadata,omitempty"`

	CategoryID uint     `gorm:"not null;index" json:"categoryId"`
	Category   Category `json:"-"`
}
