package entity

import (
	"gorm.io/gorm"
)

// Category owns an ordered slice of menu items. OrderIndex is zero-based and
// kept dense within a shop by the reorder path.
type Category struct {
	gorm.Model
	Name string `json:"name"`
	Icon string `json:"icon"`

	OrderIndex int `gorm:"not null;default:0;index" json:"orderIndex"`

	ShopID uint `gorm:"not null;index" json:"shopId"`
	Shop   Shop `json:"-"`

	Items []MenuItem `json:"items,omitempty"`
}
