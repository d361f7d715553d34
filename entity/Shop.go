package entity

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Shop struct {
	gorm.Model
	Name string `json:"name"`
	Slug string `gorm:"uniqueIndex;not null" json:"slug"`
	Type string `gorm:"not null;default:restaurant" json:"type"`

	ThemeConfig datatypes.JSON `json:"themeConfig"`

	OwnerID uint `json:"ownerId"`
	Owner   User `gorm:"foreignKey:OwnerID" json:"-"`

	Categories []Category `json:"-"`
}
