package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Role     string `gorm:"not null;default:owner" json:"role"`

	// Relations — preload only when needed
	Shops []Shop `gorm:"foreignKey:OwnerID" json:"-"`
}
