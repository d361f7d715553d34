package repository

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/farhatamiine/restaurent-menu/entity"
)

type ShopRepository struct {
	DB *gorm.DB
}

func NewShopRepository(db *gorm.DB) *ShopRepository {
	return &ShopRepository{DB: db}
}

// FindByOwner lists an owner's shops, newest first.
func (r *ShopRepository) FindByOwner(ownerID uint) ([]entity.Shop, error) {
	var shops []entity.Shop
	err := r.DB.
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&shops).Error
	return shops, err
}

// FindOwned loads a shop only if it belongs to the caller.
func (r *ShopRepository) FindOwned(id, ownerID uint) (*entity.Shop, error) {
	var shop entity.Shop
	err := r.DB.
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&shop).Error
	if err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *ShopRepository) FindBySlug(slug string) (*entity.Shop, error) {
	var shop entity.Shop
	if err := r.DB.Where("slug = ?", slug).First(&shop).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *ShopRepository) Create(shop *entity.Shop) error {
	return r.DB.Create(shop).Error
}

func (r *ShopRepository) UpdateTheme(id uint, cfg datatypes.JSON) error {
	return r.DB.Model(&entity.Shop{}).
		Where("id = ?", id).
		Update("theme_config", cfg).Error
}
