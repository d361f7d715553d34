package services

import (
	"encoding/json"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/farhatamiine/restaurent-menu/cache"
	"github.com/farhatamiine/restaurent-menu/entity"
	"github.com/farhatamiine/restaurent-menu/pkg/apperr"
	"github.com/farhatamiine/restaurent-menu/repository"
	"github.com/farhatamiine/restaurent-menu/utils"
)

type ShopService struct {
	Repo  *repository.ShopRepository
	Cache *cache.MenuCache
}

func NewShopService(repo *repository.ShopRepository, menuCache *cache.MenuCache) *ShopService {
	return &ShopService{Repo: repo, Cache: menuCache}
}

// List returns the caller's shops, newest first.
func (s *ShopService) List(ownerID uint) ([]entity.Shop, error) {
	return s.Repo.FindByOwner(ownerID)
}

// Create makes a shop with a random slug. A slug collision surfaces as a
// user-facing "try again" rather than retrying internally.
func (s *ShopService) Create(ownerID uint, name, shopType string) (*entity.Shop, error) {
	if name == "" {
		return nil, errors.New("Missing required fields")
	}
	if shopType == "" {
		shopType = "restaurant"
	}

	shop := &entity.Shop{
		Name:    name,
		Slug:    utils.RandomSlug(),
		Type:    shopType,
		OwnerID: ownerID,
	}

	if err := s.Repo.Create(shop); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.New("System collision, try again.")
		}
		return nil, err
	}
	return shop, nil
}

// UpdateTheme replaces the shop's theme_config wholesale.
func (s *ShopService) UpdateTheme(ownerID, shopID uint, cfg json.RawMessage) error {
	shop, err := s.Repo.FindOwned(shopID, ownerID)
	if err != nil {
		return apperr.ErrNotFound
	}

	if err := s.Repo.UpdateTheme(shop.ID, datatypes.JSON(cfg)); err != nil {
		return err
	}
	s.Cache.Invalidate(shop.ID)
	return nil
}

func (s *ShopService) GetBySlug(slug string) (*entity.Shop, error) {
	shop, err := s.Repo.FindBySlug(slug)
	if err != nil {
		return nil, apperr.ErrNotFound
	}
	return shop, nil
}
