package services

import (
	"github.com/farhatamiine/restaurent-menu/cache"
	"github.com/farhatamiine/restaurent-menu/entity"
	"github.com/farhatamiine/restaurent-menu/pkg/apperr"
	"github.com/farhatamiine/restaurent-menu/repository"
)

// MenuService owns the category side of the menu builder: creation with
// append-at-end positions, edits, the guarded delete, and reordering.
type MenuService struct {
	Categories *repository.CategoryRepository
	Shops      *repository.ShopRepository
	Cache      *cache.MenuCache
}

func NewMenuService(categories *repository.CategoryRepository, shops *repository.ShopRepository, menuCache *cache.MenuCache) *MenuService {
	return &MenuService{Categories: categories, Shops: shops, Cache: menuCache}
}

// GetMenu returns the owner's full nested menu for the builder view.
func (s *MenuService) GetMenu(ownerID, shopID uint) ([]entity.Category, error) {
	shop, err := s.Shops.FindOwned(shopID, ownerID)
	if err != nil {
		return nil, apperr.ErrNotFound
	}
	return s.Categories.FindMenu(shop.ID)
}

// CreateCategory appends a category at the end of the shop's sequence.
func (s *MenuService) CreateCategory(ownerID, shopID uint, name, icon string) (*entity.Category, error) {
	shop, err := s.Shops.FindOwned(shopID, ownerID)
	if err != nil {
		return nil, apperr.ErrNotFound
	}

	next, err := s.Categories.NextOrderIndex(shop.ID)
	if err != nil {
		return nil, err
	}

	cat := &entity.Category{
		Name:       name,
		Icon:       icon,
		OrderIndex: next,
		ShopID:     shop.ID,
	}
	if err := s.Categories.Create(cat); err != nil {
		return nil, err
	}

	s.Cache.Invalidate(shop.ID)
	return cat, nil
}

func (s *MenuService) UpdateCategory(ownerID, id uint, name, icon string) error {
	cat, err := s.Categories.FindOwned(id, ownerID)
	if err != nil {
		return apperr.ErrNotFound
	}

	err = s.Categories.Update(cat.ID, map[string]any{
		"name": name,
		"icon": icon,
	})
	if err != nil {
		return err
	}

	s.Cache.Invalidate(cat.ShopID)
	return nil
}

// DeleteCategory enforces the "empty the category first" policy: deletion is
// rejected while the category still owns items.
func (s *MenuService) DeleteCategory(ownerID, id uint) error {
	cat, err := s.Categories.FindOwned(id, ownerID)
	if err != nil {
		return apperr.ErrNotFound
	}

	count, err := s.Categories.CountItems(cat.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperr.ErrCategoryNotEmpty
	}

	if err := s.Categories.Delete(cat.ID); err != nil {
		return err
	}

	s.Cache.Invalidate(cat.ShopID)
	return nil
}

// ReorderCategories persists a drag-end result for the shop's categories.
// A *apperr.PartialReorder return means the fallback path applied only some
// rows; the caller logs it and still reports success (the client has already
// applied the order optimistically and will not roll back).
func (s *MenuService) ReorderCategories(ownerID, shopID uint, ids []uint) error {
	shop, err := s.Shops.FindOwned(shopID, ownerID)
	if err != nil {
		return apperr.ErrNotFound
	}

	owned, err := s.Categories.IDs(shop.ID)
	if err != nil {
		return err
	}
	if err := checkScope(ids, owned); err != nil {
		return err
	}

	err = persistOrder(s.Categories, shop.ID, BuildOrderUpdates(ids))
	s.Cache.Invalidate(shop.ID)
	return err
}
