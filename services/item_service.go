package services

import (
	"github.com/farhatamiine/restaurent-menu/cache"
	"github.com/farhatamiine/restaurent-menu/entity"
	"github.com/farhatamiine/restaurent-menu/events"
	"github.com/farhatamiine/restaurent-menu/pkg/apperr"
	"github.com/farhatamiine/restaurent-menu/repository"
)

// ItemInput is what the builder's item form submits.
type ItemInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	Icon        string  `json:"icon"`
}

type ItemService struct {
	Items      *repository.ItemRepository
	Categories *repository.CategoryRepository
	Cache      *cache.MenuCache
	Feed       events.Sink
}

func NewItemService(items *repository.ItemRepository, categories *repository.CategoryRepository, menuCache *cache.MenuCache, feed events.Sink) *ItemService {
	return &ItemService{Items: items, Categories: categories, Cache: menuCache, Feed: feed}
}

// Create appends an item at the end of its category; new items start
// available.
func (s *ItemService) Create(ownerID, categoryID uint, in ItemInput) (*entity.MenuItem, error) {
	cat, err := s.Categories.FindOwned(categoryID, ownerID)
	if err != nil {
		return nil, apperr.ErrNotFound
	}

	next, err := s.Items.NextOrderIndex(cat.ID)
	if err != nil {
		return nil, err
	}

	if in.Name == "" {
		in.Name = "New Item"
	}
	item := &entity.MenuItem{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		Icon:        in.Icon,
		IsAvailable: true,
		OrderIndex:  next,
		CategoryID:  cat.ID,
	}
	if err := s.Items.Create(item); err != nil {
		return nil, err
	}

	s.Cache.Invalidate(cat.ShopID)
	s.Feed.Publish(events.ItemCreated(item))
	return item, nil
}

func (s *ItemService) Update(ownerID, id uint, in ItemInput) (*entity.MenuItem, error) {
	item, err := s.Items.FindOwned(id, ownerID)
	if err != nil {
		return nil, apperr.ErrNotFound
	}

	err = s.Items.Update(item.ID, map[string]any{
		"name":        in.Name,
		"description": in.Description,
		"price":       in.Price,
		"image_url":   in.ImageURL,
		"icon":        in.Icon,
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.Items.FindByID(item.ID)
	if err != nil {
		return nil, err
	}

	s.invalidate(item.CategoryID)
	s.Feed.Publish(events.ItemUpdated(updated))
	return updated, nil
}

// SetAvailability toggles is_available. Idempotent, independent of ordering.
func (s *ItemService) SetAvailability(ownerID, id uint, available bool) (*entity.MenuItem, error) {
	item, err := s.Items.FindOwned(id, ownerID)
	if err != nil {
		return nil, apperr.ErrNotFound
	}

	err = s.Items.Update(item.ID, map[string]any{"is_available": available})
	if err != nil {
		return nil, err
	}

	updated, err := s.Items.FindByID(item.ID)
	if err != nil {
		return nil, err
	}

	s.invalidate(item.CategoryID)
	s.Feed.Publish(events.ItemUpdated(updated))
	return updated, nil
}

// Delete removes the item. No renumbering: the gap stays until the next
// explicit reorder.
func (s *ItemService) Delete(ownerID, id uint) error {
	item, err := s.Items.FindOwned(id, ownerID)
	if err != nil {
		return apperr.ErrNotFound
	}

	if err := s.Items.Delete(item.ID); err != nil {
		return err
	}

	s.invalidate(item.CategoryID)
	s.Feed.Publish(events.ItemDeleted(item.ID))
	return nil
}

// Reorder persists a drag-end result within one category. Same best-effort
// semantics as category reorder; on success each row's new state goes out on
// the feed like any other update.
func (s *ItemService) Reorder(ownerID, categoryID uint, ids []uint) error {
	cat, err := s.Categories.FindOwned(categoryID, ownerID)
	if err != nil {
		return apperr.ErrNotFound
	}

	owned, err := s.Items.IDs(cat.ID)
	if err != nil {
		return err
	}
	if err := checkScope(ids, owned); err != nil {
		return err
	}

	err = persistOrder(s.Items, cat.ID, BuildOrderUpdates(ids))
	s.Cache.Invalidate(cat.ShopID)
	if err != nil {
		return err
	}

	if items, listErr := s.Items.FindByCategory(cat.ID); listErr == nil {
		for i := range items {
			s.Feed.Publish(events.ItemUpdated(&items[i]))
		}
	}
	return nil
}

// invalidate drops the cached public menu for the shop owning categoryID.
func (s *ItemService) invalidate(categoryID uint) {
	var cat entity.Category
	if err := s.Categories.DB.First(&cat, categoryID).Error; err != nil {
		return
	}
	s.Cache.Invalidate(cat.ShopID)
}
