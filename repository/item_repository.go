package repository

import (
	"gorm.io/gorm"

	"github.com/farhatamiine/restaurent-menu/entity"
)

type ItemRepository struct {
	DB *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{DB: db}
}

func (r *ItemRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindOwned loads an item only if its category's shop belongs to the caller.
func (r *ItemRepository) FindOwned(id, ownerID uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := r.DB.
		Joins("JOIN categories ON categories.id = menu_items.category_id").
		Joins("JOIN shops ON shops.id = categories.shop_id").
		Where("menu_items.id = ? AND shops.owner_id = ?", id, ownerID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepository) FindByCategory(categoryID uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.
		Where("category_id = ?", categoryID).
		Order("order_index ASC").
		Find(&items).Error
	return items, err
}

// NextOrderIndex computes the append position within a category. Same
// read-then-write allocation as categories, same accepted race.
func (r *ItemRepository) NextOrderIndex(categoryID uint) (int, error) {
	var next int
	err := r.DB.Model(&entity.MenuItem{}).
		Where("category_id = ?", categoryID).
		Select("COALESCE(MAX(order_index), -1) + 1").
		Scan(&next).Error
	return next, err
}

func (r *ItemRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *ItemRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(updates).Error
}

func (r *ItemRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}

// IDs lists the category's item IDs; reorder input is checked against it.
func (r *ItemRepository) IDs(categoryID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&entity.MenuItem{}).
		Where("category_id = ?", categoryID).
		Pluck("id", &ids).Error
	return ids, err
}

// ReorderTx writes a whole order batch in one transaction, scoped to the
// category; an ID outside it matches no row and aborts the batch.
func (r *ItemRepository) ReorderTx(categoryID uint, updates []OrderUpdate) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			res := tx.Model(&entity.MenuItem{}).
				Where("id = ? AND category_id = ?", u.ID, categoryID).
				Update("order_index", u.OrderIndex)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return nil
	})
}

func (r *ItemRepository) UpdateOrder(categoryID, id uint, orderIndex int) error {
	res := r.DB.Model(&entity.MenuItem{}).
		Where("id = ? AND category_id = ?", id, categoryID).
		Update("order_index", orderIndex)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
