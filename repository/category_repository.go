package repository

import (
	"gorm.io/gorm"

	"github.com/farhatamiine/restaurent-menu/entity"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

// FindMenu loads a shop's full menu: categories in order, items in order.
func (r *CategoryRepository) FindMenu(shopID uint) ([]entity.Category, error) {
	var categories []entity.Category
	err := r.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("menu_items.order_index ASC")
		}).
		Where("shop_id = ?", shopID).
		Order("order_index ASC").
		Find(&categories).Error
	return categories, err
}

// FindOwned loads a category only if its shop belongs to the caller.
func (r *CategoryRepository) FindOwned(id, ownerID uint) (*entity.Category, error) {
	var cat entity.Category
	err := r.DB.
		Joins("JOIN shops ON shops.id = categories.shop_id").
		Where("categories.id = ? AND shops.owner_id = ?", id, ownerID).
		First(&cat).Error
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// NextOrderIndex computes the append position for a new category:
// max(order_index)+1 within the shop, or 0 when empty. Read-then-write; two
// concurrent creates can land on the same index (accepted, see DESIGN.md).
func (r *CategoryRepository) NextOrderIndex(shopID uint) (int, error) {
	var next int
	err := r.DB.Model(&entity.Category{}).
		Where("shop_id = ?", shopID).
		Select("COALESCE(MAX(order_index), -1) + 1").
		Scan(&next).Error
	return next, err
}

func (r *CategoryRepository) Create(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}

func (r *CategoryRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Category{}).Where("id = ?", id).Updates(updates).Error
}

func (r *CategoryRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Category{}, id).Error
}

// CountItems backs the "empty the category first" delete policy.
func (r *CategoryRepository) CountItems(categoryID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.MenuItem{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	return count, err
}

// IDs lists the shop's category IDs; reorder input is checked against it.
func (r *CategoryRepository) IDs(shopID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&entity.Category{}).
		Where("shop_id = ?", shopID).
		Pluck("id", &ids).Error
	return ids, err
}

// ReorderTx writes a whole order batch in one transaction. Every write is
// scoped to the shop; an ID outside it matches no row and aborts the batch.
func (r *CategoryRepository) ReorderTx(shopID uint, updates []OrderUpdate) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			res := tx.Model(&entity.Category{}).
				Where("id = ? AND shop_id = ?", u.ID, shopID).
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

// UpdateOrder writes one row's position; the non-atomic fallback path. Scoped
// to the shop like ReorderTx.
func (r *CategoryRepository) UpdateOrder(shopID, id uint, orderIndex int) error {
	res := r.DB.Model(&entity.Category{}).
		Where("id = ? AND shop_id = ?", id, shopID).
		Update("order_index", orderIndex)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
