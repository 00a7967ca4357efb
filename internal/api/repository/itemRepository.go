package repository

import (
	"context"
	"fmt"

	"cinerank/internal/api/models"

	"gorm.io/gorm"
)

// ItemFilter narrows catalog listings. Query matches the title
// case-insensitively as a substring.
type ItemFilter struct {
	Type       string
	Query      string
	CategoryID *int64
}

type ItemRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Item, error)
	List(ctx context.Context, filter ItemFilter) ([]models.Item, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, item *models.Item) error
	Update(ctx context.Context, item *models.Item) error
	// Delete removes the item together with its ratings and any personal
	// list rows referencing it, in one transaction.
	Delete(ctx context.Context, id int64) error
	UpdateSortKey(ctx context.Context, id int64, sortKey int) error
	ListByCategoryRanked(ctx context.Context, categoryID int64) ([]models.Item, error)
	AssignCategory(ctx context.Context, itemIDs []int64, categoryID int64) error
	// ReplaceCategoryMembers makes itemIDs the exact member set of the
	// category: items of the category not in the set lose their category
	// reference, items in the set gain it.
	ReplaceCategoryMembers(ctx context.Context, categoryID int64, itemIDs []int64) error
	CategoriesWithItems(ctx context.Context, itemType string) ([]models.Category, error)
}

type itemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	var item models.Item
	if err := r.db.WithContext(ctx).Preload("Category").First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) List(ctx context.Context, filter ItemFilter) ([]models.Item, error) {
	var items []models.Item
	db := r.db.WithContext(ctx).Preload("Category").Where("type = ?", filter.Type)

	if filter.Query != "" {
		db = db.Where("title ILIKE ?", "%"+filter.Query+"%")
	}
	if filter.CategoryID != nil {
		db = db.Where("category_id = ?", *filter.CategoryID)
	}

	if err := db.Order("created_at desc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

func (r *itemRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Item{}).Count(&count).Error
	return count, err
}

func (r *itemRepository) Create(ctx context.Context, item *models.Item) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}

func (r *itemRepository) Update(ctx context.Context, item *models.Item) error {
	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// Delete cascades in application code: the schema carries no ON DELETE
// guarantees for list rows, so ratings and list memberships are removed
// explicitly before the item itself.
func (r *itemRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("item_id = ?", id).Delete(&models.Rating{}).Error; err != nil {
			return fmt.Errorf("delete ratings of item: %w", err)
		}
		if err := tx.Where("item_id = ?", id).Delete(&models.PersonalListItem{}).Error; err != nil {
			return fmt.Errorf("delete list rows of item: %w", err)
		}
		result := tx.Delete(&models.Item{}, id)
		if result.Error != nil {
			return fmt.Errorf("delete item: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *itemRepository) UpdateSortKey(ctx context.Context, id int64, sortKey int) error {
	result := r.db.WithContext(ctx).Model(&models.Item{}).
		Where("id = ?", id).
		Update("sort_key", sortKey)
	if result.Error != nil {
		return fmt.Errorf("update sort key: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *itemRepository) ListByCategoryRanked(ctx context.Context, categoryID int64) ([]models.Item, error) {
	var items []models.Item
	// id asc keeps the order stable when sort keys tie
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("sort_key desc, id asc").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("list ranked items: %w", err)
	}
	return items, nil
}

func (r *itemRepository) AssignCategory(ctx context.Context, itemIDs []int64, categoryID int64) error {
	if len(itemIDs) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Model(&models.Item{}).
		Where("id IN ?", itemIDs).
		Update("category_id", categoryID).Error
	if err != nil {
		return fmt.Errorf("assign category: %w", err)
	}
	return nil
}

func (r *itemRepository) ReplaceCategoryMembers(ctx context.Context, categoryID int64, itemIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		unlink := tx.Model(&models.Item{}).Where("category_id = ?", categoryID)
		if len(itemIDs) > 0 {
			unlink = unlink.Where("id NOT IN ?", itemIDs)
		}
		if err := unlink.Update("category_id", nil).Error; err != nil {
			return fmt.Errorf("unlink removed members: %w", err)
		}
		if len(itemIDs) > 0 {
			if err := tx.Model(&models.Item{}).
				Where("id IN ?", itemIDs).
				Update("category_id", categoryID).Error; err != nil {
				return fmt.Errorf("assign new members: %w", err)
			}
		}
		return nil
	})
}

func (r *itemRepository) CategoriesWithItems(ctx context.Context, itemType string) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).
		Joins("JOIN items ON items.category_id = categories.id").
		Where("items.type = ?", itemType).
		Distinct("categories.*").
		Order("categories.name asc").
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("categories with items: %w", err)
	}
	return categories, nil
}
