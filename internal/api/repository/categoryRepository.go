package repository

import (
	"context"
	"fmt"

	"cinerank/internal/api/models"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	FindByName(ctx context.Context, name string) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	ListWithItems(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	// Delete cascades: member items, their ratings and list rows go first.
	Delete(ctx context.Context, id int64) error
	CountItems(ctx context.Context, id int64) (int64, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// FindByName is a case-sensitive exact match. Whether "Drama" and "drama"
// should collide is an open product question; until it is resolved we keep
// exact matching, same as the original data.
func (r *categoryRepository) FindByName(ctx context.Context, name string) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).Order("name asc").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// ListWithItems returns only categories that currently have items, each with
// its items preloaded.
func (r *categoryRepository) ListWithItems(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).
		Preload("Items").
		Joins("JOIN items ON items.category_id = categories.id").
		Distinct("categories.*").
		Order("categories.name asc").
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("list categories with items: %w", err)
	}
	return categories, nil
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	if err := r.db.WithContext(ctx).Save(category).Error; err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var itemIDs []int64
		if err := tx.Model(&models.Item{}).
			Where("category_id = ?", id).
			Pluck("id", &itemIDs).Error; err != nil {
			return fmt.Errorf("collect member items: %w", err)
		}
		if len(itemIDs) > 0 {
			if err := tx.Where("item_id IN ?", itemIDs).Delete(&models.Rating{}).Error; err != nil {
				return fmt.Errorf("delete member ratings: %w", err)
			}
			if err := tx.Where("item_id IN ?", itemIDs).Delete(&models.PersonalListItem{}).Error; err != nil {
				return fmt.Errorf("delete member list rows: %w", err)
			}
			if err := tx.Where("id IN ?", itemIDs).Delete(&models.Item{}).Error; err != nil {
				return fmt.Errorf("delete member items: %w", err)
			}
		}
		result := tx.Delete(&models.Category{}, id)
		if result.Error != nil {
			return fmt.Errorf("delete category: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *categoryRepository) CountItems(ctx context.Context, id int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Item{}).
		Where("category_id = ?", id).
		Count(&count).Error
	return count, err
}
