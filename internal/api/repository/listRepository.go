package repository

import (
	"context"
	"fmt"

	"cinerank/internal/api/models"

	"gorm.io/gorm"
)

type ListRepository interface {
	Create(ctx context.Context, list *models.PersonalList) error
	GetByIDAndUser(ctx context.Context, id int64, userID string) (*models.PersonalList, error)
	ListByUser(ctx context.Context, userID string) ([]models.PersonalList, error)
	ContainsItem(ctx context.Context, listID, itemID int64) (bool, error)
	AddItem(ctx context.Context, listID, itemID int64) error
}

type listRepository struct {
	db *gorm.DB
}

func NewListRepository(db *gorm.DB) ListRepository {
	return &listRepository{db: db}
}

func (r *listRepository) Create(ctx context.Context, list *models.PersonalList) error {
	if err := r.db.WithContext(ctx).Create(list).Error; err != nil {
		return fmt.Errorf("create list: %w", err)
	}
	return nil
}

// GetByIDAndUser scopes the lookup to the owner: there is no cross-user
// mutation path, so a foreign list id behaves like a missing one.
func (r *listRepository) GetByIDAndUser(ctx context.Context, id int64, userID string) (*models.PersonalList, error) {
	var list models.PersonalList
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&list).Error
	if err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *listRepository) ListByUser(ctx context.Context, userID string) ([]models.PersonalList, error) {
	var lists []models.PersonalList
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("personal_list_items.position asc")
		}).
		Preload("Items.Item").
		Order("created_at asc").
		Find(&lists).Error
	if err != nil {
		return nil, fmt.Errorf("list personal lists: %w", err)
	}
	return lists, nil
}

func (r *listRepository) ContainsItem(ctx context.Context, listID, itemID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.PersonalListItem{}).
		Where("list_id = ? AND item_id = ?", listID, itemID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// AddItem appends at the end of the list, keeping insert order.
func (r *listRepository) AddItem(ctx context.Context, listID, itemID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxPos struct {
			Max int
		}
		err := tx.Model(&models.PersonalListItem{}).
			Select("COALESCE(MAX(position), 0) as max").
			Where("list_id = ?", listID).
			Scan(&maxPos).Error
		if err != nil {
			return fmt.Errorf("next position: %w", err)
		}
		row := models.PersonalListItem{
			ListID:   listID,
			ItemID:   itemID,
			Position: maxPos.Max + 1,
		}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("add list item: %w", err)
		}
		return nil
	})
}
