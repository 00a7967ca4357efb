package repository

import (
	"context"
	"fmt"

	"cinerank/internal/api/models"

	"gorm.io/gorm"
)

// RatingTally is the raw aggregate per item: score sum and vote count.
// Averaging, rounding and ordering happen in the services so the contracts
// stay unit-testable.
type RatingTally struct {
	ItemID int64
	Sum    int64
	Votes  int64
}

// CategoryTally aggregates every score across all items of one category.
type CategoryTally struct {
	CategoryID int64
	Sum        int64
	Votes      int64
}

type RatingRepository interface {
	Create(ctx context.Context, rating *models.Rating) error
	Update(ctx context.Context, rating *models.Rating) error
	GetByUserAndItem(ctx context.Context, userID string, itemID int64) (*models.Rating, error)
	GetByItem(ctx context.Context, itemID int64) ([]models.Rating, error)
	CalculateAverage(ctx context.Context, itemID int64) (float64, error)
	Count(ctx context.Context, itemID int64) (int64, error)
	TallyByType(ctx context.Context, itemType string) ([]RatingTally, error)
	TallyByCategory(ctx context.Context) ([]CategoryTally, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Create(ctx context.Context, rating *models.Rating) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

func (r *ratingRepository) Update(ctx context.Context, rating *models.Rating) error {
	return r.db.WithContext(ctx).Save(rating).Error
}

func (r *ratingRepository) GetByUserAndItem(ctx context.Context, userID string, itemID int64) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		Preload("User").
		First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// GetByItem returns all ratings of an item, newest first.
func (r *ratingRepository) GetByItem(ctx context.Context, itemID int64) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Preload("User").
		Order("updated_at DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *ratingRepository) CalculateAverage(ctx context.Context, itemID int64) (float64, error) {
	var avg struct {
		Average float64
	}
	err := r.db.WithContext(ctx).Model(&models.Rating{}).
		Select("COALESCE(AVG(score), 0) as average").
		Where("item_id = ?", itemID).
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	return avg.Average, nil
}

func (r *ratingRepository) Count(ctx context.Context, itemID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Rating{}).
		Where("item_id = ?", itemID).
		Count(&count).Error
	return count, err
}

// TallyByType groups ratings per item for all items of the given type.
// Unrated items produce no row at all, so callers get the zero-vote
// exclusion for free.
func (r *ratingRepository) TallyByType(ctx context.Context, itemType string) ([]RatingTally, error) {
	var tallies []RatingTally
	err := r.db.WithContext(ctx).Model(&models.Rating{}).
		Select("ratings.item_id as item_id, SUM(ratings.score) as sum, COUNT(*) as votes").
		Joins("JOIN items ON items.id = ratings.item_id").
		Where("items.type = ?", itemType).
		Group("ratings.item_id").
		Scan(&tallies).Error
	if err != nil {
		return nil, fmt.Errorf("tally ratings by type: %w", err)
	}
	return tallies, nil
}

func (r *ratingRepository) TallyByCategory(ctx context.Context) ([]CategoryTally, error) {
	var tallies []CategoryTally
	err := r.db.WithContext(ctx).Model(&models.Rating{}).
		Select("items.category_id as category_id, SUM(ratings.score) as sum, COUNT(*) as votes").
		Joins("JOIN items ON items.id = ratings.item_id").
		Where("items.category_id IS NOT NULL").
		Group("items.category_id").
		Scan(&tallies).Error
	if err != nil {
		return nil, fmt.Errorf("tally ratings by category: %w", err)
	}
	return tallies, nil
}
