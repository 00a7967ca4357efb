package service

import (
	"context"
	"errors"
	"math"

	"cinerank/internal/api/dto"
	"cinerank/internal/api/models"
	"cinerank/internal/api/repository"

	"gorm.io/gorm"
)

var (
	ErrItemNotFound   = errors.New("item not found")
	ErrRatingNotFound = errors.New("rating not found")
)

type RatingService interface {
	// SubmitRating creates the caller's rating for an item, or updates the
	// existing one: the store never holds two ratings for the same
	// (user, item) pair.
	SubmitRating(ctx context.Context, userID string, itemID int64, score int, comment *string) (*dto.SubmitRatingResponse, error)
	GetUserRating(ctx context.Context, userID string, itemID int64) (*dto.RatingResponse, error)
	GetItemRatings(ctx context.Context, itemID int64) ([]dto.RatingResponse, error)
	// ItemAverage reports the arithmetic mean rounded to one decimal place
	// and the vote count. Unrated items report 0.
	ItemAverage(ctx context.Context, itemID int64) (float64, int64, error)
}

type ratingService struct {
	ratingRepo repository.RatingRepository
	itemRepo   repository.ItemRepository
}

func NewRatingService(ratingRepo repository.RatingRepository, itemRepo repository.ItemRepository) RatingService {
	return &ratingService{
		ratingRepo: ratingRepo,
		itemRepo:   itemRepo,
	}
}

// round1 rounds to one decimal place, the precision every aggregate in the
// catalog reports.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func (s *ratingService) SubmitRating(ctx context.Context, userID string, itemID int64, score int, comment *string) (*dto.SubmitRatingResponse, error) {
	if _, err := s.itemRepo.GetByID(ctx, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	existing, err := s.ratingRepo.GetByUserAndItem(ctx, userID, itemID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if existing != nil {
		existing.Score = score
		existing.Comment = comment
		if err := s.ratingRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return &dto.SubmitRatingResponse{
			Rating:  *dto.FromModelToRatingResponse(existing),
			Created: false,
		}, nil
	}

	rating := &models.Rating{
		UserID:  userID,
		ItemID:  itemID,
		Score:   score,
		Comment: comment,
	}
	if err := s.ratingRepo.Create(ctx, rating); err != nil {
		return nil, err
	}
	// reload with the user association for the response
	rating, err = s.ratingRepo.GetByUserAndItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}
	return &dto.SubmitRatingResponse{
		Rating:  *dto.FromModelToRatingResponse(rating),
		Created: true,
	}, nil
}

func (s *ratingService) GetUserRating(ctx context.Context, userID string, itemID int64) (*dto.RatingResponse, error) {
	rating, err := s.ratingRepo.GetByUserAndItem(ctx, userID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}
	return dto.FromModelToRatingResponse(rating), nil
}

func (s *ratingService) GetItemRatings(ctx context.Context, itemID int64) ([]dto.RatingResponse, error) {
	if _, err := s.itemRepo.GetByID(ctx, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	ratings, err := s.ratingRepo.GetByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelsToRatingResponses(ratings), nil
}

func (s *ratingService) ItemAverage(ctx context.Context, itemID int64) (float64, int64, error) {
	if _, err := s.itemRepo.GetByID(ctx, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, 0, ErrItemNotFound
		}
		return 0, 0, err
	}
	count, err := s.ratingRepo.Count(ctx, itemID)
	if err != nil {
		return 0, 0, err
	}
	if count == 0 {
		return 0, 0, nil
	}
	avg, err := s.ratingRepo.CalculateAverage(ctx, itemID)
	if err != nil {
		return 0, 0, err
	}
	return round1(avg), count, nil
}
