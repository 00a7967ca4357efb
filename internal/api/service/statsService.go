package service

import (
	"context"

	"cinerank/internal/api/dto"
	"cinerank/internal/api/repository"
)

type StatsService interface {
	// CategoryStats computes, per category, the item count and the
	// point-weighted mean of all scores across the category's items.
	// A category holding one item rated 5 by ten users and one unrated item
	// reports 5.0, not a mean of per-item means. No votes at all reports 0.
	CategoryStats(ctx context.Context) (*dto.StatsResponse, error)
}

type statsService struct {
	categoryRepo repository.CategoryRepository
	ratingRepo   repository.RatingRepository
	itemRepo     repository.ItemRepository
}

func NewStatsService(
	categoryRepo repository.CategoryRepository,
	ratingRepo repository.RatingRepository,
	itemRepo repository.ItemRepository,
) StatsService {
	return &statsService{
		categoryRepo: categoryRepo,
		ratingRepo:   ratingRepo,
		itemRepo:     itemRepo,
	}
}

// categoryAverage is the point-weighted mean rounded to one decimal place.
func categoryAverage(sum, votes int64) float64 {
	if votes == 0 {
		return 0.0
	}
	return round1(float64(sum) / float64(votes))
}

func (s *statsService) CategoryStats(ctx context.Context) (*dto.StatsResponse, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	tallies, err := s.ratingRepo.TallyByCategory(ctx)
	if err != nil {
		return nil, err
	}
	byCategory := make(map[int64]repository.CategoryTally, len(tallies))
	for _, t := range tallies {
		byCategory[t.CategoryID] = t
	}

	totalItems, err := s.itemRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	stats := make([]dto.CategoryStats, 0, len(categories))
	for _, category := range categories {
		count, err := s.categoryRepo.CountItems(ctx, category.ID)
		if err != nil {
			return nil, err
		}

		tally := byCategory[category.ID]
		stats = append(stats, dto.CategoryStats{
			CategoryID: category.ID,
			Name:       category.Name,
			ItemCount:  count,
			Average:    categoryAverage(tally.Sum, tally.Votes),
		})
	}

	return &dto.StatsResponse{
		TotalItems: totalItems,
		Categories: stats,
	}, nil
}
