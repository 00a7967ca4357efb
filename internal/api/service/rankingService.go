package service

import (
	"context"
	"errors"
	"sort"

	"cinerank/internal/api/dto"
	"cinerank/internal/api/repository"

	"gorm.io/gorm"
)

// GlobalRankingLimit caps the vote-based ranking at the top 50 entries.
const GlobalRankingLimit = 50

type BumpDirection string

const (
	BumpUp   BumpDirection = "up"
	BumpDown BumpDirection = "down"
)

var ErrBadDirection = errors.New("direction must be up or down")

type RankingService interface {
	// GlobalRanking ranks every rated item of the given type by its rounded
	// average, votes breaking ties. Zero-vote items never appear.
	GlobalRanking(ctx context.Context, itemType string) ([]dto.RankingEntry, error)
	// Bump adjusts the manual sort key: up adds 1 unconditionally, down
	// subtracts 1 but never goes below 0.
	Bump(ctx context.Context, itemID int64, direction BumpDirection) (int, error)
	// Panel returns every category with its items ordered by sort key,
	// highest first.
	Panel(ctx context.Context) ([]dto.RankingPanelCategory, error)
}

type rankingService struct {
	ratingRepo   repository.RatingRepository
	itemRepo     repository.ItemRepository
	categoryRepo repository.CategoryRepository
}

func NewRankingService(
	ratingRepo repository.RatingRepository,
	itemRepo repository.ItemRepository,
	categoryRepo repository.CategoryRepository,
) RankingService {
	return &rankingService{
		ratingRepo:   ratingRepo,
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
	}
}

// rankedTally pairs an item with its rounded average. Ordering uses the
// rounded value, matching what users see on the board.
type rankedTally struct {
	ItemID  int64
	Average float64
	Votes   int64
}

// rankTallies sorts descending by (average, votes) and truncates. Ascending
// item ID breaks remaining ties so repeated calls return the same order.
func rankTallies(tallies []repository.RatingTally, limit int) []rankedTally {
	ranked := make([]rankedTally, 0, len(tallies))
	for _, t := range tallies {
		if t.Votes == 0 {
			continue
		}
		ranked = append(ranked, rankedTally{
			ItemID:  t.ItemID,
			Average: round1(float64(t.Sum) / float64(t.Votes)),
			Votes:   t.Votes,
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Average != ranked[j].Average {
			return ranked[i].Average > ranked[j].Average
		}
		if ranked[i].Votes != ranked[j].Votes {
			return ranked[i].Votes > ranked[j].Votes
		}
		return ranked[i].ItemID < ranked[j].ItemID
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func (s *rankingService) GlobalRanking(ctx context.Context, itemType string) ([]dto.RankingEntry, error) {
	tallies, err := s.ratingRepo.TallyByType(ctx, itemType)
	if err != nil {
		return nil, err
	}
	ranked := rankTallies(tallies, GlobalRankingLimit)

	entries := make([]dto.RankingEntry, 0, len(ranked))
	for _, r := range ranked {
		item, err := s.itemRepo.GetByID(ctx, r.ItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		entries = append(entries, dto.RankingEntry{
			Item:    dto.FromModelToItemResponse(*item),
			Average: r.Average,
			Votes:   r.Votes,
		})
	}
	return entries, nil
}

// Bump is a plain read-modify-write: two concurrent bumps on the same item
// can lose one increment. Accepted for single-admin curation.
func (s *rankingService) Bump(ctx context.Context, itemID int64, direction BumpDirection) (int, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrItemNotFound
		}
		return 0, err
	}

	sortKey := item.SortKey
	switch direction {
	case BumpUp:
		sortKey++
	case BumpDown:
		if sortKey > 0 {
			sortKey--
		}
	default:
		return 0, ErrBadDirection
	}

	if err := s.itemRepo.UpdateSortKey(ctx, itemID, sortKey); err != nil {
		return 0, err
	}
	return sortKey, nil
}

func (s *rankingService) Panel(ctx context.Context) ([]dto.RankingPanelCategory, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	panel := make([]dto.RankingPanelCategory, 0, len(categories))
	for _, category := range categories {
		items, err := s.itemRepo.ListByCategoryRanked(ctx, category.ID)
		if err != nil {
			return nil, err
		}
		panel = append(panel, dto.RankingPanelCategory{
			Category: dto.FromModelToCategoryResponse(category),
			Items:    dto.FromModelsToItemResponses(items),
		})
	}
	return panel, nil
}
