package service

import (
	"context"
	"errors"

	"cinerank/internal/api/dto"
	"cinerank/internal/api/repository"

	"gorm.io/gorm"
)

type CatalogService interface {
	// ListItems is the browse view: filtered items, the categories that
	// currently have items of the type, and the active category when the
	// filter resolved.
	ListItems(ctx context.Context, itemType, query string, categoryID *int64) (*dto.CatalogResponse, error)
	// GetItem is the detail view. userID may be empty for anonymous callers;
	// when set, their own rating rides along.
	GetItem(ctx context.Context, id int64, userID string) (*dto.ItemDetailResponse, error)
	CreateItem(ctx context.Context, payload dto.CreateItemDTO) (*dto.ItemResponse, error)
	UpdateItem(ctx context.Context, id int64, payload dto.UpdateItemDTO) (*dto.ItemResponse, error)
	DeleteItem(ctx context.Context, id int64) error
}

type catalogService struct {
	itemRepo   repository.ItemRepository
	ratingRepo repository.RatingRepository
	catRepo    repository.CategoryRepository
}

func NewCatalogService(
	itemRepo repository.ItemRepository,
	ratingRepo repository.RatingRepository,
	catRepo repository.CategoryRepository,
) CatalogService {
	return &catalogService{
		itemRepo:   itemRepo,
		ratingRepo: ratingRepo,
		catRepo:    catRepo,
	}
}

func (s *catalogService) ListItems(ctx context.Context, itemType, query string, categoryID *int64) (*dto.CatalogResponse, error) {
	filter := repository.ItemFilter{Type: itemType, Query: query}

	var active *dto.CategoryResponse
	if categoryID != nil {
		category, err := s.catRepo.GetByID(ctx, *categoryID)
		if err != nil {
			// an unknown category id just drops the filter, same as the
			// original catalog did
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
		} else {
			filter.CategoryID = categoryID
			resp := dto.FromModelToCategoryResponse(*category)
			active = &resp
		}
	}

	items, err := s.itemRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	categories, err := s.itemRepo.CategoriesWithItems(ctx, itemType)
	if err != nil {
		return nil, err
	}

	return &dto.CatalogResponse{
		Items:          dto.FromModelsToItemResponses(items),
		Categories:     dto.FromModelsToCategoryResponses(categories),
		ActiveCategory: active,
	}, nil
}

func (s *catalogService) GetItem(ctx context.Context, id int64, userID string) (*dto.ItemDetailResponse, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	ratings, err := s.ratingRepo.GetByItem(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &dto.ItemDetailResponse{
		Item:    dto.FromModelToItemResponse(*item),
		Votes:   int64(len(ratings)),
		Ratings: dto.FromModelsToRatingResponses(ratings),
	}
	if len(ratings) > 0 {
		var sum int64
		for _, rating := range ratings {
			sum += int64(rating.Score)
		}
		detail.Average = round1(float64(sum) / float64(len(ratings)))
	}

	if userID != "" {
		mine, err := s.ratingRepo.GetByUserAndItem(ctx, userID, id)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if mine != nil {
			detail.MyRating = dto.FromModelToRatingResponse(mine)
		}
	}
	return detail, nil
}

func (s *catalogService) CreateItem(ctx context.Context, payload dto.CreateItemDTO) (*dto.ItemResponse, error) {
	if payload.CategoryID != nil {
		if _, err := s.catRepo.GetByID(ctx, *payload.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, err
		}
	}
	item := payload.ToModel()
	if err := s.itemRepo.Create(ctx, &item); err != nil {
		return nil, err
	}
	created, err := s.itemRepo.GetByID(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	resp := dto.FromModelToItemResponse(*created)
	return &resp, nil
}

func (s *catalogService) UpdateItem(ctx context.Context, id int64, payload dto.UpdateItemDTO) (*dto.ItemResponse, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	if payload.CategoryID != nil {
		if _, err := s.catRepo.GetByID(ctx, *payload.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, err
		}
	}

	payload.ApplyTo(item)
	item.Category = nil // force reload of the association on read
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	updated, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.FromModelToItemResponse(*updated)
	return &resp, nil
}

func (s *catalogService) DeleteItem(ctx context.Context, id int64) error {
	if err := s.itemRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrItemNotFound
		}
		return err
	}
	return nil
}
