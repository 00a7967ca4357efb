package service

import (
	"context"
	"errors"

	"cinerank/internal/api/dto"
	"cinerank/internal/api/models"
	"cinerank/internal/api/repository"

	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrDuplicateCategory = errors.New("category name already in use")
)

type CategoryService interface {
	// ListWithItems returns only categories that currently have items.
	ListWithItems(ctx context.Context) ([]dto.CategoryResponse, error)
	// Create makes the category and optionally bulk-assigns items to it.
	Create(ctx context.Context, payload dto.CreateCategoryDTO) (*dto.CategoryResponse, error)
	// Update edits name/description and replaces the member set wholesale:
	// items of the category missing from payload.ItemIDs lose their
	// category reference.
	Update(ctx context.Context, id int64, payload dto.UpdateCategoryDTO) (*dto.CategoryResponse, error)
	// Delete cascades to member items, their ratings and list rows.
	Delete(ctx context.Context, id int64) error
	// BulkAssign points each item at the category, overwriting any prior one.
	BulkAssign(ctx context.Context, id int64, itemIDs []int64) error
}

type categoryService struct {
	catRepo  repository.CategoryRepository
	itemRepo repository.ItemRepository
}

func NewCategoryService(catRepo repository.CategoryRepository, itemRepo repository.ItemRepository) CategoryService {
	return &categoryService{
		catRepo:  catRepo,
		itemRepo: itemRepo,
	}
}

func (s *categoryService) ListWithItems(ctx context.Context) ([]dto.CategoryResponse, error) {
	categories, err := s.catRepo.ListWithItems(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromModelsToCategoryResponses(categories), nil
}

func (s *categoryService) Create(ctx context.Context, payload dto.CreateCategoryDTO) (*dto.CategoryResponse, error) {
	if _, err := s.catRepo.FindByName(ctx, payload.Name); err == nil {
		return nil, ErrDuplicateCategory
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category := models.Category{
		Name:        payload.Name,
		Description: payload.Description,
	}
	if err := s.catRepo.Create(ctx, &category); err != nil {
		return nil, err
	}
	if len(payload.ItemIDs) > 0 {
		if err := s.itemRepo.AssignCategory(ctx, payload.ItemIDs, category.ID); err != nil {
			return nil, err
		}
	}
	resp := dto.FromModelToCategoryResponse(category)
	return &resp, nil
}

func (s *categoryService) Update(ctx context.Context, id int64, payload dto.UpdateCategoryDTO) (*dto.CategoryResponse, error) {
	category, err := s.catRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	if payload.Name != category.Name {
		if _, err := s.catRepo.FindByName(ctx, payload.Name); err == nil {
			return nil, ErrDuplicateCategory
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	category.Name = payload.Name
	category.Description = payload.Description
	if err := s.catRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	// membership is whatever the edit submitted, nothing more
	if err := s.itemRepo.ReplaceCategoryMembers(ctx, id, payload.ItemIDs); err != nil {
		return nil, err
	}

	resp := dto.FromModelToCategoryResponse(*category)
	return &resp, nil
}

func (s *categoryService) Delete(ctx context.Context, id int64) error {
	if err := s.catRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return nil
}

func (s *categoryService) BulkAssign(ctx context.Context, id int64, itemIDs []int64) error {
	if _, err := s.catRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return s.itemRepo.AssignCategory(ctx, itemIDs, id)
}
