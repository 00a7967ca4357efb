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
	ErrListNotFound  = errors.New("list not found")
	ErrAlreadyInList = errors.New("item already in list")
)

type ListService interface {
	Create(ctx context.Context, userID, name string) (*dto.PersonalListResponse, error)
	// AddItem appends the item to the caller's list. Adding an item that is
	// already present is a no-op signalled with ErrAlreadyInList; callers
	// surface it as a notice, not a failure.
	AddItem(ctx context.Context, userID string, listID, itemID int64) error
	MyLists(ctx context.Context, userID string) ([]dto.PersonalListResponse, error)
}

type listService struct {
	listRepo repository.ListRepository
	itemRepo repository.ItemRepository
}

func NewListService(listRepo repository.ListRepository, itemRepo repository.ItemRepository) ListService {
	return &listService{
		listRepo: listRepo,
		itemRepo: itemRepo,
	}
}

func (s *listService) Create(ctx context.Context, userID, name string) (*dto.PersonalListResponse, error) {
	if name == "" {
		name = models.DefaultListName
	}
	list := models.PersonalList{
		UserID: userID,
		Name:   name,
	}
	if err := s.listRepo.Create(ctx, &list); err != nil {
		return nil, err
	}
	resp := dto.FromModelToListResponse(list)
	return &resp, nil
}

func (s *listService) AddItem(ctx context.Context, userID string, listID, itemID int64) error {
	if _, err := s.itemRepo.GetByID(ctx, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrItemNotFound
		}
		return err
	}
	if _, err := s.listRepo.GetByIDAndUser(ctx, listID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrListNotFound
		}
		return err
	}

	exists, err := s.listRepo.ContainsItem(ctx, listID, itemID)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyInList
	}
	return s.listRepo.AddItem(ctx, listID, itemID)
}

func (s *listService) MyLists(ctx context.Context, userID string) ([]dto.PersonalListResponse, error) {
	lists, err := s.listRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelsToListResponses(lists), nil
}
