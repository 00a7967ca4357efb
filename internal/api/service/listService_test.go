package service

import (
	"context"
	"testing"

	"cinerank/internal/api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestListService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("EmptyNameUsesDefault", func(t *testing.T) {
		listRepo := new(MockListRepository)
		svc := NewListService(listRepo, new(MockItemRepository))

		listRepo.On("Create", mock.Anything, mock.MatchedBy(func(l *models.PersonalList) bool {
			return l.Name == models.DefaultListName && l.UserID == "user-1"
		})).Return(nil).Once()

		resp, err := svc.Create(ctx, "user-1", "")

		assert.NoError(t, err)
		assert.Equal(t, models.DefaultListName, resp.Name)
	})
}

func TestListService_AddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("AppendsNewItem", func(t *testing.T) {
		listRepo := new(MockListRepository)
		itemRepo := new(MockItemRepository)
		svc := NewListService(listRepo, itemRepo)

		itemRepo.On("GetByID", mock.Anything, int64(5)).Return(&models.Item{ID: 5}, nil).Once()
		listRepo.On("GetByIDAndUser", mock.Anything, int64(1), "user-1").
			Return(&models.PersonalList{ID: 1, UserID: "user-1"}, nil).Once()
		listRepo.On("ContainsItem", mock.Anything, int64(1), int64(5)).Return(false, nil).Once()
		listRepo.On("AddItem", mock.Anything, int64(1), int64(5)).Return(nil).Once()

		err := svc.AddItem(ctx, "user-1", 1, 5)

		assert.NoError(t, err)
		listRepo.AssertExpectations(t)
	})

	t.Run("DuplicateAddIsNoOp", func(t *testing.T) {
		listRepo := new(MockListRepository)
		itemRepo := new(MockItemRepository)
		svc := NewListService(listRepo, itemRepo)

		itemRepo.On("GetByID", mock.Anything, int64(5)).Return(&models.Item{ID: 5}, nil).Once()
		listRepo.On("GetByIDAndUser", mock.Anything, int64(1), "user-1").
			Return(&models.PersonalList{ID: 1, UserID: "user-1"}, nil).Once()
		listRepo.On("ContainsItem", mock.Anything, int64(1), int64(5)).Return(true, nil).Once()

		err := svc.AddItem(ctx, "user-1", 1, 5)

		assert.ErrorIs(t, err, ErrAlreadyInList)
		listRepo.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ForeignListLooksMissing", func(t *testing.T) {
		listRepo := new(MockListRepository)
		itemRepo := new(MockItemRepository)
		svc := NewListService(listRepo, itemRepo)

		itemRepo.On("GetByID", mock.Anything, int64(5)).Return(&models.Item{ID: 5}, nil).Once()
		listRepo.On("GetByIDAndUser", mock.Anything, int64(1), "intruder").
			Return(nil, gorm.ErrRecordNotFound).Once()

		err := svc.AddItem(ctx, "intruder", 1, 5)

		assert.ErrorIs(t, err, ErrListNotFound)
	})
}
