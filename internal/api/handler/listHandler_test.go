package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cinerank/internal/api/dto"
	"cinerank/internal/api/handler"
	"cinerank/internal/api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- MOCK SERVICE ---

type MockListService struct {
	mock.Mock
}

func (m *MockListService) Create(ctx context.Context, userID, name string) (*dto.PersonalListResponse, error) {
	args := m.Called(ctx, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PersonalListResponse), args.Error(1)
}

func (m *MockListService) AddItem(ctx context.Context, userID string, listID, itemID int64) error {
	args := m.Called(ctx, userID, listID, itemID)
	return args.Error(0)
}

func (m *MockListService) MyLists(ctx context.Context, userID string) ([]dto.PersonalListResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.PersonalListResponse), args.Error(1)
}

// --- SETUP ---

func setupListRouter(mockService *MockListService, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	h := handler.NewListHandler(mockService)

	lists := r.Group("/api/lists")
	if userID != "" {
		lists.Use(mockAuthMiddleware(userID))
	}
	h.RegisterRoutes(lists)
	return r
}

// --- TESTS ---

func TestListHandler_AddItem(t *testing.T) {
	t.Run("Added", func(t *testing.T) {
		mockService := new(MockListService)
		r := setupListRouter(mockService, "user-1")

		mockService.On("AddItem", mock.Anything, "user-1", int64(1), int64(5)).Return(nil).Once()

		body, _ := json.Marshal(map[string]interface{}{"item_id": 5})
		req, _ := http.NewRequest(http.MethodPost, "/api/lists/1/items", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.AddToListResponse
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.True(t, response.Added)
	})

	t.Run("DuplicateIsANoticeNotAnError", func(t *testing.T) {
		mockService := new(MockListService)
		r := setupListRouter(mockService, "user-1")

		mockService.On("AddItem", mock.Anything, "user-1", int64(1), int64(5)).
			Return(service.ErrAlreadyInList).Once()

		body, _ := json.Marshal(map[string]interface{}{"item_id": 5})
		req, _ := http.NewRequest(http.MethodPost, "/api/lists/1/items", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.AddToListResponse
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.False(t, response.Added)
		assert.Equal(t, "already in your list", response.Message)
	})

	t.Run("ForeignListReturns404", func(t *testing.T) {
		mockService := new(MockListService)
		r := setupListRouter(mockService, "intruder")

		mockService.On("AddItem", mock.Anything, "intruder", int64(1), int64(5)).
			Return(service.ErrListNotFound).Once()

		body, _ := json.Marshal(map[string]interface{}{"item_id": 5})
		req, _ := http.NewRequest(http.MethodPost, "/api/lists/1/items", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListHandler_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockListService)
		r := setupListRouter(mockService, "user-1")

		mockService.On("Create", mock.Anything, "user-1", "Watch later").
			Return(&dto.PersonalListResponse{ID: 1, Name: "Watch later"}, nil).Once()

		body, _ := json.Marshal(map[string]interface{}{"name": "Watch later"})
		req, _ := http.NewRequest(http.MethodPost, "/api/lists", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("NoToken", func(t *testing.T) {
		mockService := new(MockListService)
		r := setupListRouter(mockService, "")

		body, _ := json.Marshal(map[string]interface{}{"name": "Watch later"})
		req, _ := http.NewRequest(http.MethodPost, "/api/lists", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
