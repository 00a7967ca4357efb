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

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListItems(ctx context.Context, itemType, query string, categoryID *int64) (*dto.CatalogResponse, error) {
	args := m.Called(ctx, itemType, query, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CatalogResponse), args.Error(1)
}

func (m *MockCatalogService) GetItem(ctx context.Context, id int64, userID string) (*dto.ItemDetailResponse, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ItemDetailResponse), args.Error(1)
}

func (m *MockCatalogService) CreateItem(ctx context.Context, payload dto.CreateItemDTO) (*dto.ItemResponse, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ItemResponse), args.Error(1)
}

func (m *MockCatalogService) UpdateItem(ctx context.Context, id int64, payload dto.UpdateItemDTO) (*dto.ItemResponse, error) {
	args := m.Called(ctx, id, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ItemResponse), args.Error(1)
}

func (m *MockCatalogService) DeleteItem(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- SETUP ---

func setupItemRouter(mockService *MockCatalogService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	h := handler.NewItemHandler(mockService)

	h.RegisterPublicRoutes(r.Group("/api/items"))
	h.RegisterAdminRoutes(r.Group("/api/admin/items"))
	return r
}

// --- TESTS ---

func TestItemHandler_List(t *testing.T) {
	t.Run("DefaultsToMovies", func(t *testing.T) {
		mockService := new(MockCatalogService)
		r := setupItemRouter(mockService)

		mockService.On("ListItems", mock.Anything, "movie", "", (*int64)(nil)).
			Return(&dto.CatalogResponse{
				Items: []dto.ItemResponse{{ID: 1, Title: "Heat", Type: "movie"}},
			}, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/items", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.CatalogResponse
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Len(t, response.Items, 1)
		assert.Equal(t, "Heat", response.Items[0].Title)
	})

	t.Run("FiltersByTypeQueryAndCategory", func(t *testing.T) {
		mockService := new(MockCatalogService)
		r := setupItemRouter(mockService)

		categoryID := int64(3)
		mockService.On("ListItems", mock.Anything, "series", "wire", &categoryID).
			Return(&dto.CatalogResponse{}, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/items?type=series&q=wire&category=3", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("BadTypeReturns400", func(t *testing.T) {
		mockService := new(MockCatalogService)
		r := setupItemRouter(mockService)

		req, _ := http.NewRequest(http.MethodGet, "/api/items?type=podcast", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "ListItems",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("MalformedCategoryFilterDropped", func(t *testing.T) {
		mockService := new(MockCatalogService)
		r := setupItemRouter(mockService)

		mockService.On("ListItems", mock.Anything, "movie", "", (*int64)(nil)).
			Return(&dto.CatalogResponse{}, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/items?category=oops", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})
}

func TestItemHandler_Get(t *testing.T) {
	t.Run("AnonymousDetail", func(t *testing.T) {
		mockService := new(MockCatalogService)
		r := setupItemRouter(mockService)

		mockService.On("GetItem", mock.Anything, int64(7), "").
			Return(&dto.ItemDetailResponse{
				Item:    dto.ItemResponse{ID: 7, Title: "Heat"},
				Average: 4.5,
				Votes:   2,
			}, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/items/7", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ItemDetailResponse
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Equal(t, 4.5, response.Average)
		assert.Nil(t, response.MyRating)
	})

	t.Run("UnknownItemReturns404", func(t *testing.T) {
		mockService := new(MockCatalogService)
		r := setupItemRouter(mockService)

		mockService.On("GetItem", mock.Anything, int64(404), "").
			Return(nil, service.ErrItemNotFound).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/items/404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestItemHandler_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockCatalogService)
		r := setupItemRouter(mockService)

		mockService.On("CreateItem", mock.Anything, mock.MatchedBy(func(p dto.CreateItemDTO) bool {
			return p.Title == "Heat" && p.Type == "movie"
		})).Return(&dto.ItemResponse{ID: 1, Title: "Heat", Type: "movie"}, nil).Once()

		body, _ := json.Marshal(map[string]interface{}{
			"title": "Heat", "year": 1995, "synopsis": "Cat and mouse", "type": "movie",
		})
		req, _ := http.NewRequest(http.MethodPost, "/api/admin/items", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("BadTypeRejectedByBinding", func(t *testing.T) {
		mockService := new(MockCatalogService)
		r := setupItemRouter(mockService)

		body, _ := json.Marshal(map[string]interface{}{
			"title": "Heat", "year": 1995, "synopsis": "Cat and mouse", "type": "podcast",
		})
		req, _ := http.NewRequest(http.MethodPost, "/api/admin/items", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "CreateItem", mock.Anything, mock.Anything)
	})
}

func TestItemHandler_Delete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockCatalogService)
		r := setupItemRouter(mockService)

		mockService.On("DeleteItem", mock.Anything, int64(7)).Return(nil).Once()

		req, _ := http.NewRequest(http.MethodDelete, "/api/admin/items/7", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("UnknownItemReturns404", func(t *testing.T) {
		mockService := new(MockCatalogService)
		r := setupItemRouter(mockService)

		mockService.On("DeleteItem", mock.Anything, int64(404)).
			Return(service.ErrItemNotFound).Once()

		req, _ := http.NewRequest(http.MethodDelete, "/api/admin/items/404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
