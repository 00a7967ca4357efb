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

type MockRatingService struct {
	mock.Mock
}

func (m *MockRatingService) SubmitRating(ctx context.Context, userID string, itemID int64, score int, comment *string) (*dto.SubmitRatingResponse, error) {
	args := m.Called(ctx, userID, itemID, score, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SubmitRatingResponse), args.Error(1)
}

func (m *MockRatingService) GetUserRating(ctx context.Context, userID string, itemID int64) (*dto.RatingResponse, error) {
	args := m.Called(ctx, userID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RatingResponse), args.Error(1)
}

func (m *MockRatingService) GetItemRatings(ctx context.Context, itemID int64) ([]dto.RatingResponse, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.RatingResponse), args.Error(1)
}

func (m *MockRatingService) ItemAverage(ctx context.Context, itemID int64) (float64, int64, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).(float64), args.Get(1).(int64), args.Error(2)
}

// --- SETUP ---

func mockAuthMiddleware(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Set("username", "testuser")
		c.Set("role", "user")
		c.Next()
	}
}

func setupRatingRouter(mockService *MockRatingService, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	h := handler.NewRatingHandler(mockService)

	public := r.Group("/api/items")
	h.RegisterPublicRoutes(public)

	authed := r.Group("/api/items")
	if userID != "" {
		authed.Use(mockAuthMiddleware(userID))
	}
	h.RegisterUserRoutes(authed)
	return r
}

// --- TESTS ---

func TestRatingHandler_Submit(t *testing.T) {
	t.Run("NewRatingReturns201", func(t *testing.T) {
		mockService := new(MockRatingService)
		r := setupRatingRouter(mockService, "user-1")

		mockService.On("SubmitRating", mock.Anything, "user-1", int64(10), 4, (*string)(nil)).
			Return(&dto.SubmitRatingResponse{
				Rating:  dto.RatingResponse{Username: "testuser", Score: 4},
				Created: true,
			}, nil).Once()

		body, _ := json.Marshal(map[string]interface{}{"score": 4})
		req, _ := http.NewRequest(http.MethodPost, "/api/items/10/ratings", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Equal(t, true, response["created"])
	})

	t.Run("RepeatRatingReturns200", func(t *testing.T) {
		mockService := new(MockRatingService)
		r := setupRatingRouter(mockService, "user-1")

		mockService.On("SubmitRating", mock.Anything, "user-1", int64(10), 5, (*string)(nil)).
			Return(&dto.SubmitRatingResponse{
				Rating:  dto.RatingResponse{Username: "testuser", Score: 5},
				Created: false,
			}, nil).Once()

		body, _ := json.Marshal(map[string]interface{}{"score": 5})
		req, _ := http.NewRequest(http.MethodPost, "/api/items/10/ratings", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Equal(t, false, response["created"])
	})

	t.Run("ScoreOutOfRangeReturns400", func(t *testing.T) {
		mockService := new(MockRatingService)
		r := setupRatingRouter(mockService, "user-1")

		body, _ := json.Marshal(map[string]interface{}{"score": 6})
		req, _ := http.NewRequest(http.MethodPost, "/api/items/10/ratings", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "SubmitRating",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("UnknownItemReturns404", func(t *testing.T) {
		mockService := new(MockRatingService)
		r := setupRatingRouter(mockService, "user-1")

		mockService.On("SubmitRating", mock.Anything, "user-1", int64(404), 3, (*string)(nil)).
			Return(nil, service.ErrItemNotFound).Once()

		body, _ := json.Marshal(map[string]interface{}{"score": 3})
		req, _ := http.NewRequest(http.MethodPost, "/api/items/404/ratings", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("MissingUserReturns401", func(t *testing.T) {
		mockService := new(MockRatingService)
		r := setupRatingRouter(mockService, "")

		body, _ := json.Marshal(map[string]interface{}{"score": 3})
		req, _ := http.NewRequest(http.MethodPost, "/api/items/10/ratings", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRatingHandler_GetAverage(t *testing.T) {
	mockService := new(MockRatingService)
	r := setupRatingRouter(mockService, "")

	t.Run("Success", func(t *testing.T) {
		mockService.On("ItemAverage", mock.Anything, int64(10)).
			Return(4.3, int64(12), nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/items/10/ratings/average", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.AverageResponse
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Equal(t, 4.3, response.Average)
		assert.Equal(t, int64(12), response.Votes)
	})

	t.Run("BadItemID", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/api/items/abc/ratings/average", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
