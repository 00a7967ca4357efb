package handler

import (
	"errors"
	"net/http"
	"strconv"

	"cinerank/internal/api/dto"
	"cinerank/internal/api/service"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratingService service.RatingService
}

func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// RegisterPublicRoutes registers read access under /api/items/:item_id/ratings.
func (h *RatingHandler) RegisterPublicRoutes(router *gin.RouterGroup) {
	ratings := router.Group("/:item_id/ratings")
	{
		ratings.GET("", h.List)
		ratings.GET("/average", h.GetAverage)
	}
}

// RegisterUserRoutes registers the authenticated write routes.
func (h *RatingHandler) RegisterUserRoutes(router *gin.RouterGroup) {
	ratings := router.Group("/:item_id/ratings")
	{
		ratings.POST("", h.Submit)
		ratings.GET("/me", h.GetUserRating)
	}
}

// Submit creates or updates the caller's rating.
// POST /api/items/:item_id/ratings
func (h *RatingHandler) Submit(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("item_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item ID"})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.SubmitRatingDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.ratingService.SubmitRating(c.Request.Context(), userID.(string), itemID, req.Score, req.Comment)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if result.Created {
		c.JSON(http.StatusCreated, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetUserRating returns the caller's rating for an item.
// GET /api/items/:item_id/ratings/me
func (h *RatingHandler) GetUserRating(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("item_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item ID"})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	rating, err := h.ratingService.GetUserRating(c.Request.Context(), userID.(string), itemID)
	if err != nil {
		if errors.Is(err, service.ErrRatingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rating)
}

// List returns all ratings of an item, newest first.
// GET /api/items/:item_id/ratings
func (h *RatingHandler) List(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("item_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item ID"})
		return
	}

	ratings, err := h.ratingService.GetItemRatings(c.Request.Context(), itemID)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ratings": ratings})
}

// GetAverage returns the item's rounded average and vote count.
// GET /api/items/:item_id/ratings/average
func (h *RatingHandler) GetAverage(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("item_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item ID"})
		return
	}

	avg, count, err := h.ratingService.ItemAverage(c.Request.Context(), itemID)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.AverageResponse{Average: avg, Votes: count})
}
