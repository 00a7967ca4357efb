package handler

import (
	"errors"
	"net/http"
	"strconv"

	"cinerank/internal/api/dto"
	"cinerank/internal/api/models"
	"cinerank/internal/api/service"

	"github.com/gin-gonic/gin"
)

type RankingHandler struct {
	rankingService service.RankingService
}

func NewRankingHandler(rankingService service.RankingService) *RankingHandler {
	return &RankingHandler{rankingService: rankingService}
}

func (h *RankingHandler) RegisterPublicRoutes(router *gin.RouterGroup) {
	router.GET("/global", h.Global)
}

func (h *RankingHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	router.GET("/panel", h.Panel)
	router.POST("/items/:item_id/bump", h.Bump)
}

// Global is the vote-based top 50 for a type.
// GET /api/rankings/global?type=movie
func (h *RankingHandler) Global(c *gin.Context) {
	itemType, err := models.ParseItemType(c.DefaultQuery("type", models.TypeMovie))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be movie or series"})
		return
	}

	entries, err := h.rankingService.GlobalRanking(c.Request.Context(), itemType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.GlobalRankingResponse{Type: itemType, Entries: entries})
}

// Panel is the manual curation board: per category, items by sort key.
// GET /api/admin/rankings/panel
func (h *RankingHandler) Panel(c *gin.Context) {
	panel, err := h.rankingService.Panel(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": panel})
}

type bumpRequest struct {
	Direction string `json:"direction" binding:"required,oneof=up down"`
}

// Bump nudges an item's manual sort key.
// POST /api/admin/rankings/items/:item_id/bump
func (h *RankingHandler) Bump(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("item_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item ID"})
		return
	}

	var req bumpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sortKey, err := h.rankingService.Bump(c.Request.Context(), itemID, service.BumpDirection(req.Direction))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrBadDirection):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"item_id": itemID, "sort_key": sortKey})
}
