package handler

import (
	"errors"
	"net/http"
	"strconv"

	"cinerank/internal/api/dto"
	"cinerank/internal/api/service"

	"github.com/gin-gonic/gin"
)

type ListHandler struct {
	listService service.ListService
}

func NewListHandler(listService service.ListService) *ListHandler {
	return &ListHandler{listService: listService}
}

// RegisterRoutes registers the personal list routes; the whole group is
// authenticated.
func (h *ListHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("", h.MyLists)
	router.POST("", h.Create)
	router.POST("/:list_id/items", h.AddItem)
}

// MyLists returns the caller's lists with their items in insert order.
// GET /api/lists
func (h *ListHandler) MyLists(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	lists, err := h.listService.MyLists(c.Request.Context(), userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"lists": lists})
}

// Create makes a new personal list.
// POST /api/lists
func (h *ListHandler) Create(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CreateListDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list, err := h.listService.Create(c.Request.Context(), userID.(string), req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, list)
}

// AddItem appends an item to one of the caller's lists. A duplicate add is
// reported as a notice with HTTP 200, not as an error.
// POST /api/lists/:list_id/items
func (h *ListHandler) AddItem(c *gin.Context) {
	listID, err := strconv.ParseInt(c.Param("list_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid list ID"})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.AddToListDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err = h.listService.AddItem(c.Request.Context(), userID.(string), listID, req.ItemID)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, dto.AddToListResponse{Added: true, Message: "added to list"})
	case errors.Is(err, service.ErrAlreadyInList):
		c.JSON(http.StatusOK, dto.AddToListResponse{Added: false, Message: "already in your list"})
	case errors.Is(err, service.ErrListNotFound), errors.Is(err, service.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
