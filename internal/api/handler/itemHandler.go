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

type ItemHandler struct {
	catalogService service.CatalogService
}

func NewItemHandler(catalogService service.CatalogService) *ItemHandler {
	return &ItemHandler{catalogService: catalogService}
}

// RegisterPublicRoutes registers the browse/detail routes.
func (h *ItemHandler) RegisterPublicRoutes(router *gin.RouterGroup) {
	router.GET("", h.List)
	router.GET("/:item_id", h.Get)
}

// RegisterAdminRoutes registers the catalog mutation routes.
func (h *ItemHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	router.POST("", h.Create)
	router.PUT("/:item_id", h.Update)
	router.DELETE("/:item_id", h.Delete)
}

// List is the browse view.
// GET /api/items?type=movie&q=batman&category=3
func (h *ItemHandler) List(c *gin.Context) {
	itemType, err := models.ParseItemType(c.DefaultQuery("type", models.TypeMovie))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be movie or series"})
		return
	}

	var categoryID *int64
	if raw := c.Query("category"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err == nil {
			categoryID = &id
		}
		// a malformed category filter is silently dropped, like an unknown one
	}

	catalog, err := h.catalogService.ListItems(c.Request.Context(), itemType, c.Query("q"), categoryID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, catalog)
}

// Get is the detail view; with a valid token the caller's own rating is
// included.
// GET /api/items/:item_id
func (h *ItemHandler) Get(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("item_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item ID"})
		return
	}

	userID := ""
	if v, exists := c.Get("userID"); exists {
		userID, _ = v.(string)
	}

	detail, err := h.catalogService.GetItem(c.Request.Context(), itemID, userID)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Create adds an item to the catalog.
// POST /api/admin/items
func (h *ItemHandler) Create(c *gin.Context) {
	var req dto.CreateItemDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.catalogService.CreateItem(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// Update edits an item.
// PUT /api/admin/items/:item_id
func (h *ItemHandler) Update(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("item_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item ID"})
		return
	}

	var req dto.UpdateItemDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.catalogService.UpdateItem(c.Request.Context(), itemID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrItemNotFound), errors.Is(err, service.ErrCategoryNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, item)
}

// Delete removes an item and everything referencing it.
// DELETE /api/admin/items/:item_id
func (h *ItemHandler) Delete(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("item_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item ID"})
		return
	}

	if err := h.catalogService.DeleteItem(c.Request.Context(), itemID); err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "item deleted"})
}
