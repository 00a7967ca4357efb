package handler

import (
	"net/http"

	"cinerank/internal/api/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the stats panel and the CSV upload.
type AdminHandler struct {
	statsService  service.StatsService
	importService service.ImportService
}

func NewAdminHandler(statsService service.StatsService, importService service.ImportService) *AdminHandler {
	return &AdminHandler{
		statsService:  statsService,
		importService: importService,
	}
}

func (h *AdminHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/stats", h.Stats)
	router.POST("/import", h.ImportCSV)
}

// Stats is the per-category stats panel.
// GET /api/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.statsService.CategoryStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ImportCSV ingests a multipart CSV upload. The stream is read to the end
// and closed before the summary response is written.
// POST /api/admin/import  (form field "file")
func (h *AdminHandler) ImportCSV(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing csv file"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot open upload"})
		return
	}
	defer file.Close()

	summary, err := h.importService.ImportCSV(c.Request.Context(), file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
