package dto

import (
	"time"

	"cinerank/internal/api/models"
)

// CreateItemDTO used for POST /api/admin/items
type CreateItemDTO struct {
	Title      string  `json:"title" binding:"required,max=200"`
	Year       int     `json:"year" binding:"required"`
	Synopsis   string  `json:"synopsis" binding:"required"`
	CategoryID *int64  `json:"category_id,omitempty"`
	PosterURL  *string `json:"poster_url,omitempty"`
	Type       string  `json:"type" binding:"required,oneof=movie series"`
	Director   *string `json:"director,omitempty"`
	Cast       *string `json:"cast,omitempty"`
	SortKey    *int    `json:"sort_key,omitempty"`
}

// UpdateItemDTO used for PUT /api/admin/items/:item_id (partial updates allowed)
type UpdateItemDTO struct {
	Title      *string `json:"title,omitempty"`
	Year       *int    `json:"year,omitempty"`
	Synopsis   *string `json:"synopsis,omitempty"`
	CategoryID *int64  `json:"category_id,omitempty"`
	PosterURL  *string `json:"poster_url,omitempty"`
	Type       *string `json:"type,omitempty" binding:"omitempty,oneof=movie series"`
	Director   *string `json:"director,omitempty"`
	Cast       *string `json:"cast,omitempty"`
}

// ItemResponse DTO for responses
type ItemResponse struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Year       int       `json:"year"`
	Synopsis   string    `json:"synopsis"`
	CategoryID *int64    `json:"category_id,omitempty"`
	Category   *string   `json:"category,omitempty"`
	PosterURL  *string   `json:"poster_url,omitempty"`
	Type       string    `json:"type"`
	Director   string    `json:"director"`
	Cast       string    `json:"cast"`
	SortKey    int       `json:"sort_key"`
	CreatedAt  time.Time `json:"created_at"`
}

// ItemDetailResponse adds the rating view model of the detail page.
type ItemDetailResponse struct {
	Item     ItemResponse     `json:"item"`
	Average  float64          `json:"average"`
	Votes    int64            `json:"votes"`
	Ratings  []RatingResponse `json:"ratings"`
	MyRating *RatingResponse  `json:"my_rating,omitempty"`
}

// CatalogResponse is the home/series listing view model.
type CatalogResponse struct {
	Items          []ItemResponse     `json:"items"`
	Categories     []CategoryResponse `json:"categories"`
	ActiveCategory *CategoryResponse  `json:"active_category,omitempty"`
}

// Converters
func (d CreateItemDTO) ToModel() models.Item {
	item := models.Item{
		Title:      d.Title,
		Year:       d.Year,
		Synopsis:   d.Synopsis,
		CategoryID: d.CategoryID,
		PosterURL:  d.PosterURL,
		Type:       d.Type,
		Director:   "Unknown",
		Cast:       "Various",
	}
	if d.Director != nil && *d.Director != "" {
		item.Director = *d.Director
	}
	if d.Cast != nil && *d.Cast != "" {
		item.Cast = *d.Cast
	}
	if d.SortKey != nil {
		item.SortKey = *d.SortKey
	}
	return item
}

func (d UpdateItemDTO) ApplyTo(item *models.Item) {
	if d.Title != nil {
		item.Title = *d.Title
	}
	if d.Year != nil {
		item.Year = *d.Year
	}
	if d.Synopsis != nil {
		item.Synopsis = *d.Synopsis
	}
	if d.CategoryID != nil {
		item.CategoryID = d.CategoryID
	}
	if d.PosterURL != nil {
		item.PosterURL = d.PosterURL
	}
	if d.Type != nil {
		item.Type = *d.Type
	}
	if d.Director != nil {
		item.Director = *d.Director
	}
	if d.Cast != nil {
		item.Cast = *d.Cast
	}
}

func FromModelToItemResponse(item models.Item) ItemResponse {
	resp := ItemResponse{
		ID:         item.ID,
		Title:      item.Title,
		Year:       item.Year,
		Synopsis:   item.Synopsis,
		CategoryID: item.CategoryID,
		PosterURL:  item.PosterURL,
		Type:       item.Type,
		Director:   item.Director,
		Cast:       item.Cast,
		SortKey:    item.SortKey,
		CreatedAt:  item.CreatedAt,
	}
	if item.Category != nil {
		resp.Category = &item.Category.Name
	}
	return resp
}

func FromModelsToItemResponses(items []models.Item) []ItemResponse {
	responses := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, FromModelToItemResponse(item))
	}
	return responses
}
