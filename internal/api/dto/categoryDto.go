package dto

import "cinerank/internal/api/models"

// CreateCategoryDTO used for POST /api/admin/categories. ItemIDs optionally
// bulk-assigns existing items to the new category right away.
type CreateCategoryDTO struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description *string `json:"description,omitempty"`
	ItemIDs     []int64 `json:"item_ids,omitempty"`
}

// UpdateCategoryDTO used for PUT /api/admin/categories/:category_id.
// ItemIDs is the full replacement member set: items of the category missing
// from it are unlinked.
type UpdateCategoryDTO struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description *string `json:"description,omitempty"`
	ItemIDs     []int64 `json:"item_ids"`
}

// BulkAssignDTO used for POST /api/admin/categories/:category_id/items
type BulkAssignDTO struct {
	ItemIDs []int64 `json:"item_ids" binding:"required,min=1"`
}

type CategoryResponse struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Description *string        `json:"description,omitempty"`
	Items       []ItemResponse `json:"items,omitempty"`
}

func FromModelToCategoryResponse(category models.Category) CategoryResponse {
	resp := CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
	}
	if len(category.Items) > 0 {
		resp.Items = FromModelsToItemResponses(category.Items)
	}
	return resp
}

func FromModelsToCategoryResponses(categories []models.Category) []CategoryResponse {
	responses := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, FromModelToCategoryResponse(category))
	}
	return responses
}
