package dto

import (
	"time"

	"cinerank/internal/api/models"
)

// CreateListDTO: payload to create a personal list. Empty name falls back to
// the default list name.
type CreateListDTO struct {
	Name string `json:"name" binding:"max=100"`
}

// AddToListDTO: payload to append an item to a list.
type AddToListDTO struct {
	ItemID int64 `json:"item_id" binding:"required"`
}

// AddToListResponse: Added is false when the item was already in the list
// (a no-op notice, not an error).
type AddToListResponse struct {
	Added   bool   `json:"added"`
	Message string `json:"message"`
}

type ListItemResponse struct {
	Position int          `json:"position"`
	AddedAt  time.Time    `json:"added_at"`
	Item     ItemResponse `json:"item"`
}

type PersonalListResponse struct {
	ID        int64              `json:"id"`
	Name      string             `json:"name"`
	CreatedAt time.Time          `json:"created_at"`
	Items     []ListItemResponse `json:"items"`
}

func FromModelToListResponse(list models.PersonalList) PersonalListResponse {
	resp := PersonalListResponse{
		ID:        list.ID,
		Name:      list.Name,
		CreatedAt: list.CreatedAt,
		Items:     make([]ListItemResponse, 0, len(list.Items)),
	}
	for _, row := range list.Items {
		entry := ListItemResponse{
			Position: row.Position,
			AddedAt:  row.AddedAt,
		}
		if row.Item != nil {
			entry.Item = FromModelToItemResponse(*row.Item)
		}
		resp.Items = append(resp.Items, entry)
	}
	return resp
}

func FromModelsToListResponses(lists []models.PersonalList) []PersonalListResponse {
	responses := make([]PersonalListResponse, 0, len(lists))
	for _, list := range lists {
		responses = append(responses, FromModelToListResponse(list))
	}
	return responses
}
