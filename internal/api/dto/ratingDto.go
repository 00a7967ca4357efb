package dto

import (
	"time"

	"cinerank/internal/api/models"
)

// SubmitRatingDTO creates or updates the caller's rating for an item.
type SubmitRatingDTO struct {
	Score   int     `json:"score" binding:"required,min=1,max=5"`
	Comment *string `json:"comment,omitempty"`
}

// RatingResponse for returning rating information (list view, no raw IDs)
type RatingResponse struct {
	Username  string    `json:"username"`
	Score     int       `json:"score"`
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SubmitRatingResponse reports whether the submission created a new rating
// or updated an existing one.
type SubmitRatingResponse struct {
	Rating  RatingResponse `json:"rating"`
	Created bool           `json:"created"`
}

// AverageResponse is the per-item aggregate.
type AverageResponse struct {
	Average float64 `json:"average"`
	Votes   int64   `json:"votes"`
}

func FromModelToRatingResponse(rating *models.Rating) *RatingResponse {
	return &RatingResponse{
		Username:  rating.User.Username,
		Score:     rating.Score,
		Comment:   rating.Comment,
		CreatedAt: rating.CreatedAt,
		UpdatedAt: rating.UpdatedAt,
	}
}

func FromModelsToRatingResponses(ratings []models.Rating) []RatingResponse {
	responses := make([]RatingResponse, 0, len(ratings))
	for i := range ratings {
		responses = append(responses, *FromModelToRatingResponse(&ratings[i]))
	}
	return responses
}
