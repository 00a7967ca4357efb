package models

import (
	"errors"
	"strings"
	"time"
)

const (
	TypeMovie  = "movie"
	TypeSeries = "series"
)

var ErrUnknownType = errors.New("unknown item type")

// Item is a single movie or series entry in the catalog.
// SortKey is the admin-curated position used by the ranking panel; it is
// independent of rating averages.
type Item struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	CategoryID *int64    `json:"category_id,omitempty" gorm:"index"`
	Title      string    `json:"title" gorm:"not null"`
	Year       int       `json:"year" gorm:"not null"`
	Synopsis   string    `json:"synopsis" gorm:"type:text"`
	PosterURL  *string   `json:"poster_url,omitempty"`
	Type       string    `json:"type" gorm:"not null;index;check:type IN ('movie','series')"`
	// Director/Cast defaults ("Unknown"/"Various") are applied by the
	// writers that want them; CSV upload rows deliberately keep "".
	Director   string    `json:"director"`
	Cast       string    `json:"cast" gorm:"column:cast_list"`
	SortKey    int       `json:"sort_key" gorm:"default:0"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}

func (Item) TableName() string {
	return "items"
}

// ParseItemType normalizes a type tag from user input or CSV data.
// The legacy data files used single letters (P for película, S for serie),
// so those are accepted alongside the full words.
func ParseItemType(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case TypeMovie, "m", "p":
		return TypeMovie, nil
	case TypeSeries, "s":
		return TypeSeries, nil
	default:
		return "", ErrUnknownType
	}
}
