package models

import "time"

// Rating is a user's 1-5 score for one item. The composite unique index
// guarantees at most one row per (user, item) pair; a second submission
// updates the existing row instead of inserting.
type Rating struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_ratings_user_item"`
	ItemID    int64     `json:"item_id" gorm:"not null;uniqueIndex:idx_ratings_user_item;index"`
	Score     int       `json:"score" gorm:"not null;check:score >= 1 AND score <= 5"`
	Comment   *string   `json:"comment,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Item Item `json:"item,omitempty" gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE;"`
}

func (Rating) TableName() string {
	return "ratings"
}
