package models

import "time"

const DefaultListName = "My Favorites"

// PersonalList is a user-owned named collection of items. Only the owner can
// mutate it.
type PersonalList struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;index"`
	Name      string    `json:"name" gorm:"not null;default:'My Favorites'"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	User  *User              `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Items []PersonalListItem `json:"items,omitempty" gorm:"foreignKey:ListID"`
}

func (PersonalList) TableName() string {
	return "personal_lists"
}

// PersonalListItem is an explicit join row so the list keeps insert order.
// Duplicate (list, item) pairs are rejected at the service level with a
// notice rather than a database error.
type PersonalListItem struct {
	ID       int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	ListID   int64     `json:"list_id" gorm:"not null;index"`
	ItemID   int64     `json:"item_id" gorm:"not null;index"`
	Position int       `json:"position" gorm:"not null;default:0"`
	AddedAt  time.Time `json:"added_at" gorm:"autoCreateTime"`

	// Associations
	Item *Item `json:"item,omitempty" gorm:"foreignKey:ItemID"`
}

func (PersonalListItem) TableName() string {
	return "personal_list_items"
}
