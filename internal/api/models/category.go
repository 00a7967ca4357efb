package models

// Category groups items by genre. Name matching is case-sensitive exact:
// "Drama" and "drama" are two different categories.
type Category struct {
	ID          int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string  `json:"name" gorm:"uniqueIndex;not null"`
	Description *string `json:"description,omitempty" gorm:"type:text"`

	// Associations
	Items []Item `json:"items,omitempty" gorm:"foreignKey:CategoryID"`
}

func (Category) TableName() string {
	return "categories"
}
