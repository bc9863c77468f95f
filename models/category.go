package models

// Category groups posts. Name and slug are both unique.
type Category struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:64;uniqueIndex;not null" json:"name"`
	Slug        string `gorm:"size:64;uniqueIndex;not null" json:"slug"`
	Description string `gorm:"size:255" json:"description"`
	Color       string `gorm:"size:16;default:'#6366f1'" json:"color"`
}
