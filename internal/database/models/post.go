package models

import (
	"time"
)

// Post is a blog entry. AuthorID is immutable after creation; there is
// no reassign-author operation.
type Post struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	Image     string    `gorm:"not null" json:"image"`
	AuthorID  uint      `gorm:"index;not null" json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name
func (Post) TableName() string {
	return "posts"
}
