package models

import "time"

type Post struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Excerpt   string    `gorm:"not null" json:"excerpt"`
	Content   string    `gorm:"not null" json:"content"`
	Category  string    `gorm:"not null" json:"category"`
	AuthorID  int       `gorm:"not null;index" json:"authorId"`
	Author    User      `gorm:"foreignKey:AuthorID" json:"author"`
	Comments  []Comment `gorm:"foreignKey:PostID" json:"comments,omitempty"`
	Likes     []Like    `gorm:"foreignKey:PostID" json:"likes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreatePostRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Excerpt  string `json:"excerpt"`
	Category string `json:"category"`
}
