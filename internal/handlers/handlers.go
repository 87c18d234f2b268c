package handlers

import (
	"gorm.io/gorm"
)

// Handler combines all handler types
type Handler struct {
	Auth    *AuthHandler
	Post    *PostHandler
	Comment *CommentHandler
	Like    *LikeHandler
	User    *UserHandler
}

// NewHandler creates a unified handler with all sub-handlers
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(db),
		Post:    NewPostHandler(db),
		Comment: NewCommentHandler(db),
		Like:    NewLikeHandler(db),
		User:    NewUserHandler(db),
	}
}
