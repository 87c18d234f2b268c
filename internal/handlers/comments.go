package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/echoedthoughts/blog/backend/internal/models"
)

type CommentHandler struct {
	db *gorm.DB
}

func NewCommentHandler(db *gorm.DB) *CommentHandler {
	return &CommentHandler{db: db}
}

func extractUserID(c *gin.Context) (int, bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	switch v := raw.(type) {
	case int:
		return v, true
	case uint:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func commentResponse(comment models.Comment) gin.H {
	return gin.H{
		"id":        comment.ID,
		"content":   comment.Content,
		"postId":    comment.PostID,
		"userId":    comment.UserID,
		"user":      gin.H{"id": comment.User.ID, "name": comment.User.Name},
		"createdAt": comment.CreatedAt,
		"updatedAt": comment.UpdatedAt,
	}
}

// CreateComment appends a comment to a post. Comments are never edited or
// deleted afterwards.
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var input struct {
		Content string `json:"content" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	userID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Access denied. No token provided."})
		return
	}

	// Verify post exists
	postID := c.Param("id")
	var post models.Post
	if err := h.db.First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
		return
	}

	comment := models.Comment{
		Content: input.Content,
		PostID:  post.ID,
		UserID:  userID,
	}

	if err := h.db.Create(&comment).Error; err != nil {
		log.Printf("create comment: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	h.db.Preload("User").First(&comment, comment.ID)
	c.JSON(http.StatusCreated, commentResponse(comment))
}
