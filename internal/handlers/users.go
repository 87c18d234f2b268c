package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/echoedthoughts/blog/backend/internal/models"
)

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

// GetUserProfile returns a user's public profile with their posts,
// newest first.
func (h *UserHandler) GetUserProfile(c *gin.Context) {
	userID := c.Param("id")

	var user models.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	var posts []models.Post
	if err := h.db.Preload("Author").Where("author_id = ?", user.ID).
		Order("created_at desc").Find(&posts).Error; err != nil {
		log.Printf("user profile posts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	responses := make([]gin.H, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, postListItem(h.db, post))
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  authorSummary(user),
		"posts": responses,
	})
}
