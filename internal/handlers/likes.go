package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/echoedthoughts/blog/backend/internal/models"
)

type LikeHandler struct {
	db *gorm.DB
}

func NewLikeHandler(db *gorm.DB) *LikeHandler {
	return &LikeHandler{db: db}
}

// ToggleLike flips the like state for (post, user): an existing row is
// deleted, a missing one is inserted. The read-then-act window is closed by
// the unique index on (post_id, user_id) — when two first-time likes race,
// the losing insert fails instead of producing a second row.
func (h *LikeHandler) ToggleLike(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Access denied. No token provided."})
		return
	}

	postID := c.Param("id")
	var post models.Post
	if err := h.db.First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
		return
	}

	var existing models.Like
	err := h.db.Where("post_id = ? AND user_id = ?", post.ID, userID).First(&existing).Error
	if err == nil {
		if err := h.db.Delete(&existing).Error; err != nil {
			log.Printf("toggle like: delete: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Post unliked", "liked": false})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("toggle like: lookup: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	like := models.Like{PostID: post.ID, UserID: userID}
	if err := h.db.Create(&like).Error; err != nil {
		// Lost a race against a concurrent like from the same user; the
		// post is liked either way.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"message": "Post already liked", "liked": true})
			return
		}
		log.Printf("toggle like: insert: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Post liked", "liked": true})
}
