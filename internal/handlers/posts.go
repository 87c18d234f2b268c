package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/echoedthoughts/blog/backend/internal/models"
)

type PostHandler struct {
	db *gorm.DB
}

func NewPostHandler(db *gorm.DB) *PostHandler {
	return &PostHandler{db: db}
}

// postCounts materializes commentCount/likeCount from the live rows at read
// time. Counts are never stored, so they can't drift from the relations.
func postCounts(db *gorm.DB, postID int) (int64, int64) {
	var comments, likes int64
	db.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&comments)
	db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&likes)
	return comments, likes
}

func authorSummary(user models.User) gin.H {
	return gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	}
}

// postListItem builds the list/profile representation of a post: counts in,
// raw comment and like relations out.
func postListItem(db *gorm.DB, post models.Post) gin.H {
	comments, likes := postCounts(db, post.ID)
	return gin.H{
		"id":           post.ID,
		"title":        post.Title,
		"excerpt":      post.Excerpt,
		"content":      post.Content,
		"category":     post.Category,
		"authorId":     post.AuthorID,
		"author":       authorSummary(post.Author),
		"commentCount": comments,
		"likeCount":    likes,
		"createdAt":    post.CreatedAt,
		"updatedAt":    post.UpdatedAt,
	}
}

// GetPosts returns all posts, newest first, optionally narrowed by exact
// category and/or a case-insensitive search over title, content and excerpt.
func (h *PostHandler) GetPosts(c *gin.Context) {
	query := h.db.Preload("Author").Order("created_at desc")

	// "All" is the client's sentinel for no category filter.
	if category := c.Query("category"); category != "" && category != "All" {
		query = query.Where("category = ?", category)
	}

	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.Where(
			"title ILIKE ? OR content ILIKE ? OR excerpt ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	var posts []models.Post
	if err := query.Find(&posts).Error; err != nil {
		log.Printf("list posts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	responses := make([]gin.H, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, postListItem(h.db, post))
	}

	c.JSON(http.StatusOK, responses)
}

// GetPost returns a single post with its author, full comment and like
// lists, and both counts.
func (h *PostHandler) GetPost(c *gin.Context) {
	postID := c.Param("id")

	var post models.Post
	err := h.db.Preload("Author").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at desc")
		}).
		Preload("Comments.User").
		Preload("Likes.User").
		First(&post, "id = ?", postID).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
		return
	}

	comments := make([]gin.H, 0, len(post.Comments))
	for _, comment := range post.Comments {
		comments = append(comments, commentResponse(comment))
	}

	likes := make([]gin.H, 0, len(post.Likes))
	for _, like := range post.Likes {
		likes = append(likes, gin.H{
			"id":        like.ID,
			"postId":    like.PostID,
			"userId":    like.UserID,
			"user":      gin.H{"id": like.User.ID, "name": like.User.Name},
			"createdAt": like.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"id":           post.ID,
		"title":        post.Title,
		"excerpt":      post.Excerpt,
		"content":      post.Content,
		"category":     post.Category,
		"authorId":     post.AuthorID,
		"author":       authorSummary(post.Author),
		"comments":     comments,
		"likes":        likes,
		"commentCount": len(post.Comments),
		"likeCount":    len(post.Likes),
		"createdAt":    post.CreatedAt,
		"updatedAt":    post.UpdatedAt,
	})
}

// CreatePost creates a new post (PROTECTED - requires authentication)
func (h *PostHandler) CreatePost(c *gin.Context) {
	var input struct {
		Title    string `json:"title" binding:"required"`
		Content  string `json:"content" binding:"required"`
		Excerpt  string `json:"excerpt" binding:"required"`
		Category string `json:"category" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	authorID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Access denied. No token provided."})
		return
	}

	post := models.Post{
		Title:    input.Title,
		Excerpt:  input.Excerpt,
		Content:  input.Content,
		Category: input.Category,
		AuthorID: authorID,
	}

	if err := h.db.Create(&post).Error; err != nil {
		log.Printf("create post: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	// Reload with author information
	h.db.Preload("Author").First(&post, post.ID)

	c.JSON(http.StatusCreated, gin.H{
		"id":        post.ID,
		"title":     post.Title,
		"excerpt":   post.Excerpt,
		"content":   post.Content,
		"category":  post.Category,
		"authorId":  post.AuthorID,
		"author":    authorSummary(post.Author),
		"createdAt": post.CreatedAt,
		"updatedAt": post.UpdatedAt,
	})
}
