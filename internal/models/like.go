package models

import "time"

// Like marks a post as liked by a user; the row's existence is the whole
// state. The composite unique index is what keeps two concurrent first-time
// likes from both inserting.
type Like struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	PostID    int       `gorm:"not null;uniqueIndex:idx_post_user" json:"postId"`
	UserID    int       `gorm:"not null;uniqueIndex:idx_post_user" json:"userId"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	CreatedAt time.Time `json:"createdAt"`
}
