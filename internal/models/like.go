package models

import (
	"time"
)

// The like and hide relations are kept as three independent sets, the
// same shape the data model defines them in: the user's liked set, the
// user's hidden (disliked) set, and the post's liked-by set. The like
// protocol updates LikedPost and PostLike together inside one
// transaction; HiddenPost is only ever touched on its own.
//
// Every set insert is idempotent: the composite unique index plus
// ON CONFLICT DO NOTHING makes re-adding a present element a no-op.

// LikedPost is one element of a user's liked-post set.
type LikedPost struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_liked_posts_user_post" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_liked_posts_user_post" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

// PostLike is one element of a post's liked-by set.
type PostLike struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_post_likes_post_user" json:"post_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_post_likes_post_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// HiddenPost is one element of a user's feed exclusion set. There is no
// un-hide operation; insertion is permanent.
type HiddenPost struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_hidden_posts_user_post" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_hidden_posts_user_post" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}
