package models

import (
	"encoding/json"
	"time"
)

// Comment is attached to exactly one post and owned by its author.
// Comments are removed individually by the author or in bulk when the
// parent post is deleted.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	Author    User      `gorm:"foreignKey:AuthorID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MarshalJSON embeds the author's public profile instead of the full
// user record, mirroring how posts expose their owner.
func (c Comment) MarshalJSON() ([]byte, error) {
	type alias Comment
	return json.Marshal(struct {
		alias
		Author PublicProfile `json:"author"`
	}{alias: alias(c), Author: c.Author.Public()})
}

// UnmarshalJSON restores the author from the embedded public profile,
// so comment JSON round-trips the same way post JSON does.
func (c *Comment) UnmarshalJSON(data []byte) error {
	type alias Comment
	aux := struct {
		*alias
		Author PublicProfile `json:"author"`
	}{alias: (*alias)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	c.Author = aux.Author.User()
	return nil
}
