// Package models contains data structures for the application's domain models.
package models

import (
	"encoding/json"
	"time"
)

// Post is a user-authored content entity. Posts are hard-deleted: a
// delete cascades to the post's comments inside one transaction, so a
// soft-delete marker would leave orphaned state visible.
type Post struct {
	ID      uint        `gorm:"primaryKey" json:"id"`
	Title   string      `gorm:"not null" json:"title"`
	Content string      `gorm:"type:text;not null" json:"content"`
	OwnerID uint        `gorm:"not null;index" json:"owner_id"`
	Owner   User        `gorm:"foreignKey:OwnerID" json:"-"`
	Images  []PostImage `gorm:"foreignKey:PostID" json:"images"`
	// LikedBy is not persisted on the post row; populated at query time
	// from the post_likes table.
	LikedBy   []uint    `gorm:"-" json:"liked_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MarshalJSON embeds the owner's public profile instead of the full
// user record; responses never carry another user's account fields.
func (p Post) MarshalJSON() ([]byte, error) {
	type alias Post
	return json.Marshal(struct {
		alias
		Owner PublicProfile `json:"owner"`
	}{alias: alias(p), Owner: p.Owner.Public()})
}

// UnmarshalJSON is the counterpart of MarshalJSON: the owner's public
// profile round-trips through serialized JSON, so a post read back from
// the cache keeps its denormalized owner.
func (p *Post) UnmarshalJSON(data []byte) error {
	type alias Post
	aux := struct {
		*alias
		Owner PublicProfile `json:"owner"`
	}{alias: (*alias)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	p.Owner = aux.Owner.User()
	return nil
}

// PostImage is a stored-file reference attached to a post at creation.
// References are opaque strings from the upload layer and are immutable
// once the post exists.
type PostImage struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	PostID   uint   `gorm:"not null;index" json:"-"`
	URL      string `gorm:"not null" json:"url"`
	Position int    `json:"position"`
}
