// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// AccountStatus is the moderation state of a user account.
type AccountStatus string

const (
	AccountStatusPending  AccountStatus = "pending"
	AccountStatusApproved AccountStatus = "approved"
)

// User represents a registered user. The password column holds a bcrypt
// hash and is never serialized.
type User struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	FirstName      string        `gorm:"not null" json:"first_name"`
	LastName       string        `gorm:"not null" json:"last_name"`
	Email          string        `gorm:"uniqueIndex;not null" json:"email"`
	Password       string        `gorm:"not null" json:"-"`
	PhoneNumber    string        `gorm:"not null" json:"phone_number"`
	ProfilePicture string        `json:"profile_picture"`
	Status         AccountStatus `gorm:"type:varchar(16);default:pending" json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
	Posts          []Post        `gorm:"foreignKey:OwnerID" json:"posts,omitempty"`
}

// PublicProfile is the denormalized subset of User embedded in post and
// comment responses. It is a read-time projection, never stored.
type PublicProfile struct {
	ID             uint   `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profile_picture"`
}

// User rehydrates the projection into a User carrying only the public
// fields. Post and comment JSON stores the owner as a PublicProfile,
// so decoding (including cache reads) goes through here.
func (p PublicProfile) User() User {
	return User{
		ID:             p.ID,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Email:          p.Email,
		ProfilePicture: p.ProfilePicture,
	}
}

// Public returns the user's public profile projection.
func (u *User) Public() PublicProfile {
	return PublicProfile{
		ID:             u.ID,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Email:          u.Email,
		ProfilePicture: u.ProfilePicture,
	}
}
