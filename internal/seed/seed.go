// Package seed provides database seeding for development and testing.
package seed

import (
	"fmt"
	"math/rand"

	"github.com/Shameekh-Naveed/Blog-Posts/internal/auth"
	"github.com/Shameekh-Naveed/Blog-Posts/internal/models"
	"github.com/Shameekh-Naveed/Blog-Posts/internal/observability"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	NumComments int
	ShouldClean bool
}

// DefaultOptions is the preset used by cmd/seed when no flags are given.
var DefaultOptions = Options{
	NumUsers:    20,
	NumPosts:    100,
	NumComments: 300,
	ShouldClean: true,
}

// seedPassword is the known plaintext for every generated account.
const seedPassword = "password123"

// Run populates the database with fake users, posts, comments and a
// realistic spread of likes and hidden posts.
func Run(db *gorm.DB, opts Options) error {
	if opts.ShouldClean {
		if err := clearAll(db); err != nil {
			return fmt.Errorf("cleanup failed: %w", err)
		}
	}

	hash, err := auth.HashPassword(seedPassword)
	if err != nil {
		return err
	}

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user := &models.User{
			FirstName:      gofakeit.FirstName(),
			LastName:       gofakeit.LastName(),
			Email:          fmt.Sprintf("user%d@%s", i, gofakeit.DomainName()),
			Password:       hash,
			PhoneNumber:    gofakeit.Phone(),
			ProfilePicture: fmt.Sprintf("https://picsum.photos/seed/%s/200/200", gofakeit.UUID()),
			Status:         models.AccountStatusApproved,
		}
		if err := db.Create(user).Error; err != nil {
			return fmt.Errorf("seeding user: %w", err)
		}
		users = append(users, user)
	}

	posts := make([]*models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		owner := users[rand.Intn(len(users))]
		post := &models.Post{
			Title:   gofakeit.Sentence(5),
			Content: gofakeit.Paragraph(1, 3, 5, "\n"),
			OwnerID: owner.ID,
		}
		// Roughly a third of posts carry an image
		if rand.Intn(3) == 0 {
			post.Images = []models.PostImage{{
				URL: fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID()),
			}}
		}
		if err := db.Create(post).Error; err != nil {
			return fmt.Errorf("seeding post: %w", err)
		}
		posts = append(posts, post)
	}

	for i := 0; i < opts.NumComments; i++ {
		comment := &models.Comment{
			Content:  gofakeit.Sentence(12),
			PostID:   posts[rand.Intn(len(posts))].ID,
			AuthorID: users[rand.Intn(len(users))].ID,
		}
		if err := db.Create(comment).Error; err != nil {
			return fmt.Errorf("seeding comment: %w", err)
		}
	}

	// Likes land on both sides of the relation, like the live path does.
	for _, user := range users {
		for _, post := range posts {
			if rand.Intn(10) != 0 {
				continue
			}
			liked := &models.LikedPost{UserID: user.ID, PostID: post.ID}
			if err := db.Create(liked).Error; err != nil {
				return fmt.Errorf("seeding like: %w", err)
			}
			postLike := &models.PostLike{PostID: post.ID, UserID: user.ID}
			if err := db.Create(postLike).Error; err != nil {
				return fmt.Errorf("seeding like: %w", err)
			}
		}
	}

	// A sparse hidden set so the feed exclusion has something to skip.
	for _, user := range users {
		for _, post := range posts {
			if rand.Intn(25) != 0 {
				continue
			}
			hidden := &models.HiddenPost{UserID: user.ID, PostID: post.ID}
			if err := db.Create(hidden).Error; err != nil {
				return fmt.Errorf("seeding hidden post: %w", err)
			}
		}
	}

	observability.Logger.Info("seeding complete",
		"users", len(users), "posts", len(posts), "comments", opts.NumComments)
	return nil
}

func clearAll(db *gorm.DB) error {
	// Dependents first
	tables := []any{
		&models.HiddenPost{},
		&models.PostLike{},
		&models.LikedPost{},
		&models.Comment{},
		&models.PostImage{},
		&models.Post{},
		&models.User{},
	}
	for _, table := range tables {
		if err := db.Where("1 = 1").Delete(table).Error; err != nil {
			return err
		}
	}
	return nil
}
