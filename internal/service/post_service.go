package service

import (
	"context"

	"github.com/Shameekh-Naveed/Blog-Posts/internal/models"
	"github.com/Shameekh-Naveed/Blog-Posts/internal/repository"
)

// CreatePostInput carries the fields accepted when creating a post.
// Image references are opaque strings produced by the upload layer;
// their order in the slice is preserved.
type CreatePostInput struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Images  []string `json:"images"`
}

// UpdatePostInput carries the mutable post fields. Ownership and image
// references cannot change after creation.
type UpdatePostInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// PostService handles single-post CRUD. Cross-entity operations (like,
// cascading delete, feed) live in InteractionService.
type PostService struct {
	postRepo repository.PostRepository
}

func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// CreatePost creates a post owned by ownerID.
func (s *PostService) CreatePost(ctx context.Context, ownerID uint, input CreatePostInput) (*models.Post, error) {
	if input.Title == "" || input.Content == "" {
		return nil, models.NewValidationError("title and content are required")
	}

	post := &models.Post{
		Title:   input.Title,
		Content: input.Content,
		OwnerID: ownerID,
	}
	for i, url := range input.Images {
		post.Images = append(post.Images, models.PostImage{URL: url, Position: i})
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

// GetPost returns a single post with its owner, images and liker set.
func (s *PostService) GetPost(ctx context.Context, postID uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, postID)
}

// GetUserPosts lists posts owned by ownerID, oldest first. An empty
// page yields a no-content error rather than an empty array.
func (s *PostService) GetUserPosts(ctx context.Context, ownerID uint, limit, offset int) ([]*models.Post, error) {
	posts, err := s.postRepo.ListByOwner(ctx, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, models.NewNoContentError("No more posts")
	}
	return posts, nil
}

// UpdatePost applies title/content changes after an ownership check.
// Existence is verified before ownership so a missing post reports 404,
// not 403.
func (s *PostService) UpdatePost(ctx context.Context, userID, postID uint, input UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.OwnerID != userID {
		return nil, models.NewForbiddenError("You do not own this post")
	}

	if input.Title != "" {
		post.Title = input.Title
	}
	if input.Content != "" {
		post.Content = input.Content
	}
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, postID)
}
