package service

import (
	"context"

	"github.com/Shameekh-Naveed/Blog-Posts/internal/models"
	"github.com/Shameekh-Naveed/Blog-Posts/internal/repository"
)

// CommentPage is a page of comments plus the total count for the post.
type CommentPage struct {
	Comments []*models.Comment `json:"comments"`
	Total    int64             `json:"total"`
}

// CommentService handles comments attached to posts.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, postRepo: postRepo}
}

// CreateComment attaches a comment to an existing post.
func (s *CommentService) CreateComment(ctx context.Context, authorID, postID uint, content string) (*models.Comment, error) {
	if content == "" {
		return nil, models.NewValidationError("content is required")
	}
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Content:  content,
		PostID:   postID,
		AuthorID: authorID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, comment.ID)
}

// GetComment returns a single comment with its author.
func (s *CommentService) GetComment(ctx context.Context, commentID uint) (*models.Comment, error) {
	return s.commentRepo.GetByID(ctx, commentID)
}

// ListComments returns a page of a post's comments, oldest first, with
// the total count for the post. An exhausted page yields the same
// no-content signal as post listings.
func (s *CommentService) ListComments(ctx context.Context, postID uint, limit, offset int) (*CommentPage, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.ListByPost(ctx, postID, limit, offset)
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return nil, models.NewNoContentError("No more comments")
	}
	total, err := s.commentRepo.CountByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	return &CommentPage{Comments: comments, Total: total}, nil
}

// UpdateComment replaces the comment's content after an ownership
// check. Existence is verified before ownership so a missing comment
// reports 404, not 403.
func (s *CommentService) UpdateComment(ctx context.Context, userID, commentID uint, content string) (*models.Comment, error) {
	if content == "" {
		return nil, models.NewValidationError("content is required")
	}
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.AuthorID != userID {
		return nil, models.NewForbiddenError("You do not own this comment")
	}

	comment.Content = content
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, commentID)
}

// DeleteComment removes a single comment after an ownership check.
func (s *CommentService) DeleteComment(ctx context.Context, userID, commentID uint) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.AuthorID != userID {
		return models.NewForbiddenError("You do not own this comment")
	}
	return s.commentRepo.Delete(ctx, commentID)
}
