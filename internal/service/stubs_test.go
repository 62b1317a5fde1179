package service

import (
	"context"

	"github.com/Shameekh-Naveed/Blog-Posts/internal/models"
)

// Function-field stubs for the repository interfaces. Only the fields a
// test sets are callable; an unset field panics, which surfaces
// unexpected repository calls immediately.

type stubUserRepo struct {
	create        func(ctx context.Context, user *models.User) error
	getByID       func(ctx context.Context, id uint) (*models.User, error)
	getByEmail    func(ctx context.Context, email string) (*models.User, error)
	addLikedPost  func(ctx context.Context, userID, postID uint) error
	addHiddenPost func(ctx context.Context, userID, postID uint) error
	hiddenPostIDs func(ctx context.Context, userID uint) ([]uint, error)
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error {
	return s.create(ctx, user)
}
func (s *stubUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByID(ctx, id)
}
func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmail(ctx, email)
}
func (s *stubUserRepo) AddLikedPost(ctx context.Context, userID, postID uint) error {
	return s.addLikedPost(ctx, userID, postID)
}
func (s *stubUserRepo) AddHiddenPost(ctx context.Context, userID, postID uint) error {
	return s.addHiddenPost(ctx, userID, postID)
}
func (s *stubUserRepo) HiddenPostIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.hiddenPostIDs(ctx, userID)
}

type stubPostRepo struct {
	create        func(ctx context.Context, post *models.Post) error
	getByID       func(ctx context.Context, id uint) (*models.Post, error)
	listByOwner   func(ctx context.Context, ownerID uint, limit, offset int) ([]*models.Post, error)
	listExcluding func(ctx context.Context, excludedIDs []uint, limit, offset int) ([]*models.Post, error)
	update        func(ctx context.Context, post *models.Post) error
	delete        func(ctx context.Context, id uint) error
	addLikedBy    func(ctx context.Context, postID, userID uint) error
}

func (s *stubPostRepo) Create(ctx context.Context, post *models.Post) error {
	return s.create(ctx, post)
}
func (s *stubPostRepo) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByID(ctx, id)
}
func (s *stubPostRepo) ListByOwner(ctx context.Context, ownerID uint, limit, offset int) ([]*models.Post, error) {
	return s.listByOwner(ctx, ownerID, limit, offset)
}
func (s *stubPostRepo) ListExcluding(ctx context.Context, excludedIDs []uint, limit, offset int) ([]*models.Post, error) {
	return s.listExcluding(ctx, excludedIDs, limit, offset)
}
func (s *stubPostRepo) Update(ctx context.Context, post *models.Post) error {
	return s.update(ctx, post)
}
func (s *stubPostRepo) Delete(ctx context.Context, id uint) error {
	return s.delete(ctx, id)
}
func (s *stubPostRepo) AddLikedBy(ctx context.Context, postID, userID uint) error {
	return s.addLikedBy(ctx, postID, userID)
}

type stubCommentRepo struct {
	create       func(ctx context.Context, comment *models.Comment) error
	getByID      func(ctx context.Context, id uint) (*models.Comment, error)
	listByPost   func(ctx context.Context, postID uint, limit, offset int) ([]*models.Comment, error)
	countByPost  func(ctx context.Context, postID uint) (int64, error)
	update       func(ctx context.Context, comment *models.Comment) error
	deleteOne    func(ctx context.Context, id uint) error
	deleteByPost func(ctx context.Context, postID uint) error
}

func (s *stubCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	return s.create(ctx, comment)
}
func (s *stubCommentRepo) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByID(ctx, id)
}
func (s *stubCommentRepo) ListByPost(ctx context.Context, postID uint, limit, offset int) ([]*models.Comment, error) {
	return s.listByPost(ctx, postID, limit, offset)
}
func (s *stubCommentRepo) CountByPost(ctx context.Context, postID uint) (int64, error) {
	return s.countByPost(ctx, postID)
}
func (s *stubCommentRepo) Update(ctx context.Context, comment *models.Comment) error {
	return s.update(ctx, comment)
}
func (s *stubCommentRepo) Delete(ctx context.Context, id uint) error {
	return s.deleteOne(ctx, id)
}
func (s *stubCommentRepo) DeleteByPost(ctx context.Context, postID uint) error {
	return s.deleteByPost(ctx, postID)
}
