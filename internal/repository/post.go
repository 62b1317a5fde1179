package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Shameekh-Naveed/Blog-Posts/internal/cache"
	"github.com/Shameekh-Naveed/Blog-Posts/internal/models"
	"github.com/Shameekh-Naveed/Blog-Posts/internal/observability"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	ListByOwner(ctx context.Context, ownerID uint, limit, offset int) ([]*models.Post, error)
	ListExcluding(ctx context.Context, excludedIDs []uint, limit, offset int) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
	AddLikedBy(ctx context.Context, postID, userID uint) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository bound to db, which
// may be a transaction handle.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	defer observability.ObserveQuery("insert", "posts", time.Now())
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	defer observability.ObserveQuery("select", "posts", time.Now())

	var post models.Post
	key := cache.PostKey(id)

	err := cache.Aside(ctx, key, &post, cache.PostTTL, func() error {
		if err := r.db.WithContext(ctx).
			Preload("Owner").
			Preload("Images").
			First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Post", id)
			}
			return models.NewInternalError(err)
		}
		return r.loadLikedBy(ctx, &post)
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// loadLikedBy populates the post's liked-by set from the post_likes table.
func (r *postRepository) loadLikedBy(ctx context.Context, post *models.Post) error {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.PostLike{}).
		Where("post_id = ?", post.ID).
		Order("id ASC").
		Pluck("user_id", &ids).Error; err != nil {
		return models.NewInternalError(err)
	}
	post.LikedBy = ids
	return nil
}

func (r *postRepository) ListByOwner(ctx context.Context, ownerID uint, limit, offset int) ([]*models.Post, error) {
	defer observability.ObserveQuery("select", "posts", time.Now())

	var posts []*models.Post
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Images").
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// ListExcluding lists posts whose id is not in excludedIDs, ordered by
// creation time ascending. An empty exclusion set lists everything.
func (r *postRepository) ListExcluding(ctx context.Context, excludedIDs []uint, limit, offset int) ([]*models.Post, error) {
	defer observability.ObserveQuery("select", "posts", time.Now())

	query := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Images")
	if len(excludedIDs) > 0 {
		query = query.Where("id NOT IN ?", excludedIDs)
	}

	var posts []*models.Post
	err := query.
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	defer observability.ObserveQuery("update", "posts", time.Now())
	if err := r.db.WithContext(ctx).
		Model(post).
		Select("title", "content", "updated_at").
		Updates(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, post.ID)
	return nil
}

// Delete removes the post row only; callers delete dependent rows in
// the same transaction and invalidate the cache after commit. An
// in-transaction invalidation would let a concurrent read repopulate
// the cache with uncommitted state.
func (r *postRepository) Delete(ctx context.Context, id uint) error {
	defer observability.ObserveQuery("delete", "posts", time.Now())
	return r.db.WithContext(ctx).Delete(&models.Post{}, id).Error
}

// AddLikedBy appends userID to the post's liked-by set, idempotently.
// Runs inside the like transaction; cache invalidation is the caller's
// post-commit step.
func (r *postRepository) AddLikedBy(ctx context.Context, postID, userID uint) error {
	return r.db.WithContext(ctx).Exec(
		`INSERT INTO post_likes (post_id, user_id, created_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (post_id, user_id) DO NOTHING`,
		postID, userID,
	).Error
}
