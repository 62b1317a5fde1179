package service

import (
	"context"

	"github.com/Shameekh-Naveed/Blog-Posts/internal/cache"
	"github.com/Shameekh-Naveed/Blog-Posts/internal/models"
	"github.com/Shameekh-Naveed/Blog-Posts/internal/observability"
	"github.com/Shameekh-Naveed/Blog-Posts/internal/repository"

	"gorm.io/gorm"
)

// InteractionService owns every operation that must keep two entities
// consistent: liking (user-side and post-side sets), cascading post
// deletion (comments plus post), and the hidden-set feed. It holds the
// raw *gorm.DB so it can open transactions and build tx-scoped
// repositories inside them; single-entity reads go through the shared
// repositories.
type InteractionService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
	postRepo repository.PostRepository
}

func NewInteractionService(db *gorm.DB, userRepo repository.UserRepository, postRepo repository.PostRepository) *InteractionService {
	return &InteractionService{db: db, userRepo: userRepo, postRepo: postRepo}
}

// LikePost records userID's like of postID in both directions: the
// user's liked set and the post's liker set, atomically. Likes are
// monotonic; repeating a like is a committed no-op, not a conflict.
func (s *InteractionService) LikePost(ctx context.Context, userID, postID uint) error {
	ctx, span := observability.Tracer.Start(ctx, "interaction.like_post")
	defer span.End()

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txUsers := repository.NewUserRepository(tx)
		txPosts := repository.NewPostRepository(tx)

		if err := txUsers.AddLikedPost(ctx, userID, postID); err != nil {
			return err
		}
		return txPosts.AddLikedBy(ctx, postID, userID)
	})
	if err != nil {
		span.RecordError(err)
		observability.LikesApplied.WithLabelValues(observability.OutcomeAborted).Inc()
		observability.Logger.ErrorContext(ctx, "like transaction failed",
			"user_id", userID, "post_id", postID, "error", err)
		return models.NewInternalError(err)
	}

	observability.LikesApplied.WithLabelValues(observability.OutcomeCommitted).Inc()
	cache.InvalidatePost(ctx, postID)
	return nil
}

// DeletePost removes a post and all of its comments in one
// transaction. Only the owner may delete; existence is verified before
// ownership so a missing post reports 404, not 403. Rows in the
// interaction sets that reference the deleted post are left in place
// and are harmless: the post ID can never be served again.
func (s *InteractionService) DeletePost(ctx context.Context, userID, postID uint) error {
	ctx, span := observability.Tracer.Start(ctx, "interaction.delete_post")
	defer span.End()

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.OwnerID != userID {
		return models.NewForbiddenError("You do not own this post")
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txComments := repository.NewCommentRepository(tx)
		txPosts := repository.NewPostRepository(tx)

		if err := txComments.DeleteByPost(ctx, postID); err != nil {
			return err
		}
		return txPosts.Delete(ctx, postID)
	})
	if err != nil {
		span.RecordError(err)
		observability.CascadeDeletes.WithLabelValues(observability.OutcomeAborted).Inc()
		observability.Logger.ErrorContext(ctx, "cascade delete failed",
			"post_id", postID, "error", err)
		return models.NewInternalError(err)
	}

	observability.CascadeDeletes.WithLabelValues(observability.OutcomeCommitted).Inc()
	cache.InvalidatePost(ctx, postID)
	return nil
}

// GetFeed returns a page of posts the user has not hidden, oldest
// first. An exhausted page yields a no-content error. The hidden-set
// read and the post query are not transactional: a post hidden between
// the two reads can still appear on this page, which is acceptable for
// a feed.
func (s *InteractionService) GetFeed(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error) {
	ctx, span := observability.Tracer.Start(ctx, "interaction.get_feed")
	defer span.End()

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		// The caller presented a token for a user that no longer exists.
		if models.IsCode(err, models.CodeNotFound) {
			return nil, models.NewUnauthorizedError("Unknown user")
		}
		return nil, err
	}

	hidden, err := s.userRepo.HiddenPostIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	posts, err := s.postRepo.ListExcluding(ctx, hidden, limit, offset)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		observability.FeedPages.WithLabelValues(observability.FeedResultEmpty).Inc()
		return nil, models.NewNoContentError("No more posts")
	}

	observability.FeedPages.WithLabelValues(observability.FeedResultPosts).Inc()
	return posts, nil
}
