package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Shameekh-Naveed/Blog-Posts/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func existingUser(id uint) *stubUserRepo {
	return &stubUserRepo{
		getByID: func(ctx context.Context, gotID uint) (*models.User, error) {
			return &models.User{ID: gotID}, nil
		},
	}
}

func existingPost(ownerID uint) *stubPostRepo {
	return &stubPostRepo{
		getByID: func(ctx context.Context, id uint) (*models.Post, error) {
			return &models.Post{ID: id, OwnerID: ownerID}, nil
		},
	}
}

func TestInteractionService_LikePost_CommitsBothSides(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewInteractionService(db, existingUser(1), existingPost(3))
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO liked_posts`).
		WithArgs(1, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO post_likes`).
		WithArgs(2, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := svc.LikePost(ctx, 1, 2)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInteractionService_LikePost_RollsBackOnSecondInsert(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewInteractionService(db, existingUser(1), existingPost(3))
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO liked_posts`).
		WithArgs(1, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO post_likes`).
		WithArgs(2, 1).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := svc.LikePost(ctx, 1, 2)

	// Neither side of the like survives a partial failure.
	assert.True(t, models.IsCode(err, models.CodeInternal))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInteractionService_LikePost_MissingPost(t *testing.T) {
	posts := &stubPostRepo{
		getByID: func(ctx context.Context, id uint) (*models.Post, error) {
			return nil, models.NewNotFoundError("Post", id)
		},
	}
	svc := NewInteractionService(nil, existingUser(1), posts)

	err := svc.LikePost(context.Background(), 1, 42)

	assert.True(t, models.IsCode(err, models.CodeNotFound))
}

func TestInteractionService_DeletePost_CascadesCommentsFirst(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewInteractionService(db, existingUser(1), existingPost(1))
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "comments"`).
		WithArgs(2).
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec(`DELETE FROM "posts"`).
		WithArgs(2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := svc.DeletePost(ctx, 1, 2)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInteractionService_DeletePost_RollsBackWhenPostDeleteFails(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewInteractionService(db, existingUser(1), existingPost(1))
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "comments"`).
		WithArgs(2).
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec(`DELETE FROM "posts"`).
		WithArgs(2).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := svc.DeletePost(ctx, 1, 2)

	assert.True(t, models.IsCode(err, models.CodeInternal))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInteractionService_DeletePost_Ownership(t *testing.T) {
	ctx := context.Background()

	t.Run("MissingIsNotFoundBeforeForbidden", func(t *testing.T) {
		posts := &stubPostRepo{
			getByID: func(ctx context.Context, id uint) (*models.Post, error) {
				return nil, models.NewNotFoundError("Post", id)
			},
		}
		svc := NewInteractionService(nil, existingUser(99), posts)

		err := svc.DeletePost(ctx, 99, 2)

		assert.True(t, models.IsCode(err, models.CodeNotFound))
	})

	t.Run("NotOwner", func(t *testing.T) {
		svc := NewInteractionService(nil, existingUser(2), existingPost(1))

		err := svc.DeletePost(ctx, 2, 5)

		assert.True(t, models.IsCode(err, models.CodeForbidden))
	})
}

func TestInteractionService_GetFeed(t *testing.T) {
	ctx := context.Background()

	t.Run("ExcludesHiddenPosts", func(t *testing.T) {
		users := &stubUserRepo{
			getByID: func(ctx context.Context, id uint) (*models.User, error) {
				return &models.User{ID: id}, nil
			},
			hiddenPostIDs: func(ctx context.Context, userID uint) ([]uint, error) {
				return []uint{3, 8}, nil
			},
		}
		posts := &stubPostRepo{
			listExcluding: func(ctx context.Context, excludedIDs []uint, limit, offset int) ([]*models.Post, error) {
				assert.Equal(t, []uint{3, 8}, excludedIDs)
				assert.Equal(t, 10, limit)
				assert.Equal(t, 20, offset)
				return []*models.Post{{ID: 1}, {ID: 2}}, nil
			},
		}
		svc := NewInteractionService(nil, users, posts)

		feed, err := svc.GetFeed(ctx, 1, 10, 20)

		require.NoError(t, err)
		assert.Len(t, feed, 2)
	})

	t.Run("EmptyPageIsNoContent", func(t *testing.T) {
		users := &stubUserRepo{
			getByID: func(ctx context.Context, id uint) (*models.User, error) {
				return &models.User{ID: id}, nil
			},
			hiddenPostIDs: func(ctx context.Context, userID uint) ([]uint, error) {
				return nil, nil
			},
		}
		posts := &stubPostRepo{
			listExcluding: func(ctx context.Context, excludedIDs []uint, limit, offset int) ([]*models.Post, error) {
				return nil, nil
			},
		}
		svc := NewInteractionService(nil, users, posts)

		feed, err := svc.GetFeed(ctx, 1, 10, 100)

		assert.Nil(t, feed)
		assert.True(t, models.IsCode(err, models.CodeNoContent))
	})

	t.Run("UnknownUserIsUnauthorized", func(t *testing.T) {
		users := &stubUserRepo{
			getByID: func(ctx context.Context, id uint) (*models.User, error) {
				return nil, models.NewNotFoundError("User", id)
			},
		}
		svc := NewInteractionService(nil, users, &stubPostRepo{})

		_, err := svc.GetFeed(ctx, 1, 10, 0)

		assert.True(t, models.IsCode(err, models.CodeUnauthorized))
	})
}
