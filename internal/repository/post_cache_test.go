package repository

import (
	"context"
	"testing"

	"github.com/Shameekh-Naveed/Blog-Posts/internal/cache"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCache(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { cache.SetClient(nil) })
	return mr
}

func TestPostRepository_GetByID_CacheHitKeepsOwner(t *testing.T) {
	setupCache(t)
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	mock.MatchExpectationsInOrder(false)

	// Only the first read reaches the database.
	mock.ExpectQuery(`SELECT .* FROM "posts"`).
		WithArgs(1, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "owner_id"}).
			AddRow(1, "First", "hello", 2))
	mock.ExpectQuery(`SELECT .* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "email"}).
			AddRow(2, "Ada", "ada@example.com"))
	mock.ExpectQuery(`SELECT .* FROM "post_images"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "url"}).
			AddRow(10, 1, "https://img.example/a.png"))
	mock.ExpectQuery(`SELECT "user_id" FROM "post_likes"`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(2).AddRow(5))

	first, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "Ada", first.Owner.FirstName)

	second, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)

	// The cached read must serve the same denormalized owner, not a
	// zero-valued one.
	assert.Equal(t, uint(2), second.Owner.ID)
	assert.Equal(t, "Ada", second.Owner.FirstName)
	assert.Equal(t, "ada@example.com", second.Owner.Email)
	assert.Equal(t, []uint{2, 5}, second.LikedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_AddLikedBy_LeavesCacheToCaller(t *testing.T) {
	mr := setupCache(t)
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	key := cache.PostKey(1)
	require.NoError(t, cache.SetJSON(ctx, key, map[string]any{"id": 1}, cache.PostTTL))

	mock.ExpectExec(`INSERT INTO post_likes`).
		WithArgs(uint(1), uint(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.AddLikedBy(ctx, 1, 7))

	// Insert runs inside the like transaction; the cached entry stays
	// until the coordinator invalidates after commit.
	assert.True(t, mr.Exists(key))
	assert.NoError(t, mock.ExpectationsWereMet())
}
