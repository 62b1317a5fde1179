package service

import (
	"context"
	"testing"

	"github.com/Shameekh-Naveed/Blog-Posts/internal/auth"
	"github.com/Shameekh-Naveed/Blog-Posts/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		var created *models.User
		repo := &stubUserRepo{
			getByEmail: func(ctx context.Context, email string) (*models.User, error) {
				return nil, nil
			},
			create: func(ctx context.Context, user *models.User) error {
				user.ID = 7
				created = user
				return nil
			},
		}
		svc := NewUserService(repo)

		user, err := svc.Register(ctx, RegisterInput{
			FirstName:   "Ada",
			LastName:    "Lovelace",
			Email:       "ada@example.com",
			Password:    "s3cret-pass",
			PhoneNumber: "555-0100",
		})

		require.NoError(t, err)
		assert.Equal(t, uint(7), user.ID)
		assert.Equal(t, models.AccountStatusPending, user.Status)
		// The stored password is a bcrypt hash, never the plaintext.
		assert.NotEqual(t, "s3cret-pass", created.Password)
		assert.NoError(t, auth.CheckPassword(created.Password, "s3cret-pass"))
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		repo := &stubUserRepo{
			getByEmail: func(ctx context.Context, email string) (*models.User, error) {
				return &models.User{ID: 1, Email: email}, nil
			},
		}
		svc := NewUserService(repo)

		_, err := svc.Register(ctx, RegisterInput{
			FirstName: "Ada", LastName: "Lovelace",
			Email: "ada@example.com", Password: "s3cret-pass",
		})

		assert.True(t, models.IsCode(err, models.CodeConflict))
	})

	t.Run("MissingFields", func(t *testing.T) {
		svc := NewUserService(&stubUserRepo{})

		_, err := svc.Register(ctx, RegisterInput{Email: "ada@example.com"})

		assert.True(t, models.IsCode(err, models.CodeBadRequest))
	})
}

func TestUserService_Authenticate_FailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()

	hash, err := auth.HashPassword("right-password")
	require.NoError(t, err)

	repo := &stubUserRepo{
		getByEmail: func(ctx context.Context, email string) (*models.User, error) {
			if email == "known@example.com" {
				return &models.User{ID: 1, Email: email, Password: hash}, nil
			}
			return nil, nil
		},
	}
	svc := NewUserService(repo)

	_, unknownErr := svc.Authenticate(ctx, "nobody@example.com", "whatever")
	_, wrongPassErr := svc.Authenticate(ctx, "known@example.com", "wrong-password")

	require.Error(t, unknownErr)
	require.Error(t, wrongPassErr)
	assert.Equal(t, unknownErr.Error(), wrongPassErr.Error())
	assert.True(t, models.IsCode(unknownErr, models.CodeUnauthorized))
	assert.True(t, models.IsCode(wrongPassErr, models.CodeUnauthorized))

	user, err := svc.Authenticate(ctx, "known@example.com", "right-password")
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
}

func TestUserService_HidePost(t *testing.T) {
	ctx := context.Background()

	t.Run("UserMissing", func(t *testing.T) {
		repo := &stubUserRepo{
			getByID: func(ctx context.Context, id uint) (*models.User, error) {
				return nil, models.NewNotFoundError("User", id)
			},
		}
		svc := NewUserService(repo)

		err := svc.HidePost(ctx, 1, 2)

		assert.True(t, models.IsCode(err, models.CodeNotFound))
	})

	t.Run("Success", func(t *testing.T) {
		var gotUser, gotPost uint
		repo := &stubUserRepo{
			getByID: func(ctx context.Context, id uint) (*models.User, error) {
				return &models.User{ID: id}, nil
			},
			addHiddenPost: func(ctx context.Context, userID, postID uint) error {
				gotUser, gotPost = userID, postID
				return nil
			},
		}
		svc := NewUserService(repo)

		require.NoError(t, svc.HidePost(ctx, 1, 2))
		assert.Equal(t, uint(1), gotUser)
		assert.Equal(t, uint(2), gotPost)
	})
}
