// Package service contains the business logic layer. Services sit
// between the HTTP handlers and the repositories: handlers parse and
// authenticate, repositories move rows, services own the rules in
// between.
package service

import (
	"context"

	"github.com/Shameekh-Naveed/Blog-Posts/internal/auth"
	"github.com/Shameekh-Naveed/Blog-Posts/internal/models"
	"github.com/Shameekh-Naveed/Blog-Posts/internal/observability"
	"github.com/Shameekh-Naveed/Blog-Posts/internal/repository"
)

// RegisterInput carries the fields accepted at signup.
type RegisterInput struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	PhoneNumber    string `json:"phone_number"`
	ProfilePicture string `json:"profile_picture"`
}

// UserService handles account lifecycle and the user-side interaction
// sets (liked, hidden).
type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register creates a new account with a hashed password. The email
// uniqueness check here is advisory; the unique index on users.email is
// the real guard and Create maps its violation to the same conflict.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	if input.Email == "" || input.Password == "" {
		return nil, models.NewValidationError("email and password are required")
	}
	if input.FirstName == "" || input.LastName == "" {
		return nil, models.NewValidationError("first name and last name are required")
	}

	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("User with this email already exists")
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          input.Email,
		Password:       hash,
		PhoneNumber:    input.PhoneNumber,
		ProfilePicture: input.ProfilePicture,
		Status:         models.AccountStatusPending,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	observability.Logger.InfoContext(ctx, "user registered", "user_id", user.ID)
	return user, nil
}

// Authenticate verifies email/password credentials. Every failure mode,
// unknown email or wrong password, collapses to the same unauthorized
// error so the response does not reveal which part was wrong.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}
	if err := auth.CheckPassword(user.Password, password); err != nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}
	return user, nil
}

// GetProfile returns the user by ID.
func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// HidePost adds postID to the user's hidden set. Hiding is permanent
// and idempotent; hiding an already-hidden post is a no-op.
func (s *UserService) HidePost(ctx context.Context, userID, postID uint) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.userRepo.AddHiddenPost(ctx, userID, postID)
}

// HiddenPostIDs returns the set of post IDs the user has hidden.
func (s *UserService) HiddenPostIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.userRepo.HiddenPostIDs(ctx, userID)
}
