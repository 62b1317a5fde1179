package server

import (
	"github.com/Shameekh-Naveed/Blog-Posts/internal/auth"
	"github.com/Shameekh-Naveed/Blog-Posts/internal/models"
	"github.com/Shameekh-Naveed/Blog-Posts/internal/service"

	"github.com/gofiber/fiber/v2"
)

func identityFor(user *models.User) auth.Identity {
	return auth.Identity{
		ID:             user.ID,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Email:          user.Email,
		PhoneNumber:    user.PhoneNumber,
		ProfilePicture: user.ProfilePicture,
	}
}

// Signup handles POST /api/auth/signup
func (s *Server) Signup(c *fiber.Ctx) error {
	var req service.RegisterInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.Register(c.UserContext(), req)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id": user.ID,
	})
}

// Login handles POST /api/auth/login
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}
	if req.Email == "" || req.Password == "" {
		return models.RespondWithError(c,
			models.NewValidationError("Email and password are required"))
	}

	user, err := s.userService.Authenticate(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	identity := identityFor(user)
	accessToken, err := s.tokens.IssueAccessToken(identity)
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}
	refreshToken, err := s.tokens.IssueRefreshToken(identity)
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user":         user,
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}

// Refresh handles POST /api/auth/refresh. It mints a new access token
// from the identity carried in the presented token, so claims renamed
// since issuance stay stale until the user logs in again.
func (s *Server) Refresh(c *fiber.Ctx) error {
	identity, ok := currentIdentity(c)
	if !ok {
		return models.RespondWithError(c,
			models.NewUnauthorizedError("Authorization required"))
	}

	accessToken, err := s.tokens.IssueAccessToken(identity)
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"accessToken": accessToken,
	})
}
