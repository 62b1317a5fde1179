package server

import (
	"github.com/Shameekh-Naveed/Blog-Posts/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	user, err := s.userService.GetProfile(c.UserContext(), currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

// HidePost handles PATCH /api/users/hide/:postId. Hiding is permanent;
// repeating the request is a no-op.
func (s *Server) HidePost(c *fiber.Ctx) error {
	postID, err := parseID(c, "postId")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	if err := s.userService.HidePost(c.UserContext(), currentUserID(c), postID); err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Post hidden",
	})
}
