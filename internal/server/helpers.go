package server

import (
	"github.com/Shameekh-Naveed/Blog-Posts/internal/auth"
	"github.com/Shameekh-Naveed/Blog-Posts/internal/models"

	"github.com/gofiber/fiber/v2"
)

const maxPaginationLimit = 100

// Pagination holds validated page/limit query parameters.
type Pagination struct {
	Page   int
	Limit  int
	Offset int
}

// parsePagination reads the page and limit query parameters. Both are
// required positive integers; anything else is a validation error. A
// missing parameter defaults to 0 in QueryInt and fails the same check.
func parsePagination(c *fiber.Ctx) (Pagination, error) {
	page := c.QueryInt("page")
	limit := c.QueryInt("limit")
	if page <= 0 || limit <= 0 {
		return Pagination{}, models.NewValidationError("page and limit must be positive integers")
	}
	if limit > maxPaginationLimit {
		limit = maxPaginationLimit
	}
	return Pagination{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}, nil
}

// parseID extracts a route parameter as a positive uint.
func parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		return 0, models.NewValidationError("Invalid " + param)
	}
	return uint(id), nil
}

// currentUserID returns the authenticated user's ID set by AuthRequired.
func currentUserID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("userID").(uint); ok {
		return id
	}
	return 0
}

// currentIdentity returns the token identity set by AuthRequired.
func currentIdentity(c *fiber.Ctx) (auth.Identity, bool) {
	identity, ok := c.Locals("identity").(auth.Identity)
	return identity, ok
}
