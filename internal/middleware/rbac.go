package middleware

import (
	"go-clinic/internal/access"
	"go-clinic/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

// RequirePermission checks the authenticated user's role against the static
// permission table. Admin-equivalent roles pass every check.
func RequirePermission(permission access.Permission) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals(utils.UserClaimsKey).(*utils.UserClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		if !access.HasPermission(claims.Role, permission) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: Insufficient permissions",
			})
		}

		return c.Next()
	}
}

// RequireAnyPermission passes when at least one of the listed permissions is
// granted.
func RequireAnyPermission(permissions ...access.Permission) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals(utils.UserClaimsKey).(*utils.UserClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		if !access.HasAnyPermission(claims.Role, permissions) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: Insufficient permissions",
			})
		}

		return c.Next()
	}
}
