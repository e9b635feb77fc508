package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth rejects requests that JWTUidOnly left anonymous.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if uid, ok := c.Locals("user_id").(string); !ok || strings.TrimSpace(uid) == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized request")
		}
		return c.Next()
	}
}
