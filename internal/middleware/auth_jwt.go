package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Furqankhan76/Vidtube/internal/authtoken"
)

const AccessTokenCookie = "accessToken"

// JWTUidOnly resolves the caller from a bearer token or the access token
// cookie and stores the uid in Locals("user_id"). Requests without a token
// pass through anonymously. A bad bearer token is rejected, while a stale
// cookie is ignored so login and refresh-token still work after expiry.
func JWTUidOnly(issuer *authtoken.Issuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr, fromHeader := "", false
		if auth := c.Get(fiber.HeaderAuthorization); len(auth) > 7 && strings.EqualFold(auth[:7], "bearer ") {
			tokenStr, fromHeader = strings.TrimSpace(auth[7:]), true
		} else {
			tokenStr = c.Cookies(AccessTokenCookie)
		}
		if tokenStr == "" {
			return c.Next()
		}

		claims, err := issuer.ParseAccess(tokenStr)
		if err != nil {
			if !fromHeader {
				return c.Next()
			}
			return fiber.NewError(fiber.StatusUnauthorized, "invalid access token")
		}
		c.Locals("user_id", claims.UID)
		return c.Next()
	}
}
