package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rxtech-lab/workspace-mcp/internal/utils"
)

// AuthConfig holds configuration for the auth middleware
type AuthConfig struct {
	// Authenticator validates Bearer tokens and resolves the actor
	Authenticator *utils.JwtAuthenticator
	// PublicPaths bypass authentication (exact match)
	PublicPaths []string
}

// AuthMiddleware returns a Fiber middleware for Bearer token authentication.
// The resolved actor is stored in locals under "user".
func AuthMiddleware(cfg AuthConfig) fiber.Handler {
	public := make(map[string]bool, len(cfg.PublicPaths))
	for _, path := range cfg.PublicPaths {
		public[path] = true
	}

	return func(c *fiber.Ctx) error {
		if public[c.Path()] {
			return c.Next()
		}

		authHeader := c.Get("Authorization")
		var token string
		if strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		}

		if token == "" {
			c.Set("WWW-Authenticate", `Bearer realm="Access to protected resource"`)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing or invalid Bearer token",
			})
		}

		user, err := cfg.Authenticator.ValidateToken(token)
		if err != nil {
			c.Set("WWW-Authenticate", `Bearer realm="Access to protected resource"`)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":   "Invalid token",
				"details": err.Error(),
			})
		}

		c.Locals("user", user)
		return c.Next()
	}
}

// GetAuthenticatedUser retrieves the authenticated user from Fiber context.
// Returns nil if no user is found or if user is not of correct type.
func GetAuthenticatedUser(c *fiber.Ctx) *utils.AuthenticatedUser {
	userInterface := c.Locals("user")
	if userInterface == nil {
		return nil
	}

	user, ok := userInterface.(*utils.AuthenticatedUser)
	if !ok {
		return nil
	}

	return user
}
