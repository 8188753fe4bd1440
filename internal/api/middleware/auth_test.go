package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rxtech-lab/workspace-mcp/internal/utils"
)

func setupAuthApp(t *testing.T) *fiber.App {
	app := fiber.New()
	app.Use(AuthMiddleware(AuthConfig{
		Authenticator: utils.NewJwtAuthenticator("test-secret"),
		PublicPaths:   []string{"/health"},
	}))
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/protected", func(c *fiber.Ctx) error {
		user := GetAuthenticatedUser(c)
		require.NotNil(t, user)
		return c.SendString(user.Sub)
	})
	return app
}

func signToken(t *testing.T, secret, sub string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": sub})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAuthMiddleware_PublicPathBypassesAuth(t *testing.T) {
	app := setupAuthApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	app := setupAuthApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("WWW-Authenticate"), "Bearer")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	app := setupAuthApp(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "wrong-secret", "user-123"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	app := setupAuthApp(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", "user-123"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGetAuthenticatedUser_NoUser(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		assert.Nil(t, GetAuthenticatedUser(c))
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
