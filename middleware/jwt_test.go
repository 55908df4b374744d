package middleware

import (
	"net/http/httptest"
	"testing"

	"coursehub/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupJWTConfig() {
	config.AppConfig = &config.Config{
		JWTKey:              "test-secret",
		AccessTokenTTLHours: 1,
		RefreshTokenTTLDays: 7,
	}
}

func TestGenerateAndParseJWT(t *testing.T) {
	setupJWTConfig()

	token, err := GenerateJWT(42, "user@test.test", []uint{3})
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, float64(42), claims["userId"])
	assert.Equal(t, "user@test.test", claims["email"])
	assert.Equal(t, "access", claims["typ"])
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	setupJWTConfig()

	_, err := ParseToken("not-a-token")
	assert.Error(t, err)
}

func TestParseTokenRejectsWrongKey(t *testing.T) {
	setupJWTConfig()

	token, err := GenerateJWT(42, "user@test.test", nil)
	require.NoError(t, err)

	config.AppConfig.JWTKey = "another-secret"
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", JWTMiddleware, func(c *fiber.Ctx) error {
		userID := c.Locals("userId").(uint)
		return JsonResponse(c, fiber.StatusOK, true, "ok", fiber.Map{"user_id": userID})
	})
	return app
}

func TestJWTMiddlewareAllowsAccessToken(t *testing.T) {
	setupJWTConfig()
	app := newProtectedApp()

	token, err := GenerateJWT(7, "user@test.test", []uint{3})
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJWTMiddlewareRejectsMissingHeader(t *testing.T) {
	setupJWTConfig()
	app := newProtectedApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMiddlewareRejectsRefreshToken(t *testing.T) {
	setupJWTConfig()
	app := newProtectedApp()

	token, err := GenerateRefreshJWT(7)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
