package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DengXianqi/learning-tracker/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedApp(t *testing.T) *fiber.App {
	t.Helper()
	config.LoadConfig()

	app := fiber.New()
	app.Get("/protected", JWTMiddleware, func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.JSON(fiber.Map{"userId": userID})
	})
	app.Get("/open", OptionalJWTMiddleware, func(c *fiber.Ctx) error {
		if _, ok := c.Locals("userId").(uint); ok {
			return c.SendString("authenticated")
		}
		return c.SendString("anonymous")
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestJWTMiddlewareAcceptsValidToken(t *testing.T) {
	app := newProtectedApp(t)

	token, err := GenerateJWT(42, "Ada", "ada@example.com")
	require.NoError(t, err)

	resp := doRequest(t, app, "/protected", "Bearer "+token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJWTMiddlewareRejectsMissingHeader(t *testing.T) {
	app := newProtectedApp(t)

	resp := doRequest(t, app, "/protected", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMiddlewareRejectsBadFormat(t *testing.T) {
	app := newProtectedApp(t)

	resp := doRequest(t, app, "/protected", "Token abcdef")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMiddlewareRejectsGarbageToken(t *testing.T) {
	app := newProtectedApp(t)

	resp := doRequest(t, app, "/protected", "Bearer not.a.token")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMiddlewareRejectsExpiredToken(t *testing.T) {
	app := newProtectedApp(t)

	claims := jwt.MapClaims{
		"userId": 42,
		"iat":    time.Now().Add(-48 * time.Hour).Unix(),
		"exp":    time.Now().Add(-24 * time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(config.AppConfig.JWTKey))
	require.NoError(t, err)

	resp := doRequest(t, app, "/protected", "Bearer "+expired)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMiddlewareRejectsWrongKey(t *testing.T) {
	app := newProtectedApp(t)

	claims := jwt.MapClaims{
		"userId": 42,
		"exp":    time.Now().Add(time.Hour).Unix(),
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("someOtherKey"))
	require.NoError(t, err)

	resp := doRequest(t, app, "/protected", "Bearer "+forged)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestOptionalJWTAllowsAnonymous(t *testing.T) {
	app := newProtectedApp(t)

	resp := doRequest(t, app, "/open", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestOptionalJWTStillRejectsInvalidToken(t *testing.T) {
	app := newProtectedApp(t)

	resp := doRequest(t, app, "/open", "Bearer broken")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestOptionalJWTAttachesUserWhenPresent(t *testing.T) {
	app := newProtectedApp(t)

	token, err := GenerateJWT(7, "Grace", "grace@example.com")
	require.NoError(t, err)

	resp := doRequest(t, app, "/open", "Bearer "+token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
