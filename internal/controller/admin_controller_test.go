package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"literinth-be/internal/pkg/serverutils"
)

func signToken(t *testing.T, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": uuid.New().String(),
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(serverutils.JwtSecret())
	require.NoError(t, err)
	return signed
}

func newAdminGateApp() *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware(nil))

	ac := &adminController{}
	g := app.Group("/admin", serverutils.JwtMiddleware, ac.adminMiddleware)
	g.Get("/ping", func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestAdminGate(t *testing.T) {
	app := newAdminGateApp()

	doRequest := func(token string) *http.Response {
		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		res, err := app.Test(req)
		require.NoError(t, err)
		return res
	}

	t.Run("Anonymous Is Unauthenticated", func(t *testing.T) {
		res := doRequest("")
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	})

	t.Run("Garbage Token Is Unauthenticated", func(t *testing.T) {
		res := doRequest("not.a.jwt")
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	})

	t.Run("User Role Is Forbidden", func(t *testing.T) {
		res := doRequest(signToken(t, "user"))
		assert.Equal(t, http.StatusForbidden, res.StatusCode)
	})

	t.Run("Admin Role Passes", func(t *testing.T) {
		res := doRequest(signToken(t, "admin"))
		assert.Equal(t, http.StatusOK, res.StatusCode)
	})
}
