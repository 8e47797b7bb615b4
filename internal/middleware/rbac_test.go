package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-clinic/internal/access"
	"go-clinic/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appWithRole(role string, handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Get("/guarded",
		func(c *fiber.Ctx) error {
			if role != "" {
				c.Locals(utils.UserClaimsKey, &utils.UserClaims{UserID: "u1", Role: role})
			}
			return c.Next()
		},
		handler,
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)
	return app
}

func get(t *testing.T, app *fiber.App) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/guarded", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestRequirePermission(t *testing.T) {
	tests := []struct {
		name string
		role string
		want int
	}{
		{"admin passes", "admin", fiber.StatusOK},
		{"legacy admin passes", "Administrador", fiber.StatusOK},
		{"financial passes its own check", "financeiro", fiber.StatusOK},
		{"receptionist forbidden", "recepcionista", fiber.StatusForbidden},
		{"unknown role forbidden", "whatever", fiber.StatusForbidden},
		{"no claims unauthorized", "", fiber.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := appWithRole(tt.role, RequirePermission(access.PermFinancialView))
			assert.Equal(t, tt.want, get(t, app))
		})
	}
}

func TestRequireAnyPermission(t *testing.T) {
	guard := RequireAnyPermission(access.PermFinancialView, access.PermAppointmentsView)

	assert.Equal(t, fiber.StatusOK, get(t, appWithRole("recepcionista", guard)))
	assert.Equal(t, fiber.StatusForbidden, get(t, appWithRole("medico", RequireAnyPermission(access.PermFinancialView))))
	assert.Equal(t, fiber.StatusUnauthorized, get(t, appWithRole("", guard)))
}

func TestAuthMiddleware(t *testing.T) {
	utils.SetSecret("test-secret")

	newApp := func(skip bool) *fiber.App {
		app := fiber.New()
		app.Get("/me", AuthMiddleware(skip), func(c *fiber.Ctx) error {
			claims := c.Locals(utils.UserClaimsKey).(*utils.UserClaims)
			return c.JSON(fiber.Map{"role": claims.Role})
		})
		return app
	}

	t.Run("missing header", func(t *testing.T) {
		resp, err := newApp(false).Test(httptest.NewRequest(http.MethodGet, "/me", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Token abc")
		resp, err := newApp(false).Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := utils.GenerateToken("u1", "admin@clinica.com", "admin")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := newApp(false).Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("skip auth injects dev admin", func(t *testing.T) {
		resp, err := newApp(true).Test(httptest.NewRequest(http.MethodGet, "/me", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
