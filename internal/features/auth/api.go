package auth

import (
	"go-clinic/internal/access"
	"go-clinic/internal/config"
	"go-clinic/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type AuthApi struct {
	controller *AuthController
	config     *config.Config
}

func NewAuthApi(controller *AuthController, cfg *config.Config) *AuthApi {
	return &AuthApi{
		controller: controller,
		config:     cfg,
	}
}

// Setup registers auth routes
func (h *AuthApi) Setup(app *fiber.App) {
	authGroup := app.Group("/api/auth")

	authGroup.Post("/login", h.controller.Login)
	authGroup.Post("/register",
		middleware.AuthMiddleware(h.config.SkipAuth),
		middleware.RequirePermission(access.PermUsersCreate),
		h.controller.Register)
}
