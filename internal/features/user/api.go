package user

import (
	"go-clinic/internal/access"
	"go-clinic/internal/config"
	"go-clinic/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type UserApi struct {
	controller *UserController
	config     *config.Config
}

func NewUserApi(controller *UserController, cfg *config.Config) *UserApi {
	return &UserApi{
		controller: controller,
		config:     cfg,
	}
}

// Setup registers user routes
func (h *UserApi) Setup(app *fiber.App) {
	users := app.Group("/api/usuarios", middleware.AuthMiddleware(h.config.SkipAuth))

	users.Get("/", middleware.RequirePermission(access.PermUsersView), h.controller.ListUsers)
	users.Post("/", middleware.RequirePermission(access.PermUsersCreate), h.controller.CreateUser)
	users.Get("/:id", middleware.RequirePermission(access.PermUsersView), h.controller.GetUser)
	users.Put("/:id", middleware.RequirePermission(access.PermUsersEdit), h.controller.UpdateUser)
	users.Delete("/:id", middleware.RequirePermission(access.PermUsersDelete), h.controller.DeleteUser)
}
