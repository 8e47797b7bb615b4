package city

import (
	"go-clinic/internal/access"
	"go-clinic/internal/config"
	"go-clinic/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type CityApi struct {
	controller *CityController
	config     *config.Config
}

func NewCityApi(controller *CityController, cfg *config.Config) *CityApi {
	return &CityApi{
		controller: controller,
		config:     cfg,
	}
}

// Setup registers city routes
func (h *CityApi) Setup(app *fiber.App) {
	cities := app.Group("/api/cidades", middleware.AuthMiddleware(h.config.SkipAuth))

	cities.Get("/", middleware.RequirePermission(access.PermCitiesView), h.controller.ListCities)
	cities.Post("/", middleware.RequirePermission(access.PermCitiesCreate), h.controller.CreateCity)
	cities.Get("/:id", middleware.RequirePermission(access.PermCitiesView), h.controller.GetCity)
	cities.Put("/:id", middleware.RequirePermission(access.PermCitiesEdit), h.controller.UpdateCity)
	cities.Delete("/:id", middleware.RequirePermission(access.PermCitiesDelete), h.controller.DeleteCity)

	cities.Get("/:id/schedule", middleware.RequirePermission(access.PermSettingsView), h.controller.GetScheduleConfig)
	cities.Put("/:id/schedule", middleware.RequirePermission(access.PermSettingsEdit), h.controller.PutScheduleConfig)
}
