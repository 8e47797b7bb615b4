package availabledate

import (
	"go-clinic/internal/access"
	"go-clinic/internal/config"
	"go-clinic/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type DateApi struct {
	controller *DateController
	config     *config.Config
}

func NewDateApi(controller *DateController, cfg *config.Config) *DateApi {
	return &DateApi{
		controller: controller,
		config:     cfg,
	}
}

// Setup registers available-date routes. Listing stays public so the booking
// form can show open days without a session.
func (h *DateApi) Setup(app *fiber.App) {
	app.Get("/api/public/datas", h.controller.ListDates)

	dates := app.Group("/api/datas", middleware.AuthMiddleware(h.config.SkipAuth))

	dates.Get("/", middleware.RequirePermission(access.PermDatesView), h.controller.ListDates)
	dates.Post("/", middleware.RequirePermission(access.PermDatesCreate), h.controller.CreateDate)
	dates.Get("/:id", middleware.RequirePermission(access.PermDatesView), h.controller.GetDate)
	dates.Put("/:id", middleware.RequirePermission(access.PermDatesEdit), h.controller.UpdateDate)
	dates.Delete("/:id", middleware.RequirePermission(access.PermDatesDelete), h.controller.DeleteDate)
}
