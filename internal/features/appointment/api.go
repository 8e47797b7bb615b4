package appointment

import (
	"go-clinic/internal/access"
	"go-clinic/internal/config"
	"go-clinic/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type AppointmentApi struct {
	controller *AppointmentController
	config     *config.Config
}

func NewAppointmentApi(controller *AppointmentController, cfg *config.Config) *AppointmentApi {
	return &AppointmentApi{
		controller: controller,
		config:     cfg,
	}
}

// Setup registers appointment routes. The booking form endpoints are public;
// everything else sits behind the permission table.
func (h *AppointmentApi) Setup(app *fiber.App) {
	app.Post("/api/public/agendamentos", h.controller.CreateAppointment)
	app.Get("/api/agendamentos/horarios", h.controller.AvailableSlots)

	appts := app.Group("/api/agendamentos", middleware.AuthMiddleware(h.config.SkipAuth))

	appts.Get("/", middleware.RequirePermission(access.PermAppointmentsView), h.controller.ListAppointments)
	appts.Post("/", middleware.RequirePermission(access.PermAppointmentsCreate), h.controller.CreateAppointment)
	appts.Get("/:id", middleware.RequirePermission(access.PermAppointmentsView), h.controller.GetAppointment)
	appts.Put("/:id", middleware.RequirePermission(access.PermAppointmentsEdit), h.controller.UpdateAppointment)
	appts.Patch("/:id/status", middleware.RequirePermission(access.PermAppointmentsEdit), h.controller.UpdateStatus)
	appts.Delete("/:id", middleware.RequirePermission(access.PermAppointmentsDelete), h.controller.DeleteAppointment)
}
