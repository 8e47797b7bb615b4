package doctor

import (
	"go-clinic/internal/access"
	"go-clinic/internal/config"
	"go-clinic/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type DoctorApi struct {
	controller *DoctorController
	config     *config.Config
}

func NewDoctorApi(controller *DoctorController, cfg *config.Config) *DoctorApi {
	return &DoctorApi{
		controller: controller,
		config:     cfg,
	}
}

// Setup registers doctor routes
func (h *DoctorApi) Setup(app *fiber.App) {
	doctors := app.Group("/api/medicos", middleware.AuthMiddleware(h.config.SkipAuth))

	doctors.Get("/", middleware.RequirePermission(access.PermDoctorsView), h.controller.ListDoctors)
	doctors.Post("/", middleware.RequirePermission(access.PermDoctorsCreate), h.controller.CreateDoctor)
	doctors.Get("/:id", middleware.RequirePermission(access.PermDoctorsView), h.controller.GetDoctor)
	doctors.Put("/:id", middleware.RequirePermission(access.PermDoctorsEdit), h.controller.UpdateDoctor)
	doctors.Delete("/:id", middleware.RequirePermission(access.PermDoctorsDelete), h.controller.DeleteDoctor)
}
