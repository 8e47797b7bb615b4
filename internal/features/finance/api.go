package finance

import (
	"go-clinic/internal/access"
	"go-clinic/internal/config"
	"go-clinic/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type FinanceApi struct {
	controller *FinanceController
	config     *config.Config
}

func NewFinanceApi(controller *FinanceController, cfg *config.Config) *FinanceApi {
	return &FinanceApi{
		controller: controller,
		config:     cfg,
	}
}

// Setup registers financial record routes
func (h *FinanceApi) Setup(app *fiber.App) {
	finance := app.Group("/api/financeiro", middleware.AuthMiddleware(h.config.SkipAuth))

	finance.Get("/export", middleware.RequirePermission(access.PermFinancialReports), h.controller.Export)
	finance.Get("/", middleware.RequirePermission(access.PermFinancialView), h.controller.ListRecords)
	finance.Post("/", middleware.RequirePermission(access.PermFinancialCreate), h.controller.CreateRecord)
	finance.Get("/:id", middleware.RequirePermission(access.PermFinancialView), h.controller.GetRecord)
	finance.Put("/:id", middleware.RequirePermission(access.PermFinancialEdit), h.controller.UpdateRecord)
	finance.Delete("/:id", middleware.RequirePermission(access.PermFinancialDelete), h.controller.DeleteRecord)
}
