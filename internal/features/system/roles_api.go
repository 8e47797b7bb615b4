package system

import (
	"go-clinic/internal/access"
	"go-clinic/internal/config"
	"go-clinic/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type RolesApi struct {
	config *config.Config
}

func NewRolesApi(cfg *config.Config) *RolesApi {
	return &RolesApi{config: cfg}
}

type roleView struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	Permissions    []access.Permission `json:"permissions"`
	CanManageRoles bool                `json:"can_manage_roles"`
}

// Setup exposes the static role table so the UI can render permission
// editors without hardcoding it.
func (h *RolesApi) Setup(app *fiber.App) {
	roles := app.Group("/api/roles", middleware.AuthMiddleware(h.config.SkipAuth))

	roles.Get("/", middleware.RequirePermission(access.PermRolesManage), func(c *fiber.Ctx) error {
		table := access.Roles()
		out := make([]roleView, 0, len(table))
		for _, r := range table {
			out = append(out, roleView{
				ID:             r.ID,
				Name:           r.Name,
				Permissions:    r.Permissions,
				CanManageRoles: r.CanManageRoles,
			})
		}
		return c.JSON(fiber.Map{"data": out})
	})

	roles.Get("/permissions", middleware.RequirePermission(access.PermRolesManage), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"data": access.AllPermissions()})
	})
}
