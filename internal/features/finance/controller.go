package finance

import (
	"errors"
	"fmt"

	"go-clinic/internal/apperr"

	"github.com/gofiber/fiber/v2"
)

type FinanceController struct {
	Service FinanceService
}

func NewFinanceController(service FinanceService) *FinanceController {
	return &FinanceController{Service: service}
}

func (ctrl *FinanceController) CreateRecord(c *fiber.Ctx) error {
	var record Record
	if err := c.BodyParser(&record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	created, err := ctrl.Service.CreateRecord(c.UserContext(), &record)
	if err != nil {
		if apperr.IsValidation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": created})
}

func (ctrl *FinanceController) ListRecords(c *fiber.Ctx) error {
	filter := ListFilter{
		Cidade: c.Query("cidade"),
		Tipo:   c.Query("tipo"),
	}

	records, summary, err := ctrl.Service.ListRecords(c.UserContext(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{
		"data":    records,
		"summary": summary,
	})
}

func (ctrl *FinanceController) GetRecord(c *fiber.Ctx) error {
	record, err := ctrl.Service.GetRecord(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(record)
}

func (ctrl *FinanceController) UpdateRecord(c *fiber.Ctx) error {
	var record Record
	if err := c.BodyParser(&record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := ctrl.Service.UpdateRecord(c.UserContext(), c.Params("id"), &record); err != nil {
		switch {
		case apperr.IsValidation(err):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, apperr.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}
	return c.JSON(fiber.Map{"message": "Registro atualizado"})
}

func (ctrl *FinanceController) DeleteRecord(c *fiber.Ctx) error {
	if err := ctrl.Service.DeleteRecord(c.UserContext(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Registro removido"})
}

// Export streams the filtered records as an xlsx download.
func (ctrl *FinanceController) Export(c *fiber.Ctx) error {
	filter := ListFilter{
		Cidade: c.Query("cidade"),
		Tipo:   c.Query("tipo"),
	}

	data, filename, err := ctrl.Service.Export(c.UserContext(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}
