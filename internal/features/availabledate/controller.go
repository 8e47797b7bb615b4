package availabledate

import (
	"errors"

	"go-clinic/internal/apperr"

	"github.com/gofiber/fiber/v2"
)

type DateController struct {
	Service DateService
}

func NewDateController(service DateService) *DateController {
	return &DateController{Service: service}
}

func (ctrl *DateController) CreateDate(c *fiber.Ctx) error {
	var date AvailableDate
	if err := c.BodyParser(&date); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	created, err := ctrl.Service.CreateDate(c.UserContext(), &date)
	if err != nil {
		if apperr.IsValidation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": created})
}

func (ctrl *DateController) ListDates(c *fiber.Ctx) error {
	dates, err := ctrl.Service.ListDates(c.UserContext(), c.Query("cidade"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": dates})
}

func (ctrl *DateController) GetDate(c *fiber.Ctx) error {
	date, err := ctrl.Service.GetDate(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(date)
}

func (ctrl *DateController) UpdateDate(c *fiber.Ctx) error {
	var date AvailableDate
	if err := c.BodyParser(&date); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := ctrl.Service.UpdateDate(c.UserContext(), c.Params("id"), &date); err != nil {
		switch {
		case apperr.IsValidation(err):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, apperr.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}
	return c.JSON(fiber.Map{"message": "Data atualizada"})
}

func (ctrl *DateController) DeleteDate(c *fiber.Ctx) error {
	if err := ctrl.Service.DeleteDate(c.UserContext(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Data removida"})
}
