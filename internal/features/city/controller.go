package city

import (
	"errors"

	"go-clinic/internal/apperr"
	"go-clinic/internal/schedule"

	"github.com/gofiber/fiber/v2"
)

type CityController struct {
	Service CityService
}

func NewCityController(service CityService) *CityController {
	return &CityController{Service: service}
}

func (ctrl *CityController) CreateCity(c *fiber.Ctx) error {
	var city City
	if err := c.BodyParser(&city); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	created, err := ctrl.Service.CreateCity(c.UserContext(), &city)
	if err != nil {
		if apperr.IsValidation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": created})
}

func (ctrl *CityController) ListCities(c *fiber.Ctx) error {
	cities, err := ctrl.Service.ListCities(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": cities})
}

func (ctrl *CityController) GetCity(c *fiber.Ctx) error {
	city, err := ctrl.Service.GetCity(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(city)
}

func (ctrl *CityController) UpdateCity(c *fiber.Ctx) error {
	var city City
	if err := c.BodyParser(&city); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := ctrl.Service.UpdateCity(c.UserContext(), c.Params("id"), &city); err != nil {
		switch {
		case apperr.IsValidation(err):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, apperr.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}
	return c.JSON(fiber.Map{"message": "Cidade atualizada"})
}

func (ctrl *CityController) DeleteCity(c *fiber.Ctx) error {
	if err := ctrl.Service.DeleteCity(c.UserContext(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Cidade removida"})
}

func (ctrl *CityController) GetScheduleConfig(c *fiber.Ctx) error {
	cfg, err := ctrl.Service.GetScheduleConfig(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(cfg)
}

func (ctrl *CityController) PutScheduleConfig(c *fiber.Ctx) error {
	var cfg schedule.Config
	if err := c.BodyParser(&cfg); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	saved, err := ctrl.Service.PutScheduleConfig(c.UserContext(), c.Params("id"), cfg)
	if err != nil {
		switch {
		case apperr.IsValidation(err):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, apperr.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}
	return c.JSON(fiber.Map{"data": saved})
}
