package doctor

import (
	"errors"

	"go-clinic/internal/apperr"

	"github.com/gofiber/fiber/v2"
)

type DoctorController struct {
	Service DoctorService
}

func NewDoctorController(service DoctorService) *DoctorController {
	return &DoctorController{Service: service}
}

func (ctrl *DoctorController) CreateDoctor(c *fiber.Ctx) error {
	var doctor Doctor
	if err := c.BodyParser(&doctor); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	created, err := ctrl.Service.CreateDoctor(c.UserContext(), &doctor)
	if err != nil {
		if apperr.IsValidation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": created})
}

func (ctrl *DoctorController) ListDoctors(c *fiber.Ctx) error {
	doctors, err := ctrl.Service.ListDoctors(c.UserContext(), c.Query("cidade"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": doctors})
}

func (ctrl *DoctorController) GetDoctor(c *fiber.Ctx) error {
	doctor, err := ctrl.Service.GetDoctor(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(doctor)
}

func (ctrl *DoctorController) UpdateDoctor(c *fiber.Ctx) error {
	var doctor Doctor
	if err := c.BodyParser(&doctor); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := ctrl.Service.UpdateDoctor(c.UserContext(), c.Params("id"), &doctor); err != nil {
		switch {
		case apperr.IsValidation(err):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, apperr.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}
	return c.JSON(fiber.Map{"message": "Médico atualizado"})
}

func (ctrl *DoctorController) DeleteDoctor(c *fiber.Ctx) error {
	if err := ctrl.Service.DeleteDoctor(c.UserContext(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Médico removido"})
}
