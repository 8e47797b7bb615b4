package appointment

import (
	"errors"

	"go-clinic/internal/apperr"

	"github.com/gofiber/fiber/v2"
)

type AppointmentController struct {
	Service AppointmentService
}

func NewAppointmentController(service AppointmentService) *AppointmentController {
	return &AppointmentController{Service: service}
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case apperr.IsValidation(err):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, apperr.ErrSlotUnavailable):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error(), "field": "horario"})
	case errors.Is(err, apperr.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}

// CreateAppointment handles both the public booking form and the staff
// creation flow.
func (ctrl *AppointmentController) CreateAppointment(c *fiber.Ctx) error {
	var appt Appointment
	if err := c.BodyParser(&appt); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	created, err := ctrl.Service.CreateAppointment(c.UserContext(), &appt)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": created})
}

func (ctrl *AppointmentController) ListAppointments(c *fiber.Ctx) error {
	filter := ListFilter{
		Cidade:     c.Query("cidade"),
		Data:       c.Query("data"),
		Status:     c.Query("status"),
		OnlyActive: c.QueryBool("ativos"),
	}

	appts, err := ctrl.Service.ListAppointments(c.UserContext(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": appts})
}

func (ctrl *AppointmentController) GetAppointment(c *fiber.Ctx) error {
	appt, err := ctrl.Service.GetAppointment(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(appt)
}

func (ctrl *AppointmentController) UpdateAppointment(c *fiber.Ctx) error {
	var appt Appointment
	if err := c.BodyParser(&appt); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := ctrl.Service.UpdateAppointment(c.UserContext(), c.Params("id"), &appt); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Agendamento atualizado"})
}

type statusRequest struct {
	Status string `json:"status"`
}

func (ctrl *AppointmentController) UpdateStatus(c *fiber.Ctx) error {
	var req statusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := ctrl.Service.UpdateStatus(c.UserContext(), c.Params("id"), req.Status); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Status atualizado"})
}

func (ctrl *AppointmentController) DeleteAppointment(c *fiber.Ctx) error {
	if err := ctrl.Service.DeleteAppointment(c.UserContext(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Agendamento removido"})
}

// AvailableSlots serves the free "HH:MM" slots for ?cidade=&data=.
func (ctrl *AppointmentController) AvailableSlots(c *fiber.Ctx) error {
	cidade := c.Query("cidade")
	data := c.Query("data")
	if cidade == "" || data == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "cidade e data são obrigatórios",
		})
	}

	slots, err := ctrl.Service.AvailableSlots(c.UserContext(), cidade, data)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"data": slots})
}
