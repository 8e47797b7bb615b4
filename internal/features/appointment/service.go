package appointment

import (
	"context"
	"strings"
	"time"

	"go-clinic/internal/apperr"
	"go-clinic/internal/schedule"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// AvailabilityFetchFailurePolicy names the behavior applied when booked
// times cannot be read while computing availability.
type AvailabilityFetchFailurePolicy int

const (
	// FailOpen: on read failure every generated slot is offered rather
	// than blocking the booking flow. The write-time guard and the unique
	// index still reject an actual double booking.
	FailOpen AvailabilityFetchFailurePolicy = iota
)

// FetchFailurePolicy is the policy in force.
const FetchFailurePolicy = FailOpen

// ScheduleSource resolves a city's slot configuration by city name.
type ScheduleSource interface {
	ConfigByCityName(ctx context.Context, nome string) (*schedule.Config, error)
}

type AppointmentService interface {
	CreateAppointment(ctx context.Context, appt *Appointment) (*Appointment, error)
	GetAppointment(ctx context.Context, id string) (*Appointment, error)
	ListAppointments(ctx context.Context, filter ListFilter) ([]Appointment, error)
	UpdateAppointment(ctx context.Context, id string, appt *Appointment) error
	UpdateStatus(ctx context.Context, id string, status string) error
	DeleteAppointment(ctx context.Context, id string) error
	CheckTimeAvailability(ctx context.Context, cidade, data, horario string) (bool, error)
	AvailableSlots(ctx context.Context, cidade, data string) ([]string, error)
}

type AppointmentServiceImpl struct {
	Repo      AppointmentRepository
	Schedules ScheduleSource
	Notifier  Notifier
	Logger    *zap.Logger
}

func NewAppointmentService(repo AppointmentRepository, schedules ScheduleSource, notifier Notifier, logger *zap.Logger) AppointmentService {
	return &AppointmentServiceImpl{
		Repo:      repo,
		Schedules: schedules,
		Notifier:  notifier,
		Logger:    logger,
	}
}

// CheckTimeAvailability reports whether the slot is free: no appointment at
// (cidade, data, horario) with a slot-occupying status.
func (s *AppointmentServiceImpl) CheckTimeAvailability(ctx context.Context, cidade, data, horario string) (bool, error) {
	n, err := s.Repo.CountActiveAt(ctx, cidade, data, horario)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

// CreateAppointment validates the booking, re-checks the slot, and inserts.
// The check-then-write pair is backed by the partial unique index, so a
// concurrent booking that slips past the check still fails the insert and is
// reported as slot-unavailable.
func (s *AppointmentServiceImpl) CreateAppointment(ctx context.Context, appt *Appointment) (*Appointment, error) {
	if err := validate(appt); err != nil {
		return nil, err
	}
	// Days on or before today are never bookable
	if schedule.IsPastOrToday(appt.Data, time.Now()) {
		return nil, apperr.NewValidation("data", "data indisponível para agendamento")
	}

	available, err := s.CheckTimeAvailability(ctx, appt.Cidade, appt.Data, appt.Horario)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, apperr.ErrSlotUnavailable
	}

	appt.ID = primitive.NewObjectID()
	if appt.Status == "" {
		appt.Status = StatusPendente
	}
	appt.CreatedAt = time.Now()
	appt.UpdatedAt = time.Now()

	if err := s.Repo.Create(ctx, appt); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperr.ErrSlotUnavailable
		}
		return nil, err
	}

	s.Logger.Info("appointment created",
		zap.String("cidade", appt.Cidade),
		zap.String("data", appt.Data),
		zap.String("horario", appt.Horario))

	if s.Notifier != nil {
		go s.sendNotification(appt)
	}

	return appt, nil
}

func validate(appt *Appointment) error {
	switch {
	case strings.TrimSpace(appt.Nome) == "":
		return apperr.NewValidation("nome", "campo obrigatório")
	case strings.TrimSpace(appt.Telefone) == "":
		return apperr.NewValidation("telefone", "campo obrigatório")
	case strings.TrimSpace(appt.Cidade) == "":
		return apperr.NewValidation("cidade", "campo obrigatório")
	}
	if _, err := schedule.ParseDate(appt.Data); err != nil {
		return apperr.NewValidation("data", "formato esperado DD/MM/AAAA")
	}
	m, err := schedule.ParseTimeOfDay(appt.Horario)
	if err != nil {
		return apperr.NewValidation("horario", "formato esperado HH:MM")
	}
	// Canonical "HH:MM" form: the guard and the unique index compare raw
	// strings, so "8:30" and "08:30" must not name two different slots
	appt.Horario = schedule.FormatTimeOfDay(m)
	if appt.Status != "" && appt.Status != StatusPendente &&
		appt.Status != StatusConfirmado && appt.Status != StatusCancelado {
		return apperr.NewValidation("status", "valor inválido")
	}
	return nil
}

// sendNotification delivers the outbound webhook and records a delivery
// failure on the appointment itself. Never retried automatically.
func (s *AppointmentServiceImpl) sendNotification(appt *Appointment) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := s.Notifier.Notify(ctx, appt); err != nil {
		s.Logger.Warn("appointment notification failed",
			zap.String("id", appt.ID.Hex()), zap.Error(err))
		_ = s.Repo.Update(ctx, appt.ID.Hex(), bson.M{
			"notificacao_erro": err.Error(),
			"updated_at":       time.Now(),
		})
	}
}

func (s *AppointmentServiceImpl) GetAppointment(ctx context.Context, id string) (*Appointment, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *AppointmentServiceImpl) ListAppointments(ctx context.Context, filter ListFilter) ([]Appointment, error) {
	q := bson.M{}
	if filter.Cidade != "" {
		q["cidade"] = filter.Cidade
	}
	if filter.Data != "" {
		q["data"] = filter.Data
	}
	if filter.Status != "" {
		q["status"] = filter.Status
	} else if filter.OnlyActive {
		q["status"] = bson.M{"$in": activeStatuses}
	}
	return s.Repo.List(ctx, q)
}

func (s *AppointmentServiceImpl) UpdateAppointment(ctx context.Context, id string, appt *Appointment) error {
	if err := validate(appt); err != nil {
		return err
	}

	existing, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	// Moving the booking to another slot re-runs the guard. Editing an old
	// appointment in place stays allowed; only the new slot must be bookable
	if existing.Cidade != appt.Cidade || existing.Data != appt.Data || existing.Horario != appt.Horario {
		if schedule.IsPastOrToday(appt.Data, time.Now()) {
			return apperr.NewValidation("data", "data indisponível para agendamento")
		}
		available, err := s.CheckTimeAvailability(ctx, appt.Cidade, appt.Data, appt.Horario)
		if err != nil {
			return err
		}
		if !available {
			return apperr.ErrSlotUnavailable
		}
	}

	return s.Repo.Update(ctx, id, bson.M{
		"nome":        appt.Nome,
		"telefone":    appt.Telefone,
		"cidade":      appt.Cidade,
		"data":        appt.Data,
		"horario":     appt.Horario,
		"medico":      appt.Medico,
		"observacoes": appt.Observacoes,
		"updated_at":  time.Now(),
	})
}

// UpdateStatus applies the staff transitions: pendente may become confirmado
// or cancelado, confirmado may still be cancelado. Cancelado is terminal.
func (s *AppointmentServiceImpl) UpdateStatus(ctx context.Context, id string, status string) error {
	if status != StatusConfirmado && status != StatusCancelado {
		return apperr.NewValidation("status", "valor inválido")
	}

	existing, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.Status == StatusCancelado {
		return apperr.NewValidation("status", "agendamento cancelado não pode ser alterado")
	}
	if existing.Status == StatusConfirmado && status == StatusConfirmado {
		return nil
	}

	return s.Repo.Update(ctx, id, bson.M{
		"status":     status,
		"updated_at": time.Now(),
	})
}

func (s *AppointmentServiceImpl) DeleteAppointment(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// AvailableSlots generates the candidate slots for a city+date and removes
// booked times. A failure fetching booked times follows FetchFailurePolicy:
// all generated slots are offered. The final list is sorted by
// minutes-since-midnight here at the call site.
func (s *AppointmentServiceImpl) AvailableSlots(ctx context.Context, cidade, data string) ([]string, error) {
	// A day on or before today has no bookable slots
	if schedule.IsPastOrToday(data, time.Now()) {
		return []string{}, nil
	}

	cfg, err := s.Schedules.ConfigByCityName(ctx, cidade)
	if err != nil {
		return nil, err
	}

	slots, err := schedule.GenerateSlots(*cfg)
	if err != nil {
		return nil, err
	}

	booked, err := s.Repo.FindBookedTimes(ctx, cidade, data)
	if err != nil {
		s.Logger.Warn("booked times fetch failed, failing open",
			zap.String("cidade", cidade), zap.String("data", data), zap.Error(err))
		booked = nil
	}

	available := schedule.FilterAvailable(slots, booked)
	schedule.SortSlots(available)
	return available, nil
}
