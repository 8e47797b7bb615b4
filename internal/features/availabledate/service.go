package availabledate

import (
	"context"
	"strings"
	"time"

	"go-clinic/internal/apperr"
	"go-clinic/internal/schedule"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type DateService interface {
	CreateDate(ctx context.Context, date *AvailableDate) (*AvailableDate, error)
	GetDate(ctx context.Context, id string) (*AvailableDate, error)
	ListDates(ctx context.Context, cidade string) ([]AvailableDate, error)
	UpdateDate(ctx context.Context, id string, date *AvailableDate) error
	DeleteDate(ctx context.Context, id string) error
	Sweep(ctx context.Context, now time.Time) (int64, error)
}

type DateServiceImpl struct {
	Repo   DateRepository
	Logger *zap.Logger
}

func NewDateService(repo DateRepository, logger *zap.Logger) DateService {
	return &DateServiceImpl{Repo: repo, Logger: logger}
}

func (s *DateServiceImpl) CreateDate(ctx context.Context, date *AvailableDate) (*AvailableDate, error) {
	if strings.TrimSpace(date.Cidade) == "" {
		return nil, apperr.NewValidation("cidade", "campo obrigatório")
	}
	if _, err := schedule.ParseDate(date.Data); err != nil {
		return nil, apperr.NewValidation("data", "formato esperado DD/MM/AAAA")
	}

	date.ID = primitive.NewObjectID()
	if date.Status == "" {
		date.Status = StatusDisponivel
	}
	// Opening a day that has already passed is pointless
	if schedule.IsPastOrToday(date.Data, time.Now()) {
		date.Status = StatusIndisponivel
	}
	date.CreatedAt = time.Now()
	date.UpdatedAt = time.Now()

	if err := s.Repo.Create(ctx, date); err != nil {
		return nil, err
	}
	return date, nil
}

func (s *DateServiceImpl) GetDate(ctx context.Context, id string) (*AvailableDate, error) {
	return s.Repo.FindByID(ctx, id)
}

// ListDates returns the dates for a city (or all cities when cidade is
// empty), self-healing stale statuses on the way out: records whose day has
// passed are reported Indisponível and rewritten in one background batch.
func (s *DateServiceImpl) ListDates(ctx context.Context, cidade string) ([]AvailableDate, error) {
	filter := bson.M{}
	if cidade != "" {
		filter["cidade"] = cidade
	}

	dates, err := s.Repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var stale []primitive.ObjectID
	for i := range dates {
		if dates[i].Status == StatusDisponivel && schedule.IsPastOrToday(dates[i].Data, now) {
			dates[i].Status = StatusIndisponivel
			stale = append(stale, dates[i].ID)
		}
	}

	if len(stale) > 0 {
		if _, err := s.Repo.BulkSetStatus(ctx, stale, StatusIndisponivel); err != nil {
			// Read path stays healthy; the sweep will retry
			s.Logger.Warn("lazy date normalization failed", zap.Error(err))
		}
	}

	return dates, nil
}

func (s *DateServiceImpl) UpdateDate(ctx context.Context, id string, date *AvailableDate) error {
	if date.Status != StatusDisponivel && date.Status != StatusIndisponivel {
		return apperr.NewValidation("status", "valor inválido")
	}
	if _, err := schedule.ParseDate(date.Data); err != nil {
		return apperr.NewValidation("data", "formato esperado DD/MM/AAAA")
	}

	status := date.Status
	if status == StatusDisponivel && schedule.IsPastOrToday(date.Data, time.Now()) {
		status = StatusIndisponivel
	}

	return s.Repo.Update(ctx, id, bson.M{
		"cidade":     date.Cidade,
		"data":       date.Data,
		"status":     status,
		"updated_at": time.Now(),
	})
}

func (s *DateServiceImpl) DeleteDate(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// Sweep rewrites every Disponível record whose calendar day is on or before
// now (date-only comparison) to Indisponível, in one batched write.
// Unparseable dates are swept as well, defensively.
func (s *DateServiceImpl) Sweep(ctx context.Context, now time.Time) (int64, error) {
	dates, err := s.Repo.List(ctx, bson.M{"status": StatusDisponivel})
	if err != nil {
		return 0, err
	}

	var stale []primitive.ObjectID
	for _, d := range dates {
		if schedule.IsPastOrToday(d.Data, now) {
			stale = append(stale, d.ID)
		}
	}

	modified, err := s.Repo.BulkSetStatus(ctx, stale, StatusIndisponivel)
	if err != nil {
		return 0, err
	}

	s.Logger.Info("date sweep finished",
		zap.Int("candidates", len(dates)),
		zap.Int64("marked_unavailable", modified))
	return modified, nil
}
