package city

import (
	"context"
	"strings"
	"time"

	"go-clinic/internal/apperr"
	"go-clinic/internal/schedule"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CityService interface {
	CreateCity(ctx context.Context, city *City) (*City, error)
	GetCity(ctx context.Context, id string) (*City, error)
	ListCities(ctx context.Context) ([]City, error)
	UpdateCity(ctx context.Context, id string, city *City) error
	DeleteCity(ctx context.Context, id string) error

	GetScheduleConfig(ctx context.Context, cityID string) (*ScheduleConfig, error)
	PutScheduleConfig(ctx context.Context, cityID string, cfg schedule.Config) (*ScheduleConfig, error)
	ConfigByCityName(ctx context.Context, nome string) (*schedule.Config, error)
}

type CityServiceImpl struct {
	Repo CityRepository
}

func NewCityService(repo CityRepository) CityService {
	return &CityServiceImpl{Repo: repo}
}

func (s *CityServiceImpl) CreateCity(ctx context.Context, city *City) (*City, error) {
	if strings.TrimSpace(city.Nome) == "" {
		return nil, apperr.NewValidation("nome", "campo obrigatório")
	}

	city.ID = primitive.NewObjectID()
	city.Ativo = true
	city.CreatedAt = time.Now()
	city.UpdatedAt = time.Now()

	if err := s.Repo.Create(ctx, city); err != nil {
		return nil, err
	}
	return city, nil
}

func (s *CityServiceImpl) GetCity(ctx context.Context, id string) (*City, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *CityServiceImpl) ListCities(ctx context.Context) ([]City, error) {
	return s.Repo.List(ctx)
}

func (s *CityServiceImpl) UpdateCity(ctx context.Context, id string, city *City) error {
	if strings.TrimSpace(city.Nome) == "" {
		return apperr.NewValidation("nome", "campo obrigatório")
	}
	return s.Repo.Update(ctx, id, bson.M{
		"nome":       city.Nome,
		"ativo":      city.Ativo,
		"updated_at": time.Now(),
	})
}

func (s *CityServiceImpl) DeleteCity(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func (s *CityServiceImpl) GetScheduleConfig(ctx context.Context, cityID string) (*ScheduleConfig, error) {
	return s.Repo.GetScheduleConfig(ctx, cityID)
}

// PutScheduleConfig validates the window boundaries and interval before
// persisting; a config that cannot generate slots is rejected up front.
func (s *CityServiceImpl) PutScheduleConfig(ctx context.Context, cityID string, cfg schedule.Config) (*ScheduleConfig, error) {
	if _, err := s.Repo.FindByID(ctx, cityID); err != nil {
		return nil, err
	}

	if cfg.Intervalo <= 0 {
		return nil, apperr.NewValidation("intervalo", "deve ser maior que zero")
	}
	if _, err := schedule.GenerateSlots(cfg); err != nil {
		return nil, apperr.NewValidation("horarios", err.Error())
	}

	sc := &ScheduleConfig{
		CityID:    cityID,
		Config:    cfg,
		UpdatedAt: time.Now(),
	}
	if err := s.Repo.PutScheduleConfig(ctx, sc); err != nil {
		return nil, err
	}
	return sc, nil
}

// ConfigByCityName resolves a city by display name and returns its slot
// configuration. Used by the appointment availability computation.
func (s *CityServiceImpl) ConfigByCityName(ctx context.Context, nome string) (*schedule.Config, error) {
	c, err := s.Repo.FindByName(ctx, nome)
	if err != nil {
		return nil, err
	}
	sc, err := s.Repo.GetScheduleConfig(ctx, c.ID.Hex())
	if err != nil {
		return nil, err
	}
	return &sc.Config, nil
}
