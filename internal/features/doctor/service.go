package doctor

import (
	"context"
	"strings"
	"time"

	"go-clinic/internal/apperr"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DoctorService interface {
	CreateDoctor(ctx context.Context, doctor *Doctor) (*Doctor, error)
	GetDoctor(ctx context.Context, id string) (*Doctor, error)
	ListDoctors(ctx context.Context, cidade string) ([]Doctor, error)
	UpdateDoctor(ctx context.Context, id string, doctor *Doctor) error
	DeleteDoctor(ctx context.Context, id string) error
}

type DoctorServiceImpl struct {
	Repo DoctorRepository
}

func NewDoctorService(repo DoctorRepository) DoctorService {
	return &DoctorServiceImpl{Repo: repo}
}

func (s *DoctorServiceImpl) CreateDoctor(ctx context.Context, doctor *Doctor) (*Doctor, error) {
	if strings.TrimSpace(doctor.Nome) == "" {
		return nil, apperr.NewValidation("nome", "campo obrigatório")
	}

	doctor.ID = primitive.NewObjectID()
	doctor.Ativo = true
	doctor.CreatedAt = time.Now()
	doctor.UpdatedAt = time.Now()

	if err := s.Repo.Create(ctx, doctor); err != nil {
		return nil, err
	}
	return doctor, nil
}

func (s *DoctorServiceImpl) GetDoctor(ctx context.Context, id string) (*Doctor, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *DoctorServiceImpl) ListDoctors(ctx context.Context, cidade string) ([]Doctor, error) {
	filter := bson.M{}
	if cidade != "" {
		filter["cidades"] = cidade
	}
	return s.Repo.List(ctx, filter)
}

func (s *DoctorServiceImpl) UpdateDoctor(ctx context.Context, id string, doctor *Doctor) error {
	if strings.TrimSpace(doctor.Nome) == "" {
		return apperr.NewValidation("nome", "campo obrigatório")
	}
	return s.Repo.Update(ctx, id, bson.M{
		"nome":          doctor.Nome,
		"crm":           doctor.CRM,
		"especialidade": doctor.Especialidade,
		"cidades":       doctor.Cidades,
		"ativo":         doctor.Ativo,
		"updated_at":    time.Now(),
	})
}

func (s *DoctorServiceImpl) DeleteDoctor(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
