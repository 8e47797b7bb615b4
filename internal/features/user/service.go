package user

import (
	"context"
	"strings"
	"time"

	"go-clinic/internal/access"
	"go-clinic/internal/apperr"

	"github.com/alexedwards/argon2id"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserService interface {
	CreateUser(ctx context.Context, req *CreateUserRequest) (*User, error)
	GetUser(ctx context.Context, id string) (*User, error)
	ListUsers(ctx context.Context) ([]User, error)
	UpdateUser(ctx context.Context, id string, req *UpdateUserRequest) (*User, error)
	DeleteUser(ctx context.Context, id string) error
}

type UserServiceImpl struct {
	Repo UserRepository
}

// NormalizeEmail lowercases and trims an email. Both the stored value and
// every lookup go through this, so case never splits an account in two.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func NewUserService(repo UserRepository) UserService {
	return &UserServiceImpl{Repo: repo}
}

func (s *UserServiceImpl) CreateUser(ctx context.Context, req *CreateUserRequest) (*User, error) {
	if strings.TrimSpace(req.Email) == "" {
		return nil, apperr.NewValidation("email", "campo obrigatório")
	}
	if req.Password == "" {
		return nil, apperr.NewValidation("password", "campo obrigatório")
	}
	if req.Role == "" {
		return nil, apperr.NewValidation("role", "campo obrigatório")
	}

	hash, err := argon2id.CreateHash(req.Password, argon2id.DefaultParams)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	u := &User{
		ID:           primitive.NewObjectID(),
		Email:        NormalizeEmail(req.Email),
		Nome:         req.Nome,
		Role:         access.NormalizeRole(req.Role),
		Permissions:  access.EffectivePermissions(req.Role, req.Permissions),
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserServiceImpl) GetUser(ctx context.Context, id string) (*User, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]User, error) {
	return s.Repo.List(ctx)
}

// UpdateUser composes the persistence patch. Whenever the resulting role is
// admin-equivalent, the persisted permission list is forced to the full set,
// never a partial one.
func (s *UserServiceImpl) UpdateUser(ctx context.Context, id string, req *UpdateUserRequest) (*User, error) {
	existing, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch := bson.M{"updated_at": time.Now()}

	role := existing.Role
	if req.Role != nil {
		role = access.NormalizeRole(*req.Role)
		patch["role"] = role
	}

	stored := existing.Permissions
	if req.Permissions != nil {
		stored = *req.Permissions
	}
	// Admin override is re-applied on every write, not just when the
	// permissions field changed
	if req.Permissions != nil || req.Role != nil || access.IsAdmin(role) {
		patch["permissions"] = access.EffectivePermissions(role, stored)
	}

	if req.Nome != nil {
		patch["nome"] = *req.Nome
	}
	if req.Disabled != nil {
		patch["disabled"] = *req.Disabled
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := argon2id.CreateHash(*req.Password, argon2id.DefaultParams)
		if err != nil {
			return nil, err
		}
		patch["password_hash"] = hash
	}

	if err := s.Repo.Update(ctx, id, patch); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(ctx, id)
}

func (s *UserServiceImpl) DeleteUser(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
