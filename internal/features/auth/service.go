package auth

import (
	"context"
	"errors"

	"go-clinic/internal/access"
	"go-clinic/internal/apperr"
	"go-clinic/internal/features/user"
	"go-clinic/pkg/utils"

	"github.com/alexedwards/argon2id"
	"go.uber.org/zap"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *user.User, error)
	Register(ctx context.Context, req *user.CreateUserRequest) (*user.User, error)
}

type AuthServiceImpl struct {
	UserRepo    user.UserRepository
	UserService user.UserService
	Logger      *zap.Logger
}

func NewAuthService(userRepo user.UserRepository, userService user.UserService, logger *zap.Logger) AuthService {
	return &AuthServiceImpl{
		UserRepo:    userRepo,
		UserService: userService,
		Logger:      logger,
	}
}

// Login verifies the credential pair and then applies the panel gate: only
// enabled accounts whose role normalizes to admin get a session. The gate is
// evaluated after the password check so a valid credential for a non-admin
// account surfaces as an authorization error, not a credential error.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (string, *user.User, error) {
	email = user.NormalizeEmail(email)

	usr, err := s.UserRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return "", nil, apperr.ErrInvalidCredentials
		}
		return "", nil, err
	}

	match, err := argon2id.ComparePasswordAndHash(password, usr.PasswordHash)
	if err != nil || !match {
		return "", nil, apperr.ErrInvalidCredentials
	}

	if !access.IsAdmin(usr.Role) || usr.Disabled {
		s.Logger.Warn("login blocked by panel gate",
			zap.String("email", email),
			zap.String("role", usr.Role),
			zap.Bool("disabled", usr.Disabled))
		return "", nil, apperr.ErrNotAuthorized
	}

	token, err := utils.GenerateToken(usr.ID.Hex(), usr.Email, usr.Role)
	if err != nil {
		return "", nil, err
	}

	s.Logger.Info("login", zap.String("email", email))
	return token, usr, nil
}

// Register creates an account after checking the normalized email is not
// already taken. CreateUser stores the normalized form, so the duplicate
// check has to query with it too.
func (s *AuthServiceImpl) Register(ctx context.Context, req *user.CreateUserRequest) (*user.User, error) {
	if existing, err := s.UserRepo.FindByEmail(ctx, user.NormalizeEmail(req.Email)); err == nil && existing != nil {
		return nil, apperr.NewValidation("email", "já cadastrado")
	}
	return s.UserService.CreateUser(ctx, req)
}
