package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/healthybite-ma/storefront-backend/pkg/config"
	"github.com/healthybite-ma/storefront-backend/pkg/db"
	"github.com/healthybite-ma/storefront-backend/pkg/db/models"
	pkgerrors "github.com/healthybite-ma/storefront-backend/pkg/errors"
	"github.com/healthybite-ma/storefront-backend/pkg/security"
)

// RegisterRequest carries the credentials for a new admin account.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=12"`
}

// RegisterService creates admin accounts. Routes expose it outside prod only.
type RegisterService interface {
	Register(ctx context.Context, req RegisterRequest) (*AdminDTO, error)
}

type adminCreator interface {
	Create(ctx context.Context, admin *models.AdminUser) (*models.AdminUser, error)
}

type registerService struct {
	admins      adminCreator
	passwordCfg config.PasswordConfig
}

// NewRegisterService constructs the admin registration service.
func NewRegisterService(admins adminCreator, passwordCfg config.PasswordConfig) (RegisterService, error) {
	if admins == nil {
		return nil, fmt.Errorf("admin repository required")
	}
	return &registerService{admins: admins, passwordCfg: passwordCfg}, nil
}

func (s *registerService) Register(ctx context.Context, req RegisterRequest) (*AdminDTO, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email and password are required")
	}

	hash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hashing password")
	}

	admin, err := s.admins.Create(ctx, &models.AdminUser{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating admin user")
	}

	return &AdminDTO{ID: admin.ID, Email: admin.Email}, nil
}
