package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgAuth "github.com/healthybite-ma/storefront-backend/pkg/auth"
	"github.com/healthybite-ma/storefront-backend/pkg/config"
	"github.com/healthybite-ma/storefront-backend/pkg/db/models"
	pkgerrors "github.com/healthybite-ma/storefront-backend/pkg/errors"
	"github.com/healthybite-ma/storefront-backend/pkg/security"
)

const invalidCredentialsMessage = "invalid credentials"

// Service defines the behavior needed by the admin auth controller.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Logout(ctx context.Context, accessID string) error
}

type adminRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
}

type sessionManager interface {
	Create(ctx context.Context, accessID string) error
	Revoke(ctx context.Context, accessID string) error
}

type service struct {
	admins  adminRepository
	session sessionManager
	jwtCfg  config.JWTConfig
	now     func() time.Time
}

// NewService constructs the admin auth service.
func NewService(admins adminRepository, session sessionManager, jwtCfg config.JWTConfig) (Service, error) {
	if admins == nil {
		return nil, fmt.Errorf("admin repository required")
	}
	if session == nil {
		return nil, fmt.Errorf("session manager required")
	}
	if jwtCfg.Secret == "" {
		return nil, fmt.Errorf("jwt secret required")
	}
	return &service{
		admins:  admins,
		session: session,
		jwtCfg:  jwtCfg,
		now:     time.Now,
	}, nil
}

// Login verifies the credentials, mints an access token, and registers the
// session. Unknown emails and wrong passwords return the same message.
func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email and password are required")
	}

	admin, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading admin user")
	}

	ok, err := security.VerifyPassword(req.Password, admin.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verifying password")
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}

	accessID := pkgAuth.NewAccessID()
	token, err := pkgAuth.MintAccessToken(s.jwtCfg, s.now(), pkgAuth.AccessTokenPayload{
		AdminID: admin.ID,
		Email:   admin.Email,
		JTI:     accessID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "minting access token")
	}

	if err := s.session.Create(ctx, accessID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "registering session")
	}

	return &LoginResponse{
		AccessToken: token,
		ExpiresIn:   s.jwtCfg.ExpirationMinutes * 60,
		Admin: AdminDTO{
			ID:    admin.ID,
			Email: admin.Email,
		},
	}, nil
}

// Logout revokes the session tied to the token's access id.
func (s *service) Logout(ctx context.Context, accessID string) error {
	if strings.TrimSpace(accessID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "access id is required")
	}
	if err := s.session.Revoke(ctx, accessID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "revoking session")
	}
	return nil
}

// AdminDTO is the logged-in operator payload.
type AdminDTO struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// LoginRequest carries the admin credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the minted token and the operator identity.
type LoginResponse struct {
	AccessToken string   `json:"access_token"`
	ExpiresIn   int      `json:"expires_in"`
	Admin       AdminDTO `json:"admin"`
}
