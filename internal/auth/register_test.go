package auth

import (
	"context"
	"testing"

	"github.com/healthybite-ma/storefront-backend/pkg/config"
	"github.com/healthybite-ma/storefront-backend/pkg/db/models"
	pkgerrors "github.com/healthybite-ma/storefront-backend/pkg/errors"
	"github.com/healthybite-ma/storefront-backend/pkg/security"
)

type stubAdminCreator struct {
	created []*models.AdminUser
	err     error
}

func (s *stubAdminCreator) Create(_ context.Context, admin *models.AdminUser) (*models.AdminUser, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = append(s.created, admin)
	return admin, nil
}

func TestRegisterHashesPassword(t *testing.T) {
	creator := &stubAdminCreator{}
	svc, err := NewRegisterService(creator, config.PasswordConfig{})
	if err != nil {
		t.Fatalf("NewRegisterService failed: %v", err)
	}

	dto, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "New.Admin@HealthyBite.ma",
		Password: "a long enough password",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if dto.Email != "new.admin@healthybite.ma" {
		t.Fatalf("email not normalized: %q", dto.Email)
	}
	if len(creator.created) != 1 {
		t.Fatalf("expected one insert, got %d", len(creator.created))
	}

	stored := creator.created[0]
	if stored.PasswordHash == "a long enough password" {
		t.Fatal("password stored in clear")
	}
	ok, err := security.VerifyPassword("a long enough password", stored.PasswordHash)
	if err != nil || !ok {
		t.Fatalf("stored hash does not verify: ok=%v err=%v", ok, err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	creator := &stubAdminCreator{err: errDuplicateEmail()}
	svc, err := NewRegisterService(creator, config.PasswordConfig{})
	if err != nil {
		t.Fatalf("NewRegisterService failed: %v", err)
	}

	_, err = svc.Register(context.Background(), RegisterRequest{
		Email:    "admin@healthybite.ma",
		Password: "a long enough password",
	})
	if coded := pkgerrors.As(err); coded.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected CONFLICT, got %v", err)
	}
}

func errDuplicateEmail() error {
	return &mockUniqueError{}
}

type mockUniqueError struct{}

func (*mockUniqueError) Error() string {
	return `duplicate key value violates unique constraint "idx_admin_users_email"`
}
