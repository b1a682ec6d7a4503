package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgAuth "github.com/healthybite-ma/storefront-backend/pkg/auth"
	"github.com/healthybite-ma/storefront-backend/pkg/config"
	"github.com/healthybite-ma/storefront-backend/pkg/db/models"
	pkgerrors "github.com/healthybite-ma/storefront-backend/pkg/errors"
	"github.com/healthybite-ma/storefront-backend/pkg/security"
)

type stubAdmins struct {
	admins map[string]*models.AdminUser
}

func (s *stubAdmins) FindByEmail(_ context.Context, email string) (*models.AdminUser, error) {
	if admin, ok := s.admins[email]; ok {
		return admin, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type stubSessions struct {
	created []string
	revoked []string
}

func (s *stubSessions) Create(_ context.Context, accessID string) error {
	s.created = append(s.created, accessID)
	return nil
}

func (s *stubSessions) Revoke(_ context.Context, accessID string) error {
	s.revoked = append(s.revoked, accessID)
	return nil
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "healthybite-test",
		ExpirationMinutes: 30,
		SessionTTLMinutes: 60,
	}
}

func newLoginFixture(t *testing.T) (Service, *stubSessions, *models.AdminUser) {
	t.Helper()

	hash, err := security.HashPassword("correct horse", config.PasswordConfig{})
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	admin := &models.AdminUser{
		ID:           uuid.New(),
		Email:        "admin@healthybite.ma",
		PasswordHash: hash,
	}
	sessions := &stubSessions{}
	svc, err := NewService(&stubAdmins{admins: map[string]*models.AdminUser{admin.Email: admin}}, sessions, testJWTConfig())
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	return svc, sessions, admin
}

func TestLoginMintsVerifiableToken(t *testing.T) {
	svc, sessions, admin := newLoginFixture(t)

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    "Admin@HealthyBite.ma",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.Admin.ID != admin.ID {
		t.Fatal("unexpected admin identity")
	}
	if resp.ExpiresIn != 30*60 {
		t.Fatalf("unexpected expires_in %d", resp.ExpiresIn)
	}
	if len(sessions.created) != 1 {
		t.Fatalf("expected one session, got %d", len(sessions.created))
	}

	claims, err := pkgAuth.ParseAccessToken(testJWTConfig(), resp.AccessToken)
	if err != nil {
		t.Fatalf("token does not parse: %v", err)
	}
	if claims.AdminID != admin.ID {
		t.Fatal("token carries wrong admin id")
	}
	if claims.ID != sessions.created[0] {
		t.Fatal("token jti does not match registered session")
	}
	if exp := claims.ExpiresAt.Time; time.Until(exp) > 31*time.Minute {
		t.Fatalf("token lives too long: %s", exp)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, sessions, _ := newLoginFixture(t)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "admin@healthybite.ma",
		Password: "wrong",
	})
	if coded := pkgerrors.As(err); coded.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected UNAUTHORIZED, got %v", err)
	}
	if len(sessions.created) != 0 {
		t.Fatal("no session should be created on failure")
	}
}

func TestLoginUnknownEmailSameMessage(t *testing.T) {
	svc, _, _ := newLoginFixture(t)

	_, unknownErr := svc.Login(context.Background(), LoginRequest{Email: "nobody@healthybite.ma", Password: "x"})
	_, wrongErr := svc.Login(context.Background(), LoginRequest{Email: "admin@healthybite.ma", Password: "x"})

	if pkgerrors.As(unknownErr).Message() != pkgerrors.As(wrongErr).Message() {
		t.Fatal("unknown email and wrong password must be indistinguishable")
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	svc, sessions, _ := newLoginFixture(t)

	if err := svc.Logout(context.Background(), "jti-42"); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if len(sessions.revoked) != 1 || sessions.revoked[0] != "jti-42" {
		t.Fatalf("unexpected revocations: %v", sessions.revoked)
	}
}
