package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/healthybite-ma/storefront-backend/pkg/config"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "healthybite",
		ExpirationMinutes: 30,
	}
}

func TestMintAndParseAccessToken(t *testing.T) {
	cfg := testJWTConfig()
	adminID := uuid.New()

	signed, err := MintAccessToken(cfg, time.Now(), AccessTokenPayload{
		AdminID: adminID,
		Email:   "ops@healthybite.ma",
	})
	if err != nil {
		t.Fatalf("MintAccessToken failed: %v", err)
	}

	claims, err := ParseAccessToken(cfg, signed)
	if err != nil {
		t.Fatalf("ParseAccessToken failed: %v", err)
	}
	if claims.AdminID != adminID {
		t.Fatalf("unexpected admin id %s", claims.AdminID)
	}
	if claims.Email != "ops@healthybite.ma" {
		t.Fatalf("unexpected email %q", claims.Email)
	}
	if claims.ID == "" {
		t.Fatal("expected a generated jti")
	}
}

func TestParseAccessTokenRejectsWrongIssuer(t *testing.T) {
	cfg := testJWTConfig()
	signed, err := MintAccessToken(cfg, time.Now(), AccessTokenPayload{AdminID: uuid.New()})
	if err != nil {
		t.Fatalf("MintAccessToken failed: %v", err)
	}

	other := cfg
	other.Issuer = "someone-else"
	if _, err := ParseAccessToken(other, signed); err == nil {
		t.Fatal("expected issuer mismatch to fail")
	}
}

func TestParseAccessTokenRejectsExpired(t *testing.T) {
	cfg := testJWTConfig()
	signed, err := MintAccessToken(cfg, time.Now().Add(-2*time.Hour), AccessTokenPayload{AdminID: uuid.New()})
	if err != nil {
		t.Fatalf("MintAccessToken failed: %v", err)
	}

	if _, err := ParseAccessToken(cfg, signed); err == nil {
		t.Fatal("expected expired token to fail")
	}
}

func TestMintAccessTokenRequiresAdminID(t *testing.T) {
	if _, err := MintAccessToken(testJWTConfig(), time.Now(), AccessTokenPayload{}); err == nil {
		t.Fatal("expected missing admin id to fail")
	}
}
