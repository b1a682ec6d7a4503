package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/healthybite-ma/storefront-backend/api/middleware"
	cartsvc "github.com/healthybite-ma/storefront-backend/internal/cart"
	"github.com/healthybite-ma/storefront-backend/pkg/config"
)

type fakeCartService struct{}

func (fakeCartService) Get(context.Context, string) (*cartsvc.CartDTO, error) {
	return &cartsvc.CartDTO{Lines: []cartsvc.LineDTO{}}, nil
}

func (fakeCartService) AddItem(context.Context, string, uuid.UUID) (*cartsvc.CartDTO, error) {
	return &cartsvc.CartDTO{Lines: []cartsvc.LineDTO{}}, nil
}

func (fakeCartService) SetQuantity(context.Context, string, uuid.UUID, int) (*cartsvc.CartDTO, error) {
	return &cartsvc.CartDTO{Lines: []cartsvc.LineDTO{}}, nil
}

func (fakeCartService) RemoveItem(context.Context, string, uuid.UUID) (*cartsvc.CartDTO, error) {
	return &cartsvc.CartDTO{Lines: []cartsvc.LineDTO{}}, nil
}

func (fakeCartService) Clear(context.Context, string) error { return nil }

func (fakeCartService) Checkout(context.Context, string) (cartsvc.State, error) {
	return cartsvc.State{}, nil
}

func testRouter() http.Handler {
	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.JWT = config.JWTConfig{Secret: "secret", Issuer: "issuer", ExpirationMinutes: 10}

	return NewRouter(Deps{
		Config: cfg,
		Cart:   fakeCartService{},
	})
}

func TestHealthLive(t *testing.T) {
	resp := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	testRouter().ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body struct {
		Data map[string]string `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data["status"] != "live" {
		t.Fatalf("unexpected body %v", body.Data)
	}
}

func TestCartRouteIssuesSessionHeader(t *testing.T) {
	resp := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	testRouter().ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	token := resp.Header().Get(middleware.CartSessionHeader)
	if token == "" {
		t.Fatal("expected cart session header on response")
	}
	if _, err := uuid.Parse(token); err != nil {
		t.Fatalf("token %q is not a uuid", token)
	}
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	paths := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/admin/v1/products"},
		{http.MethodPost, "/api/admin/v1/programs"},
		{http.MethodPost, "/api/admin/v1/blog"},
		{http.MethodGet, "/api/admin/v1/contact-messages"},
		{http.MethodPost, "/api/admin/v1/media"},
		{http.MethodPost, "/api/admin/v1/auth/logout"},
	}

	router := testRouter()
	for _, p := range paths {
		resp := httptest.NewRecorder()
		req := httptest.NewRequest(p.method, p.path, nil)
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d", p.method, p.path, resp.Code)
		}
	}
}
