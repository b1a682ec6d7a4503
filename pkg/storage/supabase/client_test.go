package supabase

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/healthybite-ma/storefront-backend/pkg/config"
)

func newTestServer(t *testing.T) (*httptest.Server, *Client) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/storage/v1/bucket/product-images", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/storage/v1/object/product-images/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch r.Method {
		case http.MethodPost:
			body, _ := io.ReadAll(r.Body)
			if len(body) == 0 {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			if r.Header.Get("x-upsert") != "true" {
				w.WriteHeader(http.StatusConflict)
				return
			}
			w.WriteHeader(http.StatusOK)
		case http.MethodDelete:
			if strings.HasSuffix(r.URL.Path, "/missing.png") {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client, err := NewClient(context.Background(), config.StorageConfig{
		ProjectURL: server.URL,
		ServiceKey: "test-key",
		Bucket:     "product-images",
	}, nil)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	return server, client
}

func TestUploadReturnsPublicURL(t *testing.T) {
	server, client := newTestServer(t)

	got, err := client.Upload(context.Background(), "products/avocado-toast.png", "image/png", strings.NewReader("png-bytes"))
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	want := server.URL + "/storage/v1/object/public/product-images/products/avocado-toast.png"
	if got != want {
		t.Fatalf("public url mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestRemoveToleratesMissingObject(t *testing.T) {
	_, client := newTestServer(t)

	if err := client.Remove(context.Background(), "products/missing.png"); err != nil {
		t.Fatalf("Remove of missing object should succeed, got %v", err)
	}
	if err := client.Remove(context.Background(), "products/present.png"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
}

func TestNewClientRejectsBadKey(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	_, err := NewClient(context.Background(), config.StorageConfig{
		ProjectURL: server.URL,
		ServiceKey: "wrong-key",
		Bucket:     "product-images",
	}, nil)
	if err == nil {
		t.Fatal("expected health check failure with rejected key")
	}
}

func TestEscapePathKeepsSeparators(t *testing.T) {
	if got := escapePath("products/green juice.png"); got != "products/green%20juice.png" {
		t.Fatalf("unexpected escaped path: %s", got)
	}
}
