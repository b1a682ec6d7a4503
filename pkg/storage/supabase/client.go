package supabase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/healthybite-ma/storefront-backend/pkg/config"
	"github.com/healthybite-ma/storefront-backend/pkg/logger"
)

const (
	pingTimeout = 5 * time.Second
)

// Client talks to the Supabase Storage REST API with the project service key.
type Client struct {
	httpClient    *http.Client
	projectURL    string
	serviceKey    string
	defaultBucket string
}

type Pinger interface {
	Ping(ctx context.Context) error
}

func closeBody(ctx context.Context, logg *logger.Logger, body io.Closer, msg string) {
	if body == nil {
		return
	}
	if err := body.Close(); err != nil && logg != nil {
		logg.Warn(ctx, msg)
	}
}

func NewClient(ctx context.Context, cfg config.StorageConfig, logg *logger.Logger) (*Client, error) {
	if cfg.ProjectURL == "" {
		return nil, errors.New("storage project url is required")
	}
	if cfg.ServiceKey == "" {
		return nil, errors.New("storage service key is required")
	}
	if cfg.Bucket == "" {
		return nil, errors.New("storage bucket is required")
	}

	client := &Client{
		httpClient:    &http.Client{Timeout: 30 * time.Second},
		projectURL:    strings.TrimRight(cfg.ProjectURL, "/"),
		serviceKey:    cfg.ServiceKey,
		defaultBucket: cfg.Bucket,
	}

	if err := client.Ping(ctx); err != nil {
		return nil, fmt.Errorf("storage health check failed: %w", err)
	}

	if logg != nil {
		logg.Info(ctx, "supabase storage client initialized")
	}

	return client, nil
}

func (c *Client) DefaultBucket() string {
	if c == nil {
		return ""
	}
	return c.defaultBucket
}

func (c *Client) Close() error {
	return nil
}

// Ping checks that the bucket exists and the service key is accepted.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.httpClient == nil {
		return errors.New("storage client not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	u := fmt.Sprintf("%s/storage/v1/bucket/%s", c.projectURL, url.PathEscape(c.defaultBucket))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		if len(b) > 0 {
			return fmt.Errorf("storage bucket check failed: %s: %s", resp.Status, strings.TrimSpace(string(b)))
		}
		return fmt.Errorf("storage bucket check failed: %s", resp.Status)
	}

	return nil
}

// Upload stores the object under the default bucket and returns its public URL.
// Existing objects at the same path are overwritten.
func (c *Client) Upload(ctx context.Context, objectPath string, contentType string, body io.Reader) (string, error) {
	if c == nil || c.httpClient == nil {
		return "", errors.New("storage client not initialized")
	}
	objectPath = strings.TrimLeft(objectPath, "/")
	if objectPath == "" {
		return "", errors.New("object path is required")
	}

	u := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.projectURL, url.PathEscape(c.defaultBucket), escapePath(objectPath))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, body)
	if err != nil {
		return "", err
	}
	c.authorize(req)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("x-upsert", "true")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { closeBody(ctx, nil, resp.Body, "storage: closing response body failed") }()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("storage upload failed: %s: %s", resp.Status, strings.TrimSpace(string(b)))
	}

	return c.PublicURL(objectPath), nil
}

// Remove deletes the object from the default bucket. Missing objects are not
// an error.
func (c *Client) Remove(ctx context.Context, objectPath string) error {
	if c == nil || c.httpClient == nil {
		return errors.New("storage client not initialized")
	}
	objectPath = strings.TrimLeft(objectPath, "/")
	if objectPath == "" {
		return errors.New("object path is required")
	}

	u := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.projectURL, url.PathEscape(c.defaultBucket), escapePath(objectPath))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, u, nil)
	if err != nil {
		return err
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { closeBody(ctx, nil, resp.Body, "storage: closing response body failed") }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNotFound {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("storage remove failed: %s: %s", resp.Status, strings.TrimSpace(string(b)))
	}

	return nil
}

// PublicURL returns the unauthenticated URL for an object in the default
// bucket. The bucket must be marked public in the project.
func (c *Client) PublicURL(objectPath string) string {
	if c == nil {
		return ""
	}
	objectPath = strings.TrimLeft(objectPath, "/")
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.projectURL, url.PathEscape(c.defaultBucket), escapePath(objectPath))
}

func (c *Client) authorize(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("apikey", c.serviceKey)
}

// escapePath escapes each segment but keeps the separators.
func escapePath(objectPath string) string {
	parts := strings.Split(objectPath, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}
