package media

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/healthybite-ma/storefront-backend/pkg/config"
	pkgerrors "github.com/healthybite-ma/storefront-backend/pkg/errors"
)

var allowedImageTypes = []string{"image/png", "image/jpeg", "image/webp", "image/gif"}

var allowedFolders = map[string]struct{}{
	"products": {},
	"programs": {},
	"blog":     {},
}

type objectStore interface {
	Upload(ctx context.Context, objectPath string, contentType string, body io.Reader) (string, error)
	Remove(ctx context.Context, objectPath string) error
}

// Service exposes direct image uploads for the back office.
type Service interface {
	UploadImage(ctx context.Context, input UploadInput) (*UploadOutput, error)
	RemoveImage(ctx context.Context, objectPath string) error
}

type service struct {
	store          objectStore
	maxUploadBytes int64
}

// NewService constructs a media service backed by the provided object store.
func NewService(store objectStore, cfg config.MediaConfig) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("object store required")
	}
	maxMB := cfg.MaxUploadMB
	if maxMB <= 0 {
		maxMB = 5
	}
	return &service{
		store:          store,
		maxUploadBytes: int64(maxMB) * 1024 * 1024,
	}, nil
}

// UploadInput models an incoming multipart image part.
type UploadInput struct {
	Folder      string
	FileName    string
	ContentType string
	SizeBytes   int64
	Body        io.Reader
}

// UploadOutput carries the stored object path and its public URL.
type UploadOutput struct {
	ObjectPath string `json:"object_path"`
	PublicURL  string `json:"public_url"`
}

func (s *service) UploadImage(ctx context.Context, input UploadInput) (*UploadOutput, error) {
	folder := strings.ToLower(strings.TrimSpace(input.Folder))
	if _, ok := allowedFolders[folder]; !ok {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown upload folder")
	}

	fileName := strings.TrimSpace(input.FileName)
	if fileName == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "file name is required")
	}

	if input.SizeBytes <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "file size must be positive")
	}
	if input.SizeBytes > s.maxUploadBytes {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("file size must be at most %d bytes", s.maxUploadBytes))
	}

	contentType := strings.TrimSpace(input.ContentType)
	if !isAllowedImageType(contentType) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "only png, jpeg, webp, and gif images are accepted")
	}

	if input.Body == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "file body is required")
	}

	objectPath := buildObjectPath(folder, uuid.New(), fileName)

	// LimitReader guards against clients lying about the declared size.
	body := io.LimitReader(input.Body, s.maxUploadBytes+1)
	publicURL, err := s.store.Upload(ctx, objectPath, contentType, body)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "uploading image")
	}

	return &UploadOutput{
		ObjectPath: objectPath,
		PublicURL:  publicURL,
	}, nil
}

func (s *service) RemoveImage(ctx context.Context, objectPath string) error {
	trimmed := strings.Trim(strings.TrimSpace(objectPath), "/")
	if trimmed == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "object path is required")
	}
	if strings.Contains(trimmed, "..") {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid object path")
	}
	if err := s.store.Remove(ctx, trimmed); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "removing image")
	}
	return nil
}

func isAllowedImageType(contentType string) bool {
	for _, candidate := range allowedImageTypes {
		if strings.EqualFold(candidate, contentType) {
			return true
		}
	}
	return false
}

func buildObjectPath(folder string, id uuid.UUID, fileName string) string {
	cleanName := sanitizeFileName(fileName)
	if cleanName == "" {
		cleanName = id.String()
	}
	return fmt.Sprintf("%s/%s-%s", folder, id.String(), cleanName)
}

func sanitizeFileName(name string) string {
	clean := path.Base(strings.TrimSpace(name))
	if clean == "." || clean == "/" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(clean))
	for _, r := range clean {
		switch {
		case r == '/' || r == '\\' || unicode.IsControl(r):
			continue
		case unicode.IsSpace(r):
			b.WriteRune('-')
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return strings.Trim(b.String(), "-_.")
}
