package contact

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/healthybite-ma/storefront-backend/pkg/db/models"
	"github.com/healthybite-ma/storefront-backend/pkg/enums"
	pkgerrors "github.com/healthybite-ma/storefront-backend/pkg/errors"
	"github.com/healthybite-ma/storefront-backend/pkg/pagination"
)

// MessageDTO is one contact form submission.
type MessageDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Reason    string    `json:"reason"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// MessageListResult carries one page of the admin inbox.
type MessageListResult struct {
	Messages   []MessageDTO `json:"messages"`
	NextCursor string       `json:"next_cursor,omitempty"`
}

// SubmitInput holds the public contact form payload.
type SubmitInput struct {
	Name    string
	Email   string
	Phone   *string
	Reason  enums.ContactReason
	Message string
}

// Service accepts public submissions and exposes the admin inbox.
type Service interface {
	Submit(ctx context.Context, input SubmitInput) (*MessageDTO, error)
	List(ctx context.Context, params pagination.Params) (*MessageListResult, error)
}

// Repository wires contact message persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts the message.
func (r *Repository) Create(ctx context.Context, message *models.ContactMessage) (*models.ContactMessage, error) {
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return nil, err
	}
	return message, nil
}

// List returns messages newest-first with keyset pagination.
func (r *Repository) List(ctx context.Context, cursor *pagination.Cursor, limit int) ([]models.ContactMessage, error) {
	q := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(pagination.LimitWithBuffer(limit))
	if cursor != nil {
		q = q.Where("(created_at, id) < (?, ?)", cursor.Timestamp, cursor.ID)
	}
	var messages []models.ContactMessage
	if err := q.Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

type service struct {
	repo *Repository
}

// NewService constructs a contact service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("contact repository required")
	}
	return &service{repo: repo}, nil
}

// Submit validates and stores one contact form submission.
func (s *service) Submit(ctx context.Context, input SubmitInput) (*MessageDTO, error) {
	switch {
	case strings.TrimSpace(input.Name) == "":
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	case strings.TrimSpace(input.Email) == "":
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	case !input.Reason.IsValid():
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown contact reason")
	case strings.TrimSpace(input.Message) == "":
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "message is required")
	}

	row := &models.ContactMessage{
		ID:      uuid.New(),
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Reason:  input.Reason,
		Message: input.Message,
	}

	created, err := s.repo.Create(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "storing contact message")
	}
	return toMessageDTO(created), nil
}

// List returns one page of the inbox newest-first.
func (s *service) List(ctx context.Context, params pagination.Params) (*MessageListResult, error) {
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid cursor")
	}

	rows, err := s.repo.List(ctx, cursor, params.Limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing contact messages")
	}

	page, hasMore := pagination.TrimPage(rows, params.Limit)
	result := &MessageListResult{Messages: make([]MessageDTO, 0, len(page))}
	for i := range page {
		result.Messages = append(result.Messages, *toMessageDTO(&page[i]))
	}
	if hasMore && len(page) > 0 {
		last := page[len(page)-1]
		result.NextCursor = pagination.EncodeCursor(pagination.Cursor{Timestamp: last.CreatedAt, ID: last.ID})
	}
	return result, nil
}

func toMessageDTO(m *models.ContactMessage) *MessageDTO {
	return &MessageDTO{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Reason:    m.Reason.String(),
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}
