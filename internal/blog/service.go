package blog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/healthybite-ma/storefront-backend/pkg/db/models"
	pkgerrors "github.com/healthybite-ma/storefront-backend/pkg/errors"
	"github.com/healthybite-ma/storefront-backend/pkg/pagination"
)

// PostDTO is the blog post payload returned to clients.
type PostDTO struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt,omitempty"`
	Content     string    `json:"content"`
	Author      string    `json:"author,omitempty"`
	Image       string    `json:"image,omitempty"`
	PublishedAt time.Time `json:"published_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PostListResult carries one page of posts plus the follow-up cursor.
type PostListResult struct {
	Posts      []PostDTO `json:"posts"`
	NextCursor string    `json:"next_cursor,omitempty"`
}

// CreatePostInput holds the validated payload to create a post. A zero
// PublishedAt defaults to now.
type CreatePostInput struct {
	Title       string
	Excerpt     string
	Content     string
	Author      string
	Image       string
	PublishedAt time.Time
}

// UpdatePostInput holds optional mutation values for a post.
type UpdatePostInput struct {
	Title       *string
	Excerpt     *string
	Content     *string
	Author      *string
	Image       *string
	PublishedAt *time.Time
}

// Service exposes blog listing and admin post management.
type Service interface {
	List(ctx context.Context, params pagination.Params) (*PostListResult, error)
	GetByID(ctx context.Context, id uuid.UUID) (*PostDTO, error)
	Create(ctx context.Context, input CreatePostInput) (*PostDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdatePostInput) (*PostDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo *Repository
	now  func() time.Time
}

// NewService constructs a blog service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("blog repository required")
	}
	return &service{repo: repo, now: time.Now}, nil
}

// List returns one page of posts most recently published first.
func (s *service) List(ctx context.Context, params pagination.Params) (*PostListResult, error) {
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid cursor")
	}

	rows, err := s.repo.List(ctx, cursor, params.Limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing posts")
	}

	page, hasMore := pagination.TrimPage(rows, params.Limit)
	result := &PostListResult{Posts: make([]PostDTO, 0, len(page))}
	for i := range page {
		result.Posts = append(result.Posts, *toPostDTO(&page[i]))
	}
	if hasMore && len(page) > 0 {
		last := page[len(page)-1]
		result.NextCursor = pagination.EncodeCursor(pagination.Cursor{Timestamp: last.PublishedAt, ID: last.ID})
	}
	return result, nil
}

// GetByID loads one post.
func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*PostDTO, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "post id is required")
	}
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "post not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading post")
	}
	return toPostDTO(row), nil
}

// Create validates the payload and inserts the post.
func (s *service) Create(ctx context.Context, input CreatePostInput) (*PostDTO, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "title is required")
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "content is required")
	}

	publishedAt := input.PublishedAt
	if publishedAt.IsZero() {
		publishedAt = s.now().UTC()
	}

	row := &models.BlogPost{
		ID:          uuid.New(),
		Title:       input.Title,
		Excerpt:     input.Excerpt,
		Content:     input.Content,
		Author:      input.Author,
		Image:       input.Image,
		PublishedAt: publishedAt,
	}

	created, err := s.repo.Create(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating post")
	}
	return toPostDTO(created), nil
}

// Update applies the provided fields.
func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdatePostInput) (*PostDTO, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "post id is required")
	}

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "post not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading post")
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "title cannot be blank")
		}
		row.Title = *input.Title
	}
	if input.Excerpt != nil {
		row.Excerpt = *input.Excerpt
	}
	if input.Content != nil {
		if strings.TrimSpace(*input.Content) == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "content cannot be blank")
		}
		row.Content = *input.Content
	}
	if input.Author != nil {
		row.Author = *input.Author
	}
	if input.Image != nil {
		row.Image = *input.Image
	}
	if input.PublishedAt != nil {
		row.PublishedAt = *input.PublishedAt
	}

	updated, err := s.repo.Update(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating post")
	}
	return toPostDTO(updated), nil
}

// Delete removes the post.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "post id is required")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deleting post")
	}
	return nil
}

func toPostDTO(m *models.BlogPost) *PostDTO {
	return &PostDTO{
		ID:          m.ID,
		Title:       m.Title,
		Excerpt:     m.Excerpt,
		Content:     m.Content,
		Author:      m.Author,
		Image:       m.Image,
		PublishedAt: m.PublishedAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
