package blog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/healthybite-ma/storefront-backend/pkg/db/models"
	"github.com/healthybite-ma/storefront-backend/pkg/pagination"
)

// Repository wires blog post persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// FindByID loads the post by primary key.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// List returns posts most recently published first, with keyset pagination on
// published_at.
func (r *Repository) List(ctx context.Context, cursor *pagination.Cursor, limit int) ([]models.BlogPost, error) {
	q := r.db.WithContext(ctx).
		Order("published_at DESC, id DESC").
		Limit(pagination.LimitWithBuffer(limit))
	if cursor != nil {
		q = q.Where("(published_at, id) < (?, ?)", cursor.Timestamp, cursor.ID)
	}
	var posts []models.BlogPost
	if err := q.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Create inserts the post.
func (r *Repository) Create(ctx context.Context, post *models.BlogPost) (*models.BlogPost, error) {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// Update saves all post columns.
func (r *Repository) Update(ctx context.Context, post *models.BlogPost) (*models.BlogPost, error) {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes the post by primary key.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.BlogPost{}, "id = ?", id).Error
}
