package program

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/healthybite-ma/storefront-backend/pkg/db/models"
	"github.com/healthybite-ma/storefront-backend/pkg/pagination"
)

// Repository wires program persistence.
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

// FindByID loads the program by primary key.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Program, error) {
	var program models.Program
	if err := r.db.WithContext(ctx).First(&program, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &program, nil
}

// FindBySlug loads the program by its public slug.
func (r *Repository) FindBySlug(ctx context.Context, slug string) (*models.Program, error) {
	var program models.Program
	if err := r.db.WithContext(ctx).First(&program, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &program, nil
}

// List returns programs newest-first with keyset pagination.
func (r *Repository) List(ctx context.Context, cursor *pagination.Cursor, limit int) ([]models.Program, error) {
	q := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(pagination.LimitWithBuffer(limit))
	if cursor != nil {
		q = q.Where("(created_at, id) < (?, ?)", cursor.Timestamp, cursor.ID)
	}
	var programs []models.Program
	if err := q.Find(&programs).Error; err != nil {
		return nil, err
	}
	return programs, nil
}

// Create inserts the program.
func (r *Repository) Create(ctx context.Context, program *models.Program) (*models.Program, error) {
	if err := r.db.WithContext(ctx).Create(program).Error; err != nil {
		return nil, err
	}
	return program, nil
}

// Update saves all program columns.
func (r *Repository) Update(ctx context.Context, program *models.Program) (*models.Program, error) {
	if err := r.db.WithContext(ctx).Save(program).Error; err != nil {
		return nil, err
	}
	return program, nil
}

// Delete removes the program by primary key.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Program{}, "id = ?", id).Error
}
