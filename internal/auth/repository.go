package auth

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/healthybite-ma/storefront-backend/pkg/db/models"
)

// Repository wires admin user persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByEmail loads the admin account for the normalized email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	var admin models.AdminUser
	if err := r.db.WithContext(ctx).First(&admin, "email = ?", strings.ToLower(email)).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// Create inserts the admin account.
func (r *Repository) Create(ctx context.Context, admin *models.AdminUser) (*models.AdminUser, error) {
	admin.Email = strings.ToLower(admin.Email)
	if err := r.db.WithContext(ctx).Create(admin).Error; err != nil {
		return nil, err
	}
	return admin, nil
}
