package product

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/healthybite-ma/storefront-backend/pkg/db"
	"github.com/healthybite-ma/storefront-backend/pkg/db/models"
	"github.com/healthybite-ma/storefront-backend/pkg/enums"
	pkgerrors "github.com/healthybite-ma/storefront-backend/pkg/errors"
	"github.com/healthybite-ma/storefront-backend/pkg/pagination"
	"github.com/healthybite-ma/storefront-backend/pkg/types"
)

// Service exposes catalog listing and admin product management.
type Service interface {
	List(ctx context.Context, input ListProductsInput) (*ProductListResult, error)
	GetBySlug(ctx context.Context, slug string) (*ProductDTO, error)
	Create(ctx context.Context, input CreateProductInput) (*ProductDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*ProductDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ListProductsInput captures the inputs needed to paginate/filter the catalog.
type ListProductsInput struct {
	Filters    ListFilters
	Pagination pagination.Params
}

// CreateProductInput holds the validated payload to create a product.
type CreateProductInput struct {
	Slug            string
	Name            string
	Category        enums.Category
	SubCategory     enums.SubCategory
	Price           int
	Description     string
	FullDescription string
	Image           string
	Calories        int
	Protein         string
	Fiber           string
	Carbs           string
	Fats            string
	Ingredients     types.Ingredients
}

// UpdateProductInput holds optional mutation values for a product.
type UpdateProductInput struct {
	Slug            *string
	Name            *string
	Category        *enums.Category
	SubCategory     *enums.SubCategory
	Price           *int
	Description     *string
	FullDescription *string
	Image           *string
	Calories        *int
	Protein         *string
	Fiber           *string
	Carbs           *string
	Fats            *string
	Ingredients     *types.Ingredients
}

type service struct {
	repo *Repository
}

// NewService constructs a product service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	return &service{repo: repo}, nil
}

// List returns one page of the catalog newest-first.
func (s *service) List(ctx context.Context, input ListProductsInput) (*ProductListResult, error) {
	if input.Filters.Category != nil && !input.Filters.Category.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown category")
	}
	if input.Filters.SubCategory != nil && !input.Filters.SubCategory.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown sub category")
	}
	cursor, err := pagination.ParseCursor(input.Pagination.Cursor)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid cursor")
	}

	rows, err := s.repo.List(ctx, input.Filters, cursor, input.Pagination.Limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing products")
	}

	page, hasMore := pagination.TrimPage(rows, input.Pagination.Limit)
	result := &ProductListResult{Products: make([]ProductDTO, 0, len(page))}
	for i := range page {
		result.Products = append(result.Products, *toProductDTO(&page[i]))
	}
	if hasMore && len(page) > 0 {
		last := page[len(page)-1]
		result.NextCursor = pagination.EncodeCursor(pagination.Cursor{Timestamp: last.CreatedAt, ID: last.ID})
	}
	return result, nil
}

// GetBySlug loads one product for the public detail page.
func (s *service) GetBySlug(ctx context.Context, slug string) (*ProductDTO, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "slug is required")
	}
	row, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading product")
	}
	return toProductDTO(row), nil
}

// Create validates the payload and inserts the product.
func (s *service) Create(ctx context.Context, input CreateProductInput) (*ProductDTO, error) {
	if err := validateCreate(input); err != nil {
		return nil, err
	}

	row := &models.Product{
		ID:              uuid.New(),
		Slug:            input.Slug,
		Name:            input.Name,
		Category:        input.Category,
		SubCategory:     input.SubCategory,
		Price:           input.Price,
		Description:     input.Description,
		FullDescription: input.FullDescription,
		Image:           input.Image,
		Calories:        input.Calories,
		Protein:         input.Protein,
		Fiber:           input.Fiber,
		Carbs:           input.Carbs,
		Fats:            input.Fats,
		Ingredients:     input.Ingredients,
	}

	created, err := s.repo.Create(ctx, row)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "product slug already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating product")
	}
	return toProductDTO(created), nil
}

// Update applies the provided fields.
func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*ProductDTO, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading product")
	}

	if err := applyUpdate(row, input); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, row)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "product slug already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating product")
	}
	return toProductDTO(updated), nil
}

// Delete removes the product.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deleting product")
	}
	return nil
}

func validateCreate(input CreateProductInput) error {
	switch {
	case strings.TrimSpace(input.Slug) == "":
		return pkgerrors.New(pkgerrors.CodeValidation, "slug is required")
	case strings.TrimSpace(input.Name) == "":
		return pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	case !input.Category.IsValid():
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown category")
	case !input.SubCategory.IsValid():
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown sub category")
	case input.Price < 0:
		return pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative")
	case input.Calories < 0:
		return pkgerrors.New(pkgerrors.CodeValidation, "calories cannot be negative")
	}
	return nil
}

func applyUpdate(row *models.Product, input UpdateProductInput) error {
	if input.Slug != nil {
		if strings.TrimSpace(*input.Slug) == "" {
			return pkgerrors.New(pkgerrors.CodeValidation, "slug cannot be blank")
		}
		row.Slug = *input.Slug
	}
	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return pkgerrors.New(pkgerrors.CodeValidation, "name cannot be blank")
		}
		row.Name = *input.Name
	}
	if input.Category != nil {
		if !input.Category.IsValid() {
			return pkgerrors.New(pkgerrors.CodeValidation, "unknown category")
		}
		row.Category = *input.Category
	}
	if input.SubCategory != nil {
		if !input.SubCategory.IsValid() {
			return pkgerrors.New(pkgerrors.CodeValidation, "unknown sub category")
		}
		row.SubCategory = *input.SubCategory
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative")
		}
		row.Price = *input.Price
	}
	if input.Description != nil {
		row.Description = *input.Description
	}
	if input.FullDescription != nil {
		row.FullDescription = *input.FullDescription
	}
	if input.Image != nil {
		row.Image = *input.Image
	}
	if input.Calories != nil {
		if *input.Calories < 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "calories cannot be negative")
		}
		row.Calories = *input.Calories
	}
	if input.Protein != nil {
		row.Protein = *input.Protein
	}
	if input.Fiber != nil {
		row.Fiber = *input.Fiber
	}
	if input.Carbs != nil {
		row.Carbs = *input.Carbs
	}
	if input.Fats != nil {
		row.Fats = *input.Fats
	}
	if input.Ingredients != nil {
		row.Ingredients = *input.Ingredients
	}
	return nil
}
