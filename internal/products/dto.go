package product

import (
	"time"

	"github.com/google/uuid"

	"github.com/healthybite-ma/storefront-backend/pkg/db/models"
	"github.com/healthybite-ma/storefront-backend/pkg/types"
)

// ProductDTO is the catalog payload returned to clients.
type ProductDTO struct {
	ID              uuid.UUID         `json:"id"`
	Slug            string            `json:"slug"`
	Name            string            `json:"name"`
	Category        string            `json:"category"`
	SubCategory     string            `json:"sub_category"`
	Price           int               `json:"price"`
	Description     string            `json:"description"`
	FullDescription string            `json:"full_description,omitempty"`
	Image           string            `json:"image"`
	Nutrition       types.Nutrition   `json:"nutrition"`
	Ingredients     types.Ingredients `json:"ingredients"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// ProductListResult carries one page of products plus the follow-up cursor.
type ProductListResult struct {
	Products   []ProductDTO `json:"products"`
	NextCursor string       `json:"next_cursor,omitempty"`
}

func toProductDTO(m *models.Product) *ProductDTO {
	dto := &ProductDTO{
		ID:              m.ID,
		Slug:            m.Slug,
		Name:            m.Name,
		Category:        m.Category.String(),
		SubCategory:     m.SubCategory.String(),
		Price:           m.Price,
		Description:     m.Description,
		FullDescription: m.FullDescription,
		Image:           m.Image,
		Nutrition:       m.Nutrition(),
		Ingredients:     m.Ingredients,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if dto.Ingredients == nil {
		dto.Ingredients = types.Ingredients{}
	}
	return dto
}
