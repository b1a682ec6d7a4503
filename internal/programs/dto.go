package program

import (
	"time"

	"github.com/google/uuid"

	"github.com/healthybite-ma/storefront-backend/pkg/db/models"
	"github.com/healthybite-ma/storefront-backend/pkg/types"
)

// ProgramDTO is the program payload returned to clients.
type ProgramDTO struct {
	ID              uuid.UUID         `json:"id"`
	Slug            string            `json:"slug"`
	Name            string            `json:"name"`
	SubCategory     string            `json:"sub_category"`
	Price           int               `json:"price"`
	Description     string            `json:"description"`
	FullDescription string            `json:"full_description,omitempty"`
	Image           string            `json:"image"`
	Duration        int               `json:"duration"`
	Schedule        types.Schedule    `json:"schedule"`
	Ingredients     types.Ingredients `json:"ingredients"`
	Nutrition       types.Nutrition   `json:"nutrition"`
	Features        []string          `json:"features"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// ProgramListResult carries one page of programs plus the follow-up cursor.
type ProgramListResult struct {
	Programs   []ProgramDTO `json:"programs"`
	NextCursor string       `json:"next_cursor,omitempty"`
}

func toProgramDTO(m *models.Program) *ProgramDTO {
	dto := &ProgramDTO{
		ID:              m.ID,
		Slug:            m.Slug,
		Name:            m.Name,
		SubCategory:     m.SubCategory.String(),
		Price:           m.Price,
		Description:     m.Description,
		FullDescription: m.FullDescription,
		Image:           m.Image,
		Duration:        m.Duration,
		Schedule:        m.Schedule,
		Ingredients:     m.Ingredients,
		Nutrition:       m.Nutrition(),
		Features:        m.Features,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if dto.Schedule == nil {
		dto.Schedule = types.Schedule{}
	}
	if dto.Ingredients == nil {
		dto.Ingredients = types.Ingredients{}
	}
	if dto.Features == nil {
		dto.Features = []string{}
	}
	return dto
}
