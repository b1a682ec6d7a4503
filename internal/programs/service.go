package program

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

// Service exposes program listing and admin management.
type Service interface {
	List(ctx context.Context, params pagination.Params) (*ProgramListResult, error)
	GetBySlug(ctx context.Context, slug string) (*ProgramDTO, error)
	Create(ctx context.Context, input CreateProgramInput) (*ProgramDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateProgramInput) (*ProgramDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CreateProgramInput holds the validated payload to create a program. An
// empty schedule is regenerated from the duration.
type CreateProgramInput struct {
	Slug            string
	Name            string
	SubCategory     enums.SubCategory
	Price           int
	Description     string
	FullDescription string
	Image           string
	Duration        int
	Schedule        types.Schedule
	Ingredients     types.Ingredients
	Calories        int
	Protein         string
	Fiber           string
	Carbs           string
	Fats            string
	Features        []string
}

// UpdateProgramInput holds optional mutation values for a program.
type UpdateProgramInput struct {
	Slug            *string
	Name            *string
	SubCategory     *enums.SubCategory
	Price           *int
	Description     *string
	FullDescription *string
	Image           *string
	Duration        *int
	Schedule        *types.Schedule
	Ingredients     *types.Ingredients
	Calories        *int
	Protein         *string
	Fiber           *string
	Carbs           *string
	Fats            *string
	Features        *[]string
}

type service struct {
	repo *Repository
}

// NewService constructs a program service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("program repository required")
	}
	return &service{repo: repo}, nil
}

// ValidateSchedule checks that the schedule holds exactly the days 1..duration
// and that every meal type is one of the fixed enumeration.
func ValidateSchedule(s types.Schedule, duration int) error {
	if duration < 1 {
		return pkgerrors.New(pkgerrors.CodeValidation, "duration must be at least 1 day")
	}
	if len(s) != duration {
		return pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("schedule must have exactly %d days, got %d", duration, len(s)))
	}
	for i, day := range s {
		if day.Day != i+1 {
			return pkgerrors.New(pkgerrors.CodeValidation,
				fmt.Sprintf("schedule day %d is numbered %d", i+1, day.Day))
		}
		for _, meal := range day.Meals {
			if !meal.Type.IsValid() {
				return pkgerrors.New(pkgerrors.CodeValidation,
					fmt.Sprintf("unknown meal type %q on day %d", meal.Type, day.Day))
			}
		}
	}
	return nil
}

// List returns one page of programs newest-first.
func (s *service) List(ctx context.Context, params pagination.Params) (*ProgramListResult, error) {
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid cursor")
	}

	rows, err := s.repo.List(ctx, cursor, params.Limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing programs")
	}

	page, hasMore := pagination.TrimPage(rows, params.Limit)
	result := &ProgramListResult{Programs: make([]ProgramDTO, 0, len(page))}
	for i := range page {
		result.Programs = append(result.Programs, *toProgramDTO(&page[i]))
	}
	if hasMore && len(page) > 0 {
		last := page[len(page)-1]
		result.NextCursor = pagination.EncodeCursor(pagination.Cursor{Timestamp: last.CreatedAt, ID: last.ID})
	}
	return result, nil
}

// GetBySlug loads one program for the public detail page.
func (s *service) GetBySlug(ctx context.Context, slug string) (*ProgramDTO, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "slug is required")
	}
	row, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "program not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading program")
	}
	return toProgramDTO(row), nil
}

// Create validates the payload and inserts the program. A missing schedule is
// generated as empty days 1..duration.
func (s *service) Create(ctx context.Context, input CreateProgramInput) (*ProgramDTO, error) {
	if err := validateCreate(input); err != nil {
		return nil, err
	}

	schedule := input.Schedule
	if len(schedule) == 0 {
		schedule = Resize(nil, input.Duration)
	}
	if err := ValidateSchedule(schedule, input.Duration); err != nil {
		return nil, err
	}

	row := &models.Program{
		ID:              uuid.New(),
		Slug:            input.Slug,
		Name:            input.Name,
		SubCategory:     input.SubCategory,
		Price:           input.Price,
		Description:     input.Description,
		FullDescription: input.FullDescription,
		Image:           input.Image,
		Duration:        input.Duration,
		Schedule:        schedule,
		Ingredients:     input.Ingredients,
		Calories:        input.Calories,
		Protein:         input.Protein,
		Fiber:           input.Fiber,
		Carbs:           input.Carbs,
		Fats:            input.Fats,
		Features:        input.Features,
	}

	created, err := s.repo.Create(ctx, row)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "program slug already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating program")
	}
	return toProgramDTO(created), nil
}

// Update applies the provided fields. A duration change without an explicit
// schedule resizes the stored schedule with the editor policy (shrink drops
// trailing days, grow appends empty days).
func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateProgramInput) (*ProgramDTO, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "program id is required")
	}

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "program not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading program")
	}

	applyUpdate(row, input)

	if input.Schedule == nil && input.Duration != nil {
		row.Schedule = Resize(row.Schedule, row.Duration)
	}
	if err := ValidateSchedule(row.Schedule, row.Duration); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, row)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "program slug already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating program")
	}
	return toProgramDTO(updated), nil
}

// Delete removes the program.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "program id is required")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deleting program")
	}
	return nil
}

func validateCreate(input CreateProgramInput) error {
	switch {
	case strings.TrimSpace(input.Slug) == "":
		return pkgerrors.New(pkgerrors.CodeValidation, "slug is required")
	case strings.TrimSpace(input.Name) == "":
		return pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	case !input.SubCategory.IsValid():
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown sub category")
	case input.Price < 0:
		return pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative")
	case input.Duration < 1:
		return pkgerrors.New(pkgerrors.CodeValidation, "duration must be at least 1 day")
	}
	return nil
}

func applyUpdate(row *models.Program, input UpdateProgramInput) {
	if input.Slug != nil {
		row.Slug = *input.Slug
	}
	if input.Name != nil {
		row.Name = *input.Name
	}
	if input.SubCategory != nil {
		row.SubCategory = *input.SubCategory
	}
	if input.Price != nil {
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
	if input.Duration != nil {
		row.Duration = *input.Duration
	}
	if input.Schedule != nil {
		row.Schedule = *input.Schedule
	}
	if input.Ingredients != nil {
		row.Ingredients = *input.Ingredients
	}
	if input.Calories != nil {
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
	if input.Features != nil {
		row.Features = *input.Features
	}
}
