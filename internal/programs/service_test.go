package program

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/healthybite-ma/storefront-backend/pkg/enums"
	pkgerrors "github.com/healthybite-ma/storefront-backend/pkg/errors"
	"github.com/healthybite-ma/storefront-backend/pkg/pagination"
	"github.com/healthybite-ma/storefront-backend/pkg/types"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	conn := setupProgramsTestDB(t)
	svc, err := NewService(NewRepository(conn))
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	return svc
}

func validCreateInput() CreateProgramInput {
	return CreateProgramInput{
		Slug:        "perte-de-poids-7-jours",
		Name:        "Perte de Poids 7 Jours",
		SubCategory: enums.SubCategoryWeightLoss,
		Price:       120,
		Description: "desc",
		Image:       "https://cdn.example.com/programme.png",
		Duration:    7,
	}
}

func TestCreateGeneratesEmptySchedule(t *testing.T) {
	svc := newTestService(t)

	dto, err := svc.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if len(dto.Schedule) != 7 {
		t.Fatalf("expected 7 generated days, got %d", len(dto.Schedule))
	}
	for i, day := range dto.Schedule {
		if day.Day != i+1 || len(day.Meals) != 0 {
			t.Fatalf("unexpected generated day %+v", day)
		}
	}
}

func TestCreateRejectsMismatchedSchedule(t *testing.T) {
	svc := newTestService(t)

	input := validCreateInput()
	input.Schedule = Resize(nil, 5)

	_, err := svc.Create(context.Background(), input)
	if coded := pkgerrors.As(err); coded.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestCreateRejectsUnknownMealType(t *testing.T) {
	svc := newTestService(t)

	schedule := Resize(nil, 7)
	schedule[0].Meals = []types.Meal{{Type: enums.MealType("Brunch")}}
	input := validCreateInput()
	input.Schedule = schedule

	_, err := svc.Create(context.Background(), input)
	if coded := pkgerrors.As(err); coded.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestCreateDuplicateSlugConflicts(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, validCreateInput()); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	_, err := svc.Create(ctx, validCreateInput())
	if coded := pkgerrors.As(err); coded.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected CONFLICT, got %v", err)
	}
}

func TestUpdateDurationResizesSchedule(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreateInput())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	schedule := AddMeal(created.Schedule, 2)
	if _, err := svc.Update(ctx, created.ID, UpdateProgramInput{Schedule: &schedule}); err != nil {
		t.Fatalf("schedule update failed: %v", err)
	}

	days := 3
	updated, err := svc.Update(ctx, created.ID, UpdateProgramInput{Duration: &days})
	if err != nil {
		t.Fatalf("duration update failed: %v", err)
	}
	if updated.Duration != 3 || len(updated.Schedule) != 3 {
		t.Fatalf("expected resized schedule, got duration=%d days=%d", updated.Duration, len(updated.Schedule))
	}
	if len(updated.Schedule[1].Meals) != 1 {
		t.Fatal("in-range day lost its meal on resize")
	}
}

func TestGetBySlugNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetBySlug(context.Background(), "introuvable")
	if coded := pkgerrors.As(err); coded.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestDeleteRequiresID(t *testing.T) {
	svc := newTestService(t)

	err := svc.Delete(context.Background(), uuid.Nil)
	if coded := pkgerrors.As(err); coded.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestListReturnsPageWithCursor(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, slug := range []string{"programme-a", "programme-b", "programme-c"} {
		input := validCreateInput()
		input.Slug = slug
		input.Name = slug
		if _, err := svc.Create(ctx, input); err != nil {
			t.Fatalf("create %s failed: %v", slug, err)
		}
	}

	result, err := svc.List(ctx, pagination.Params{Limit: 2})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(result.Programs) != 2 {
		t.Fatalf("expected 2 programs, got %d", len(result.Programs))
	}
	if result.NextCursor == "" {
		t.Fatal("expected a next cursor")
	}
}
