package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/healthybite-ma/storefront-backend/api/responses"
	"github.com/healthybite-ma/storefront-backend/api/validators"
	programsvc "github.com/healthybite-ma/storefront-backend/internal/programs"
	"github.com/healthybite-ma/storefront-backend/pkg/enums"
	pkgerrors "github.com/healthybite-ma/storefront-backend/pkg/errors"
	"github.com/healthybite-ma/storefront-backend/pkg/logger"
	"github.com/healthybite-ma/storefront-backend/pkg/types"
)

// ListPrograms serves the public program catalog.
func ListPrograms(svc programsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := paginationParams(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.List(r.Context(), params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// GetProgramBySlug serves the public program detail page with its schedule.
func GetProgramBySlug(svc programsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := strings.TrimSpace(chi.URLParam(r, "slug"))
		if slug == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "slug is required"))
			return
		}

		program, err := svc.GetBySlug(r.Context(), slug)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, program)
	}
}

type createProgramRequest struct {
	Slug            string            `json:"slug" validate:"required"`
	Name            string            `json:"name" validate:"required"`
	SubCategory     string            `json:"subcategory" validate:"required"`
	Price           int               `json:"price" validate:"min=0"`
	Description     string            `json:"description"`
	FullDescription string            `json:"full_description"`
	Image           string            `json:"image"`
	Duration        int               `json:"duration" validate:"required,min=1"`
	Schedule        types.Schedule    `json:"schedule"`
	Ingredients     types.Ingredients `json:"ingredients"`
	Calories        int               `json:"calories" validate:"min=0"`
	Protein         string            `json:"protein"`
	Fiber           string            `json:"fiber"`
	Carbs           string            `json:"carbs"`
	Fats            string            `json:"fats"`
	Features        []string          `json:"features"`
}

func (req createProgramRequest) toCreateInput() (programsvc.CreateProgramInput, error) {
	sub, err := enums.ParseSubCategory(strings.TrimSpace(req.SubCategory))
	if err != nil {
		return programsvc.CreateProgramInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid subcategory")
	}

	return programsvc.CreateProgramInput{
		Slug:            req.Slug,
		Name:            req.Name,
		SubCategory:     sub,
		Price:           req.Price,
		Description:     req.Description,
		FullDescription: req.FullDescription,
		Image:           req.Image,
		Duration:        req.Duration,
		Schedule:        req.Schedule,
		Ingredients:     req.Ingredients,
		Calories:        req.Calories,
		Protein:         req.Protein,
		Fiber:           req.Fiber,
		Carbs:           req.Carbs,
		Fats:            req.Fats,
		Features:        req.Features,
	}, nil
}

type updateProgramRequest struct {
	Slug            *string            `json:"slug,omitempty"`
	Name            *string            `json:"name,omitempty"`
	SubCategory     *string            `json:"subcategory,omitempty"`
	Price           *int               `json:"price,omitempty" validate:"omitempty,min=0"`
	Description     *string            `json:"description,omitempty"`
	FullDescription *string            `json:"full_description,omitempty"`
	Image           *string            `json:"image,omitempty"`
	Duration        *int               `json:"duration,omitempty" validate:"omitempty,min=1"`
	Schedule        *types.Schedule    `json:"schedule,omitempty"`
	Ingredients     *types.Ingredients `json:"ingredients,omitempty"`
	Calories        *int               `json:"calories,omitempty" validate:"omitempty,min=0"`
	Protein         *string            `json:"protein,omitempty"`
	Fiber           *string            `json:"fiber,omitempty"`
	Carbs           *string            `json:"carbs,omitempty"`
	Fats            *string            `json:"fats,omitempty"`
	Features        *[]string          `json:"features,omitempty"`
}

func (req updateProgramRequest) toUpdateInput() (programsvc.UpdateProgramInput, error) {
	input := programsvc.UpdateProgramInput{
		Slug:            req.Slug,
		Name:            req.Name,
		Price:           req.Price,
		Description:     req.Description,
		FullDescription: req.FullDescription,
		Image:           req.Image,
		Duration:        req.Duration,
		Schedule:        req.Schedule,
		Ingredients:     req.Ingredients,
		Calories:        req.Calories,
		Protein:         req.Protein,
		Fiber:           req.Fiber,
		Carbs:           req.Carbs,
		Fats:            req.Fats,
		Features:        req.Features,
	}

	if req.SubCategory != nil {
		sub, err := enums.ParseSubCategory(strings.TrimSpace(*req.SubCategory))
		if err != nil {
			return programsvc.UpdateProgramInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid subcategory")
		}
		input.SubCategory = &sub
	}

	return input, nil
}

// AdminCreateProgram handles program creation, including the nested schedule.
func AdminCreateProgram(svc programsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createProgramRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toCreateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		program, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, program)
	}
}

// AdminUpdateProgram applies a partial program update. A duration change
// without an explicit schedule resizes the stored schedule.
func AdminUpdateProgram(svc programsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid program id"))
			return
		}

		var payload updateProgramRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toUpdateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		program, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, program)
	}
}

// AdminDeleteProgram removes a program.
func AdminDeleteProgram(svc programsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid program id"))
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
