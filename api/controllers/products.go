package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/healthybite-ma/storefront-backend/api/responses"
	"github.com/healthybite-ma/storefront-backend/api/validators"
	productsvc "github.com/healthybite-ma/storefront-backend/internal/products"
	"github.com/healthybite-ma/storefront-backend/pkg/enums"
	pkgerrors "github.com/healthybite-ma/storefront-backend/pkg/errors"
	"github.com/healthybite-ma/storefront-backend/pkg/logger"
	"github.com/healthybite-ma/storefront-backend/pkg/types"
)

// ListProducts serves the public catalog with optional category filters.
func ListProducts(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := paginationParams(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var filters productsvc.ListFilters
		if raw := strings.TrimSpace(r.URL.Query().Get("category")); raw != "" {
			category, err := enums.ParseCategory(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category"))
				return
			}
			filters.Category = &category
		}
		if raw := strings.TrimSpace(r.URL.Query().Get("subcategory")); raw != "" {
			sub, err := enums.ParseSubCategory(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid subcategory"))
				return
			}
			filters.SubCategory = &sub
		}

		result, err := svc.List(r.Context(), productsvc.ListProductsInput{
			Filters:    filters,
			Pagination: params,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// GetProductBySlug serves the public product detail page.
func GetProductBySlug(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := strings.TrimSpace(chi.URLParam(r, "slug"))
		if slug == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "slug is required"))
			return
		}

		product, err := svc.GetBySlug(r.Context(), slug)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

type createProductRequest struct {
	Slug            string            `json:"slug" validate:"required"`
	Name            string            `json:"name" validate:"required"`
	Category        string            `json:"category" validate:"required"`
	SubCategory     string            `json:"subcategory" validate:"required"`
	Price           int               `json:"price" validate:"min=0"`
	Description     string            `json:"description"`
	FullDescription string            `json:"full_description"`
	Image           string            `json:"image"`
	Calories        int               `json:"calories" validate:"min=0"`
	Protein         string            `json:"protein"`
	Fiber           string            `json:"fiber"`
	Carbs           string            `json:"carbs"`
	Fats            string            `json:"fats"`
	Ingredients     types.Ingredients `json:"ingredients"`
}

func (req createProductRequest) toCreateInput() (productsvc.CreateProductInput, error) {
	category, err := enums.ParseCategory(strings.TrimSpace(req.Category))
	if err != nil {
		return productsvc.CreateProductInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category")
	}
	sub, err := enums.ParseSubCategory(strings.TrimSpace(req.SubCategory))
	if err != nil {
		return productsvc.CreateProductInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid subcategory")
	}

	return productsvc.CreateProductInput{
		Slug:            req.Slug,
		Name:            req.Name,
		Category:        category,
		SubCategory:     sub,
		Price:           req.Price,
		Description:     req.Description,
		FullDescription: req.FullDescription,
		Image:           req.Image,
		Calories:        req.Calories,
		Protein:         req.Protein,
		Fiber:           req.Fiber,
		Carbs:           req.Carbs,
		Fats:            req.Fats,
		Ingredients:     req.Ingredients,
	}, nil
}

type updateProductRequest struct {
	Slug            *string            `json:"slug,omitempty"`
	Name            *string            `json:"name,omitempty"`
	Category        *string            `json:"category,omitempty"`
	SubCategory     *string            `json:"subcategory,omitempty"`
	Price           *int               `json:"price,omitempty" validate:"omitempty,min=0"`
	Description     *string            `json:"description,omitempty"`
	FullDescription *string            `json:"full_description,omitempty"`
	Image           *string            `json:"image,omitempty"`
	Calories        *int               `json:"calories,omitempty" validate:"omitempty,min=0"`
	Protein         *string            `json:"protein,omitempty"`
	Fiber           *string            `json:"fiber,omitempty"`
	Carbs           *string            `json:"carbs,omitempty"`
	Fats            *string            `json:"fats,omitempty"`
	Ingredients     *types.Ingredients `json:"ingredients,omitempty"`
}

func (req updateProductRequest) toUpdateInput() (productsvc.UpdateProductInput, error) {
	input := productsvc.UpdateProductInput{
		Slug:            req.Slug,
		Name:            req.Name,
		Price:           req.Price,
		Description:     req.Description,
		FullDescription: req.FullDescription,
		Image:           req.Image,
		Calories:        req.Calories,
		Protein:         req.Protein,
		Fiber:           req.Fiber,
		Carbs:           req.Carbs,
		Fats:            req.Fats,
		Ingredients:     req.Ingredients,
	}

	if req.Category != nil {
		category, err := enums.ParseCategory(strings.TrimSpace(*req.Category))
		if err != nil {
			return productsvc.UpdateProductInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category")
		}
		input.Category = &category
	}
	if req.SubCategory != nil {
		sub, err := enums.ParseSubCategory(strings.TrimSpace(*req.SubCategory))
		if err != nil {
			return productsvc.UpdateProductInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid subcategory")
		}
		input.SubCategory = &sub
	}

	return input, nil
}

// AdminCreateProduct handles product creation from the back office.
func AdminCreateProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toCreateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

// AdminUpdateProduct applies a partial product update.
func AdminUpdateProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		var payload updateProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toUpdateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

// AdminDeleteProduct removes a product from the catalog.
func AdminDeleteProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
