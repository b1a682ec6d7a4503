package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	pkgerrors "github.com/healthybite-ma/storefront-backend/pkg/errors"
)

func parseIDParam(r *http.Request, name, message string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, message)
	}
	return id, nil
}

func parseProductIDParam(r *http.Request) (uuid.UUID, error) {
	return parseIDParam(r, "productID", "invalid product id")
}
