package controllers

import (
	"net/http"
	"strings"

	"github.com/healthybite-ma/storefront-backend/api/responses"
	"github.com/healthybite-ma/storefront-backend/api/validators"
	contactsvc "github.com/healthybite-ma/storefront-backend/internal/contact"
	"github.com/healthybite-ma/storefront-backend/pkg/enums"
	pkgerrors "github.com/healthybite-ma/storefront-backend/pkg/errors"
	"github.com/healthybite-ma/storefront-backend/pkg/logger"
)

type submitContactRequest struct {
	Name    string  `json:"name" validate:"required"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   *string `json:"phone,omitempty"`
	Reason  string  `json:"reason" validate:"required"`
	Message string  `json:"message" validate:"required"`
}

// SubmitContactMessage accepts a public contact form submission.
func SubmitContactMessage(svc contactsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload submitContactRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		reason := enums.ContactReason(strings.TrimSpace(payload.Reason))
		if !reason.IsValid() {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid contact reason"))
			return
		}

		message, err := svc.Submit(r.Context(), contactsvc.SubmitInput{
			Name:    payload.Name,
			Email:   payload.Email,
			Phone:   payload.Phone,
			Reason:  reason,
			Message: payload.Message,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, message)
	}
}

// AdminListContactMessages serves the back-office inbox, newest first.
func AdminListContactMessages(svc contactsvc.Service, logg *logger.Logger) http.HandlerFunc {
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
