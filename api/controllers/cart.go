package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/healthybite-ma/storefront-backend/api/middleware"
	"github.com/healthybite-ma/storefront-backend/api/responses"
	"github.com/healthybite-ma/storefront-backend/api/validators"
	cartsvc "github.com/healthybite-ma/storefront-backend/internal/cart"
	checkoutsvc "github.com/healthybite-ma/storefront-backend/internal/checkout"
	pkgerrors "github.com/healthybite-ma/storefront-backend/pkg/errors"
	"github.com/healthybite-ma/storefront-backend/pkg/logger"
)

func cartSession(r *http.Request) (string, error) {
	token := middleware.CartSessionFromContext(r.Context())
	if token == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "cart session missing")
	}
	return token, nil
}

// GetCart returns the session's cart with derived totals.
func GetCart(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := cartSession(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.Get(r.Context(), token)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, dto)
	}
}

type addCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// AddCartItem adds one unit of a product, merging with any existing line.
func AddCartItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := cartSession(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload addCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		productID, err := uuid.Parse(payload.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		dto, err := svc.AddItem(r.Context(), token, productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, dto)
	}
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// SetCartItemQuantity overwrites a line quantity. Zero or negative removes
// the line.
func SetCartItemQuantity(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := cartSession(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		productID, err := parseProductIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload setQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.SetQuantity(r.Context(), token, productID, payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, dto)
	}
}

// RemoveCartItem drops a product line from the cart.
func RemoveCartItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := cartSession(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		productID, err := parseProductIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.RemoveItem(r.Context(), token, productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, dto)
	}
}

// ClearCart drops every line from the cart.
func ClearCart(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := cartSession(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Clear(r.Context(), token); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "cleared"})
	}
}

// CheckoutCart builds the WhatsApp hand-off for the cart, then empties it.
func CheckoutCart(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := cartSession(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		handOff, err := svc.CartHandOff(r.Context(), token)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, handOff)
	}
}

// CheckoutProgram builds the WhatsApp hand-off for a program order.
func CheckoutProgram(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		programID, err := parseIDParam(r, "id", "invalid program id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		handOff, err := svc.ProgramHandOff(r.Context(), programID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, handOff)
	}
}
