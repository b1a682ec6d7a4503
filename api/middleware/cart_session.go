package middleware

import (
	"net/http"
	"strings"

	"github.com/healthybite-ma/storefront-backend/internal/cart"
	"github.com/healthybite-ma/storefront-backend/pkg/logger"
)

// CartSessionHeader carries the anonymous cart session token between the
// storefront and the API.
const CartSessionHeader = "X-HB-Cart-Session"

// CartSession reads the session token from the request header, minting a
// fresh one for first-time visitors, and echoes it back on every response.
func CartSession(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := strings.TrimSpace(r.Header.Get(CartSessionHeader))
			if token == "" {
				token = cart.NewSessionToken()
			}

			w.Header().Set(CartSessionHeader, token)

			ctx := WithCartSession(r.Context(), token)
			if logg != nil {
				ctx = logg.WithCartSession(ctx, token)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
