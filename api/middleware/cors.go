package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

var defaultCORSOrigins = []string{
	"http://localhost:3000",        // local dev
	"https://healthybite.ma",       // storefront
	"https://www.healthybite.ma",   // storefront www alias
	"https://admin.healthybite.ma", // back office
}

// CORS returns middleware that applies the API's allowed origin policy.
func CORS() func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   defaultCORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-HB-Cart-Session", "X-Requested-With"},
		ExposedHeaders:   []string{"X-HB-Cart-Session"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}
