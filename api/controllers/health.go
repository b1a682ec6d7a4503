package controllers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/multierr"

	"github.com/healthybite-ma/storefront-backend/api/responses"
	"github.com/healthybite-ma/storefront-backend/pkg/config"
	pkgerrors "github.com/healthybite-ma/storefront-backend/pkg/errors"
	"github.com/healthybite-ma/storefront-backend/pkg/logger"
)

type pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-HealthyBite-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady checks the backing stores before reporting ready.
func HealthReady(cfg *config.Config, db, cache pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-HealthyBite-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		var err error
		if db != nil {
			err = multierr.Append(err, db.Ping(ctx))
		}
		if cache != nil {
			err = multierr.Append(err, cache.Ping(ctx))
		}
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "readiness check"))
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
