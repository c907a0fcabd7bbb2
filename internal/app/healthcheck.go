package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/metinatakli/seat-booking/api"
)

const healthcheckTimeout = 2 * time.Second

// GetHealth reports DOWN with 503 while Postgres or Redis cannot be reached.
func (app *Application) GetHealth(w http.ResponseWriter, r *http.Request) {
	status, code := "UP", http.StatusOK

	err := app.pingDependencies(r.Context())
	if err != nil {
		app.contextGetLogger(r).WarnContext(r.Context(), "health check failed", "error", err)
		status, code = "DOWN", http.StatusServiceUnavailable
	}

	resp := api.HealthcheckResponse{
		Status: status,
		SystemInfo: api.SystemInfo{
			Version:     version,
			Environment: app.config.Env,
		},
	}

	err = app.writeJSON(w, code, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) pingDependencies(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthcheckTimeout)
	defer cancel()

	var errs []error

	if app.db != nil {
		if err := app.db.Ping(ctx); err != nil {
			errs = append(errs, fmt.Errorf("postgres: %w", err))
		}
	}

	if app.redis != nil {
		if err := app.redis.Ping(ctx).Err(); err != nil {
			errs = append(errs, fmt.Errorf("redis: %w", err))
		}
	}

	return errors.Join(errs...)
}

func (app *Application) GetOpenAPISpec(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	w.Write(api.Spec())
}
