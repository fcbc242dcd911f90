// Package httpapi assembles the public router. Transport concerns
// stay here; handlers delegate to domain services.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	platformmetrics "github.com/Veselin15/FactNode/internal/platform/metrics"
	"github.com/Veselin15/FactNode/internal/platform/middleware"
)

// Registrar is implemented by every domain handler.
type Registrar interface {
	Register(r chi.Router)
}

// Handlers groups the domain handlers the router mounts.
type Handlers struct {
	// Public read paths.
	Facts      Registrar
	Reputation Registrar

	// Authenticated paths.
	Votes         Registrar
	Notifications Registrar
}

// NewRouter wires all endpoints. Vote and inbox endpoints sit behind
// the auth middleware; tally/reputation reads are public.
func NewRouter(h Handlers, validator middleware.JWTValidator, httpMetrics *platformmetrics.Metrics, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(httpMetrics.Instrument)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(pub chi.Router) {
		h.Facts.Register(pub)
		h.Reputation.Register(pub)
	})

	r.Group(func(auth chi.Router) {
		auth.Use(middleware.RequireAuth(validator, logger))
		h.Votes.Register(auth)
		h.Notifications.Register(auth)
	})

	return r
}
