// Package httptransport assembles the public HTTP surface: the APPR
// endpoints behind the shared middleware chain, plus Prometheus metrics.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	apprhandler "skyclaim/internal/appr/handler"
	"skyclaim/internal/platform/config"
	"skyclaim/internal/platform/middleware"
)

// NewRouter wires all public endpoints. Transport concerns stay here so the
// handler package remains a thin delegation layer.
func NewRouter(h *apprhandler.Handler, logger *slog.Logger, cfg config.Server) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
	}))
	r.Use(middleware.ContentTypeJSON)

	h.Register(r)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
