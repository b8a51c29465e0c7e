// Package dashboard собирает HTTP-приложение дашборда агентства.
package dashboard

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/agency-dashboard/internal/http/handlers/calendar/booked"
	"github.com/magabrotheeeer/agency-dashboard/internal/http/handlers/calendar/day"
	"github.com/magabrotheeeer/agency-dashboard/internal/http/handlers/health"
	"github.com/magabrotheeeer/agency-dashboard/internal/http/handlers/leads/search"
	"github.com/magabrotheeeer/agency-dashboard/internal/http/handlers/plans/list"
	"github.com/magabrotheeeer/agency-dashboard/internal/http/handlers/plans/toggle"
	"github.com/magabrotheeeer/agency-dashboard/internal/http/middlewarectx"
	"github.com/magabrotheeeer/agency-dashboard/internal/metrics"
	dashboardservice "github.com/magabrotheeeer/agency-dashboard/internal/services/dashboard"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(
	r chi.Router,
	logger *slog.Logger,
	service *dashboardservice.Service,
	m *metrics.Metrics,
	gatherer prometheus.Gatherer,
	limiter *rate.Limiter,
) {
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
		middlewarectx.Metrics(m),
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger, limiter))

		r.Get("/leads", search.New(logger, service).ServeHTTP)
		r.Get("/calendar", day.New(logger, service).ServeHTTP)
		r.Get("/calendar/booked", booked.New(logger, service).ServeHTTP)
		r.Get("/plans", list.New(logger, service).ServeHTTP)
		r.Post("/plans/{id}/toggle", toggle.New(logger, service).ServeHTTP)
	})

	r.Get("/health", health.New().ServeHTTP)
	r.Handle("/metrics", metrics.Handler(gatherer))
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
