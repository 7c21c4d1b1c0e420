package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MikeSquared-Agency/Readiness/internal/cache"
	"github.com/MikeSquared-Agency/Readiness/internal/hermes"
	"github.com/MikeSquared-Agency/Readiness/internal/scoring"
	"github.com/MikeSquared-Agency/Readiness/internal/store"
)

func NewRouter(sc *scoring.Scorer, s store.Store, c cache.ReportCache, n *hermes.Notifier, rateLimit int, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(rateLimit))

	questions := NewQuestionsHandler(sc.Catalog())
	assessments := NewAssessmentsHandler(sc, s, c, n, logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/questions", questions.List)

		r.Post("/assessments", assessments.Create)
		r.Post("/assessments/preview", assessments.Preview)
		r.Get("/assessments", assessments.List)
		r.Get("/assessments/{id}", assessments.Get)

		r.Get("/stats", assessments.Stats)
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}
