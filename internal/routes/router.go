package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ubikais/mirror/internal/api"
	"ubikais/mirror/internal/common"
	"ubikais/mirror/internal/config"
	"ubikais/mirror/internal/crawler"
	"ubikais/mirror/internal/logging"
	"ubikais/mirror/internal/metrics"
	"ubikais/mirror/internal/middleware"
	"ubikais/mirror/internal/store"
)

// defaultAllowedOrigins are the known front-end deployments. Additional
// origins come from CORS_ALLOWED_ORIGINS.
var defaultAllowedOrigins = []string{
	"https://rkpu-viewer.vercel.app",
	"https://tbas.vercel.app",
	"http://localhost:5173",
	"http://localhost:3000",
}

// RegisterRoutes builds the HTTP handler tree: middleware, CORS, metrics,
// and the read-only API surface.
func RegisterRoutes(cfg *config.Config, st *store.Store, cr *crawler.Crawler, metricsReg *metrics.Registry, upSince time.Time) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(metricsReg))
	r.Use(middleware.RateLimitMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins(cfg),
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	logging.Info("Router initialized with metrics and logging middleware")

	cacheSvc := common.NewCacheService(60, 120)

	r.Get("/", api.IndexHandler())
	r.Get("/healthCheck", api.HealthCheckHandler(st, upSince))
	r.Handle("/metrics", promhttp.Handler())

	RegisterAPIRoutes(r, st, cr, cacheSvc)

	return r
}

func allowedOrigins(cfg *config.Config) []string {
	origins := append([]string{}, defaultAllowedOrigins...)
	return append(origins, cfg.CORSExtraOrigins...)
}
