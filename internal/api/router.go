package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/blaisecz/sleep-journal/docs"
	"github.com/blaisecz/sleep-journal/internal/api/handler"
	"github.com/blaisecz/sleep-journal/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type Router struct {
	sleepLogHandler *handler.SleepLogHandler
	logger          *zap.Logger
}

func NewRouter(sleepLogHandler *handler.SleepLogHandler, logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{
		sleepLogHandler: sleepLogHandler,
		logger:          logger,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logger(rt.logger.Named("http")))
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	r.Route("/api/sleep-logs", func(r chi.Router) {
		r.Post("/", rt.sleepLogHandler.Create)
		r.Get("/latest", rt.sleepLogHandler.Latest)
		r.Get("/statistics", rt.sleepLogHandler.Statistics)
	})

	return r
}
