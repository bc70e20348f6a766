package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "awesomedevevents/docs"
	"awesomedevevents/internal/delivery/http/controllers"
	"awesomedevevents/internal/delivery/http/middleware"
)

// RouterConfig carries the transport options read from config.
type RouterConfig struct {
	CORSAllowedOrigins []string
	SwaggerEnabled     bool
}

// NewRouter initializes the HTTP router with all application routes.
// CORS sits outside the router so preflight requests never reach route matching.
func NewRouter(logger *slog.Logger, events *controllers.EventController, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(func(next http.Handler) http.Handler {
		return middleware.LoggingMiddleware(logger, next)
	})
	r.Use(chimw.Recoverer)

	r.Route("/api/dev-events", func(r chi.Router) {
		r.Get("/", events.ListEvents)
		r.Post("/", events.CreateEvent)
		r.Get("/{id}", events.GetEventByID)
		r.Put("/{id}", events.UpdateEvent)
		r.Delete("/{id}", events.DeleteEvent)
		r.Post("/{id}/speakers", events.AddSpeaker)
	})

	if cfg.SwaggerEnabled {
		r.Get("/swagger/*", httpSwagger.WrapHandler)
	}

	return middleware.CORS(cfg.CORSAllowedOrigins)(r)
}
