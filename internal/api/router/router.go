package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	httpmiddleware "github.com/hasunakalanka/Forma.Ai/internal/http/middleware"
	"github.com/hasunakalanka/Forma.Ai/internal/intake"
	"github.com/hasunakalanka/Forma.Ai/internal/payments"
	"github.com/hasunakalanka/Forma.Ai/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	IntakeHandler      *intake.Handler
	UnlockHandler      *payments.UnlockHandler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string

	// IntakeLimiter throttles form submissions per client IP (optional).
	IntakeLimiter httpmiddleware.Limiter
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", healthCheck)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	if cfg.IntakeHandler != nil {
		r.Route("/api", func(api chi.Router) {
			if cfg.IntakeLimiter != nil {
				api.With(httpmiddleware.RateLimit(cfg.IntakeLimiter, cfg.Logger)).Post("/intake", cfg.IntakeHandler.Submit)
			} else {
				api.Post("/intake", cfg.IntakeHandler.Submit)
			}
			api.Get("/preview", cfg.IntakeHandler.Preview)
		})
	}

	if cfg.UnlockHandler != nil {
		r.Get("/unlock", cfg.UnlockHandler.Handle)
	}

	return r
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
