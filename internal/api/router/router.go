package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/trigueirabraids/studio-platform/internal/auth"
	"github.com/trigueirabraids/studio-platform/internal/booking"
	"github.com/trigueirabraids/studio-platform/internal/http/handlers"
	httpmiddleware "github.com/trigueirabraids/studio-platform/internal/http/middleware"
	"github.com/trigueirabraids/studio-platform/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger *logging.Logger

	AuthHandler    *auth.Handler
	AuthGate       *auth.Gate
	BookingHandler *booking.Handler

	AdminDashboard *handlers.AdminDashboardHandler
	AdminClients   *handlers.AdminClientsHandler
	AdminSchedule  *handlers.AdminScheduleHandler
	AdminFinance   *handlers.AdminFinanceHandler
	AdminTasks     *handlers.AdminTasksHandler
	AdminSettings  *handlers.AdminSettingsHandler

	MetricsHandler     http.Handler
	CORSAllowedOrigins []string

	// Requests/second and burst applied to the public booking surface.
	// Zero disables rate limiting (tests).
	PublicRateLimit float64
	PublicRateBurst int
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
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

	// Public endpoints (booking widget, login, health)
	r.Group(func(public chi.Router) {
		public.Get("/health", healthCheck)
		if cfg.MetricsHandler != nil {
			public.Handle("/metrics", cfg.MetricsHandler)
		}
		if cfg.BookingHandler != nil {
			if cfg.PublicRateLimit > 0 {
				public.With(httpmiddleware.RateLimit(cfg.PublicRateLimit, cfg.PublicRateBurst)).
					Mount("/api", cfg.BookingHandler.Routes())
			} else {
				public.Mount("/api", cfg.BookingHandler.Routes())
			}
		}
		if cfg.AuthHandler != nil {
			public.Mount("/auth", cfg.AuthHandler.Routes())
		}
	})

	// Admin routes (behind the login gate)
	r.Route("/admin", func(admin chi.Router) {
		admin.Use(auth.Require(cfg.AuthGate))
		if cfg.AdminDashboard != nil {
			admin.Mount("/dashboard", cfg.AdminDashboard.Routes())
		}
		if cfg.AdminClients != nil {
			admin.Mount("/clients", cfg.AdminClients.Routes())
		}
		if cfg.AdminSchedule != nil {
			admin.Mount("/schedule", cfg.AdminSchedule.Routes())
		}
		if cfg.AdminFinance != nil {
			admin.Mount("/finances", cfg.AdminFinance.Routes())
		}
		if cfg.AdminTasks != nil {
			admin.Mount("/tasks", cfg.AdminTasks.Routes())
		}
		if cfg.AdminSettings != nil {
			admin.Mount("/settings", cfg.AdminSettings.Routes())
		}
	})

	return r
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
