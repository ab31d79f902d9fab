package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/vanphubinh/erp-api/internal/infrastructure/http/handlers"
	"github.com/vanphubinh/erp-api/internal/infrastructure/http/middleware"
)

type RouterConfig struct {
	OrganizationsHandler *handlers.OrganizationsHandler
	PartiesHandler       *handlers.PartiesHandler
	HealthHandler        *handlers.HealthHandler
	Log                  zerolog.Logger
	Secure               func(http.Handler) http.Handler
	CORS                 func(http.Handler) http.Handler
	IPRateLimit          func(http.Handler) http.Handler
	Metrics              bool // expose /metrics
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimid.RequestID)
	r.Use(chimid.RealIP)
	r.Use(loggerMiddleware(cfg.Log))
	r.Use(chimid.Recoverer)
	if cfg.Metrics {
		r.Use(middleware.PrometheusMiddleware)
	}
	if cfg.Secure != nil {
		r.Use(cfg.Secure)
	}
	if cfg.CORS != nil {
		r.Use(cfg.CORS)
	}
	r.Use(chimid.AllowContentType("application/json"))
	if cfg.IPRateLimit != nil {
		r.Use(cfg.IPRateLimit)
	}

	if cfg.HealthHandler != nil {
		r.Get("/health", cfg.HealthHandler.ServeHTTP)
	} else {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		})
	}
	if cfg.Metrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		if cfg.OrganizationsHandler != nil {
			r.Route("/organizations", func(r chi.Router) {
				r.Post("/create", cfg.OrganizationsHandler.Create)
				r.Get("/list", cfg.OrganizationsHandler.List)
				r.Get("/get/{id}", cfg.OrganizationsHandler.Get)
				r.Put("/update/{id}", cfg.OrganizationsHandler.Update)
				r.Delete("/delete/{id}", cfg.OrganizationsHandler.Delete)
				r.Put("/activate/{id}", cfg.OrganizationsHandler.Activate)
				r.Put("/deactivate/{id}", cfg.OrganizationsHandler.Deactivate)
			})
		}
		if cfg.PartiesHandler != nil {
			r.Route("/parties", func(r chi.Router) {
				r.Post("/create", cfg.PartiesHandler.Create)
				r.Get("/list", cfg.PartiesHandler.List)
				r.Get("/get/{id}", cfg.PartiesHandler.Get)
				r.Put("/update/{id}", cfg.PartiesHandler.Update)
				r.Delete("/delete/{id}", cfg.PartiesHandler.Delete)
				r.Put("/activate/{id}", cfg.PartiesHandler.Activate)
				r.Put("/deactivate/{id}", cfg.PartiesHandler.Deactivate)
			})
		}
	})

	return r
}

func loggerMiddleware(log zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := chimid.GetReqID(r.Context())
			log.Info().
				Str("request_id", reqID).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("request")
			next.ServeHTTP(w, r)
		})
	}
}
