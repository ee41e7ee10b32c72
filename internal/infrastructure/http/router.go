package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/Rydon32/Book-Notes/internal/infrastructure/http/handlers"
	"github.com/Rydon32/Book-Notes/internal/infrastructure/http/middleware"
)

type RouterConfig struct {
	AuthHandler    *handlers.AuthHandler
	CatalogHandler *handlers.CatalogHandler
	EntryHandler   *handlers.EntryHandler
	SearchHandler  *handlers.SearchHandler
	HealthHandler  *handlers.HealthHandler
	RequireSession func(http.Handler) http.Handler
	Log            zerolog.Logger
	Secure         func(http.Handler) http.Handler
	LoginRateLimit func(http.Handler) http.Handler
	Metrics        bool // expose /metrics
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

	r.Get("/", handlers.Home)

	if cfg.HealthHandler != nil {
		r.Get("/health", cfg.HealthHandler.ServeHTTP)
	} else {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		})
	}
	if cfg.Metrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Get("/login", cfg.AuthHandler.LoginPage)
	r.Get("/logout", cfg.AuthHandler.Logout)
	r.Group(func(r chi.Router) {
		if cfg.LoginRateLimit != nil {
			r.Use(cfg.LoginRateLimit)
		}
		r.Post("/login", cfg.AuthHandler.Login)
	})

	r.Route("/auth", func(r chi.Router) {
		r.Get("/{provider}", cfg.AuthHandler.OAuthBegin)
		r.Get("/{provider}/callback", cfg.AuthHandler.OAuthCallback)
	})

	// Routes that require a live session
	r.Group(func(r chi.Router) {
		if cfg.RequireSession != nil {
			r.Use(cfg.RequireSession)
		}
		r.Get("/catalog", cfg.CatalogHandler.Display)
		r.Post("/entries", cfg.EntryHandler.Create)
		r.Post("/choose-book", cfg.EntryHandler.ChooseBook)
		r.Get("/search", cfg.SearchHandler.Page)
		r.Post("/search-books", cfg.SearchHandler.Search)
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
