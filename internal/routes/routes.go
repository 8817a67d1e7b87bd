package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/AnshRaj112/courtmatch-backend/internal/config"
	"github.com/AnshRaj112/courtmatch-backend/internal/database"
	"github.com/AnshRaj112/courtmatch-backend/internal/handlers"
	"github.com/AnshRaj112/courtmatch-backend/internal/metrics"
	"github.com/AnshRaj112/courtmatch-backend/internal/middleware"
)

// Dependencies are the long-lived resources the router needs. Redis is optional.
type Dependencies struct {
	Config *config.Config
	Store  *database.Store
	Redis  *redis.Client
}

// SetupRouter builds the HTTP handler. The returned func releases resources
// owned by the router and must be called on shutdown.
func SetupRouter(deps Dependencies) (*chi.Mux, func()) {
	cfg := deps.Config
	cleanup := func() {}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(cfg.TrustProxyHeaders))
	r.Use(middleware.Recover)
	r.Use(metrics.Middleware)
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	if cfg.IsProduction() {
		r.Use(middleware.SecurityHeaders)
	}

	if cfg.RateLimitEnabled {
		if deps.Redis != nil {
			limiter := &middleware.RedisRateLimiter{
				Client:      deps.Redis,
				MaxRequests: cfg.RateLimitMaxRequests,
				Window:      cfg.RateLimitWindow,
				BlockFor:    cfg.RateLimitBlockDuration,
				TrustProxy:  cfg.TrustProxyHeaders,
			}
			r.Use(limiter.Middleware)
			log.Info().Msg("rate limiting enabled (redis, shared)")
		} else {
			limiter := middleware.NewIPRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.TrustProxyHeaders)
			r.Use(limiter.Middleware)
			cleanup = limiter.Stop
			log.Info().Msg("rate limiting enabled (in-process)")
		}
	}

	h := handlers.New(deps.Store)

	r.Get("/health", h.Health)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	SetupAPIRoutes(r, h)

	// Everything else is the frontend bundle.
	r.Handle("/*", handlers.Static(cfg.StaticDir))

	return r, cleanup
}

// SetupAPIRoutes registers the JSON API.
func SetupAPIRoutes(r chi.Router, h *handlers.Handler) {
	r.Route("/api", func(r chi.Router) {
		r.NotFound(handlers.NotFound)
		r.MethodNotAllowed(handlers.MethodNotAllowed)

		r.Get("/posts", h.ListPosts)
		r.Post("/posts", h.CreatePost)
		r.Get("/matches", h.FindMatches)
		r.Get("/chats", h.ListChats)
		r.Get("/account", h.GetAccount)
	})
}
