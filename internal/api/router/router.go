package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fitplanhub/fitplanhub/internal/api/handlers"
	"github.com/fitplanhub/fitplanhub/internal/api/middleware"
	"github.com/fitplanhub/fitplanhub/internal/config"
	"github.com/fitplanhub/fitplanhub/internal/domain/user"
	"github.com/fitplanhub/fitplanhub/internal/pkg/logger"
	"github.com/fitplanhub/fitplanhub/internal/pkg/metrics"
)

// Handlers groups every HTTP handler mounted by the router
type Handlers struct {
	Auth          *handlers.AuthHandler
	Plans         *handlers.PlanHandler
	Follows       *handlers.FollowHandler
	Subscriptions *handlers.SubscriptionHandler
	Feed          *handlers.FeedHandler
	Health        *handlers.HealthHandler
}

// New assembles the chi router with the full middleware chain and API routes
func New(cfg *config.Config, log *logger.Logger, h Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))
	r.Use(middleware.DefaultCORS(cfg.Server.FrontendURL))
	r.Use(middleware.RateLimit(100, 200))
	r.Use(metrics.Middleware)

	secret := cfg.Auth.JWTSecret

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", h.Auth.Signup)
			r.Post("/login", h.Auth.Login)
			r.With(middleware.Auth(secret)).Get("/me", h.Auth.Me)
		})

		r.Route("/plans", func(r chi.Router) {
			r.With(middleware.OptionalAuth(secret)).Get("/", h.Plans.List)
			r.With(middleware.Auth(secret)).Get("/{planId}", h.Plans.Get)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(secret))
				r.Use(middleware.RequireRole(user.RoleTrainer))
				r.Post("/", h.Plans.Create)
				r.Put("/{planId}", h.Plans.Update)
				r.Delete("/{planId}", h.Plans.Delete)
			})
		})

		r.Route("/follows", func(r chi.Router) {
			r.Use(middleware.Auth(secret))
			r.Use(middleware.RequireRole(user.RoleUser))
			r.Get("/my-follows", h.Follows.List)
			r.Get("/check/{trainerId}", h.Follows.Check)
			r.Post("/{trainerId}", h.Follows.Follow)
			r.Delete("/{trainerId}", h.Follows.Unfollow)
		})

		r.Route("/subscriptions", func(r chi.Router) {
			r.Use(middleware.Auth(secret))
			r.Use(middleware.RequireRole(user.RoleUser))
			r.Get("/my-subscriptions", h.Subscriptions.List)
			r.Post("/{planId}", h.Subscriptions.Subscribe)
			r.Delete("/{planId}", h.Subscriptions.Unsubscribe)
		})

		r.With(middleware.Auth(secret), middleware.RequireRole(user.RoleUser)).
			Get("/feed", h.Feed.Feed)

		r.With(middleware.Auth(secret)).
			Get("/trainers/{trainerId}", h.Feed.TrainerProfile)
	})

	r.Get("/healthz", h.Health.Healthz)
	r.Get("/readyz", h.Health.Readyz)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	return r
}
