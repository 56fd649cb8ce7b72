package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"campusbook/internal/api"
	"campusbook/internal/audit"
	"campusbook/internal/auth"
	"campusbook/internal/booking"
	"campusbook/internal/equipment"
	"campusbook/internal/user"
	"campusbook/pkg/cache"
	"campusbook/pkg/config"
)

type Dependencies struct {
	Cfg   config.Config
	DB    *pgxpool.Pool
	Redis *cache.Redis
}

func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	usersRepo := user.NewRepository(deps.DB)
	equipmentRepo := equipment.NewRepository(deps.DB)
	bookingsRepo := booking.NewRepository(deps.DB)
	auditRepo := audit.NewRepository(deps.DB)

	authHandlers := auth.Handlers{
		Cfg:   deps.Cfg,
		Users: usersRepo,
	}
	equipmentHandlers := equipment.Handlers{
		Repo:  equipmentRepo,
		Cache: equipment.NewCache(deps.Redis, deps.Cfg.CatalogCacheTTL),
	}
	bookingHandlers := booking.Handlers{
		DB:        deps.DB,
		Bookings:  bookingsRepo,
		Equipment: equipmentRepo,
		Users:     usersRepo,
		Audit:     auditRepo,
	}
	auditHandlers := audit.Handlers{Repo: auditRepo}

	r.Route("/v1", func(r chi.Router) {
		r.Use(api.CORSMiddleware(api.CORSOptions{
			AllowedOrigins: deps.Cfg.AllowedOrigins,
			MaxAgeSeconds:  600,
		}))

		r.Post("/auth/signup", authHandlers.Signup)
		r.Post("/auth/login", authHandlers.Login)
		r.Post("/auth/refresh", authHandlers.Refresh)

		// Authenticated surface (any role).
		r.Group(func(r chi.Router) {
			r.Use(api.BearerAuth(deps.Cfg, usersRepo))

			r.Get("/equipment", equipmentHandlers.Catalog)
			r.Post("/bookings", bookingHandlers.Create)
			r.Get("/bookings/my", bookingHandlers.My)

			// Admin surface.
			r.Route("/admin", func(r chi.Router) {
				r.Use(api.RequireRole(user.RoleAdmin))

				r.Get("/bookings/pending", bookingHandlers.Pending)
				r.Get("/bookings", bookingHandlers.All)
				r.Patch("/bookings/{id}/status", bookingHandlers.Decide)

				r.Post("/equipment", equipmentHandlers.Create)
				r.Put("/equipment/{id}", equipmentHandlers.Update)
				r.Patch("/equipment/{id}/availability", equipmentHandlers.SetAvailability)
				r.Delete("/equipment/{id}", equipmentHandlers.Delete)

				r.Get("/users", authHandlers.ListUsers)
				r.Get("/logs", auditHandlers.List)
			})
		})
	})

	return r
}
