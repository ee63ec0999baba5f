package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/littlelemon/restaurant-backend/app"
	"github.com/littlelemon/restaurant-backend/internal/accesspolicy"
)

// SetupRoutes configures all application routes and middleware
func SetupRoutes(deps *app.Dependencies) http.Handler {
	r := chi.NewRouter()

	// Core middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "https://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoints
	r.Get("/healthz", deps.HealthHandler.HandleHealth)
	r.Get("/readyz", deps.HealthHandler.HandleReadiness)

	// Auth endpoints (token issuance; no authentication required)
	r.Route("/auth", func(r chi.Router) {
		r.Post("/users", deps.AuthHandler.HandleRegister)
		r.Post("/token/login", deps.AuthHandler.HandleLogin)
	})

	// Menu items: readable by any authenticated caller, writable by admins
	r.Route("/api/menu", func(r chi.Router) {
		r.Use(deps.AuthMiddleware.RequireAuth)
		r.Use(deps.AuthMiddleware.RequirePermission(accesspolicy.ResourceMenu))
		r.Get("/", deps.MenuHandler.HandleList)
		r.Post("/", deps.MenuHandler.HandleCreate)
		r.Get("/{id}", deps.MenuHandler.HandleGet)
		r.Put("/{id}", deps.MenuHandler.HandleUpdate)
		r.Patch("/{id}", deps.MenuHandler.HandleUpdate)
		r.Delete("/{id}", deps.MenuHandler.HandleDelete)
	})

	// Bookings: list/create/read for authenticated callers, writes for admins
	r.Route("/api/book", func(r chi.Router) {
		r.Use(deps.AuthMiddleware.RequireAuth)
		r.Use(deps.AuthMiddleware.RequirePermission(accesspolicy.ResourceBooking))
		r.Get("/", deps.BookingHandler.HandleList)
		r.Post("/", deps.BookingHandler.HandleCreate)
		r.Get("/{id}", deps.BookingHandler.HandleGet)
		r.Put("/{id}", deps.BookingHandler.HandleUpdate)
		r.Patch("/{id}", deps.BookingHandler.HandleUpdate)
		r.Delete("/{id}", deps.BookingHandler.HandleDelete)
	})

	// 404 handler
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"endpoint not found"}`))
	})

	return r
}
