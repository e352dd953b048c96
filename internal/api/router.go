package api

import (
	"net/http"

	"github.com/akoval/taskhub/internal/api/handler"
	customMiddleware "github.com/akoval/taskhub/internal/api/middleware"
	"github.com/akoval/taskhub/internal/config"
	"github.com/akoval/taskhub/internal/repository"
	"github.com/akoval/taskhub/internal/security"
	"github.com/akoval/taskhub/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, store repository.Store) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	tokenManager := security.NewTokenManager(
		cfg.Auth.SecretKey,
		cfg.Auth.AccessTokenTTL,
	)

	authService := service.NewAuthService(store.Users(), tokenManager)
	taskService := service.NewTaskService(store.Tasks())

	authHandler := handler.NewAuthHandler(authService)
	taskHandler := handler.NewTaskHandler(taskService)

	authMiddleware := customMiddleware.NewAuthMiddleware(tokenManager)

	// Health checks
	r.Get("/health", handler.HealthCheck)
	r.Get("/ready", handler.ReadyCheck(store))

	// Auth routes
	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)

		// Logout still requires a currently valid token.
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Post("/logout", authHandler.Logout)
		})
	})

	// Task routes (protected)
	r.Route("/tasks", func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Get("/", taskHandler.List)
		r.Post("/", taskHandler.Create)
		r.Put("/{taskID}", taskHandler.Update)
		r.Delete("/{taskID}", taskHandler.Delete)
	})

	return r
}
