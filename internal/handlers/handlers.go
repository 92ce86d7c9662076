package handlers

import (
	"MemoryApp/internal/config"
	"MemoryApp/internal/metrics"
	"MemoryApp/internal/middleware"
	"MemoryApp/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	categoryService *service.CategoryService,
	memoryService *service.MemoryService,
	fileService *service.FileService,
	collector *metrics.Collector,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   config.AllowedOrigins(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Encoding"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(collector.Middleware)
	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(userService, logger, config)
	categoryHandler := NewCategoryHandler(categoryService, collector, logger)
	memoryHandler := NewMemoryHandler(memoryService, collector, logger)
	uploadHandler := NewUploadHandler(fileService, collector, logger, config)

	// User routes
	r.Post("/api/user/register", userHandler.Register)
	r.Post("/api/user/login", userHandler.Login)
	r.Post("/api/user/logout", userHandler.Logout)
	r.Get("/api/user/me", userHandler.Me)

	// Categories
	r.Get("/api/categories", categoryHandler.List)
	r.Post("/api/categories", categoryHandler.Create)
	r.Get("/api/categories/{id}", categoryHandler.Get)
	r.Put("/api/categories/{id}", categoryHandler.Update)
	r.Delete("/api/categories/{id}", categoryHandler.Delete)
	r.Get("/api/categories/{id}/memories", categoryHandler.Memories)

	// Memories
	r.Get("/api/memories", memoryHandler.List)
	r.Post("/api/memories", memoryHandler.Create)
	r.Put("/api/memories", memoryHandler.Update)
	r.Delete("/api/memories", memoryHandler.Delete)
	r.Get("/api/favorites", memoryHandler.Favorites)
	r.Patch("/api/favorites", memoryHandler.ToggleFavorite)

	// Files
	r.Post("/api/upload", uploadHandler.Upload)
	r.Get("/uploads/{name}", uploadHandler.Serve)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", collector.Handler())

	return &Handler{Router: r}
}
