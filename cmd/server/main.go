package main

import (
	"MemoryApp/internal/config"
	"MemoryApp/internal/handlers"
	"MemoryApp/internal/metrics"
	"MemoryApp/internal/middleware"
	"MemoryApp/internal/repo"
	"MemoryApp/internal/service"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN, sugar)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	categoryRepo := repo.NewCategoryRepository(gormDB)
	memoryRepo := repo.NewMemoryRepository(gormDB)

	userService := service.NewUserService(userRepo)
	categoryService := service.NewCategoryService(categoryRepo, memoryRepo)
	memoryService := service.NewMemoryService(memoryRepo, sugar)
	fileService := service.NewFileService(cfg.UploadDir, cfg.UploadMaxBytes(), sugar)

	collector := metrics.NewCollector("memoryapp")

	h := handlers.NewHandler(userService, categoryService, memoryService, fileService, collector, sugar, cfg)

	srv := &http.Server{
		Addr:              cfg.BaseURL,
		Handler:           h.Router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	sugar.Infow("Starting server", "addr", srv.Addr)
	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"UploadDir", cfg.UploadDir,
		"UploadMaxMB", cfg.UploadMaxMB,
		"CORSOrigins", cfg.AllowedOrigins(),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("Server failed", "error", err)
		}
	}()

	<-ctx.Done()
	sugar.Infow("Shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("Graceful shutdown failed", "error", err)
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
