package app

import (
	"context"
	"os"

	"hr-admin/internal/assistant"
	"hr-admin/internal/audit"
	"hr-admin/internal/auth"
	"hr-admin/internal/dashboard"
	"hr-admin/internal/employee"
	"hr-admin/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func registerModules(
	ctx context.Context,
	router *gin.Engine,
	store storage.Store,
	rdb *redis.Client,
	auditLogger audit.Logger,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(store, logger)
	sessionRepo := auth.NewRepository(store, logger)

	// Koleksi kosong ditulis saat startup bila key belum ada
	if err := employeeRepo.Initialize(ctx); err != nil {
		return err
	}

	// --- Services ---
	employeeService := employee.NewService(employeeRepo, rdb, auditLogger, logger)
	authService := auth.NewService(sessionRepo, employeeService, employeeRepo, auditLogger, logger)
	dashboardService := dashboard.NewService(employeeRepo, rdb, logger)

	genaiClient, err := assistant.NewGoogleClient(ctx, os.Getenv("GEMINI_API_KEY"))
	if err != nil {
		return err
	}
	assistantService := assistant.NewService(genaiClient, employeeService, os.Getenv("GEMINI_API_KEY"))

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	dashboardHandler := dashboard.NewHandler(dashboardService, logger)
	assistantHandler := assistant.NewHandler(assistantService, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, authService)
		employee.RegisterRoutes(api, employeeHandler, authService, logger)
		dashboard.RegisterRoutes(api, dashboardHandler, authService, logger)
		assistant.RegisterRoutes(api, assistantHandler, authService, logger)
	}

	return nil
}
