package main

import (
	"os"
	"time"

	"hr-admin/internal/app"
	"hr-admin/internal/bootstrap"
	"hr-admin/internal/middleware"
	"hr-admin/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()
	r := gin.Default()
	r.Use(middleware.RequestID())

	// build dependency + routes
	auditLogger, err := app.BuildApp(r, logger)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:         port,
			ReadTimeout:  5 * time.Second,
			// Endpoint video assistant menunggu job polling sampai selesai
			WriteTimeout: 11 * time.Minute,
			IdleTimeout:  60 * time.Second,
		},
		auditLogger,
	)
}
