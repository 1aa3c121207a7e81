package main

import (
	"log/slog"

	"gios-air/internal/airquality"
	"gios-air/internal/config"

	"github.com/gin-gonic/gin"
)

// App encapsulates application dependencies
type App struct {
	router            *gin.Engine
	logger            *slog.Logger
	airQualityService airquality.Service
	cfg               *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))

	app := &App{
		router:            router,
		logger:            logger,
		airQualityService: airquality.NewService(cfg, logger),
		cfg:               cfg,
	}

	// Register routes
	app.registerRoutes()

	return app
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
