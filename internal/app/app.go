package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rmarques/predictpulse/config"
	"github.com/rmarques/predictpulse/internal/api"
	"github.com/rmarques/predictpulse/internal/service"
	"github.com/rmarques/predictpulse/internal/storage"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL using InitPostgres().
//   - Initializes the repository layer (PredictionsRepository).
//   - Creates the service and HTTP handler layers.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources (DB pool).
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	// Connect to PostgreSQL
	// indirection for unit testing
	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	// Repository layer (read-only DB access)
	repo := storage.NewPredictionsRepository(db)

	// Service layer (business logic)
	svc := service.NewPredictionService(repo)

	// HTTP handler layer
	handler := api.NewHandler(svc)

	// Router with middlewares and prediction routes
	router := api.NewRouter(handler)

	// Health and readiness probes
	healthHandler := api.NewHealthHandler(db.Ping)
	healthHandler.Register(router)

	cleanup := func() {
		_ = db.Close()
	}

	return router, cleanup, nil
}
