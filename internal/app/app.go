// Package app provides application initialization and dependency injection.
package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/threadline/bagging-service/config"
	"github.com/threadline/bagging-service/internal/http"
)

// InitializeApp creates and wires all application dependencies. It
// returns the router and a cleanup to run on shutdown.
func InitializeApp(cfg config.Config) (*gin.Engine, func(context.Context) error) {
	// Initialize logger first (needed by other components)
	InitializeLogger(cfg.Logging)

	// Initialize database components (MongoDB repositories, or in-memory
	// fallbacks when the database is disabled)
	dbComponents := InitializeDatabase(cfg.Database)

	// Initialize business services
	serviceComponents := InitializeServices(cfg.Packing, dbComponents)

	// Initialize router components (handlers and configuration)
	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)

	router := http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config)

	cleanup := func(ctx context.Context) error {
		if dbComponents.DB != nil {
			return dbComponents.DB.Close(ctx)
		}
		return nil
	}
	return router, cleanup
}
