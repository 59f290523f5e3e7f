// Package app provides router configuration.
package app

import (
	"github.com/threadline/bagging-service/config"
	"github.com/threadline/bagging-service/internal/http"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	handler := http.NewHandler(services.Bagging, cfg.Packing.ContinuousFallback)
	healthHandler := http.NewHealthHandler()

	// Register database health checks
	if dbComponents != nil {
		if checker := dbComponents.PingChecker(); checker != nil {
			healthHandler.RegisterChecker("mongodb", http.HealthCheckFunc(checker))
		}
		if dbComponents.BagsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_bags", dbComponents.BagsCircuitBreaker)
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:   cfg.Server.RateLimit,
		RateWindow:  cfg.Server.RateWindow,
		CORSOrigins: cfg.Server.CORSOrigins,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
