// Package app provides service initialization.
package app

import (
	"github.com/threadline/bagging-service/config"
	"github.com/threadline/bagging-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Bagging service.BaggingService
}

// InitializeServices initializes business logic services.
func InitializeServices(cfg config.PackingConfig, db *DatabaseComponents) *ServiceComponents {
	var opts []service.PackerOption

	if cfg.TargetCapacityMeters > 0 {
		opts = append(opts, service.WithTargetCapacity(cfg.TargetCapacityMeters))
	}
	if len(cfg.StandardReelSizes) > 0 {
		opts = append(opts, service.WithStandardReelSizes(cfg.StandardReelSizes))
	}

	bagging := service.NewBaggingService(db.OrdersRepo, db.InventoryRepo, db.BagsRepo, opts...)

	return &ServiceComponents{
		Bagging: bagging,
	}
}
