// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/threadline/bagging-service/config"
	"github.com/threadline/bagging-service/internal/circuitbreaker"
	"github.com/threadline/bagging-service/internal/repository"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	OrdersRepo         repository.OrdersRepositoryInterface
	InventoryRepo      repository.InventoryRepositoryInterface
	BagsRepo           repository.BagsRepositoryInterface
	BagsCircuitBreaker *circuitbreaker.CircuitBreaker
	DB                 *repository.MongoDB
}

// InitializeDatabase initializes the MongoDB connection and creates the
// repositories. When the database is disabled or the connection fails, it
// falls back to in-memory repositories so the service stays usable.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return memoryComponents()
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - falling back to in-memory repositories")
		return memoryComponents()
	}

	log.Info().Msg("Connected to MongoDB")

	bagsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-bags",
	})

	bagsRepo := repository.NewBagsRepository(db)
	bagsRepoWithCB := repository.NewBagsRepositoryWithCircuitBreaker(bagsRepo, bagsCB)

	return &DatabaseComponents{
		OrdersRepo:         repository.NewOrdersRepository(db),
		InventoryRepo:      repository.NewInventoryRepository(db),
		BagsRepo:           bagsRepoWithCB,
		BagsCircuitBreaker: bagsCB,
		DB:                 db,
	}
}

// memoryComponents wires the in-memory repositories.
func memoryComponents() *DatabaseComponents {
	return &DatabaseComponents{
		OrdersRepo:    repository.NewMemoryOrdersRepository(nil),
		InventoryRepo: repository.NewMemoryInventoryRepository(nil),
		BagsRepo:      repository.NewMemoryBagsRepository(),
	}
}

// PingChecker returns a health check function for the Mongo connection, or
// nil when running without a database.
func (d *DatabaseComponents) PingChecker() func() error {
	if d.DB == nil {
		return nil
	}
	return func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return d.DB.Ping(ctx)
	}
}
