// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"github.com/threadline/bagging-service/internal/circuitbreaker"
	"github.com/threadline/bagging-service/internal/domain/model"
)

// BagsRepositoryWithCircuitBreaker wraps BagsRepository with circuit breaker protection.
type BagsRepositoryWithCircuitBreaker struct {
	repo           *BagsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewBagsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewBagsRepositoryWithCircuitBreaker(repo *BagsRepository, cb *circuitbreaker.CircuitBreaker) *BagsRepositoryWithCircuitBreaker {
	return &BagsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// List returns all bags with circuit breaker protection.
func (r *BagsRepositoryWithCircuitBreaker) List(ctx context.Context) ([]model.Bag, error) {
	var result []model.Bag
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx)
		return cbErr
	})
	return result, err
}

// InsertMany persists bags with circuit breaker protection.
func (r *BagsRepositoryWithCircuitBreaker) InsertMany(ctx context.Context, bags []model.Bag) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.InsertMany(ctx, bags)
	})
}

// Update replaces a persisted bag with circuit breaker protection.
func (r *BagsRepositoryWithCircuitBreaker) Update(ctx context.Context, bag model.Bag) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Update(ctx, bag)
	})
}

// Delete removes a bag with circuit breaker protection.
func (r *BagsRepositoryWithCircuitBreaker) Delete(ctx context.Context, number int) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Delete(ctx, number)
	})
}

// LastNumber returns the numbering high-water mark with circuit breaker protection.
func (r *BagsRepositoryWithCircuitBreaker) LastNumber(ctx context.Context) (int, error) {
	var result int
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.LastNumber(ctx)
		return cbErr
	})
	return result, err
}

// RaiseLastNumber lifts the numbering high-water mark with circuit breaker protection.
func (r *BagsRepositoryWithCircuitBreaker) RaiseLastNumber(ctx context.Context, n int) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.RaiseLastNumber(ctx, n)
	})
}
