// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/threadline/bagging-service/internal/domain/model"
)

// OrdersRepositoryInterface defines read access to the order table. The
// engine never mutates orders; the external order API owns them.
type OrdersRepositoryInterface interface {
	ListByStatus(ctx context.Context, status string) ([]model.Order, error)
}

// InventoryRepositoryInterface defines access to warehouse stock records.
type InventoryRepositoryInterface interface {
	List(ctx context.Context) ([]model.InventoryStock, error)
	UpdateReelCounts(ctx context.Context, stocks []model.InventoryStock) error
}

// BagsRepositoryInterface defines access to the persisted bag ledger.
type BagsRepositoryInterface interface {
	List(ctx context.Context) ([]model.Bag, error)
	InsertMany(ctx context.Context, bags []model.Bag) error
	Update(ctx context.Context, bag model.Bag) error
	Delete(ctx context.Context, number int) error
	// LastNumber returns the numbering high-water mark, which survives
	// bag deletion so numbers are never reused.
	LastNumber(ctx context.Context) (int, error)
	// RaiseLastNumber lifts the high-water mark to at least n.
	RaiseLastNumber(ctx context.Context, n int) error
}
