package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/threadline/bagging-service/internal/domain/model"
)

// MemoryOrdersRepository is an in-memory OrdersRepositoryInterface used
// when MongoDB is disabled and in tests.
type MemoryOrdersRepository struct {
	mu     sync.RWMutex
	orders []model.Order
}

// NewMemoryOrdersRepository creates an in-memory orders repository seeded
// with the given orders.
func NewMemoryOrdersRepository(orders []model.Order) *MemoryOrdersRepository {
	return &MemoryOrdersRepository{orders: append([]model.Order(nil), orders...)}
}

// ListByStatus returns the orders with the given status.
func (r *MemoryOrdersRepository) ListByStatus(_ context.Context, status string) ([]model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Order, 0, len(r.orders))
	for _, o := range r.orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out, nil
}

// SetOrders replaces the stored orders.
func (r *MemoryOrdersRepository) SetOrders(orders []model.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append([]model.Order(nil), orders...)
}

// MemoryInventoryRepository is an in-memory InventoryRepositoryInterface.
type MemoryInventoryRepository struct {
	mu     sync.RWMutex
	stocks map[string]model.InventoryStock
}

// NewMemoryInventoryRepository creates an in-memory inventory repository
// seeded with the given stock records.
func NewMemoryInventoryRepository(stocks []model.InventoryStock) *MemoryInventoryRepository {
	m := make(map[string]model.InventoryStock, len(stocks))
	for _, s := range stocks {
		m[s.ID] = s
	}
	return &MemoryInventoryRepository{stocks: m}
}

// List returns all stock records sorted by ID.
func (r *MemoryInventoryRepository) List(_ context.Context) ([]model.InventoryStock, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.InventoryStock, 0, len(r.stocks))
	for _, s := range r.stocks {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// AddStock registers a new stock record, as a stock delivery would.
func (r *MemoryInventoryRepository) AddStock(stock model.InventoryStock) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stocks[stock.ID] = stock
}

// UpdateReelCounts persists the reel counts of the given stock records.
func (r *MemoryInventoryRepository) UpdateReelCounts(_ context.Context, stocks []model.InventoryStock) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range stocks {
		stored, ok := r.stocks[s.ID]
		if !ok {
			return fmt.Errorf("stock %s: %w", s.ID, mongo.ErrNoDocuments)
		}
		stored.ReelCount = s.ReelCount
		r.stocks[s.ID] = stored
	}
	return nil
}

// MemoryBagsRepository is an in-memory BagsRepositoryInterface. It keeps
// the numbering high-water mark separate from the stored bags so numbers
// are never reused after deletion.
type MemoryBagsRepository struct {
	mu         sync.RWMutex
	bags       map[int]model.Bag
	lastNumber int
}

// NewMemoryBagsRepository creates an empty in-memory bags repository.
func NewMemoryBagsRepository() *MemoryBagsRepository {
	return &MemoryBagsRepository{bags: make(map[int]model.Bag)}
}

// List returns all bags sorted by number.
func (r *MemoryBagsRepository) List(_ context.Context) ([]model.Bag, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Bag, 0, len(r.bags))
	for _, b := range r.bags {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

// InsertMany stores the given bags.
func (r *MemoryBagsRepository) InsertMany(_ context.Context, bags []model.Bag) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range bags {
		if _, exists := r.bags[b.Number]; exists {
			return fmt.Errorf("bag %d already exists", b.Number)
		}
	}
	for _, b := range bags {
		r.bags[b.Number] = b
	}
	return nil
}

// Update replaces a stored bag.
func (r *MemoryBagsRepository) Update(_ context.Context, bag model.Bag) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bags[bag.Number]; !ok {
		return fmt.Errorf("bag %d: %w", bag.Number, mongo.ErrNoDocuments)
	}
	r.bags[bag.Number] = bag
	return nil
}

// Delete removes a stored bag. The high-water mark is unaffected.
func (r *MemoryBagsRepository) Delete(_ context.Context, number int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bags[number]; !ok {
		return fmt.Errorf("bag %d: %w", number, mongo.ErrNoDocuments)
	}
	delete(r.bags, number)
	return nil
}

// LastNumber returns the numbering high-water mark.
func (r *MemoryBagsRepository) LastNumber(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastNumber, nil
}

// RaiseLastNumber lifts the high-water mark to at least n.
func (r *MemoryBagsRepository) RaiseLastNumber(_ context.Context, n int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n > r.lastNumber {
		r.lastNumber = n
	}
	return nil
}
