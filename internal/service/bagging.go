package service

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/threadline/bagging-service/internal/domain/model"
	"github.com/threadline/bagging-service/internal/repository"
)

// PackOutcome is the result of one "Create Bags" action.
type PackOutcome struct {
	// Bags are the newly created bags with their final ledger numbers.
	Bags []model.Bag `json:"bags"`
	// Unpackable reports orders that could not be packed.
	Unpackable []UnpackableOrder `json:"unpackable,omitempty"`
}

// BaggingService is the entry point the HTTP layer calls. It owns the
// snapshot discipline of a packing pass: load orders, inventory, and the
// ledger, run the engine synchronously, then persist the complete result.
type BaggingService interface {
	CreateBags(ctx context.Context, continuousFallback bool) (*PackOutcome, error)
	ListBags(ctx context.Context) ([]model.Bag, error)
	ManualTopUp(ctx context.Context, bagNumber int, allocation map[string]int) (*model.Bag, int, error)
	Untie(ctx context.Context, bagNumber int) error
	ExportCSV(ctx context.Context, w io.Writer) error
	Inventory(ctx context.Context) ([]model.InventoryStock, error)
	TargetCapacity() int
}

// BaggingServiceImpl implements BaggingService over the MongoDB
// repositories. A single mutex serializes every mutating action: one
// pass operates on one snapshot, as the engine requires.
type BaggingServiceImpl struct {
	mu        sync.Mutex
	orders    repository.OrdersRepositoryInterface
	inventory repository.InventoryRepositoryInterface
	bags      repository.BagsRepositoryInterface
	packer    *BagPacker
	fallback  *BagPacker
	allocator *InventoryAllocator
}

// NewBaggingService creates a new bagging service. The discrete packer is
// canonical; the fallback packer handles metadata-poor orders in
// continuous mode and tops up smallest-first, matching the legacy
// continuous behavior.
func NewBaggingService(
	orders repository.OrdersRepositoryInterface,
	inventory repository.InventoryRepositoryInterface,
	bags repository.BagsRepositoryInterface,
	opts ...PackerOption,
) *BaggingServiceImpl {
	allocator := NewInventoryAllocator()
	packerOpts := append([]PackerOption{WithAllocator(allocator)}, opts...)
	packer := NewBagPacker(packerOpts...)

	fallbackOpts := append([]PackerOption{
		WithAllocator(NewInventoryAllocator(WithSmallestFirst())),
	}, opts...)
	fallback := NewBagPacker(fallbackOpts...)

	return &BaggingServiceImpl{
		orders:    orders,
		inventory: inventory,
		bags:      bags,
		packer:    packer,
		fallback:  fallback,
		allocator: allocator,
	}
}

// TargetCapacity returns the configured bag capacity in meters.
func (s *BaggingServiceImpl) TargetCapacity() int {
	return s.packer.Capacity()
}

// CreateBags runs one packing pass over the pending orders and persists
// the produced bags and the consumed inventory.
func (s *BaggingServiceImpl) CreateBags(ctx context.Context, continuousFallback bool) (*PackOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.orders.ListByStatus(ctx, model.OrderStatusProcessing)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}

	stocks, original, err := s.loadStocks(ctx)
	if err != nil {
		return nil, err
	}

	ledger, err := s.loadLedger(ctx)
	if err != nil {
		return nil, err
	}
	used := ledger.UsedOrderIDs()

	result := s.packer.Pack(orders, stocks, used)
	newBags := result.Bags
	unpackable := result.Unpackable

	if continuousFallback {
		contBags := s.fallback.PackContinuous(orders, stocks, used)
		if len(contBags) > 0 {
			newBags = append(newBags, contBags...)
			unpackable = dropContinuouslyPacked(unpackable, contBags)
		}
	}

	numbered := ledger.CreateBatch(newBags)

	batchID := uuid.NewString()
	for i := range numbered {
		numbered[i].BatchID = batchID
	}

	if err := s.bags.InsertMany(ctx, numbered); err != nil {
		return nil, fmt.Errorf("persist bags: %w", err)
	}
	if err := s.bags.RaiseLastNumber(ctx, ledger.MaxNumber()); err != nil {
		return nil, fmt.Errorf("persist bag counter: %w", err)
	}
	if err := s.persistChangedStocks(ctx, stocks, original); err != nil {
		return nil, err
	}

	return &PackOutcome{Bags: numbered, Unpackable: unpackable}, nil
}

// ListBags returns the current ledger contents.
func (s *BaggingServiceImpl) ListBags(ctx context.Context) ([]model.Bag, error) {
	return s.bags.List(ctx)
}

// ManualTopUp fills a partial bag's exact shortfall from an explicit
// stock allocation. All-or-nothing: on any validation failure neither the
// bag nor the inventory changes. The second return value is the meterage
// this allocation added, excluding whatever the automatic pass filled in.
func (s *BaggingServiceImpl) ManualTopUp(ctx context.Context, bagNumber int, allocation map[string]int) (*model.Bag, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, err := s.loadLedger(ctx)
	if err != nil {
		return nil, 0, err
	}
	bag, err := ledger.Get(bagNumber)
	if err != nil {
		return nil, 0, err
	}
	added := bag.Missing(s.packer.Capacity())

	stocks, original, err := s.loadStocks(ctx)
	if err != nil {
		return nil, 0, err
	}

	if err := s.allocator.ManualAllocate(bag, stocks, allocation, s.packer.Capacity()); err != nil {
		return nil, 0, err
	}

	if err := s.bags.Update(ctx, *bag); err != nil {
		return nil, 0, fmt.Errorf("persist bag: %w", err)
	}
	if err := s.persistChangedStocks(ctx, stocks, original); err != nil {
		return nil, 0, err
	}

	return bag, added, nil
}

// Untie reverses a bag: inventory reels return to stock and the bag's
// order reels return to the available pool.
func (s *BaggingServiceImpl) Untie(ctx context.Context, bagNumber int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, err := s.loadLedger(ctx)
	if err != nil {
		return err
	}

	stocks, original, err := s.loadStocks(ctx)
	if err != nil {
		return err
	}

	if err := ledger.Untie(bagNumber, stocks, s.allocator); err != nil {
		return err
	}

	if err := s.bags.Delete(ctx, bagNumber); err != nil {
		return fmt.Errorf("delete bag: %w", err)
	}
	return s.persistChangedStocks(ctx, stocks, original)
}

// ExportCSV writes the ledger as CSV to w.
func (s *BaggingServiceImpl) ExportCSV(ctx context.Context, w io.Writer) error {
	bags, err := s.bags.List(ctx)
	if err != nil {
		return fmt.Errorf("load bags: %w", err)
	}
	return WriteCSV(w, bags)
}

// Inventory returns the current stock records.
func (s *BaggingServiceImpl) Inventory(ctx context.Context) ([]model.InventoryStock, error) {
	return s.inventory.List(ctx)
}

// loadStocks loads the inventory snapshot as mutable pointers, together
// with the original reel counts keyed by stock ID.
func (s *BaggingServiceImpl) loadStocks(ctx context.Context) ([]*model.InventoryStock, map[string]int, error) {
	records, err := s.inventory.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load inventory: %w", err)
	}
	stocks := make([]*model.InventoryStock, len(records))
	original := make(map[string]int, len(records))
	for i := range records {
		stocks[i] = &records[i]
		original[records[i].ID] = records[i].ReelCount
	}
	return stocks, original, nil
}

// loadLedger builds the in-memory ledger from the persisted bags and
// numbering high-water mark.
func (s *BaggingServiceImpl) loadLedger(ctx context.Context) (*BagLedger, error) {
	bags, err := s.bags.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bags: %w", err)
	}
	last, err := s.bags.LastNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bag counter: %w", err)
	}
	return NewBagLedger(bags, last), nil
}

// persistChangedStocks writes back only the stock records whose reel
// counts changed during the pass.
func (s *BaggingServiceImpl) persistChangedStocks(ctx context.Context, stocks []*model.InventoryStock, original map[string]int) error {
	var changed []model.InventoryStock
	for _, stock := range stocks {
		if stock.ReelCount != original[stock.ID] {
			changed = append(changed, *stock)
		}
	}
	if len(changed) == 0 {
		return nil
	}
	if err := s.inventory.UpdateReelCounts(ctx, changed); err != nil {
		return fmt.Errorf("persist inventory: %w", err)
	}
	return nil
}

// dropContinuouslyPacked removes orders that the continuous fallback
// managed to pack from the unpackable report.
func dropContinuouslyPacked(unpackable []UnpackableOrder, contBags []model.Bag) []UnpackableOrder {
	packed := make(map[string]bool)
	for _, bag := range contBags {
		for _, item := range bag.Items {
			if item.Type == model.ItemTypeOrder {
				packed[item.OrderID] = true
			}
		}
	}

	remaining := unpackable[:0]
	for _, u := range unpackable {
		if !packed[u.Order.ID] {
			remaining = append(remaining, u)
		}
	}
	if len(remaining) == 0 {
		return nil
	}
	return remaining
}
