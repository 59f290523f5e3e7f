package service

import (
	"fmt"
	"sort"

	"github.com/threadline/bagging-service/internal/domain/model"
)

// InventoryAllocator consumes and restores warehouse stock on behalf of
// bags. All mutation of stock reel counts goes through it, which is what
// keeps the reel-conservation invariant intact: every reel removed from
// a stock record reappears as inventory meterage in exactly one bag, and
// restoring a bag puts the same reels back.
type InventoryAllocator struct {
	smallestFirst bool
}

// AllocatorOption configures an InventoryAllocator.
type AllocatorOption func(*InventoryAllocator)

// WithSmallestFirst makes auto top-up prefer the smallest matching reels
// first, minimizing leftover capacity at the cost of more items per bag.
// The default prefers largest-first, minimizing item-count fragmentation.
func WithSmallestFirst() AllocatorOption {
	return func(a *InventoryAllocator) {
		a.smallestFirst = true
	}
}

// NewInventoryAllocator creates a new InventoryAllocator with the given options.
func NewInventoryAllocator(opts ...AllocatorOption) *InventoryAllocator {
	a := &InventoryAllocator{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AutoTopUp fills the bag's shortfall against target from matching stock,
// consuming whole reels only. Exhausted inventory is not an error: the
// bag may remain partial.
func (a *InventoryAllocator) AutoTopUp(bag *model.Bag, stocks []*model.InventoryStock, target int) {
	if bag.Missing(target) == 0 {
		return
	}

	matching := a.matchingStocks(bag.Product, stocks)
	for _, stock := range matching {
		if stock.ReelSizeMeters <= 0 {
			continue
		}

		consumed := 0
		for stock.ReelCount > 0 && bag.TotalMeters+consumed*stock.ReelSizeMeters+stock.ReelSizeMeters <= target {
			stock.ReelCount--
			consumed++
		}
		if consumed > 0 {
			bag.AddItem(inventoryItem(stock, consumed*stock.ReelSizeMeters))
		}

		if bag.Missing(target) == 0 {
			return
		}
	}
}

// ManualAllocate fills the bag's exact shortfall from an explicit
// allocation of reels per stock record. The allocation must sum to the
// shortfall exactly and must not request more reels than any record
// holds; on any failure nothing is mutated.
func (a *InventoryAllocator) ManualAllocate(bag *model.Bag, stocks []*model.InventoryStock, allocation map[string]int, target int) error {
	missing := bag.Missing(target)
	if missing == 0 {
		return &ValidationError{Field: "allocation", Message: "bag is already at capacity"}
	}

	byID := make(map[string]*model.InventoryStock, len(stocks))
	for _, stock := range stocks {
		byID[stock.ID] = stock
	}

	// Validate everything before touching any state.
	sumMeters := 0
	for stockID, reels := range allocation {
		stock, ok := byID[stockID]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownStock, stockID)
		}
		if !stock.Matches(bag.Product) {
			return &ValidationError{
				Field:   "allocation",
				Message: fmt.Sprintf("stock %s does not match the bag's product", stockID),
			}
		}
		if reels <= 0 {
			return &ValidationError{
				Field:   "allocation",
				Message: fmt.Sprintf("requested reel count for stock %s must be positive", stockID),
			}
		}
		if reels > stock.ReelCount {
			return &ValidationError{
				Field:   "allocation",
				Message: fmt.Sprintf("stock %s has %d reels, %d requested", stockID, stock.ReelCount, reels),
			}
		}
		sumMeters += reels * stock.ReelSizeMeters
	}

	if sumMeters != missing {
		return &ValidationError{
			Field:   "allocation",
			Message: fmt.Sprintf("allocated %d m but the bag is short exactly %d m", sumMeters, missing),
		}
	}

	// Stable item order for a deterministic bag.
	stockIDs := make([]string, 0, len(allocation))
	for stockID := range allocation {
		stockIDs = append(stockIDs, stockID)
	}
	sort.Strings(stockIDs)

	for _, stockID := range stockIDs {
		stock := byID[stockID]
		reels := allocation[stockID]
		stock.ReelCount -= reels
		bag.AddItem(inventoryItem(stock, reels*stock.ReelSizeMeters))
	}

	return nil
}

// Restore puts every inventory item in the bag back into the matching
// stock record. A meterage that does not divide evenly into whole reels
// is corruption and aborts the restore with no partial mutation.
func (a *InventoryAllocator) Restore(bag *model.Bag, stocks []*model.InventoryStock) error {
	byID := make(map[string]*model.InventoryStock, len(stocks))
	for _, stock := range stocks {
		byID[stock.ID] = stock
	}

	type credit struct {
		stock *model.InventoryStock
		reels int
	}
	credits := make([]credit, 0, len(bag.Items))

	for _, item := range bag.Items {
		if item.Type != model.ItemTypeInventory {
			continue
		}
		stock, ok := byID[item.StockID]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownStock, item.StockID)
		}
		if item.ReelSizeMeters <= 0 || item.Meters%item.ReelSizeMeters != 0 {
			return &CorruptBagError{
				BagNumber:      bag.Number,
				StockID:        item.StockID,
				Meters:         item.Meters,
				ReelSizeMeters: item.ReelSizeMeters,
			}
		}
		credits = append(credits, credit{stock: stock, reels: item.Meters / item.ReelSizeMeters})
	}

	for _, c := range credits {
		c.stock.ReelCount += c.reels
	}
	return nil
}

// matchingStocks returns the stock records holding the bag's product with
// reels on hand, ordered by reel size according to the allocator mode.
func (a *InventoryAllocator) matchingStocks(key model.ProductKey, stocks []*model.InventoryStock) []*model.InventoryStock {
	matching := make([]*model.InventoryStock, 0, len(stocks))
	for _, stock := range stocks {
		if stock.Matches(key) && stock.ReelCount > 0 {
			matching = append(matching, stock)
		}
	}
	sort.SliceStable(matching, func(i, j int) bool {
		if a.smallestFirst {
			return matching[i].ReelSizeMeters < matching[j].ReelSizeMeters
		}
		return matching[i].ReelSizeMeters > matching[j].ReelSizeMeters
	})
	return matching
}

// inventoryItem builds a bag item for reels taken from a stock record.
func inventoryItem(stock *model.InventoryStock, meters int) model.BagItem {
	return model.BagItem{
		Type:           model.ItemTypeInventory,
		StockID:        stock.ID,
		Label:          stock.Product().String(),
		Meters:         meters,
		ReelSizeMeters: stock.ReelSizeMeters,
	}
}
