package service

import (
	"sort"

	"github.com/threadline/bagging-service/internal/domain/model"
)

var (
	// DefaultTargetCapacityMeters is the standard bag capacity.
	DefaultTargetCapacityMeters = 5000
	// DefaultStandardReelSizes are the reel sizes the factory stocks.
	DefaultStandardReelSizes = []int{5000, 2500, 1000}
)

// BagPacker converts a day's pending orders into bags sized to the
// target capacity. It packs each product group independently: exact
// whole-bag batches of standard reel sizes first, then a greedy
// largest-first pass over whatever is left, topping up under-filled bags
// from inventory through the allocator.
type BagPacker struct {
	capacity      int
	standardSizes []int
	allocator     *InventoryAllocator
}

// PackerOption configures a BagPacker.
type PackerOption func(*BagPacker)

// WithTargetCapacity sets the bag capacity in meters.
func WithTargetCapacity(meters int) PackerOption {
	return func(p *BagPacker) {
		if meters > 0 {
			p.capacity = meters
		}
	}
}

// WithStandardReelSizes sets the reel sizes eligible for exact whole-bag
// batching.
func WithStandardReelSizes(sizes []int) PackerOption {
	return func(p *BagPacker) {
		if len(sizes) > 0 {
			p.standardSizes = make([]int, len(sizes))
			copy(p.standardSizes, sizes)
			sort.Sort(sort.Reverse(sort.IntSlice(p.standardSizes)))
		}
	}
}

// WithAllocator sets the inventory allocator used for top-ups.
func WithAllocator(a *InventoryAllocator) PackerOption {
	return func(p *BagPacker) {
		p.allocator = a
	}
}

// NewBagPacker creates a new BagPacker with the given options.
func NewBagPacker(opts ...PackerOption) *BagPacker {
	p := &BagPacker{
		capacity:      DefaultTargetCapacityMeters,
		standardSizes: make([]int, len(DefaultStandardReelSizes)),
		allocator:     NewInventoryAllocator(),
	}
	copy(p.standardSizes, DefaultStandardReelSizes)

	for _, opt := range opts {
		opt(p)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(p.standardSizes)))
	return p
}

// Capacity returns the configured target capacity in meters.
func (p *BagPacker) Capacity() int {
	return p.capacity
}

// PackResult is the outcome of one discrete packing pass.
type PackResult struct {
	// Bags are the produced bags, numbered 1..N within the pass.
	Bags []model.Bag
	// Unpackable reports the orders excluded from discrete packing.
	Unpackable []UnpackableOrder
}

// Pack runs one packing pass over the given orders and stock snapshot.
// Orders already embedded in bags (usedOrderIDs) are skipped. Stock reel
// counts are decremented in place for every top-up performed.
func (p *BagPacker) Pack(orders []model.Order, stocks []*model.InventoryStock, usedOrderIDs map[string]bool) PackResult {
	units, unpackable := ExplodeOrders(orders, p.capacity, usedOrderIDs)

	var bags []model.Bag
	for _, group := range GroupByProduct(units) {
		bags = append(bags, p.packGroup(group, stocks)...)
	}

	for i := range bags {
		bags[i].Number = i + 1
	}

	return PackResult{Bags: bags, Unpackable: unpackable}
}

// packGroup packs one product group into bags.
func (p *BagPacker) packGroup(group ProductGroup, stocks []*model.InventoryStock) []model.Bag {
	if len(group.Units) == 0 {
		return nil
	}

	var bags []model.Bag
	remaining := group.Units

	// Exact whole-bag batches: for each standard size S dividing the
	// capacity, k = capacity/S reels of size S fill a bag exactly.
	for _, size := range p.standardSizes {
		if size <= 0 || p.capacity%size != 0 {
			continue
		}
		perBag := p.capacity / size

		var batch, rest []model.ReelUnit
		for _, unit := range remaining {
			if unit.SizeMeters == size {
				batch = append(batch, unit)
			} else {
				rest = append(rest, unit)
			}
		}

		for len(batch) >= perBag {
			bag := model.Bag{Product: group.Key}
			for _, unit := range batch[:perBag] {
				bag.AddItem(orderItem(unit))
			}
			bags = append(bags, bag)
			batch = batch[perBag:]
		}

		remaining = append(rest, batch...)
	}

	// Leftover packing: largest reels first, greedy accumulation, close
	// and top up whenever the next reel would overflow.
	sort.SliceStable(remaining, func(i, j int) bool {
		return remaining[i].SizeMeters > remaining[j].SizeMeters
	})

	var current *model.Bag
	for _, unit := range remaining {
		if current != nil && current.TotalMeters+unit.SizeMeters > p.capacity {
			p.allocator.AutoTopUp(current, stocks, p.capacity)
			bags = append(bags, *current)
			current = nil
		}
		if current == nil {
			current = &model.Bag{Product: group.Key}
		}
		current.AddItem(orderItem(unit))
	}
	if current != nil {
		p.allocator.AutoTopUp(current, stocks, p.capacity)
		bags = append(bags, *current)
	}

	return bags
}

// orderItem builds a bag item for one reel unit.
func orderItem(unit model.ReelUnit) model.BagItem {
	return model.BagItem{
		Type:           model.ItemTypeOrder,
		OrderID:        unit.OrderID,
		Customer:       unit.Customer,
		Meters:         unit.SizeMeters,
		ReelSizeMeters: unit.SizeMeters,
	}
}
