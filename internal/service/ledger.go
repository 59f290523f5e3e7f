package service

import (
	"fmt"

	"github.com/threadline/bagging-service/internal/domain/model"
)

// BagLedger owns the sequence of produced bags. Bag numbers are globally
// monotonic and never reused, even after a bag is untied: the ledger
// remembers the highest number it has ever seen.
type BagLedger struct {
	bags      []model.Bag
	maxNumber int
}

// NewBagLedger creates a ledger over existing bags. lastNumber seeds the
// numbering high-water mark; it is raised to the highest existing bag
// number if that is greater.
func NewBagLedger(existing []model.Bag, lastNumber int) *BagLedger {
	l := &BagLedger{
		bags:      make([]model.Bag, len(existing)),
		maxNumber: lastNumber,
	}
	copy(l.bags, existing)
	for _, bag := range l.bags {
		if bag.Number > l.maxNumber {
			l.maxNumber = bag.Number
		}
	}
	return l
}

// CreateBatch appends the bags of one packing pass, renumbering them to
// continue from the ledger's high-water mark. The renumbered bags are
// returned in the order they were produced.
func (l *BagLedger) CreateBatch(newBags []model.Bag) []model.Bag {
	numbered := make([]model.Bag, len(newBags))
	copy(numbered, newBags)
	for i := range numbered {
		l.maxNumber++
		numbered[i].Number = l.maxNumber
	}
	l.bags = append(l.bags, numbered...)
	return numbered
}

// Bags returns the ledger's bags in creation order.
func (l *BagLedger) Bags() []model.Bag {
	out := make([]model.Bag, len(l.bags))
	copy(out, l.bags)
	return out
}

// Get returns the bag with the given number.
func (l *BagLedger) Get(number int) (*model.Bag, error) {
	for i := range l.bags {
		if l.bags[i].Number == number {
			return &l.bags[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownBag, number)
}

// Untie reverses a bag: its inventory items are restored to stock through
// the allocator and the bag is removed from the ledger, which implicitly
// returns its order-derived reels to the available pool (UsedOrderIDs is
// recomputed from the remaining bags). The bag's number is never reused.
func (l *BagLedger) Untie(number int, stocks []*model.InventoryStock, allocator *InventoryAllocator) error {
	idx := -1
	for i := range l.bags {
		if l.bags[i].Number == number {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("%w: %d", ErrUnknownBag, number)
	}

	if err := allocator.Restore(&l.bags[idx], stocks); err != nil {
		return err
	}

	l.bags = append(l.bags[:idx], l.bags[idx+1:]...)
	return nil
}

// UsedOrderIDs returns the set of order IDs whose reels are embedded in
// the ledger's current bags. Orders in this set are excluded from the
// available-to-pack pool.
func (l *BagLedger) UsedOrderIDs() map[string]bool {
	used := make(map[string]bool)
	for _, bag := range l.bags {
		for _, item := range bag.Items {
			if item.Type == model.ItemTypeOrder {
				used[item.OrderID] = true
			}
		}
	}
	return used
}

// MaxNumber returns the highest bag number the ledger has ever assigned
// or seen.
func (l *BagLedger) MaxNumber() int {
	return l.maxNumber
}

// Len returns the number of bags currently in the ledger.
func (l *BagLedger) Len() int {
	return len(l.bags)
}
