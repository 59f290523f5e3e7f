package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/threadline/bagging-service/internal/domain/model"
)

func ledgerBag(number int, items ...model.BagItem) model.Bag {
	bag := model.Bag{Number: number, Product: testProduct}
	for _, item := range items {
		bag.AddItem(item)
	}
	return bag
}

// TestNewBagLedger tests high-water mark seeding.
func TestNewBagLedger(t *testing.T) {
	tests := []struct {
		name       string
		existing   []model.Bag
		lastNumber int
		expected   int
	}{
		{name: "empty ledger starts at zero", expected: 0},
		{name: "seeds from persisted counter", lastNumber: 12, expected: 12},
		{
			name:     "raises to highest existing bag",
			existing: []model.Bag{ledgerBag(3), ledgerBag(7)},
			expected: 7,
		},
		{
			name:       "counter wins over lower bag numbers",
			existing:   []model.Bag{ledgerBag(3)},
			lastNumber: 9,
			expected:   9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewBagLedger(tt.existing, tt.lastNumber)
			assert.Equal(t, tt.expected, l.MaxNumber())
		})
	}
}

// TestBagLedger_CreateBatch verifies sequential numbering continuing from
// the high-water mark.
func TestBagLedger_CreateBatch(t *testing.T) {
	l := NewBagLedger(nil, 5)

	numbered := l.CreateBatch([]model.Bag{{Product: testProduct}, {Product: testProduct}})

	require.Len(t, numbered, 2)
	assert.Equal(t, 6, numbered[0].Number)
	assert.Equal(t, 7, numbered[1].Number)
	assert.Equal(t, 7, l.MaxNumber())
	assert.Equal(t, 2, l.Len())
}

// TestBagLedger_NumbersNeverReused verifies untying the highest bag does
// not surrender its number.
func TestBagLedger_NumbersNeverReused(t *testing.T) {
	l := NewBagLedger(nil, 0)
	allocator := NewInventoryAllocator()

	first := l.CreateBatch([]model.Bag{{Product: testProduct}})
	require.Equal(t, 1, first[0].Number)

	require.NoError(t, l.Untie(1, nil, allocator))
	assert.Equal(t, 0, l.Len())

	second := l.CreateBatch([]model.Bag{{Product: testProduct}})
	assert.Equal(t, 2, second[0].Number, "untied number must not be reassigned")
}

// TestBagLedger_Untie verifies restore-then-remove semantics.
func TestBagLedger_Untie(t *testing.T) {
	allocator := NewInventoryAllocator()

	t.Run("restores inventory reels and frees order reels", func(t *testing.T) {
		stocks := testStocks()
		bag := ledgerBag(0,
			model.BagItem{Type: model.ItemTypeOrder, OrderID: "o1", Meters: 2500, ReelSizeMeters: 2500},
			model.BagItem{Type: model.ItemTypeInventory, StockID: "s2", Meters: 2500, ReelSizeMeters: 2500},
		)
		l := NewBagLedger(nil, 0)
		numbered := l.CreateBatch([]model.Bag{bag})

		assert.True(t, l.UsedOrderIDs()["o1"])

		require.NoError(t, l.Untie(numbered[0].Number, stocks, allocator))

		assert.Equal(t, 3, stocks[1].ReelCount)
		assert.False(t, l.UsedOrderIDs()["o1"], "order reels return to the available pool")
	})

	t.Run("unknown bag number", func(t *testing.T) {
		l := NewBagLedger(nil, 0)
		err := l.Untie(42, nil, allocator)
		assert.True(t, errors.Is(err, ErrUnknownBag))
	})

	t.Run("corrupt bag stays in the ledger", func(t *testing.T) {
		stocks := testStocks()
		bag := ledgerBag(0,
			model.BagItem{Type: model.ItemTypeInventory, StockID: "s1", Meters: 1500, ReelSizeMeters: 1000},
		)
		l := NewBagLedger(nil, 0)
		numbered := l.CreateBatch([]model.Bag{bag})

		err := l.Untie(numbered[0].Number, stocks, allocator)

		var cErr *CorruptBagError
		require.ErrorAs(t, err, &cErr)
		assert.Equal(t, 1, l.Len())
		assert.Equal(t, 5, stocks[0].ReelCount)
	})
}

// TestBagLedger_Get tests bag lookup.
func TestBagLedger_Get(t *testing.T) {
	l := NewBagLedger([]model.Bag{ledgerBag(4)}, 4)

	bag, err := l.Get(4)
	require.NoError(t, err)
	assert.Equal(t, 4, bag.Number)

	_, err = l.Get(99)
	assert.True(t, errors.Is(err, ErrUnknownBag))
}

// TestBagLedger_UsedOrderIDs verifies only order items mark orders used.
func TestBagLedger_UsedOrderIDs(t *testing.T) {
	l := NewBagLedger([]model.Bag{
		ledgerBag(1,
			model.BagItem{Type: model.ItemTypeOrder, OrderID: "o1", Meters: 2500},
			model.BagItem{Type: model.ItemTypeInventory, StockID: "s1", Meters: 2500},
		),
	}, 1)

	used := l.UsedOrderIDs()

	assert.True(t, used["o1"])
	assert.Len(t, used, 1)
}
