package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/threadline/bagging-service/internal/domain/model"
)

func continuousOrder(id string, totalMeters int) model.Order {
	return model.Order{
		ID:          id,
		Customer:    "Acme",
		Brand:       "Suprema",
		ProductName: "Torcal",
		Cord:        "40",
		TotalMeters: totalMeters,
		Status:      model.OrderStatusProcessing,
	}
}

// TestBagPacker_PackContinuous tests meter splitting across bag
// boundaries for orders without reel metadata.
func TestBagPacker_PackContinuous(t *testing.T) {
	tests := []struct {
		name   string
		orders []model.Order
		verify func(*testing.T, []model.Bag)
	}{
		{
			name:   "order splits across bags at capacity",
			orders: []model.Order{continuousOrder("o1", 12000)},
			verify: func(t *testing.T, bags []model.Bag) {
				require.Len(t, bags, 3)
				assert.Equal(t, 5000, bags[0].TotalMeters)
				assert.Equal(t, 5000, bags[1].TotalMeters)
				assert.Equal(t, 2000, bags[2].TotalMeters)
			},
		},
		{
			name: "orders of one product share a bag",
			orders: []model.Order{
				continuousOrder("o1", 3000),
				continuousOrder("o2", 2000),
			},
			verify: func(t *testing.T, bags []model.Bag) {
				require.Len(t, bags, 1)
				assert.Equal(t, 5000, bags[0].TotalMeters)
				assert.Len(t, bags[0].Items, 2)
			},
		},
		{
			name: "skips orders with reel metadata",
			orders: []model.Order{
				{ID: "o1", Brand: "Suprema", ProductName: "Torcal", Cord: "40", ReelSizeMeters: 2500, ReelCount: 2, TotalMeters: 5000, Status: model.OrderStatusProcessing},
			},
			verify: func(t *testing.T, bags []model.Bag) {
				assert.Empty(t, bags)
			},
		},
		{
			name: "skips orders without total meterage",
			orders: []model.Order{
				{ID: "o1", Brand: "Suprema", ProductName: "Torcal", Cord: "40", Status: model.OrderStatusProcessing},
			},
			verify: func(t *testing.T, bags []model.Bag) {
				assert.Empty(t, bags)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewBagPacker()
			bags := p.PackContinuous(tt.orders, nil, nil)

			for _, bag := range bags {
				assert.LessOrEqual(t, bag.TotalMeters, p.Capacity())
			}
			tt.verify(t, bags)
		})
	}
}

// TestBagPacker_PackContinuous_ItemsHaveNoReelSize verifies split items
// carry no reel boundary.
func TestBagPacker_PackContinuous_ItemsHaveNoReelSize(t *testing.T) {
	p := NewBagPacker()
	bags := p.PackContinuous([]model.Order{continuousOrder("o1", 7000)}, nil, nil)

	require.Len(t, bags, 2)
	for _, bag := range bags {
		for _, item := range bag.Items {
			assert.Equal(t, 0, item.ReelSizeMeters)
			assert.Equal(t, model.ItemTypeOrder, item.Type)
		}
	}
}

// TestBagPacker_PackContinuous_TopUp verifies the trailing partial bag
// draws from inventory.
func TestBagPacker_PackContinuous_TopUp(t *testing.T) {
	stocks := []*model.InventoryStock{
		{ID: "s1", Brand: "Suprema", ProductName: "Torcal", Cord: "40", ReelSizeMeters: 1000, ReelCount: 3},
	}

	p := NewBagPacker()
	bags := p.PackContinuous([]model.Order{continuousOrder("o1", 7000)}, stocks, nil)

	require.Len(t, bags, 2)
	// Second bag is 2000 from the order plus 3000 topped up.
	assert.Equal(t, 5000, bags[1].TotalMeters)
	assert.Equal(t, 3000, bags[1].FilledFromInventoryMeters)
	assert.Equal(t, 0, stocks[0].ReelCount)
}

// TestBagPacker_PackContinuous_ConservesMeters verifies every ordered
// meter lands in exactly one bag.
func TestBagPacker_PackContinuous_ConservesMeters(t *testing.T) {
	orders := []model.Order{
		continuousOrder("o1", 6200),
		continuousOrder("o2", 4100),
	}

	p := NewBagPacker()
	bags := p.PackContinuous(orders, nil, nil)

	total := 0
	for _, bag := range bags {
		for _, item := range bag.Items {
			total += item.Meters
		}
	}
	assert.Equal(t, 10300, total)
}
