package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/threadline/bagging-service/internal/domain/model"
)

// TestExplodeOrders tests order-to-reel-unit expansion.
func TestExplodeOrders(t *testing.T) {
	tests := []struct {
		name          string
		orders        []model.Order
		used          map[string]bool
		expectedUnits int
		expectedBad   []string
	}{
		{
			name: "expands one order into one unit per reel",
			orders: []model.Order{
				{ID: "o1", Customer: "Acme", Brand: "Suprema", ProductName: "Torcal", Cord: "40", ReelSizeMeters: 2500, ReelCount: 3, Status: model.OrderStatusProcessing},
			},
			expectedUnits: 3,
		},
		{
			name: "skips non-processing orders",
			orders: []model.Order{
				{ID: "o1", Brand: "Suprema", ProductName: "Torcal", Cord: "40", ReelSizeMeters: 2500, ReelCount: 2, Status: model.OrderStatusCompleted},
			},
			expectedUnits: 0,
		},
		{
			name: "skips orders already embedded in bags",
			orders: []model.Order{
				{ID: "o1", Brand: "Suprema", ProductName: "Torcal", Cord: "40", ReelSizeMeters: 2500, ReelCount: 2, Status: model.OrderStatusProcessing},
			},
			used:          map[string]bool{"o1": true},
			expectedUnits: 0,
		},
		{
			name: "reports missing reel size as unpackable",
			orders: []model.Order{
				{ID: "o1", Brand: "Suprema", ProductName: "Torcal", Cord: "40", ReelCount: 2, Status: model.OrderStatusProcessing},
			},
			expectedBad: []string{UnpackableMissingReelSize},
		},
		{
			name: "reports missing brand as unpackable",
			orders: []model.Order{
				{ID: "o1", ProductName: "Torcal", Cord: "40", ReelSizeMeters: 2500, ReelCount: 2, Status: model.OrderStatusProcessing},
			},
			expectedBad: []string{UnpackableMissingBrand},
		},
		{
			name: "reports missing cord as unpackable",
			orders: []model.Order{
				{ID: "o1", Brand: "Suprema", ProductName: "Torcal", ReelSizeMeters: 2500, ReelCount: 2, Status: model.OrderStatusProcessing},
			},
			expectedBad: []string{UnpackableMissingCord},
		},
		{
			name: "reports oversized reel as unpackable",
			orders: []model.Order{
				{ID: "o1", Brand: "Suprema", ProductName: "Torcal", Cord: "40", ReelSizeMeters: 6000, ReelCount: 1, Status: model.OrderStatusProcessing},
			},
			expectedBad: []string{UnpackableOversizedReel},
		},
		{
			name: "mixes eligible and unpackable orders",
			orders: []model.Order{
				{ID: "o1", Brand: "Suprema", ProductName: "Torcal", Cord: "40", ReelSizeMeters: 1000, ReelCount: 5, Status: model.OrderStatusProcessing},
				{ID: "o2", Brand: "Suprema", ProductName: "Torcal", Cord: "40", ReelCount: 2, Status: model.OrderStatusProcessing},
			},
			expectedUnits: 5,
			expectedBad:   []string{UnpackableMissingReelSize},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			units, unpackable := ExplodeOrders(tt.orders, 5000, tt.used)

			assert.Len(t, units, tt.expectedUnits)
			reasons := make([]string, 0, len(unpackable))
			for _, u := range unpackable {
				reasons = append(reasons, u.Reason)
			}
			assert.Equal(t, tt.expectedBad, append([]string(nil), reasons...))
		})
	}
}

// TestExplodeOrders_UnitFields verifies the unit carries the order's
// identity fields.
func TestExplodeOrders_UnitFields(t *testing.T) {
	orders := []model.Order{
		{ID: "o1", Customer: "Acme", Brand: "Suprema", ProductName: "Torcal", Cord: "40", ReelSizeMeters: 2500, ReelCount: 1, Status: model.OrderStatusProcessing},
	}

	units, unpackable := ExplodeOrders(orders, 5000, nil)

	assert.Empty(t, unpackable)
	assert.Equal(t, []model.ReelUnit{
		{OrderID: "o1", Customer: "Acme", Brand: "Suprema", ProductName: "Torcal", Cord: "40", SizeMeters: 2500},
	}, units)
}
