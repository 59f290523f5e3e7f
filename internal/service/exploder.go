package service

import (
	"github.com/threadline/bagging-service/internal/domain/model"
)

// Unpackable reasons reported by the reel exploder.
const (
	UnpackableMissingReelSize = "missing reel size"
	UnpackableMissingBrand    = "missing brand"
	UnpackableMissingCord     = "missing cord rating"
	UnpackableOversizedReel   = "reel size exceeds bag capacity"
)

// UnpackableOrder reports an order that was excluded from discrete
// packing, together with the reason. Unpackable orders are surfaced to
// the caller, never silently dropped.
type UnpackableOrder struct {
	Order  model.Order `json:"order"`
	Reason string      `json:"reason"`
}

// ExplodeOrders expands eligible orders into discrete reel units, one per
// physical reel. Orders that are not in processing status or whose reels
// are already embedded in bags (usedOrderIDs) are skipped. Orders lacking
// the metadata needed for discrete packing, and orders whose reel size
// exceeds the bag capacity, are returned as unpackable.
func ExplodeOrders(orders []model.Order, capacity int, usedOrderIDs map[string]bool) ([]model.ReelUnit, []UnpackableOrder) {
	units := make([]model.ReelUnit, 0, len(orders))
	var unpackable []UnpackableOrder

	for _, order := range orders {
		if order.Status != model.OrderStatusProcessing {
			continue
		}
		if usedOrderIDs[order.ID] {
			continue
		}

		if reason := unpackableReason(order, capacity); reason != "" {
			unpackable = append(unpackable, UnpackableOrder{Order: order, Reason: reason})
			continue
		}

		for i := 0; i < order.ReelCount; i++ {
			units = append(units, model.ReelUnit{
				OrderID:     order.ID,
				Customer:    order.Customer,
				Brand:       order.Brand,
				ProductName: order.ProductName,
				Cord:        order.Cord,
				SizeMeters:  order.ReelSizeMeters,
			})
		}
	}

	return units, unpackable
}

// unpackableReason returns the reason an order cannot be packed
// discretely, or an empty string if it can.
func unpackableReason(order model.Order, capacity int) string {
	switch {
	case order.ReelSizeMeters <= 0:
		return UnpackableMissingReelSize
	case order.Brand == "":
		return UnpackableMissingBrand
	case order.Cord == "":
		return UnpackableMissingCord
	case capacity > 0 && order.ReelSizeMeters > capacity:
		return UnpackableOversizedReel
	}
	return ""
}
