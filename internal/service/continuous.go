package service

import (
	"sort"

	"github.com/threadline/bagging-service/internal/domain/model"
)

// PackContinuous is the legacy fallback for orders that carry total
// meterage but no reel metadata. It treats an order's meters as
// arbitrarily divisible and splits them across bag boundaries.
//
// This mode violates reel atomicity: a split order has no reel
// boundaries to reconstruct, so untying one of its bags returns meters,
// not reels. It exists only so metadata-poor orders can still ship;
// discrete packing is canonical.
func (p *BagPacker) PackContinuous(orders []model.Order, stocks []*model.InventoryStock, usedOrderIDs map[string]bool) []model.Bag {
	var bags []model.Bag

	for _, group := range groupContinuousOrders(orders, usedOrderIDs) {
		var current *model.Bag
		for _, order := range group.orders {
			left := order.TotalMeters
			for left > 0 {
				if current == nil {
					current = &model.Bag{Product: group.key}
				}
				take := left
				if room := p.capacity - current.TotalMeters; take > room {
					take = room
				}
				current.AddItem(model.BagItem{
					Type:     model.ItemTypeOrder,
					OrderID:  order.ID,
					Customer: order.Customer,
					Meters:   take,
				})
				left -= take

				if current.TotalMeters == p.capacity {
					bags = append(bags, *current)
					current = nil
				}
			}
		}
		if current != nil {
			p.allocator.AutoTopUp(current, stocks, p.capacity)
			bags = append(bags, *current)
		}
	}

	for i := range bags {
		bags[i].Number = i + 1
	}
	return bags
}

type continuousGroup struct {
	key    model.ProductKey
	orders []model.Order
}

// groupContinuousOrders selects processing orders with total meterage but
// no reel size, grouped by product in the same deterministic order the
// discrete packer uses.
func groupContinuousOrders(orders []model.Order, usedOrderIDs map[string]bool) []continuousGroup {
	eligible := make([]model.Order, 0, len(orders))
	for _, order := range orders {
		if order.Status != model.OrderStatusProcessing || usedOrderIDs[order.ID] {
			continue
		}
		if order.ReelSizeMeters > 0 || order.TotalMeters <= 0 {
			continue
		}
		eligible = append(eligible, order)
	}

	byKey := make(map[model.ProductKey][]model.Order)
	var keys []model.ProductKey
	for _, order := range eligible {
		key := order.Product()
		if _, seen := byKey[key]; !seen {
			keys = append(keys, key)
		}
		byKey[key] = append(byKey[key], order)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Brand != keys[j].Brand {
			return keys[i].Brand < keys[j].Brand
		}
		if keys[i].ProductName != keys[j].ProductName {
			return keys[i].ProductName < keys[j].ProductName
		}
		return keys[i].Cord < keys[j].Cord
	})

	groups := make([]continuousGroup, 0, len(keys))
	for _, key := range keys {
		groups = append(groups, continuousGroup{key: key, orders: byKey[key]})
	}
	return groups
}
