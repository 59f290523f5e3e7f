package service

import (
	"sort"

	"github.com/threadline/bagging-service/internal/domain/model"
)

// ProductGroup holds the reel units of one product. Each group is packed
// independently: a bag never mixes products.
type ProductGroup struct {
	Key   model.ProductKey
	Units []model.ReelUnit
}

// GroupByProduct partitions reel units by (brand, product name, cord).
// Groups are returned in deterministic key order so packing passes over
// identical input produce identical bag sequences.
func GroupByProduct(units []model.ReelUnit) []ProductGroup {
	byKey := make(map[model.ProductKey][]model.ReelUnit)
	for _, unit := range units {
		key := unit.Product()
		byKey[key] = append(byKey[key], unit)
	}

	keys := make([]model.ProductKey, 0, len(byKey))
	for key := range byKey {
		keys = append(keys, key)
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

	groups := make([]ProductGroup, 0, len(keys))
	for _, key := range keys {
		groups = append(groups, ProductGroup{Key: key, Units: byKey[key]})
	}
	return groups
}
