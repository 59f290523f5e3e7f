package model

// ItemType discriminates the two kinds of bag items.
type ItemType string

const (
	// ItemTypeOrder marks a bag item sourced from a customer order.
	ItemTypeOrder ItemType = "order"
	// ItemTypeInventory marks a bag item sourced from warehouse stock.
	ItemTypeInventory ItemType = "inventory"
)

// Bag statuses relative to the target capacity.
const (
	BagStatusComplete = "Complete"
	BagStatusPartial  = "Partial"
)

// BagItem is one entry in a bag: either reels from an order or reels
// taken from an inventory stock record. Exactly one of OrderID or
// StockID is set, according to Type.
type BagItem struct {
	// Type is "order" or "inventory".
	Type ItemType `json:"type"`
	// OrderID references the source order (order items only).
	OrderID string `json:"order_id,omitempty"`
	// StockID references the source stock record (inventory items only).
	StockID string `json:"stock_id,omitempty"`
	// Customer is the ordering customer (order items only).
	Customer string `json:"customer,omitempty"`
	// Label is a display label for inventory items.
	Label string `json:"label,omitempty"`
	// Meters is the meterage this item contributes to the bag.
	Meters int `json:"meters"`
	// ReelSizeMeters is the size of the underlying reels. Zero for
	// continuous-mode order items, which have no reel boundaries.
	ReelSizeMeters int `json:"reel_size_meters"`
}

// Reference returns the item's source identifier: the order ID for order
// items, the stock ID for inventory items.
func (i BagItem) Reference() string {
	switch i.Type {
	case ItemTypeOrder:
		return i.OrderID
	case ItemTypeInventory:
		return i.StockID
	}
	return ""
}

// Bag is a physical packing unit targeting a fixed meter capacity,
// composed of reels from a single product.
type Bag struct {
	// Number is the globally monotonic bag number, never reused.
	Number int `json:"number"`
	// BatchID identifies the packing pass that created the bag.
	BatchID string `json:"batch_id,omitempty"`
	// Product is the product identity shared by every item in the bag.
	Product ProductKey `json:"product"`
	// Items is the ordered list of bag contents.
	Items []BagItem `json:"items"`
	// TotalMeters is the sum of item meters.
	TotalMeters int `json:"total_meters"`
	// FilledFromInventoryMeters is the meterage contributed by
	// inventory items.
	FilledFromInventoryMeters int `json:"filled_from_inventory_meters"`
}

// AddItem appends an item and keeps the meter totals consistent.
func (b *Bag) AddItem(item BagItem) {
	b.Items = append(b.Items, item)
	b.TotalMeters += item.Meters
	if item.Type == ItemTypeInventory {
		b.FilledFromInventoryMeters += item.Meters
	}
}

// Missing returns the shortfall against the target capacity, never
// negative.
func (b Bag) Missing(target int) int {
	if b.TotalMeters >= target {
		return 0
	}
	return target - b.TotalMeters
}

// Status returns "Complete" when the bag reaches the target capacity,
// "Partial" otherwise.
func (b Bag) Status(target int) string {
	if b.TotalMeters >= target {
		return BagStatusComplete
	}
	return BagStatusPartial
}
