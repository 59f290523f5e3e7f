package model

// InventoryStock represents one warehouse stock record: a count of
// identical reels of a single product and size.
//
// ReelCount is mutated exclusively through the inventory allocator
// (auto top-up, manual allocation, restore) and never goes negative.
type InventoryStock struct {
	// ID is the stock record identifier.
	ID string `json:"id"`
	// Brand is the thread brand.
	Brand string `json:"brand"`
	// ProductName is the thread product name within the brand.
	ProductName string `json:"product_name"`
	// Cord is the cord rating of the thread.
	Cord string `json:"cord"`
	// ReelSizeMeters is the length of each reel in this record.
	ReelSizeMeters int `json:"reel_size_meters"`
	// ReelCount is the number of reels currently on hand.
	ReelCount int `json:"reel_count"`
}

// Product returns the product identity key for the stock record.
func (s InventoryStock) Product() ProductKey {
	return ProductKey{Brand: s.Brand, ProductName: s.ProductName, Cord: s.Cord}
}

// Matches reports whether the stock record holds the given product.
func (s InventoryStock) Matches(key ProductKey) bool {
	return s.Product() == key
}

// TotalMeters returns the total meterage on hand in this record.
func (s InventoryStock) TotalMeters() int {
	return s.ReelSizeMeters * s.ReelCount
}
