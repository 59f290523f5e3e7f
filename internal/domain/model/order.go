// Package model defines the core domain entities for the bagging service.
package model

// Order statuses as set by the external order API. Only processing orders
// are eligible for a packing pass.
const (
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
)

// Order represents a customer order for thread reels.
// Orders are owned and mutated by the external order API; the engine
// treats them as read-only input.
type Order struct {
	// ID is the order identifier assigned by the order API.
	ID string `json:"id"`
	// Customer is the ordering customer's display name.
	Customer string `json:"customer"`
	// Brand is the thread brand.
	Brand string `json:"brand"`
	// ProductName is the thread product name within the brand.
	ProductName string `json:"product_name"`
	// Cord is the cord rating (thickness class) of the thread.
	Cord string `json:"cord"`
	// ReelSizeMeters is the length of a single reel in meters.
	// Zero means the order carries no reel metadata and cannot be
	// packed discretely.
	ReelSizeMeters int `json:"reel_size_meters"`
	// ReelCount is the number of physical reels ordered.
	ReelCount int `json:"reel_count"`
	// TotalMeters is the total ordered meterage. Used only by the
	// continuous fallback packer for orders without reel metadata.
	TotalMeters int `json:"total_meters,omitempty"`
	// Status is the order lifecycle status ("processing", "completed").
	Status string `json:"status"`
}

// Product returns the product identity key for the order.
func (o Order) Product() ProductKey {
	return ProductKey{Brand: o.Brand, ProductName: o.ProductName, Cord: o.Cord}
}

// ProductKey identifies a product: reels of different products are never
// mixed in one bag.
type ProductKey struct {
	Brand       string `json:"brand"`
	ProductName string `json:"product_name"`
	Cord        string `json:"cord"`
}

// String returns a human-readable product label.
func (k ProductKey) String() string {
	return k.Brand + " " + k.ProductName + " " + k.Cord
}

// ReelUnit is one concrete physical reel derived from an order's reel
// count. Units exist only within a packing pass and are never persisted.
type ReelUnit struct {
	OrderID     string
	Customer    string
	Brand       string
	ProductName string
	Cord        string
	SizeMeters  int
}

// Product returns the product identity key for the reel unit.
func (u ReelUnit) Product() ProductKey {
	return ProductKey{Brand: u.Brand, ProductName: u.ProductName, Cord: u.Cord}
}
