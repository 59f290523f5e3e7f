package service

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownBag is returned when a bag number does not exist in the ledger.
	ErrUnknownBag = errors.New("bag not found")
	// ErrUnknownStock is returned when an allocation references a stock
	// record that does not exist.
	ErrUnknownStock = errors.New("stock record not found")
)

// ValidationError represents a business-rule violation. It never carries
// partial mutation: the operation that returns it has left all state
// untouched.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// CorruptBagError indicates that a bag's recorded inventory meterage does
// not correspond to whole reels. It is a data-corruption condition,
// distinct from ordinary validation failures: restoring such a bag would
// silently create or destroy reels.
type CorruptBagError struct {
	BagNumber      int
	StockID        string
	Meters         int
	ReelSizeMeters int
}

// Error returns the error message for CorruptBagError.
func (e *CorruptBagError) Error() string {
	return fmt.Sprintf(
		"bag %d: inventory item for stock %s has %d m which is not a whole number of %d m reels",
		e.BagNumber, e.StockID, e.Meters, e.ReelSizeMeters,
	)
}
