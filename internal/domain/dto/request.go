// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import "strconv"

// CreateBagsRequest represents the JSON request body for the
// "Create Bags" endpoint.
//
// ContinuousFallback opts in to the legacy continuous packer for orders
// that carry total meterage but no reel metadata. Continuous-packed
// orders lose reel atomicity: untying their bags returns meters, not
// reels. When omitted, the server-configured default applies.
type CreateBagsRequest struct {
	// ContinuousFallback enables continuous packing of metadata-poor orders.
	ContinuousFallback *bool `json:"continuous_fallback"`
}

// ManualTopUpRequest represents the JSON request body for topping up a
// partial bag from an explicit stock allocation.
type ManualTopUpRequest struct {
	// Allocation maps stock record IDs to the number of reels to take.
	Allocation map[string]int `json:"allocation" binding:"required"`
}

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrEmptyAllocation is returned when an allocation has no entries.
	ErrEmptyAllocation = &ValidationError{
		Field:   "allocation",
		Message: "must contain at least one stock entry",
	}
)

// Validate performs custom validation on the request.
// Returns an error if validation fails, nil otherwise.
func (r *ManualTopUpRequest) Validate() error {
	if len(r.Allocation) == 0 {
		return ErrEmptyAllocation
	}
	for stockID, reels := range r.Allocation {
		if reels <= 0 {
			return &ValidationError{
				Field:   "allocation",
				Message: "reel count for stock " + stockID + " must be positive, got " + strconv.Itoa(reels),
			}
		}
	}
	return nil
}
