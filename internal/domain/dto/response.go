package dto

import (
	"net/http"
	"time"

	"github.com/threadline/bagging-service/internal/domain/model"
	"github.com/threadline/bagging-service/internal/service"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
	// ErrCodeCorruptData indicates stored data failed an integrity check.
	ErrCodeCorruptData = "corrupt_data"
)

// SuccessResponse wraps successful API responses with metadata.
type SuccessResponse struct {
	// Data contains the actual response data.
	Data interface{} `json:"data"`
	// RequestID is the unique request identifier.
	RequestID string `json:"request_id,omitempty"`
	// Timestamp is when the response was generated.
	Timestamp time.Time `json:"timestamp"`
}

// ErrorResponse represents a standardized error response for the API.
type ErrorResponse struct {
	Error     string            `json:"error"`
	Message   string            `json:"message,omitempty"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}

// BagResponse decorates a bag with its status against the target capacity.
type BagResponse struct {
	model.Bag
	// Status is "Complete" or "Partial".
	Status string `json:"status"`
}

// NewBagResponse builds a BagResponse for the given capacity.
func NewBagResponse(bag model.Bag, capacity int) BagResponse {
	return BagResponse{Bag: bag, Status: bag.Status(capacity)}
}

// PackOutcomeResponse is the response body for a packing pass.
type PackOutcomeResponse struct {
	// Bags are the newly created bags.
	Bags []BagResponse `json:"bags"`
	// Unpackable reports orders excluded from packing, with reasons.
	Unpackable []service.UnpackableOrder `json:"unpackable,omitempty"`
	// TargetCapacityMeters is the bag capacity the pass packed against.
	TargetCapacityMeters int `json:"target_capacity_meters"`
}

// NewPackOutcomeResponse builds a PackOutcomeResponse from a pack outcome.
func NewPackOutcomeResponse(outcome *service.PackOutcome, capacity int) PackOutcomeResponse {
	bags := make([]BagResponse, 0, len(outcome.Bags))
	for _, bag := range outcome.Bags {
		bags = append(bags, NewBagResponse(bag, capacity))
	}
	return PackOutcomeResponse{
		Bags:                 bags,
		Unpackable:           outcome.Unpackable,
		TargetCapacityMeters: capacity,
	}
}
