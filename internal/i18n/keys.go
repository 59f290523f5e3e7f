// Package i18n provides internationalization support for the bagging service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyValidationAllocation indicates an invalid manual allocation.
	ErrKeyValidationAllocation = "error.validation.allocation"
	// ErrKeyBagNotFound indicates an unknown bag number.
	ErrKeyBagNotFound = "error.bag_not_found"
	// ErrKeyStockNotFound indicates an unknown stock record.
	ErrKeyStockNotFound = "error.stock_not_found"
	// ErrKeyCorruptBag indicates a bag failed the reel integrity check.
	ErrKeyCorruptBag = "error.corrupt_bag"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
)

// Success message translation keys.
const (
	// SuccessKeyBagsCreated indicates a successful packing pass.
	SuccessKeyBagsCreated = "success.bags_created"
	// SuccessKeyBagUntied indicates a bag was untied.
	SuccessKeyBagUntied = "success.bag_untied"
)
