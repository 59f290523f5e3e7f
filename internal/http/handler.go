package http

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/threadline/bagging-service/internal/domain/dto"
	"github.com/threadline/bagging-service/internal/i18n"
	"github.com/threadline/bagging-service/internal/metrics"
	"github.com/threadline/bagging-service/internal/service"
)

// Handler provides HTTP handlers for the bagging routes.
type Handler struct {
	bagging service.BaggingService
	// continuousFallback is the pass default when the request body does
	// not say otherwise.
	continuousFallback bool
}

// NewHandler creates a new Handler instance.
func NewHandler(bagging service.BaggingService, continuousFallback bool) *Handler {
	return &Handler{bagging: bagging, continuousFallback: continuousFallback}
}

// CreateBags handles POST /api/bags requests: one packing pass over the
// pending orders.
func (h *Handler) CreateBags(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.CreateBagsRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
			return
		}
	}

	continuous := h.continuousFallback
	if req.ContinuousFallback != nil {
		continuous = *req.ContinuousFallback
	}

	start := time.Now()
	outcome, err := h.bagging.CreateBags(c.Request.Context(), continuous)
	if err != nil {
		metrics.RecordPackingPass(time.Since(start), "error")
		h.writeServiceError(builder, err)
		return
	}
	duration := time.Since(start)

	capacity := h.bagging.TargetCapacity()
	metrics.RecordPackingPass(duration, "success")
	metrics.RecordUnpackable(len(outcome.Unpackable))
	for _, bag := range outcome.Bags {
		metrics.RecordBagCreated(bag.Status(capacity))
		if bag.FilledFromInventoryMeters > 0 {
			metrics.RecordTopUp("auto", bag.FilledFromInventoryMeters)
		}
	}

	builder.SuccessCreated(dto.NewPackOutcomeResponse(outcome, capacity))
}

// ListBags handles GET /api/bags requests.
func (h *Handler) ListBags(c *gin.Context) {
	builder := NewResponseBuilder(c)

	bags, err := h.bagging.ListBags(c.Request.Context())
	if err != nil {
		h.writeServiceError(builder, err)
		return
	}

	capacity := h.bagging.TargetCapacity()
	out := make([]dto.BagResponse, 0, len(bags))
	for _, bag := range bags {
		out = append(out, dto.NewBagResponse(bag, capacity))
	}
	builder.SuccessOK(out)
}

// ManualTopUp handles POST /api/bags/:number/topup requests: fill a
// partial bag's exact shortfall from an explicit stock allocation.
func (h *Handler) ManualTopUp(c *gin.Context) {
	builder := NewResponseBuilder(c)

	number, ok := h.bagNumber(c, builder)
	if !ok {
		return
	}

	var req dto.ManualTopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationAllocation, err)
		return
	}

	bag, added, err := h.bagging.ManualTopUp(c.Request.Context(), number, req.Allocation)
	if err != nil {
		h.writeServiceError(builder, err)
		return
	}

	metrics.RecordTopUp("manual", added)
	builder.SuccessOK(dto.NewBagResponse(*bag, h.bagging.TargetCapacity()))
}

// UntieBag handles DELETE /api/bags/:number requests.
func (h *Handler) UntieBag(c *gin.Context) {
	builder := NewResponseBuilder(c)

	number, ok := h.bagNumber(c, builder)
	if !ok {
		return
	}

	if err := h.bagging.Untie(c.Request.Context(), number); err != nil {
		h.writeServiceError(builder, err)
		return
	}

	metrics.RecordUntie()
	builder.SuccessOK(gin.H{"untied": number})
}

// ExportBags handles GET /api/bags/export requests, serving the ledger
// as CSV. The export is rendered into memory first so a repository
// failure yields a clean error response instead of a truncated file.
func (h *Handler) ExportBags(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var buf bytes.Buffer
	if err := h.bagging.ExportCSV(c.Request.Context(), &buf); err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="bags.csv"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

// ListInventory handles GET /api/inventory requests.
func (h *Handler) ListInventory(c *gin.Context) {
	builder := NewResponseBuilder(c)

	stocks, err := h.bagging.Inventory(c.Request.Context())
	if err != nil {
		h.writeServiceError(builder, err)
		return
	}
	builder.SuccessOK(stocks)
}

// bagNumber parses the :number path parameter.
func (h *Handler) bagNumber(c *gin.Context, builder *ResponseBuilder) (int, bool) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil || number <= 0 {
		builder.ErrorWithMessage(http.StatusBadRequest, "bag number must be a positive integer", err)
		return 0, false
	}
	return number, true
}

// writeServiceError maps engine errors onto HTTP responses. Validation
// failures and unknown references are client errors; corruption is not.
func (h *Handler) writeServiceError(builder *ResponseBuilder, err error) {
	var validationErr *service.ValidationError
	var corruptErr *service.CorruptBagError

	switch {
	case errors.As(err, &validationErr):
		builder.ErrorWithMessage(http.StatusBadRequest, validationErr.Error(), err)
	case errors.Is(err, service.ErrUnknownBag):
		builder.Error(http.StatusNotFound, i18n.ErrKeyBagNotFound, err)
	case errors.Is(err, service.ErrUnknownStock):
		builder.Error(http.StatusNotFound, i18n.ErrKeyStockNotFound, err)
	case errors.As(err, &corruptErr):
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyCorruptBag, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}
