package http

import (
	"github.com/gin-gonic/gin"
)

// BagRoutes handles bag-related route registration.
type BagRoutes struct {
	handler *Handler
}

// NewBagRoutes creates a new BagRoutes instance.
func NewBagRoutes(handler *Handler) *BagRoutes {
	return &BagRoutes{handler: handler}
}

// RegisterRoutes registers the bagging and inventory routes.
func (r *BagRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bags", r.handler.CreateBags)
	rg.GET("/bags", r.handler.ListBags)
	rg.GET("/bags/export", r.handler.ExportBags)
	rg.POST("/bags/:number/topup", r.handler.ManualTopUp)
	rg.DELETE("/bags/:number", r.handler.UntieBag)
	rg.GET("/inventory", r.handler.ListInventory)
}
