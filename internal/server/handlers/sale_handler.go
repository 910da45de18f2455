package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bunkbites/stallbook/internal/domain/models"
)

// SaleService defines the sales operations required by the HTTP layer.
// Sales are append-only.
type SaleService interface {
	ListSales(ctx context.Context) ([]models.Sale, error)
	CreateSale(ctx context.Context, in models.NewSaleInput) (models.Sale, error)
}

// SaleHandler serves the /api/sales resource.
type SaleHandler struct {
	svc    SaleService
	logger *zap.Logger
}

// NewSaleHandler constructs the HTTP handler adapter.
func NewSaleHandler(svc SaleService, logger *zap.Logger) *SaleHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SaleHandler{svc: svc, logger: logger}
}

// List returns every sale, newest first.
func (h *SaleHandler) List(c *gin.Context) {
	sales, err := h.svc.ListSales(c.Request.Context())
	if err != nil {
		storeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, sales)
}

// Create records a sale, auto-assigning the order number when absent.
func (h *SaleHandler) Create(c *gin.Context) {
	var in models.NewSaleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	sale, err := h.svc.CreateSale(c.Request.Context(), in)
	if err != nil {
		storeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, sale)
}
