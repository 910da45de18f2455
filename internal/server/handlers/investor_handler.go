package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bunkbites/stallbook/internal/domain/models"
)

// InvestorService defines the contribution operations required by the HTTP
// layer.
type InvestorService interface {
	ListInvestors(ctx context.Context) ([]models.Investor, error)
	CreateInvestor(ctx context.Context, in models.NewInvestorInput) (models.Investor, error)
	UpdateInvestor(ctx context.Context, id string, patch models.InvestorPatch) (models.Investor, error)
	DeleteInvestor(ctx context.Context, id string) error
}

// InvestorHandler serves the /api/investors resource.
type InvestorHandler struct {
	svc    InvestorService
	logger *zap.Logger
}

// NewInvestorHandler constructs the HTTP handler adapter.
func NewInvestorHandler(svc InvestorService, logger *zap.Logger) *InvestorHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InvestorHandler{svc: svc, logger: logger}
}

// List returns every capital contribution.
func (h *InvestorHandler) List(c *gin.Context) {
	investors, err := h.svc.ListInvestors(c.Request.Context())
	if err != nil {
		storeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, investors)
}

// Create records a capital contribution.
func (h *InvestorHandler) Create(c *gin.Context) {
	var in models.NewInvestorInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	investor, err := h.svc.CreateInvestor(c.Request.Context(), in)
	if err != nil {
		storeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, investor)
}

// Update merges the provided fields into an existing contribution.
func (h *InvestorHandler) Update(c *gin.Context) {
	var patch models.InvestorPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	investor, err := h.svc.UpdateInvestor(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		storeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, investor)
}

// Delete removes a contribution. Unknown ids still get the confirmation.
func (h *InvestorHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteInvestor(c.Request.Context(), c.Param("id")); err != nil {
		storeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
