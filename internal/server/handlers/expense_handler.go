package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bunkbites/stallbook/internal/domain/models"
)

// ExpenseService defines the expense operations required by the HTTP layer.
// Expenses have no update endpoint.
type ExpenseService interface {
	ListExpenses(ctx context.Context) ([]models.Expense, error)
	CreateExpense(ctx context.Context, in models.NewExpenseInput) (models.Expense, error)
	DeleteExpense(ctx context.Context, id string) error
}

// ExpenseHandler serves the /api/expenses resource.
type ExpenseHandler struct {
	svc    ExpenseService
	logger *zap.Logger
}

// NewExpenseHandler constructs the HTTP handler adapter.
func NewExpenseHandler(svc ExpenseService, logger *zap.Logger) *ExpenseHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExpenseHandler{svc: svc, logger: logger}
}

// List returns every expense, newest first.
func (h *ExpenseHandler) List(c *gin.Context) {
	expenses, err := h.svc.ListExpenses(c.Request.Context())
	if err != nil {
		storeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, expenses)
}

// Create records an operational cost.
func (h *ExpenseHandler) Create(c *gin.Context) {
	var in models.NewExpenseInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	expense, err := h.svc.CreateExpense(c.Request.Context(), in)
	if err != nil {
		storeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, expense)
}

// Delete removes an expense. Unknown ids still get the confirmation.
func (h *ExpenseHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteExpense(c.Request.Context(), c.Param("id")); err != nil {
		storeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
