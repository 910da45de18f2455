package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bunkbites/stallbook/internal/domain/models"
)

// DishService defines the menu operations required by the HTTP layer.
type DishService interface {
	ListDishes(ctx context.Context) ([]models.Dish, error)
	CreateDish(ctx context.Context, in models.NewDishInput) (models.Dish, error)
	UpdateDish(ctx context.Context, id string, patch models.DishPatch) (models.Dish, error)
	DeleteDish(ctx context.Context, id string) error
}

// DishHandler serves the /api/dishes resource.
type DishHandler struct {
	svc    DishService
	logger *zap.Logger
}

// NewDishHandler constructs the HTTP handler adapter.
func NewDishHandler(svc DishService, logger *zap.Logger) *DishHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DishHandler{svc: svc, logger: logger}
}

// List returns the full menu.
func (h *DishHandler) List(c *gin.Context) {
	dishes, err := h.svc.ListDishes(c.Request.Context())
	if err != nil {
		storeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dishes)
}

// Create persists a new menu item.
func (h *DishHandler) Create(c *gin.Context) {
	var in models.NewDishInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	dish, err := h.svc.CreateDish(c.Request.Context(), in)
	if err != nil {
		storeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dish)
}

// Update merges the provided fields into an existing dish.
func (h *DishHandler) Update(c *gin.Context) {
	var patch models.DishPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	dish, err := h.svc.UpdateDish(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		storeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dish)
}

// Delete removes a dish. Unknown ids still get the confirmation message.
func (h *DishHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteDish(c.Request.Context(), c.Param("id")); err != nil {
		storeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted successfully"})
}
