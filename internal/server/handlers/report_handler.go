package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bunkbites/stallbook/internal/domain/models"
)

// ReportService defines the server-side aggregation operations.
type ReportService interface {
	Summary(ctx context.Context) (models.Totals, error)
	DishRanking(ctx context.Context) ([]models.DishPerformance, error)
	DailyRange(ctx context.Context, start, end string) (models.RangeReport, error)
	ClosingReports(ctx context.Context) ([]models.ClosingReport, error)
}

// ReportHandler serves the /api/reports endpoints.
type ReportHandler struct {
	svc    ReportService
	logger *zap.Logger
}

// NewReportHandler constructs the HTTP handler adapter.
func NewReportHandler(svc ReportService, logger *zap.Logger) *ReportHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportHandler{svc: svc, logger: logger}
}

// Summary returns the all-time totals.
func (h *ReportHandler) Summary(c *gin.Context) {
	totals, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		storeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}

// Dishes returns the per-dish performance ranking, best seller first.
func (h *ReportHandler) Dishes(c *gin.Context) {
	ranking, err := h.svc.DishRanking(c.Request.Context())
	if err != nil {
		storeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, ranking)
}

// Daily returns the per-day breakdown for ?start=YYYY-MM-DD&end=YYYY-MM-DD.
func (h *ReportHandler) Daily(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")

	// Malformed or inverted ranges are a caller problem, not a store one.
	startDay, err := time.Parse("2006-01-02", start)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start must be a YYYY-MM-DD date"})
		return
	}
	endDay, err := time.Parse("2006-01-02", end)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end must be a YYYY-MM-DD date"})
		return
	}
	if endDay.Before(startDay) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end date precedes start date"})
		return
	}

	report, err := h.svc.DailyRange(c.Request.Context(), start, end)
	if err != nil {
		storeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Closing lists the stored end-of-day snapshots, newest first.
func (h *ReportHandler) Closing(c *gin.Context) {
	reports, err := h.svc.ClosingReports(c.Request.Context())
	if err != nil {
		storeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}
