package reporting

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/bunkbites/stallbook/internal/domain/models"
)

const (
	summaryCacheKey = "report:summary"
	dishesCacheKey  = "report:dishes"
)

// Snapshot provides the full list reads the aggregation folds consume.
type Snapshot interface {
	ListDishes(ctx context.Context) ([]models.Dish, error)
	ListSales(ctx context.Context) ([]models.Sale, error)
	ListInvestors(ctx context.Context) ([]models.Investor, error)
	ListExpenses(ctx context.Context) ([]models.Expense, error)
	CountSalesByDate(ctx context.Context, date string) (int64, error)
}

// ReportStore persists and lists end-of-day snapshots.
type ReportStore interface {
	SaveClosingReport(ctx context.Context, report models.ClosingReport) error
	ListClosingReports(ctx context.Context) ([]models.ClosingReport, error)
}

// Cache is an optional byte cache for bounded report payloads. A nil Cache
// disables caching.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

// Service computes server-side aggregates over the ledger collections.
type Service struct {
	snapshot Snapshot
	reports  ReportStore
	cache    Cache
	cacheTTL time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

// NewService wires a reporting service instance. cache may be nil.
func NewService(snapshot Snapshot, reports ReportStore, cache Cache, cacheTTL time.Duration, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		snapshot: snapshot,
		reports:  reports,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
		now:      time.Now,
	}
}

// Summary returns the all-time totals, served from cache when fresh.
func (s *Service) Summary(ctx context.Context) (models.Totals, error) {
	var totals models.Totals
	if s.fromCache(ctx, summaryCacheKey, &totals) {
		return totals, nil
	}

	sales, err := s.snapshot.ListSales(ctx)
	if err != nil {
		return models.Totals{}, err
	}
	expenses, err := s.snapshot.ListExpenses(ctx)
	if err != nil {
		return models.Totals{}, err
	}
	investors, err := s.snapshot.ListInvestors(ctx)
	if err != nil {
		return models.Totals{}, err
	}

	totals = FoldTotals(sales, expenses, investors)
	s.toCache(ctx, summaryCacheKey, totals)
	return totals, nil
}

// DishRanking returns per-dish sold quantity and revenue, best seller first,
// served from cache when fresh.
func (s *Service) DishRanking(ctx context.Context) ([]models.DishPerformance, error) {
	var ranking []models.DishPerformance
	if s.fromCache(ctx, dishesCacheKey, &ranking) {
		return ranking, nil
	}

	dishes, err := s.snapshot.ListDishes(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := s.snapshot.ListSales(ctx)
	if err != nil {
		return nil, err
	}

	ranking = RankDishes(dishes, sales)
	s.toCache(ctx, dishesCacheKey, ranking)
	return ranking, nil
}

// DailyRange returns the per-day breakdown for an inclusive date range.
// Ranges are unbounded in shape, so they are never cached.
func (s *Service) DailyRange(ctx context.Context, start, end string) (models.RangeReport, error) {
	sales, err := s.snapshot.ListSales(ctx)
	if err != nil {
		return models.RangeReport{}, err
	}
	expenses, err := s.snapshot.ListExpenses(ctx)
	if err != nil {
		return models.RangeReport{}, err
	}
	investors, err := s.snapshot.ListInvestors(ctx)
	if err != nil {
		return models.RangeReport{}, err
	}

	return FoldDailyRange(start, end, sales, expenses, investors)
}

// GenerateClosingReport computes and persists the end-of-day snapshot for
// the given calendar day.
func (s *Service) GenerateClosingReport(ctx context.Context, day time.Time) (models.ClosingReport, error) {
	date := day.Format(dateLayout)

	rangeReport, err := s.DailyRange(ctx, date, date)
	if err != nil {
		return models.ClosingReport{}, err
	}

	orderCount, err := s.snapshot.CountSalesByDate(ctx, date)
	if err != nil {
		return models.ClosingReport{}, err
	}

	report := models.ClosingReport{
		Date:        date,
		Sales:       rangeReport.Totals.Sales,
		Expenses:    rangeReport.Totals.Expenses,
		Invested:    rangeReport.Totals.Invested,
		Profit:      rangeReport.Totals.Profit,
		OrderCount:  int(orderCount),
		GeneratedAt: s.now(),
	}

	if err := s.reports.SaveClosingReport(ctx, report); err != nil {
		return models.ClosingReport{}, err
	}

	s.logger.Info("closing report generated",
		zap.String("date", report.Date),
		zap.Float64("sales", report.Sales),
		zap.Float64("profit", report.Profit),
		zap.Int("orders", report.OrderCount))
	return report, nil
}

// ClosingReports lists the stored end-of-day snapshots, newest first.
func (s *Service) ClosingReports(ctx context.Context) ([]models.ClosingReport, error) {
	return s.reports.ListClosingReports(ctx)
}

func (s *Service) fromCache(ctx context.Context, key string, out any) bool {
	if s.cache == nil {
		return false
	}
	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		s.logger.Warn("discarding undecodable cache entry", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *Service) toCache(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	s.cache.Set(ctx, key, raw, s.cacheTTL)
}
