package reporting

import (
	"fmt"
	"sort"
	"time"

	"github.com/bunkbites/stallbook/internal/domain/models"
)

const dateLayout = "2006-01-02"

// FoldTotals computes the all-time rollup from full list snapshots. Sums are
// order-invariant; the inputs are never mutated.
func FoldTotals(sales []models.Sale, expenses []models.Expense, investors []models.Investor) models.Totals {
	var t models.Totals
	for _, s := range sales {
		t.TotalSales += s.TotalAmount
	}
	for _, e := range expenses {
		t.TotalExpenses += e.Amount
	}
	for _, i := range investors {
		t.TotalInvested += i.Amount
	}
	t.NetProfit = t.TotalSales - t.TotalExpenses
	return t
}

// RankDishes folds sale items into per-dish sold quantity and revenue,
// sorted descending by quantity. The sort is stable, so dishes tied on
// quantity keep their menu insertion order.
func RankDishes(dishes []models.Dish, sales []models.Sale) []models.DishPerformance {
	ranking := make([]models.DishPerformance, 0, len(dishes))
	for _, dish := range dishes {
		perf := models.DishPerformance{
			DishID: dish.ID.Hex(),
			Name:   dish.Name,
		}
		for _, sale := range sales {
			for _, item := range sale.Items {
				if item.DishID == perf.DishID {
					perf.Sold += item.Quantity
					perf.Revenue += float64(item.Quantity) * item.Price
				}
			}
		}
		ranking = append(ranking, perf)
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Sold > ranking[j].Sold
	})
	return ranking
}

// FoldDailyRange walks every calendar day of the inclusive [start, end]
// range. Range totals cover all days; the Days list keeps only days with
// sales, newest first. Investor dates are matched on their UTC calendar day.
func FoldDailyRange(start, end string, sales []models.Sale, expenses []models.Expense, investors []models.Investor) (models.RangeReport, error) {
	startDay, err := time.Parse(dateLayout, start)
	if err != nil {
		return models.RangeReport{}, fmt.Errorf("invalid start date %q: %w", start, err)
	}
	endDay, err := time.Parse(dateLayout, end)
	if err != nil {
		return models.RangeReport{}, fmt.Errorf("invalid end date %q: %w", end, err)
	}
	if endDay.Before(startDay) {
		return models.RangeReport{}, fmt.Errorf("end date %s precedes start date %s", end, start)
	}

	report := models.RangeReport{
		Start: start,
		End:   end,
		Days:  []models.DailyEntry{},
	}

	for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
		dateStr := day.Format(dateLayout)
		entry := models.DailyEntry{Date: dateStr}

		for _, s := range sales {
			if s.Date == dateStr {
				entry.Sales += s.TotalAmount
			}
		}
		for _, e := range expenses {
			if e.Date == dateStr {
				entry.Expenses += e.Amount
			}
		}
		for _, i := range investors {
			if i.Date.UTC().Format(dateLayout) == dateStr {
				entry.Invested += i.Amount
			}
		}
		entry.Profit = entry.Sales - entry.Expenses

		report.Totals.Sales += entry.Sales
		report.Totals.Expenses += entry.Expenses
		report.Totals.Invested += entry.Invested
		report.Totals.Profit += entry.Profit

		if entry.Sales > 0 {
			report.Days = append(report.Days, entry)
		}
	}

	// Newest first, matching the sales listing order.
	sort.SliceStable(report.Days, func(i, j int) bool {
		return report.Days[i].Date > report.Days[j].Date
	})

	return report, nil
}
