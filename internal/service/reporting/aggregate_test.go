package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bunkbites/stallbook/internal/domain/models"
)

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestFoldTotals(t *testing.T) {
	sales := []models.Sale{
		{TotalAmount: 120},
		{TotalAmount: 80},
		{TotalAmount: 45.5},
	}
	expenses := []models.Expense{
		{Amount: 60},
		{Amount: 15.5},
	}
	investors := []models.Investor{
		{Amount: 500},
		{Amount: 250},
	}

	totals := FoldTotals(sales, expenses, investors)

	assert.Equal(t, 245.5, totals.TotalSales)
	assert.Equal(t, 75.5, totals.TotalExpenses)
	assert.Equal(t, 750.0, totals.TotalInvested)
	assert.Equal(t, 170.0, totals.NetProfit)
}

func TestFoldTotals_OrderInvariant(t *testing.T) {
	sales := []models.Sale{{TotalAmount: 10}, {TotalAmount: 20}, {TotalAmount: 30}}
	reversed := []models.Sale{{TotalAmount: 30}, {TotalAmount: 20}, {TotalAmount: 10}}

	assert.Equal(t,
		FoldTotals(sales, nil, nil),
		FoldTotals(reversed, nil, nil))
}

func TestFoldTotals_Empty(t *testing.T) {
	totals := FoldTotals(nil, nil, nil)
	assert.Equal(t, models.Totals{}, totals)
}

func TestRankDishes(t *testing.T) {
	tea := models.Dish{ID: primitive.NewObjectID(), Name: "Tea"}
	samosa := models.Dish{ID: primitive.NewObjectID(), Name: "Samosa"}
	maggi := models.Dish{ID: primitive.NewObjectID(), Name: "Maggi"}

	sales := []models.Sale{
		{Items: []models.SaleItem{
			{DishID: tea.ID.Hex(), Name: "Tea", Price: 20, Quantity: 3},
			{DishID: samosa.ID.Hex(), Name: "Samosa", Price: 15, Quantity: 5},
		}},
		{Items: []models.SaleItem{
			{DishID: tea.ID.Hex(), Name: "Tea", Price: 20, Quantity: 4},
		}},
	}

	ranking := RankDishes([]models.Dish{tea, samosa, maggi}, sales)

	require.Len(t, ranking, 3)
	assert.Equal(t, "Tea", ranking[0].Name)
	assert.Equal(t, 7, ranking[0].Sold)
	assert.Equal(t, 140.0, ranking[0].Revenue)
	assert.Equal(t, "Samosa", ranking[1].Name)
	assert.Equal(t, 5, ranking[1].Sold)
	assert.Equal(t, 75.0, ranking[1].Revenue)
	assert.Equal(t, "Maggi", ranking[2].Name)
	assert.Zero(t, ranking[2].Sold)
}

func TestRankDishes_StableOnTies(t *testing.T) {
	first := models.Dish{ID: primitive.NewObjectID(), Name: "First"}
	second := models.Dish{ID: primitive.NewObjectID(), Name: "Second"}
	third := models.Dish{ID: primitive.NewObjectID(), Name: "Third"}

	sales := []models.Sale{
		{Items: []models.SaleItem{
			{DishID: first.ID.Hex(), Price: 10, Quantity: 2},
			{DishID: second.ID.Hex(), Price: 10, Quantity: 2},
			{DishID: third.ID.Hex(), Price: 10, Quantity: 2},
		}},
	}

	ranking := RankDishes([]models.Dish{first, second, third}, sales)

	// Equal quantities keep menu insertion order.
	require.Len(t, ranking, 3)
	assert.Equal(t, []string{"First", "Second", "Third"},
		[]string{ranking[0].Name, ranking[1].Name, ranking[2].Name})
}

func TestFoldDailyRange_SingleDay(t *testing.T) {
	sales := []models.Sale{
		{Date: "2026-08-01", TotalAmount: 100},
		{Date: "2026-08-01", TotalAmount: 50},
		{Date: "2026-08-02", TotalAmount: 999},
	}
	expenses := []models.Expense{
		{Date: "2026-08-01", Amount: 30},
		{Date: "2026-08-03", Amount: 70},
	}
	investors := []models.Investor{
		{Amount: 200, Date: day("2026-08-01")},
		{Amount: 400, Date: day("2026-08-05")},
	}

	report, err := FoldDailyRange("2026-08-01", "2026-08-01", sales, expenses, investors)
	require.NoError(t, err)

	require.Len(t, report.Days, 1)
	entry := report.Days[0]
	assert.Equal(t, "2026-08-01", entry.Date)
	assert.Equal(t, 150.0, entry.Sales)
	assert.Equal(t, 30.0, entry.Expenses)
	assert.Equal(t, 200.0, entry.Invested)
	assert.Equal(t, 120.0, entry.Profit)
	assert.Equal(t, models.RangeTotals{Sales: 150, Expenses: 30, Invested: 200, Profit: 120}, report.Totals)
}

func TestFoldDailyRange_ZeroSalesDaysExcludedButCounted(t *testing.T) {
	sales := []models.Sale{{Date: "2026-08-01", TotalAmount: 100}}
	expenses := []models.Expense{{Date: "2026-08-02", Amount: 40}}

	report, err := FoldDailyRange("2026-08-01", "2026-08-03", sales, expenses, nil)
	require.NoError(t, err)

	// Only the day with sales is listed.
	require.Len(t, report.Days, 1)
	assert.Equal(t, "2026-08-01", report.Days[0].Date)

	// The expense-only day still lands in the range totals.
	assert.Equal(t, 100.0, report.Totals.Sales)
	assert.Equal(t, 40.0, report.Totals.Expenses)
	assert.Equal(t, 60.0, report.Totals.Profit)
}

func TestFoldDailyRange_NewestFirst(t *testing.T) {
	sales := []models.Sale{
		{Date: "2026-08-01", TotalAmount: 10},
		{Date: "2026-08-03", TotalAmount: 30},
		{Date: "2026-08-02", TotalAmount: 20},
	}

	report, err := FoldDailyRange("2026-08-01", "2026-08-03", sales, nil, nil)
	require.NoError(t, err)

	require.Len(t, report.Days, 3)
	assert.Equal(t, []string{"2026-08-03", "2026-08-02", "2026-08-01"},
		[]string{report.Days[0].Date, report.Days[1].Date, report.Days[2].Date})
}

func TestFoldDailyRange_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
	}{
		{name: "malformed start", start: "01-08-2026", end: "2026-08-03"},
		{name: "malformed end", start: "2026-08-01", end: "bogus"},
		{name: "inverted range", start: "2026-08-03", end: "2026-08-01"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FoldDailyRange(tc.start, tc.end, nil, nil, nil)
			assert.Error(t, err)
		})
	}
}
