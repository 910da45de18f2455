package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Totals is the all-time rollup shown on the dashboard.
type Totals struct {
	TotalSales    float64 `json:"totalSales"`
	TotalExpenses float64 `json:"totalExpenses"`
	TotalInvested float64 `json:"totalInvested"`
	NetProfit     float64 `json:"netProfit"`
}

// DishPerformance is one row of the per-dish ranking: units sold and revenue
// accumulated across every sale item referencing the dish.
type DishPerformance struct {
	DishID  string  `json:"dishId"`
	Name    string  `json:"name"`
	Sold    int     `json:"sold"`
	Revenue float64 `json:"revenue"`
}

// DailyEntry is one day inside a date-range report.
type DailyEntry struct {
	Date     string  `json:"date"`
	Sales    float64 `json:"sales"`
	Expenses float64 `json:"expenses"`
	Invested float64 `json:"invested"`
	Profit   float64 `json:"profit"`
}

// RangeTotals accumulates every day of the range, including days that are
// excluded from the Days list for having no sales.
type RangeTotals struct {
	Sales    float64 `json:"sales"`
	Expenses float64 `json:"expenses"`
	Invested float64 `json:"invested"`
	Profit   float64 `json:"profit"`
}

// RangeReport is the daily breakdown for an inclusive [Start, End] range.
// Days holds only days with sales, newest first.
type RangeReport struct {
	Start  string       `json:"start"`
	End    string       `json:"end"`
	Totals RangeTotals  `json:"totals"`
	Days   []DailyEntry `json:"days"`
}

// ClosingReport is the persisted end-of-day snapshot written by the
// scheduler.
type ClosingReport struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Date        string             `bson:"date" json:"date"`
	Sales       float64            `bson:"sales" json:"sales"`
	Expenses    float64            `bson:"expenses" json:"expenses"`
	Invested    float64            `bson:"invested" json:"invested"`
	Profit      float64            `bson:"profit" json:"profit"`
	OrderCount  int                `bson:"orderCount" json:"orderCount"`
	GeneratedAt time.Time          `bson:"generatedAt" json:"generatedAt"`
}
