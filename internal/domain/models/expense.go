package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultExpenseCategory is applied when an expense is created without one.
const DefaultExpenseCategory = "Supplies"

// Expense is an operational cost record. Date is the calendar day the cost
// belongs to; Timestamp is when the record was written.
type Expense struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Description string             `bson:"description" json:"description"`
	Amount      float64            `bson:"amount" json:"amount"`
	Category    string             `bson:"category" json:"category"`
	Date        string             `bson:"date" json:"date"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`
}

// NewExpenseInput carries the fields accepted when recording an expense.
type NewExpenseInput struct {
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Category    string  `json:"category"`
	Date        string  `json:"date" binding:"required"`
}
