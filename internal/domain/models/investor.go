package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Investor is a capital contribution record.
type Investor struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name   string             `bson:"name" json:"name"`
	Amount float64            `bson:"amount" json:"amount"`
	Date   time.Time          `bson:"date" json:"date"`
}

// NewInvestorInput carries the fields accepted when recording a contribution.
// Date defaults to the current time when omitted.
type NewInvestorInput struct {
	Name   string    `json:"name" binding:"required"`
	Amount float64   `json:"amount" binding:"required"`
	Date   time.Time `json:"date"`
}

// InvestorPatch carries the fields accepted when updating a contribution.
type InvestorPatch struct {
	Name   *string    `json:"name"`
	Amount *float64   `json:"amount"`
	Date   *time.Time `json:"date"`
}
