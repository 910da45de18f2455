package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SaleItem is a denormalized snapshot of a dish at sale time. Deleting the
// dish later does not rewrite historical sales.
type SaleItem struct {
	DishID   string  `bson:"dishId" json:"dishId"`
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price"`
	Quantity int     `bson:"quantity" json:"quantity"`
}

// Sale is one recorded transaction for a calendar date. OrderNo is the
// human-facing sequential identifier, distinct from the storage id.
type Sale struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Date        string             `bson:"date" json:"date"`
	Items       []SaleItem         `bson:"items" json:"items"`
	TotalAmount float64            `bson:"totalAmount" json:"totalAmount"`
	OrderNo     string             `bson:"orderNo" json:"orderNo"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`
}

// NewSaleInput carries the fields accepted when recording a sale. OrderNo is
// optional; when absent the ledger assigns the next sequence number.
type NewSaleInput struct {
	Date        string     `json:"date" binding:"required"`
	Items       []SaleItem `json:"items"`
	TotalAmount float64    `json:"totalAmount"`
	OrderNo     string     `json:"orderNo"`
}
