package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultDishCategory is applied when a dish is created without one.
const DefaultDishCategory = "Main Course"

// Dish is a menu item with a name and unit price.
type Dish struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Price     float64            `bson:"price" json:"price"`
	Category  string             `bson:"category" json:"category"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// NewDishInput carries the fields accepted when creating a dish.
type NewDishInput struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"min=0"`
	Category string  `json:"category"`
}

// DishPatch carries the fields accepted when updating a dish. Nil fields are
// left untouched.
type DishPatch struct {
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	Category *string  `json:"category"`
}
