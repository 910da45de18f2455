package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bunkbites/stallbook/internal/domain/models"
)

// ListDishes returns every dish in insertion order.
func (r *Repository) ListDishes(ctx context.Context) ([]models.Dish, error) {
	cursor, err := r.collection(dishesCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list dishes: %w", err)
	}

	dishes := []models.Dish{}
	if err := cursor.All(ctx, &dishes); err != nil {
		return nil, fmt.Errorf("decode dishes: %w", err)
	}
	return dishes, nil
}

// InsertDish persists a new dish and returns it with its assigned id.
func (r *Repository) InsertDish(ctx context.Context, dish models.Dish) (models.Dish, error) {
	res, err := r.collection(dishesCollection).InsertOne(ctx, dish)
	if err != nil {
		return models.Dish{}, fmt.Errorf("insert dish: %w", err)
	}
	dish.ID = res.InsertedID.(primitive.ObjectID)
	return dish, nil
}

// UpdateDish applies the non-nil patch fields and returns the updated
// document. Returns ErrNotFound when the id does not match any dish.
func (r *Repository) UpdateDish(ctx context.Context, id string, patch models.DishPatch) (models.Dish, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Dish{}, ErrNotFound
	}

	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if len(set) == 0 {
		return r.findDish(ctx, oid)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Dish
	err = r.collection(dishesCollection).
		FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).
		Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Dish{}, ErrNotFound
	}
	if err != nil {
		return models.Dish{}, fmt.Errorf("update dish %s: %w", id, err)
	}
	return updated, nil
}

func (r *Repository) findDish(ctx context.Context, oid primitive.ObjectID) (models.Dish, error) {
	var dish models.Dish
	err := r.collection(dishesCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&dish)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Dish{}, ErrNotFound
	}
	if err != nil {
		return models.Dish{}, fmt.Errorf("find dish: %w", err)
	}
	return dish, nil
}

// DeleteDish removes a dish by id. Unknown ids are a no-op.
func (r *Repository) DeleteDish(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	if _, err := r.collection(dishesCollection).DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete dish %s: %w", id, err)
	}
	return nil
}
