package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bunkbites/stallbook/internal/domain/models"
)

// ListSales returns every sale, newest first by insertion timestamp.
func (r *Repository) ListSales(ctx context.Context) ([]models.Sale, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.collection(salesCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}

	sales := []models.Sale{}
	if err := cursor.All(ctx, &sales); err != nil {
		return nil, fmt.Errorf("decode sales: %w", err)
	}
	return sales, nil
}

// InsertSale persists a new sale and returns it with its assigned id.
func (r *Repository) InsertSale(ctx context.Context, sale models.Sale) (models.Sale, error) {
	res, err := r.collection(salesCollection).InsertOne(ctx, sale)
	if err != nil {
		return models.Sale{}, fmt.Errorf("insert sale: %w", err)
	}
	sale.ID = res.InsertedID.(primitive.ObjectID)
	return sale, nil
}

// CountSalesByDate returns the number of sales recorded for one calendar day.
func (r *Repository) CountSalesByDate(ctx context.Context, date string) (int64, error) {
	n, err := r.collection(salesCollection).CountDocuments(ctx, bson.M{"date": date})
	if err != nil {
		return 0, fmt.Errorf("count sales for %s: %w", date, err)
	}
	return n, nil
}
