package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bunkbites/stallbook/internal/domain/models"
)

// ListExpenses returns every expense, newest first by insertion timestamp.
func (r *Repository) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.collection(expensesCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}

	expenses := []models.Expense{}
	if err := cursor.All(ctx, &expenses); err != nil {
		return nil, fmt.Errorf("decode expenses: %w", err)
	}
	return expenses, nil
}

// InsertExpense persists a new expense and returns it with its assigned id.
func (r *Repository) InsertExpense(ctx context.Context, expense models.Expense) (models.Expense, error) {
	res, err := r.collection(expensesCollection).InsertOne(ctx, expense)
	if err != nil {
		return models.Expense{}, fmt.Errorf("insert expense: %w", err)
	}
	expense.ID = res.InsertedID.(primitive.ObjectID)
	return expense, nil
}

// DeleteExpense removes an expense by id. Unknown ids are a no-op.
func (r *Repository) DeleteExpense(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	if _, err := r.collection(expensesCollection).DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete expense %s: %w", id, err)
	}
	return nil
}
