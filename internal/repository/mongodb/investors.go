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

// ListInvestors returns every contribution in insertion order.
func (r *Repository) ListInvestors(ctx context.Context) ([]models.Investor, error) {
	cursor, err := r.collection(investorsCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list investors: %w", err)
	}

	investors := []models.Investor{}
	if err := cursor.All(ctx, &investors); err != nil {
		return nil, fmt.Errorf("decode investors: %w", err)
	}
	return investors, nil
}

// InsertInvestor persists a new contribution and returns it with its id.
func (r *Repository) InsertInvestor(ctx context.Context, investor models.Investor) (models.Investor, error) {
	res, err := r.collection(investorsCollection).InsertOne(ctx, investor)
	if err != nil {
		return models.Investor{}, fmt.Errorf("insert investor: %w", err)
	}
	investor.ID = res.InsertedID.(primitive.ObjectID)
	return investor, nil
}

// UpdateInvestor applies the non-nil patch fields and returns the updated
// document. Returns ErrNotFound when the id does not match any record.
func (r *Repository) UpdateInvestor(ctx context.Context, id string, patch models.InvestorPatch) (models.Investor, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Investor{}, ErrNotFound
	}

	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Amount != nil {
		set["amount"] = *patch.Amount
	}
	if patch.Date != nil {
		set["date"] = *patch.Date
	}
	if len(set) == 0 {
		return r.findInvestor(ctx, oid)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Investor
	err = r.collection(investorsCollection).
		FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).
		Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Investor{}, ErrNotFound
	}
	if err != nil {
		return models.Investor{}, fmt.Errorf("update investor %s: %w", id, err)
	}
	return updated, nil
}

func (r *Repository) findInvestor(ctx context.Context, oid primitive.ObjectID) (models.Investor, error) {
	var investor models.Investor
	err := r.collection(investorsCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&investor)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Investor{}, ErrNotFound
	}
	if err != nil {
		return models.Investor{}, fmt.Errorf("find investor: %w", err)
	}
	return investor, nil
}

// DeleteInvestor removes a contribution by id. Unknown ids are a no-op.
func (r *Repository) DeleteInvestor(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	if _, err := r.collection(investorsCollection).DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete investor %s: %w", id, err)
	}
	return nil
}
