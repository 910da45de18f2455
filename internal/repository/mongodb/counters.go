package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const orderCounterID = "sale_order_no"

// NextOrderSeq atomically increments the sale order counter and returns the
// new value. The first call on a fresh database returns 1. Uniqueness of
// auto-assigned order numbers holds under concurrent creates because the
// increment happens inside a single findAndModify.
func (r *Repository) NextOrderSeq(ctx context.Context) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := r.collection(countersCollection).
		FindOneAndUpdate(ctx,
			bson.M{"_id": orderCounterID},
			bson.M{"$inc": bson.M{"seq": int64(1)}},
			opts).
		Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("increment order counter: %w", err)
	}
	return counter.Seq, nil
}

// EnsureOrderSeqAtLeast raises the counter to n when it is behind, so the
// sequence continues after an explicitly numbered sale. Lower values are a
// no-op ($max).
func (r *Repository) EnsureOrderSeqAtLeast(ctx context.Context, n int64) error {
	opts := options.Update().SetUpsert(true)
	_, err := r.collection(countersCollection).UpdateOne(ctx,
		bson.M{"_id": orderCounterID},
		bson.M{"$max": bson.M{"seq": n}},
		opts)
	if err != nil {
		return fmt.Errorf("bump order counter to %d: %w", n, err)
	}
	return nil
}
