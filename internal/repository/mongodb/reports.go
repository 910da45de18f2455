package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bunkbites/stallbook/internal/domain/models"
)

// SaveClosingReport upserts the end-of-day snapshot keyed by date, so
// re-running the job for the same day overwrites rather than duplicates.
func (r *Repository) SaveClosingReport(ctx context.Context, report models.ClosingReport) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection(closingReportsCollection).
		ReplaceOne(ctx, bson.M{"date": report.Date}, report, opts)
	if err != nil {
		return fmt.Errorf("save closing report for %s: %w", report.Date, err)
	}
	return nil
}

// ListClosingReports returns stored closing reports, newest day first.
func (r *Repository) ListClosingReports(ctx context.Context) ([]models.ClosingReport, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.collection(closingReportsCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list closing reports: %w", err)
	}

	reports := []models.ClosingReport{}
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, fmt.Errorf("decode closing reports: %w", err)
	}
	return reports, nil
}
