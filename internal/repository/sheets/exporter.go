package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/bunkbites/stallbook/internal/config"
	"github.com/bunkbites/stallbook/internal/domain/models"
)

const closingReportRange = "Closing!A:G"

// Exporter mirrors closing reports into an external spreadsheet the stall
// owner can share with investors.
type Exporter interface {
	AppendClosingReport(ctx context.Context, report models.ClosingReport) error
}

// GoogleSheetExporter implements Exporter using the official Google Sheets
// API.
type GoogleSheetExporter struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewGoogleSheetExporter builds a Google Sheets backed exporter instance.
func NewGoogleSheetExporter(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (*GoogleSheetExporter, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetExporter{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// AppendClosingReport appends one row per closed day.
func (e *GoogleSheetExporter) AppendClosingReport(ctx context.Context, report models.ClosingReport) error {
	row := []interface{}{
		report.Date,
		report.OrderCount,
		report.Sales,
		report.Expenses,
		report.Invested,
		report.Profit,
		report.GeneratedAt.Format("2006-01-02 15:04:05"),
	}
	payload := &sheetsapi.ValueRange{Values: [][]interface{}{row}}

	call := e.service.Spreadsheets.Values.Append(e.spreadsheetID, closingReportRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append closing report row: %w", err)
	}

	e.logger.Debug("closing report exported", zap.String("date", report.Date))
	return nil
}
