package notify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/bunkbites/stallbook/internal/domain/models"
)

// Notifier delivers closing-report summaries to an external channel.
type Notifier interface {
	SendClosingReport(ctx context.Context, report models.ClosingReport) error
}

// WebhookClient posts report summaries to a configured webhook URL
// (Slack-style incoming webhook payload).
type WebhookClient struct {
	httpClient *resty.Client
	webhookURL string
}

// NewWebhookClient builds a webhook notifier for the given URL.
func NewWebhookClient(webhookURL string) *WebhookClient {
	restyClient := resty.New()
	restyClient.
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &WebhookClient{
		httpClient: restyClient,
		webhookURL: webhookURL,
	}
}

// SendClosingReport posts a one-line text summary of the day.
func (c *WebhookClient) SendClosingReport(ctx context.Context, report models.ClosingReport) error {
	payload := map[string]any{
		"text": fmt.Sprintf("Closing report %s: %d orders, sales %.2f, expenses %.2f, invested %.2f, profit %.2f",
			report.Date, report.OrderCount, report.Sales, report.Expenses, report.Invested, report.Profit),
	}

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		Post(c.webhookURL)
	if err != nil {
		return fmt.Errorf("post closing report: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("webhook error: status=%d, body=%s", resp.StatusCode(), resp.String())
	}

	return nil
}
