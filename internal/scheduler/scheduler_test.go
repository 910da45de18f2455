package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bunkbites/stallbook/internal/config"
	"github.com/bunkbites/stallbook/internal/domain/models"
)

type fakeGenerator struct {
	report models.ClosingReport
	err    error
	calls  int
}

func (f *fakeGenerator) GenerateClosingReport(_ context.Context, day time.Time) (models.ClosingReport, error) {
	f.calls++
	f.report.Date = day.Format("2006-01-02")
	return f.report, f.err
}

type fakeExporter struct {
	exported []models.ClosingReport
}

func (f *fakeExporter) AppendClosingReport(_ context.Context, report models.ClosingReport) error {
	f.exported = append(f.exported, report)
	return nil
}

type fakeNotifier struct {
	sent []models.ClosingReport
}

func (f *fakeNotifier) SendClosingReport(_ context.Context, report models.ClosingReport) error {
	f.sent = append(f.sent, report)
	return nil
}

func testConfig() config.ReportingConfig {
	return config.ReportingConfig{
		CronSchedule: "0 22 * * *",
		Timezone:     "UTC",
	}
}

func TestNew_RejectsUnknownTimezone(t *testing.T) {
	cfg := testConfig()
	cfg.Timezone = "Mars/Olympus"

	_, err := New(cfg, &fakeGenerator{}, nil, nil, nil)
	assert.Error(t, err)
}

func TestStart_RejectsBadSchedule(t *testing.T) {
	cfg := testConfig()
	cfg.CronSchedule = "every day at ten"

	s, err := New(cfg, &fakeGenerator{}, nil, nil, nil)
	require.NoError(t, err)
	defer s.Stop()

	assert.Error(t, s.Start())
}

func TestRunClosingReport_DeliversToAllLegs(t *testing.T) {
	gen := &fakeGenerator{report: models.ClosingReport{Sales: 450, Profit: 330, OrderCount: 2}}
	exporter := &fakeExporter{}
	notifier := &fakeNotifier{}

	s, err := New(testConfig(), gen, exporter, notifier, nil)
	require.NoError(t, err)

	s.runClosingReport()

	assert.Equal(t, 1, gen.calls)
	require.Len(t, exporter.exported, 1)
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, 450.0, notifier.sent[0].Sales)
}

func TestRunClosingReport_GeneratorFailureSkipsDelivery(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("store down")}
	exporter := &fakeExporter{}
	notifier := &fakeNotifier{}

	s, err := New(testConfig(), gen, exporter, notifier, nil)
	require.NoError(t, err)

	s.runClosingReport()

	assert.Empty(t, exporter.exported)
	assert.Empty(t, notifier.sent)
}

func TestRunClosingReport_NilLegsAreOptional(t *testing.T) {
	gen := &fakeGenerator{}
	s, err := New(testConfig(), gen, nil, nil, nil)
	require.NoError(t, err)

	assert.NotPanics(t, s.runClosingReport)
	assert.Equal(t, 1, gen.calls)
}
