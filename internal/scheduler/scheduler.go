package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/bunkbites/stallbook/internal/config"
	"github.com/bunkbites/stallbook/internal/domain/models"
	"github.com/bunkbites/stallbook/internal/repository/sheets"
	"github.com/bunkbites/stallbook/pkg/clients/notify"
)

// ReportGenerator produces the persisted end-of-day snapshot.
type ReportGenerator interface {
	GenerateClosingReport(ctx context.Context, day time.Time) (models.ClosingReport, error)
}

// Scheduler runs the nightly closing-report job.
type Scheduler struct {
	cron      *cron.Cron
	reporting ReportGenerator
	exporter  sheets.Exporter
	notifier  notify.Notifier
	cfg       config.ReportingConfig
	location  *time.Location
	logger    *zap.Logger
}

// New creates a scheduler instance. exporter and notifier may be nil when
// the corresponding integrations are not configured.
func New(cfg config.ReportingConfig, reporting ReportGenerator, exporter sheets.Exporter, notifier notify.Notifier, logger *zap.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, err
	}

	return &Scheduler{
		cron:      cron.New(cron.WithLocation(location)),
		reporting: reporting,
		exporter:  exporter,
		notifier:  notifier,
		cfg:       cfg,
		location:  location,
		logger:    logger,
	}, nil
}

// Start registers the closing-report job and starts the cron loop.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.runClosingReport); err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("scheduler started",
		zap.String("schedule", s.cfg.CronSchedule),
		zap.String("timezone", s.cfg.Timezone))
	return nil
}

// Stop stops the cron loop.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) runClosingReport() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	day := time.Now().In(s.location)
	s.logger.Info("generating closing report", zap.String("date", day.Format("2006-01-02")))

	report, err := s.reporting.GenerateClosingReport(ctx, day)
	if err != nil {
		s.logger.Error("failed to generate closing report", zap.Error(err))
		return
	}

	// Persistence already happened; the export and notification legs are
	// best effort and independent of each other.
	if s.exporter != nil {
		if err := s.exporter.AppendClosingReport(ctx, report); err != nil {
			s.logger.Error("failed to export closing report to sheet", zap.Error(err))
		}
	}

	if s.notifier != nil {
		if err := s.notifier.SendClosingReport(ctx, report); err != nil {
			s.logger.Error("failed to deliver closing report webhook", zap.Error(err))
		}
	}
}
