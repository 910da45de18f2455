package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/bunkbites/stallbook/internal/config"
	"github.com/bunkbites/stallbook/internal/repository/mongodb"
	"github.com/bunkbites/stallbook/internal/repository/rediscache"
	"github.com/bunkbites/stallbook/internal/repository/sheets"
	"github.com/bunkbites/stallbook/internal/scheduler"
	"github.com/bunkbites/stallbook/internal/server/handlers"
	"github.com/bunkbites/stallbook/internal/server/router"
	authsvc "github.com/bunkbites/stallbook/internal/service/auth"
	ledgersvc "github.com/bunkbites/stallbook/internal/service/ledger"
	reportingsvc "github.com/bunkbites/stallbook/internal/service/reporting"
	"github.com/bunkbites/stallbook/pkg/clients/notify"
	"github.com/bunkbites/stallbook/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	mongoRepo, err := mongodb.New(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := mongoRepo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	var reportCache reportingsvc.Cache
	if cfg.Redis.Addr != "" {
		cache, err := rediscache.New(context.Background(), cfg.Redis.Addr, baseLogger.Named("repo.rediscache"))
		if err != nil {
			baseLogger.Fatal("failed to init redis cache", zap.Error(err))
		}
		defer func() { _ = cache.Close() }()
		reportCache = cache
		baseLogger.Info("report cache enabled", zap.String("addr", cfg.Redis.Addr))
	} else {
		baseLogger.Info("report cache disabled, reports recomputed per request")
	}

	ledgerSvc := ledgersvc.NewService(mongoRepo, mongoRepo, baseLogger.Named("svc.ledger"))
	reportingSvc := reportingsvc.NewService(mongoRepo, mongoRepo, reportCache, cfg.Redis.CacheTTL, baseLogger.Named("svc.reporting"))
	authSvc := authsvc.NewService(cfg.Auth.Username, cfg.Auth.PasswordHash, cfg.Auth.TokenSecret, cfg.Auth.TokenTTL, baseLogger.Named("svc.auth"))

	var exporter sheets.Exporter
	if cfg.Sheets.SpreadsheetID != "" {
		sheetExporter, err := sheets.NewGoogleSheetExporter(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets exporter", zap.Error(err))
		}
		exporter = sheetExporter
		baseLogger.Info("closing-report sheet export enabled")
	}

	var notifier notify.Notifier
	if cfg.Reporting.WebhookURL != "" {
		notifier = notify.NewWebhookClient(cfg.Reporting.WebhookURL)
		baseLogger.Info("closing-report webhook enabled")
	}

	engine := router.New(router.Handlers{
		Dishes:    handlers.NewDishHandler(ledgerSvc, baseLogger.Named("handlers.dishes")),
		Sales:     handlers.NewSaleHandler(ledgerSvc, baseLogger.Named("handlers.sales")),
		Investors: handlers.NewInvestorHandler(ledgerSvc, baseLogger.Named("handlers.investors")),
		Expenses:  handlers.NewExpenseHandler(ledgerSvc, baseLogger.Named("handlers.expenses")),
		Reports:   handlers.NewReportHandler(reportingSvc, baseLogger.Named("handlers.reports")),
		Auth:      handlers.NewAuthHandler(authSvc, baseLogger.Named("handlers.auth")),
	}, authSvc, baseLogger.Named("router"))

	sched, err := scheduler.New(cfg.Reporting, reportingSvc, exporter, notifier, baseLogger.Named("scheduler"))
	if err != nil {
		baseLogger.Fatal("failed to init scheduler", zap.Error(err))
	}
	if err := sched.Start(); err != nil {
		baseLogger.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	// The back-office UI is a browser SPA on another origin.
	corsWrapper := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      corsWrapper.Handler(engine),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
