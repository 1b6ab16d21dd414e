package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"shopwidget/internal/catalog"
	"shopwidget/internal/config"
	"shopwidget/internal/db"
	"shopwidget/internal/httpserver"
	"shopwidget/internal/logging"
	"shopwidget/internal/money"
	"shopwidget/internal/render"
	productrepo "shopwidget/internal/repository/product"
	projectrepo "shopwidget/internal/repository/project"
	"shopwidget/internal/session"
	"shopwidget/internal/widget"

	"go.uber.org/zap"
)

func main() {
	cfg := config.FromEnv()
	logger, err := logging.New("widget", cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	formatter, err := money.New(cfg.Locale, cfg.Currency, cfg.CurrencySymbol)
	if err != nil {
		logger.Fatal("init money formatter", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps := httpserver.Deps{
		Money:            formatter,
		SessionTTL:       cfg.SessionTTL,
		CORSAllowOrigins: cfg.CORSAllowOrigins,
	}

	if cfg.DBConnString != "" {
		pool, err := db.Connect(ctx, cfg.DBConnString, logger)
		if err != nil {
			logger.Fatal("connect to db", zap.Error(err))
		}
		defer pool.Close()
		deps.DB = pool
		deps.Catalog = catalog.NewPostgres(projectrepo.NewPostgres(pool, logger), productrepo.NewPostgres(pool, logger), cfg.CatalogProject)
		logger.Info("serving catalog from postgres", zap.String("project", cfg.CatalogProject))
	} else {
		deps.Catalog = catalog.NewStatic(catalog.Demo())
		logger.Info("serving built-in demo catalog")
	}

	widgetLogger := logger.Named("widget")
	deps.Sessions = session.NewRegistry(func() *widget.Widget {
		return widget.New(widget.Options{Money: formatter, Labels: render.DefaultLabels, Logger: widgetLogger})
	}, cfg.SessionTTL, logger.Named("sessions"))
	go deps.Sessions.Run(ctx, cfg.SessionSweepEvery)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, deps)
	if err != nil {
		logger.Fatal("init server", zap.Error(err))
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting http server", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serverErr:
		logger.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	} else {
		logger.Info("server stopped")
	}
}
