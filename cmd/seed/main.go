package main

import (
	"context"
	"log"

	"shopwidget/internal/config"
	"shopwidget/internal/db"
	"shopwidget/internal/logging"
	productrepo "shopwidget/internal/repository/product"
	projectrepo "shopwidget/internal/repository/project"
	"shopwidget/internal/seed"

	"go.uber.org/zap"
)

func main() {
	cfg := config.FromEnv()
	logger, err := logging.New("seed", cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.DBConnString == "" {
		logger.Fatal("DB_DSN is required")
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString, logger)
	if err != nil {
		logger.Fatal("connect db", zap.Error(err))
	}
	defer pool.Close()

	n, err := seed.Apply(ctx, projectrepo.NewPostgres(pool, logger), productrepo.NewPostgres(pool, logger), cfg.CatalogProject)
	if err != nil {
		logger.Fatal("seed apply", zap.Error(err))
	}

	logger.Info("seed applied", zap.String("project", cfg.CatalogProject), zap.Int("products", n))
}
