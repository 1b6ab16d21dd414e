package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"shopwidget/internal/config"
	"shopwidget/internal/db"
	"shopwidget/internal/importer"
	"shopwidget/internal/logging"
	productrepo "shopwidget/internal/repository/product"
	projectrepo "shopwidget/internal/repository/project"
)

func main() {
	var (
		filePath   string
		projectKey string
	)
	flag.StringVar(&filePath, "file", "", "Path to catalog CSV (key,sku,name,description,price,currency,image)")
	flag.StringVar(&projectKey, "project", "", "Project key to import into (defaults to CATALOG_PROJECT)")
	flag.Parse()

	cfg := config.FromEnv()
	logger, err := logging.New("importer", cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if projectKey == "" {
		projectKey = cfg.CatalogProject
	}
	if filePath == "" || cfg.DBConnString == "" {
		fmt.Fprintln(os.Stderr, "both -file and DB_DSN are required")
		flag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString, nil)
	if err != nil {
		log.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	proj, err := projectrepo.NewPostgres(pool, logger).Ensure(ctx, projectKey, projectKey)
	if err != nil {
		log.Fatalf("ensure project %q: %v", projectKey, err)
	}

	f, err := os.Open(filePath)
	if err != nil {
		log.Fatalf("open file: %v", err)
	}
	defer f.Close()

	imp := importer.NewCSVImporter(f, productrepo.NewPostgres(pool, logger), proj.ID, cfg.Currency)

	start := time.Now()
	count, err := imp.Run(ctx)
	if err != nil {
		log.Fatalf("import failed after %d products: %v", count, err)
	}

	fmt.Printf("Imported %d products into project %s in %s\n", count, projectKey, time.Since(start).Truncate(time.Millisecond))
}
