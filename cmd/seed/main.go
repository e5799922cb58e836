package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vanshika/bizbridge/internal/catalog"
	"github.com/vanshika/bizbridge/internal/config"
	"github.com/vanshika/bizbridge/internal/domain"
	"github.com/vanshika/bizbridge/internal/generator"
	"github.com/vanshika/bizbridge/internal/graph"
	"github.com/vanshika/bizbridge/internal/logging"
	"github.com/vanshika/bizbridge/internal/repository"
	"github.com/vanshika/bizbridge/internal/service"
)

func main() {
	var (
		datasetDir = flag.String("dataset-dir", "", "Directory containing buyers.json and sellers.json; empty seeds the built-in fixtures")
		workers    = flag.Int("workers", 4, "Number of concurrent workers for ingestion")
		skipDeals  = flag.Bool("skip-deals", false, "Do not load the fixture deals")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging).With("component", "seed")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	buyers, sellers, deals, err := loadRecords(ctx, *datasetDir)
	if err != nil {
		logger.Error("failed to load records", "error", err, "dataset_dir", *datasetDir)
		os.Exit(1)
	}
	if len(buyers) == 0 && len(sellers) == 0 {
		logger.Error("dataset empty", "dataset_dir", *datasetDir)
		os.Exit(1)
	}
	if *skipDeals {
		deals = nil
	}

	graphClient, err := buildGraphClient(ctx, logger, cfg)
	if err != nil {
		logger.Error("failed to create graph client", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := graphClient.Close(context.Background()); err != nil {
			logger.Warn("closing graph client failed", "error", err)
		}
	}()

	repo := repository.New(graphClient)
	if err := repo.EnsureSchema(ctx); err != nil {
		logger.Error("schema setup failed", "error", err)
		os.Exit(1)
	}
	ingestor := service.NewBulkIngestor(repo, *workers)

	start := time.Now()
	logger.Info("ingesting buyers", "count", len(buyers), "workers", *workers)
	if err := ingestor.IngestBuyers(ctx, buyers); err != nil {
		logger.Error("buyer ingestion failed", "error", err)
		os.Exit(1)
	}

	logger.Info("ingesting sellers", "count", len(sellers))
	if err := ingestor.IngestSellers(ctx, sellers); err != nil {
		logger.Error("seller ingestion failed", "error", err)
		os.Exit(1)
	}

	if len(deals) > 0 {
		logger.Info("ingesting deals", "count", len(deals))
		if err := ingestor.IngestDeals(ctx, deals); err != nil {
			logger.Error("deal ingestion failed", "error", err)
			os.Exit(1)
		}
	}

	logger.Info("seed complete", "duration", time.Since(start).String(), "buyers", len(buyers), "sellers", len(sellers), "deals", len(deals))
}

// loadRecords reads a generated dataset, or the fixture catalog when dir is
// empty. Deals only come from the fixtures.
func loadRecords(ctx context.Context, dir string) ([]service.BuyerInput, []service.SellerInput, []domain.Deal, error) {
	if dir != "" {
		ds, err := generator.ReadDataset(dir)
		if err != nil {
			return nil, nil, nil, err
		}
		return ds.Buyers, ds.Sellers, nil, nil
	}

	fixtures := catalog.NewFixtures()
	buyerProfiles, err := fixtures.ListBuyers(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	sellerProfiles, err := fixtures.ListSellers(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	deals, err := fixtures.ListDeals(ctx)
	if err != nil {
		return nil, nil, nil, err
	}

	buyers := make([]service.BuyerInput, 0, len(buyerProfiles))
	for _, b := range buyerProfiles {
		buyers = append(buyers, service.BuyerInputFrom(b))
	}
	sellers := make([]service.SellerInput, 0, len(sellerProfiles))
	for _, s := range sellerProfiles {
		sellers = append(sellers, service.SellerInputFrom(s))
	}
	return buyers, sellers, deals, nil
}

func buildGraphClient(ctx context.Context, logger *slog.Logger, cfg config.Config) (graph.Client, error) {
	if cfg.Graph.URI == "" {
		return nil, fmt.Errorf("GRAPH_URI is required for seeding")
	}
	opts := graph.Options{
		URI:            cfg.Graph.URI,
		Database:       cfg.Graph.Database,
		Username:       cfg.Graph.Username,
		Password:       cfg.Graph.Password,
		MaxConnections: cfg.Graph.MaxConnections,
	}
	client, err := graph.NewNeo4jClient(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := client.VerifyConnectivity(ctx); err != nil {
		_ = client.Close(ctx)
		return nil, err
	}
	logger.Info("connected to graph", "uri", cfg.Graph.URI, "database", cfg.Graph.Database)
	return client, nil
}
