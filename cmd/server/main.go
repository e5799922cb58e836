package main

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/vanshika/bizbridge/internal/catalog"
	"github.com/vanshika/bizbridge/internal/config"
	"github.com/vanshika/bizbridge/internal/graph"
	"github.com/vanshika/bizbridge/internal/logging"
	"github.com/vanshika/bizbridge/internal/realtime"
	"github.com/vanshika/bizbridge/internal/repository"
	"github.com/vanshika/bizbridge/internal/server"
	"github.com/vanshika/bizbridge/internal/service"
	"github.com/vanshika/bizbridge/internal/session"
	"github.com/vanshika/bizbridge/internal/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		logger.Error("failed to set up tracing", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("tracer shutdown failed", "error", err)
		}
	}()

	cat, health, closeCatalog, err := buildCatalog(ctx, logger, cfg)
	if err != nil {
		logger.Error("failed to build catalog", "error", err, "backend", cfg.Catalog.Backend)
		os.Exit(1)
	}
	defer closeCatalog()

	secret := []byte(cfg.Session.Secret)
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			logger.Error("failed to generate session secret", "error", err)
			os.Exit(1)
		}
		logger.Warn("SESSION_SECRET is empty; using an ephemeral secret, sessions will not survive a restart")
	}

	store := session.NewStore(cfg.Session.TTL)
	go store.RunJanitor(ctx, cfg.Session.SweepInterval, func(removed int) {
		logger.Debug("swept expired sessions", "removed", removed, "remaining", store.Len())
	})

	hub := realtime.NewHub(logger)
	market := service.NewMarketplace(cat, server.NewPublisher(hub))

	router := server.NewRouter(logger, server.RouterDependencies{
		Health:      health,
		Marketplace: market,
		Sessions:    store,
		Codec:       session.NewCodec(secret, cfg.Session.TTL),
		Cookie: session.CookieOptions{
			Secure: cfg.Session.SecureCookie,
			TTL:    cfg.Session.TTL,
		},
		Hub:              hub,
		AllowedOrigins:   cfg.HTTP.AllowedOrigins,
		AllowCredentials: true,
		UploadMaxBytes:   cfg.HTTP.UploadMaxBytes,
	})

	srv := server.New(logger, cfg.HTTP, router)
	srv.RegisterOnShutdown(hub.Close)

	if err := srv.Run(ctx); err != nil {
		logger.Error("server stopped unexpectedly", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}

// buildCatalog returns the configured catalog, its health probe and a close
// function.
func buildCatalog(ctx context.Context, logger *slog.Logger, cfg config.Config) (service.Catalog, server.HealthService, func(), error) {
	if cfg.Catalog.Backend != config.BackendGraph {
		logger.Info("using in-memory fixture catalog")
		return catalog.NewFixtures(), nil, func() {}, nil
	}

	client, err := graph.NewNeo4jClient(ctx, graph.Options{
		URI:            cfg.Graph.URI,
		Database:       cfg.Graph.Database,
		Username:       cfg.Graph.Username,
		Password:       cfg.Graph.Password,
		MaxConnections: cfg.Graph.MaxConnections,
	})
	if err != nil {
		return nil, nil, nil, err
	}
	closeFn := func() {
		if err := client.Close(context.Background()); err != nil {
			logger.Warn("closing graph client failed", "error", err)
		}
	}

	repo := repository.New(client)
	if err := repo.EnsureSchema(ctx); err != nil {
		closeFn()
		return nil, nil, nil, fmt.Errorf("ensure schema: %w", err)
	}
	logger.Info("using graph catalog", "uri", cfg.Graph.URI, "database", cfg.Graph.Database)
	return repo, server.GraphHealthService{Client: client}, closeFn, nil
}
