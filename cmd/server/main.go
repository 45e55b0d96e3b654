// File: cmd/server/main.go
package main

import (
	"context"
	"flag"
	"log" // Standard log for critical startup/shutdown messages before/after zap is active
	"os"
	"os/signal"
	"syscall"

	"teeup_backend/internal/config"
	platformElasticsearch "teeup_backend/internal/platform/elasticsearch"
	"teeup_backend/internal/platform/logger"
	"teeup_backend/internal/profile"

	"go.uber.org/zap"
)

func main() {
	syncProfilesCmd := flag.NewFlagSet("sync-profiles", flag.ExitOnError)
	batchSize := syncProfilesCmd.Int("batch-size", 100, "Batch size for syncing profiles")
	esRefresh := syncProfilesCmd.String("es-refresh", "false", "Elasticsearch refresh policy (true, false, wait_for)")

	if len(os.Args) > 1 && os.Args[1] == "sync-profiles" {
		if err := syncProfilesCmd.Parse(os.Args[2:]); err != nil {
			log.Fatalf("FATAL: Failed to parse sync-profiles flags: %v", err)
		}

		cfg, err := config.Load()
		if err != nil {
			log.Fatalf("FATAL: Failed to load configuration for sync: %v", err)
		}
		appLogger, err := logger.New(cfg)
		if err != nil {
			log.Fatalf("FATAL: Failed to initialize logger for sync: %v", err)
		}
		defer func() { _ = appLogger.Sync() }()

		esClient, err := platformElasticsearch.NewClient(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("FATAL: Failed to initialize Elasticsearch client for sync", zap.Error(err))
		}
		if esClient == nil {
			appLogger.Fatal("FATAL: Elasticsearch client is nil, ensure ELASTICSEARCH_URL is set.")
		}

		store, err := profile.ProvideStore(cfg)
		if err != nil {
			appLogger.Fatal("FATAL: Failed to load profile catalog", zap.Error(err))
		}

		ctx := context.Background()
		if err := platformElasticsearch.EnsureProfilesIndex(ctx, esClient, appLogger); err != nil {
			appLogger.Fatal("FATAL: Failed to create/verify Elasticsearch index before sync", zap.Error(err))
		}

		if err := runProfileSync(ctx, store, esClient, appLogger, *batchSize, *esRefresh); err != nil {
			appLogger.Fatal("FATAL: Profile synchronization failed", zap.Error(err))
		}
		appLogger.Info("Profile synchronization completed successfully.")
		return
	}

	startServer()
}

func startServer() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	server, cleanup, err := initializeServer(cfg)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize server: %v", err)
	}
	defer cleanup()

	if server.ESClient != nil {
		if err := platformElasticsearch.EnsureProfilesIndex(context.Background(), server.ESClient, server.AppLogger); err != nil {
			server.AppLogger.Error("Failed to create Elasticsearch profiles index; search requests will report errors.", zap.Error(err))
		}
	} else {
		server.AppLogger.Info("Elasticsearch client not initialized, skipping index creation.")
	}

	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("FATAL: Server failed to start or crashed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Printf("INFO: Received signal '%s'. Shutting down server...", sig)

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.ServerTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("ERROR: Server forced to shutdown due to error: %v", err)
	} else {
		log.Println("INFO: Server shutdown complete.")
	}
	log.Println("INFO: Application exiting.")
}
