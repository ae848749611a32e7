package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/pulsehub/activity-feed-api/config"
	"github.com/pulsehub/activity-feed-api/internal/bootstrap"
)

func main() {
	ctx := context.Background()
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		slog.Error("load config failed", "error", err)
		os.Exit(1)
	}

	logger := bootstrap.InitLogger(cfg.IsDev)
	if err := run(ctx, logger, &cfg); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, cfg *config.AppConfig) error {
	logger.InfoContext(ctx, "starting activity feed api",
		"addr", cfg.HTTP.Addr,
		"self_hosted", cfg.SelfHosted,
		"mongo_db", cfg.Mongo.Database,
		"clickhouse_db", cfg.ClickHouse.Database)

	pg, err := bootstrap.ConnectPostgres(ctx, cfg.Postgres)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := pg.Close(); cerr != nil {
			logger.ErrorContext(ctx, "close postgres failed", "error", cerr)
		}
	}()

	mongoClient, err := bootstrap.ConnectMongo(ctx, cfg.Mongo)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := mongoClient.Disconnect(ctx); cerr != nil {
			logger.ErrorContext(ctx, "disconnect mongo failed", "error", cerr)
		}
	}()

	ch, err := bootstrap.ConnectClickHouse(ctx, cfg.ClickHouse)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := ch.Close(); cerr != nil {
			logger.ErrorContext(ctx, "close clickhouse failed", "error", cerr)
		}
	}()

	redisClient := bootstrap.NewRedisClient(cfg.Redis)
	defer func() {
		if cerr := redisClient.Close(); cerr != nil {
			logger.ErrorContext(ctx, "close redis failed", "error", cerr)
		}
	}()

	metrics, err := bootstrap.NewMetricsSink(cfg.Metrics, logger)
	if err != nil {
		// Metrics are best-effort; a dead sink must not block startup.
		logger.WarnContext(ctx, "statsd client init failed, metrics disabled", "error", err)
	} else {
		defer func() {
			_ = metrics.Close()
		}()
	}

	handler := bootstrap.BuildHandler(&bootstrap.ServiceDeps{
		Config:     cfg,
		Postgres:   pg,
		Mongo:      mongoClient,
		ClickHouse: ch,
		Redis:      redisClient,
		Metrics:    metrics,
		Logger:     logger,
	})

	return bootstrap.RunServer(ctx, cfg.HTTP, handler, logger)
}
