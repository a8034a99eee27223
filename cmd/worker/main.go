package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/medicore/hospital-api/internal/config"
	"github.com/medicore/hospital-api/internal/repository"
	"github.com/medicore/hospital-api/internal/repository/postgres"
	"github.com/medicore/hospital-api/pkg/logger"
	redisbroker "github.com/medicore/hospital-api/pkg/messaging/redis"
	"github.com/medicore/hospital-api/pkg/metrics"
	"github.com/medicore/hospital-api/pkg/worker"
)

// retentionDays bounds how long processed outbox rows are kept before the
// periodic cleanup removes them.
const retentionDays = 7

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := logger.NewLogger(&logger.Config{
		Level:      level,
		TimeFormat: time.RFC3339,
		Output:     os.Stdout,
	})

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal(err, "failed to connect to database")
	}
	defer db.Close()

	outboxRepo := postgres.NewOutboxRepository(db)

	brokerLog := zerolog.New(os.Stdout).With().Timestamp().Logger()
	broker, err := redisbroker.NewRedisBroker(redisbroker.Config{
		URL:          cfg.Redis.URL,
		MaxRetries:   3,
		RetryBackoff: 100 * time.Millisecond,
		PoolSize:     10,
		MinIdleConns: 2,
	}, &brokerLog)
	if err != nil {
		log.Fatal(err, "failed to connect to redis")
	}
	defer broker.Close()

	m := metrics.NewMetrics("hospital_api", "worker")

	processor := worker.NewOutboxProcessor(
		outboxRepo,
		broker,
		worker.DefaultOutboxProcessorConfig(),
		log,
		m,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go processor.Start(ctx)
	go runCleanup(ctx, outboxRepo, log)

	log.Info("worker started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker")
	cancel()
	time.Sleep(time.Second)
	log.Info("worker stopped")
}

func runCleanup(ctx context.Context, repo repository.OutboxRepository, log *logger.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := repo.DeleteProcessedBefore(ctx, retentionDays)
			if err != nil {
				log.Error(err, "outbox cleanup failed")
				continue
			}
			if deleted > 0 {
				log.Info("outbox cleanup", "deleted", deleted)
			}
		}
	}
}
