package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/tourism-booking-service/internal/config"
	"github.com/m04kA/tourism-booking-service/internal/integrations/notifier"
	"github.com/m04kA/tourism-booking-service/internal/worker"
	"github.com/m04kA/tourism-booking-service/pkg/logger"
	"github.com/m04kA/tourism-booking-service/pkg/queue"
)

// Воркер доставки писем из очереди Redis через SMTP
func main() {
	path := "config.toml"
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		path = env
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	if !cfg.Redis.Enabled {
		log.Fatal("Notifier requires redis.enabled = true")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to redis at %s: %v", cfg.Redis.Addr, err)
	}

	deliverer := notifier.NewSMTPDeliverer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From)
	emailWorker := worker.NewEmailWorker(
		queue.NewQueue(rdb, log),
		deliverer,
		log,
		time.Duration(cfg.Notifications.PollTimeout)*time.Second,
	)

	log.Info("Notifier started: redis=%s smtp=%s", cfg.Redis.Addr, cfg.SMTP.Addr())
	emailWorker.Run(ctx)
	log.Info("Notifier stopped")
}
