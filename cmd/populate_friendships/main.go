package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"github.com/m04kA/tourism-booking-service/internal/config"
	companionRequestRepo "github.com/m04kA/tourism-booking-service/internal/infra/storage/companionrequest"
	friendGroupRepo "github.com/m04kA/tourism-booking-service/internal/infra/storage/friendgroup"
	friendshipRepo "github.com/m04kA/tourism-booking-service/internal/infra/storage/friendship"
	guestRepo "github.com/m04kA/tourism-booking-service/internal/infra/storage/guest"
	friendshipsService "github.com/m04kA/tourism-booking-service/internal/service/friendships"
	populateFriendshipsUC "github.com/m04kA/tourism-booking-service/internal/usecase/populate_friendships"
	"github.com/m04kA/tourism-booking-service/pkg/dbmetrics"
	"github.com/m04kA/tourism-booking-service/pkg/logger"
	"github.com/m04kA/tourism-booking-service/pkg/txmanager"
)

// Перестраивает ребра дружбы из компаньонов, групп и принятых заявок
// Повторный запуск безопасен
func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
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

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	wrappedDB := dbmetrics.Wrap(db, nil)
	txMgr := txmanager.NewTransactionManager(wrappedDB, cfg.Booking.SerializationRetries)

	friendships := friendshipsService.NewService(friendshipRepo.NewRepository(wrappedDB), txMgr, log)
	useCase := populateFriendshipsUC.NewUseCase(
		guestRepo.NewRepository(wrappedDB),
		companionRequestRepo.NewRepository(wrappedDB),
		friendGroupRepo.NewRepository(wrappedDB),
		friendships,
		log,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	resp, err := useCase.Execute(ctx)
	if err != nil {
		log.Error("Friendship rebuild failed: %v", err)
		os.Exit(1)
	}

	fmt.Printf("processed=%d (approximate) created=%d failed=%d\n", resp.Processed, resp.Created, resp.Failed)
}
