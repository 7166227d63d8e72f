package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	cancelBookingHandler "github.com/m04kA/tourism-booking-service/internal/api/handlers/cancel_booking"
	companionRequestsHandler "github.com/m04kA/tourism-booking-service/internal/api/handlers/companion_requests"
	companionsHandler "github.com/m04kA/tourism-booking-service/internal/api/handlers/companions"
	createAccommodationBookingHandler "github.com/m04kA/tourism-booking-service/internal/api/handlers/create_accommodation_booking"
	createTourBookingHandler "github.com/m04kA/tourism-booking-service/internal/api/handlers/create_tour_booking"
	decideAccommodationBookingHandler "github.com/m04kA/tourism-booking-service/internal/api/handlers/decide_accommodation_booking"
	friendshipsHandler "github.com/m04kA/tourism-booking-service/internal/api/handlers/friendships"
	getBookingHandler "github.com/m04kA/tourism-booking-service/internal/api/handlers/get_booking"
	getGuestBookingsHandler "github.com/m04kA/tourism-booking-service/internal/api/handlers/get_guest_bookings"
	rebuildFriendshipsHandler "github.com/m04kA/tourism-booking-service/internal/api/handlers/rebuild_friendships"
	"github.com/m04kA/tourism-booking-service/internal/api/middleware"
	"github.com/m04kA/tourism-booking-service/internal/config"
	accommodationBookingRepo "github.com/m04kA/tourism-booking-service/internal/infra/storage/accommodationbooking"
	companionRequestRepo "github.com/m04kA/tourism-booking-service/internal/infra/storage/companionrequest"
	friendGroupRepo "github.com/m04kA/tourism-booking-service/internal/infra/storage/friendgroup"
	friendshipRepo "github.com/m04kA/tourism-booking-service/internal/infra/storage/friendship"
	guestRepo "github.com/m04kA/tourism-booking-service/internal/infra/storage/guest"
	roomRepo "github.com/m04kA/tourism-booking-service/internal/infra/storage/room"
	scheduleRepo "github.com/m04kA/tourism-booking-service/internal/infra/storage/schedule"
	tourBookingRepo "github.com/m04kA/tourism-booking-service/internal/infra/storage/tourbooking"
	"github.com/m04kA/tourism-booking-service/internal/integrations/notifier"
	"github.com/m04kA/tourism-booking-service/internal/integrations/session"
	bookingsService "github.com/m04kA/tourism-booking-service/internal/service/bookings"
	companionsService "github.com/m04kA/tourism-booking-service/internal/service/companions"
	friendshipsService "github.com/m04kA/tourism-booking-service/internal/service/friendships"
	notificationsService "github.com/m04kA/tourism-booking-service/internal/service/notifications"
	"github.com/m04kA/tourism-booking-service/internal/service/translations"
	cancelBookingUC "github.com/m04kA/tourism-booking-service/internal/usecase/cancel_booking"
	createAccommodationBookingUC "github.com/m04kA/tourism-booking-service/internal/usecase/create_accommodation_booking"
	createTourBookingUC "github.com/m04kA/tourism-booking-service/internal/usecase/create_tour_booking"
	decideAccommodationBookingUC "github.com/m04kA/tourism-booking-service/internal/usecase/decide_accommodation_booking"
	populateFriendshipsUC "github.com/m04kA/tourism-booking-service/internal/usecase/populate_friendships"
	"github.com/m04kA/tourism-booking-service/pkg/dbmetrics"
	"github.com/m04kA/tourism-booking-service/pkg/logger"
	"github.com/m04kA/tourism-booking-service/pkg/metrics"
	"github.com/m04kA/tourism-booking-service/pkg/queue"
	"github.com/m04kA/tourism-booking-service/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath())
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting tourism-booking-service...")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Без метрик обертка работает как обычный *sql.DB
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB, cfg.Booking.SerializationRetries)

	// Репозитории
	guests := guestRepo.NewRepository(wrappedDB)
	schedules := scheduleRepo.NewRepository(wrappedDB)
	rooms := roomRepo.NewRepository(wrappedDB)
	tourBookings := tourBookingRepo.NewRepository(wrappedDB)
	accommodationBookings := accommodationBookingRepo.NewRepository(wrappedDB)
	companionRequests := companionRequestRepo.NewRepository(wrappedDB)
	friendshipEdges := friendshipRepo.NewRepository(wrappedDB)
	friendGroups := friendGroupRepo.NewRepository(wrappedDB)

	// Словарь текстов уведомлений
	catalog, err := translations.Load(cfg.Translations.File, cfg.Translations.DefaultLanguage)
	if err != nil {
		log.Fatal("Failed to load translations: %v", err)
	}
	log.Info("Translations loaded from %s (languages=%v)", cfg.Translations.File, catalog.Languages())

	// Канал отправки уведомлений: очередь в Redis или только лог
	sender, closeSender := newSender(cfg, log)
	defer closeSender()
	notificationSvc := notificationsService.NewService(sender, catalog, log)

	// Сервисы
	friendshipSvc := friendshipsService.NewService(friendshipEdges, txMgr, log)
	companionSvc := companionsService.NewService(guests, companionRequests, friendshipSvc, notificationSvc, txMgr, log)
	bookingSvc := bookingsService.NewService(tourBookings, accommodationBookings, log)

	// Use cases
	createTourBookingUseCase := createTourBookingUC.NewUseCase(
		guests, schedules, tourBookings, notificationSvc, metricsCollector, txMgr, log,
	)
	createAccommodationBookingUseCase := createAccommodationBookingUC.NewUseCase(
		guests, rooms, accommodationBookings, notificationSvc, metricsCollector, log,
	)
	decideAccommodationBookingUseCase := decideAccommodationBookingUC.NewUseCase(
		accommodationBookings, rooms, guests, notificationSvc, metricsCollector, txMgr, log,
	)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		tourBookings, accommodationBookings, schedules, rooms, guests, notificationSvc, metricsCollector, txMgr, log,
	)
	populateFriendshipsUseCase := populateFriendshipsUC.NewUseCase(
		guests, companionRequests, friendGroups, friendshipSvc, log,
	)

	// Handlers
	createTourBooking := createTourBookingHandler.NewHandler(createTourBookingUseCase, log)
	createAccommodationBooking := createAccommodationBookingHandler.NewHandler(createAccommodationBookingUseCase, log)
	decideAccommodationBooking := decideAccommodationBookingHandler.NewHandler(decideAccommodationBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getGuestBookings := getGuestBookingsHandler.NewHandler(bookingSvc, log)
	companionRequestsH := companionRequestsHandler.NewHandler(companionSvc, log)
	companionsH := companionsHandler.NewHandler(companionSvc, log)
	friendshipsH := friendshipsHandler.NewHandler(friendshipSvc, log)
	rebuildFriendships := rebuildFriendshipsHandler.NewHandler(populateFriendshipsUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Logging(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth(newIdentity(cfg), log))
	log.Info("Identity mode: %s", cfg.Auth.Mode)

	// --- Бронирования туров ---
	api.HandleFunc("/tour-bookings", createTourBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/tour-bookings/{bookingId}", getBooking.HandleTour).Methods(http.MethodGet)
	api.HandleFunc("/tour-bookings/{bookingId}/cancel", cancelBooking.HandleTour).Methods(http.MethodPatch)

	// --- Бронирования проживания ---
	api.HandleFunc("/accommodation-bookings", createAccommodationBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/accommodation-bookings/{bookingId}", getBooking.HandleAccommodation).Methods(http.MethodGet)
	api.HandleFunc("/accommodation-bookings/{bookingId}/cancel", cancelBooking.HandleAccommodation).Methods(http.MethodPatch)
	api.HandleFunc("/accommodation-bookings/{bookingId}/decision", decideAccommodationBooking.Handle).Methods(http.MethodPatch)

	// История бронирований гостя
	api.HandleFunc("/guests/{guestId}/bookings", getGuestBookings.Handle).Methods(http.MethodGet)

	// --- Заявки в компаньоны ---
	api.HandleFunc("/companion-requests", companionRequestsH.Send).Methods(http.MethodPost)
	api.HandleFunc("/companion-requests", companionRequestsH.List).Methods(http.MethodGet)
	api.HandleFunc("/companion-requests/count", companionRequestsH.Count).Methods(http.MethodGet)
	api.HandleFunc("/companion-requests/{requestId}/accept", companionRequestsH.Accept).Methods(http.MethodPost)
	api.HandleFunc("/companion-requests/{requestId}/decline", companionRequestsH.Decline).Methods(http.MethodPost)

	// --- Компаньоны ---
	api.HandleFunc("/companions", companionsH.List).Methods(http.MethodGet)
	api.HandleFunc("/companions", companionsH.Add).Methods(http.MethodPost)
	api.HandleFunc("/companions/{companionId}", companionsH.Update).Methods(http.MethodPatch)
	api.HandleFunc("/companions/{companionId}", companionsH.Delete).Methods(http.MethodDelete)

	// --- Дружба ---
	api.HandleFunc("/friendships", friendshipsH.Make).Methods(http.MethodPost)
	api.HandleFunc("/friendships", friendshipsH.List).Methods(http.MethodGet)
	api.HandleFunc("/friendships/{friendId}", friendshipsH.End).Methods(http.MethodDelete)
	api.HandleFunc("/admin/friendships/rebuild", rebuildFriendships.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

func configPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return "config.toml"
}

func newIdentity(cfg *config.Config) middleware.IdentityFunc {
	if cfg.Auth.Mode == config.AuthModeSession {
		manager := session.NewManager(cfg.Auth.SessionSecret, time.Duration(cfg.Auth.SessionTTL)*time.Hour)
		return middleware.SessionIdentity(manager, cfg.Auth.CookieName)
	}
	return middleware.HeaderIdentity()
}

func newSender(cfg *config.Config, log *logger.Logger) (notificationsService.Sender, func()) {
	if !cfg.Notifications.Enabled || !cfg.Redis.Enabled {
		log.Info("Notification queue disabled, messages are only logged")
		return notifier.NewLogSender(log), func() {}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	log.Info("Notifications are queued to Redis at %s", cfg.Redis.Addr)

	return notifier.NewQueueSender(queue.NewQueue(rdb, log), log), func() { _ = rdb.Close() }
}
