package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-SlotService/internal/api/handlers"
	blockSlotHandler "github.com/m04kA/SMC-SlotService/internal/api/handlers/block_slot"
	getSessionHandler "github.com/m04kA/SMC-SlotService/internal/api/handlers/get_session"
	getSlotGridHandler "github.com/m04kA/SMC-SlotService/internal/api/handlers/get_slot_grid"
	listAttemptsHandler "github.com/m04kA/SMC-SlotService/internal/api/handlers/list_attempts"
	selectDateHandler "github.com/m04kA/SMC-SlotService/internal/api/handlers/select_date"
	selectTimeHandler "github.com/m04kA/SMC-SlotService/internal/api/handlers/select_time"
	startSessionHandler "github.com/m04kA/SMC-SlotService/internal/api/handlers/start_session"
	submitBookingHandler "github.com/m04kA/SMC-SlotService/internal/api/handlers/submit_booking"
	"github.com/m04kA/SMC-SlotService/internal/api/middleware"
	"github.com/m04kA/SMC-SlotService/internal/config"
	"github.com/m04kA/SMC-SlotService/internal/domain"
	snapshotCache "github.com/m04kA/SMC-SlotService/internal/infra/cache/snapshot"
	attemptRepo "github.com/m04kA/SMC-SlotService/internal/infra/storage/attempt"
	sessionRepo "github.com/m04kA/SMC-SlotService/internal/infra/storage/session"
	venueServiceClient "github.com/m04kA/SMC-SlotService/internal/integrations/venueservice"
	snapshotsService "github.com/m04kA/SMC-SlotService/internal/service/snapshots"
	blockSlotUC "github.com/m04kA/SMC-SlotService/internal/usecase/block_slot"
	getSessionUC "github.com/m04kA/SMC-SlotService/internal/usecase/get_session"
	getSlotGridUC "github.com/m04kA/SMC-SlotService/internal/usecase/get_slot_grid"
	listAttemptsUC "github.com/m04kA/SMC-SlotService/internal/usecase/list_attempts"
	selectDateUC "github.com/m04kA/SMC-SlotService/internal/usecase/select_date"
	selectTimeUC "github.com/m04kA/SMC-SlotService/internal/usecase/select_time"
	startSessionUC "github.com/m04kA/SMC-SlotService/internal/usecase/start_session"
	submitBookingUC "github.com/m04kA/SMC-SlotService/internal/usecase/submit_booking"
	"github.com/m04kA/SMC-SlotService/pkg/dbmigrate"
	"github.com/m04kA/SMC-SlotService/pkg/logger"
	"github.com/m04kA/SMC-SlotService/pkg/metrics"
)

// attemptJournal журнал отправок: PostgreSQL или заглушка, если база отключена
type attemptJournal interface {
	Create(ctx context.Context, attempt *domain.BookingAttempt) (*domain.BookingAttempt, error)
	ListByVenue(ctx context.Context, venueID int64, limit int) ([]*domain.BookingAttempt, error)
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting SMC-SlotService...")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Метрики (если включены); при выключенных метриках потребители получают nil интерфейс
	var (
		metricsCollector *metrics.Metrics
		snapshotMetrics  snapshotsService.Metrics
		submitMetrics    submitBookingUC.Metrics
		blockMetrics     blockSlotUC.Metrics
	)
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		snapshotMetrics = metricsCollector
		submitMetrics = metricsCollector
		blockMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Журнал отправок в PostgreSQL (опционально)
	var journal attemptJournal = attemptRepo.NopRepository{}
	if cfg.Database.Enabled {
		db, err := openDatabase(cfg.Database)
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := dbmigrate.Up(db, cfg.Database.MigrationsPath); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		journal = attemptRepo.NewRepository(db)
		log.Info("Attempt journal enabled (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	} else {
		log.Warn("Database disabled, booking attempts will not be recorded")
	}

	// Кеш снапшотов занятых интервалов
	var (
		cache       snapshotsService.Cache
		memoryCache *snapshotCache.MemoryCache
	)
	switch cfg.Cache.Backend {
	case config.CacheBackendRedis:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatal("Failed to connect to redis at %s: %v", cfg.Redis.Addr, err)
		}
		cache = snapshotCache.NewRedisCache(redisClient)
		log.Info("Snapshot cache: redis (addr=%s, ttl=%s)", cfg.Redis.Addr, cfg.CacheTTL())
	default:
		memoryCache = snapshotCache.NewMemoryCache()
		cache = memoryCache
		log.Info("Snapshot cache: memory (ttl=%s)", cfg.CacheTTL())
	}

	// Клиент бэкенда бронирований
	defaultLocation, err := time.LoadLocation(cfg.VenueService.DefaultTimezone)
	if err != nil {
		log.Fatal("Invalid default timezone %q: %v", cfg.VenueService.DefaultTimezone, err)
	}
	venueClient := venueServiceClient.NewClient(
		cfg.VenueService.URL,
		time.Duration(cfg.VenueService.Timeout)*time.Second,
		defaultLocation,
		log,
	)
	if metricsCollector != nil {
		venueClient.WithMetrics(metricsCollector)
	}
	log.Info("VenueService client initialized (url=%s, timeout=%ds)", cfg.VenueService.URL, cfg.VenueService.Timeout)

	// Сервисы и хранилища
	snapshotSvc := snapshotsService.NewService(cache, venueClient, cfg.CacheTTL(), snapshotMetrics, log)
	sessions := sessionRepo.NewRepository(cfg.SessionTTL())

	// Инициализируем use cases
	getSlotGridUseCase := getSlotGridUC.NewUseCase(venueClient, snapshotSvc, cfg.Booking.DateOptionsDays, log)
	startSessionUseCase := startSessionUC.NewUseCase(sessions, venueClient, snapshotSvc, cfg.Booking.DateOptionsDays, log)
	getSessionUseCase := getSessionUC.NewUseCase(sessions, snapshotSvc, log)
	selectDateUseCase := selectDateUC.NewUseCase(sessions, snapshotSvc, cfg.Booking.AdvanceBookingDays, log)
	selectTimeUseCase := selectTimeUC.NewUseCase(sessions, snapshotSvc, log)
	submitBookingUseCase := submitBookingUC.NewUseCase(
		sessions,
		venueClient,
		snapshotSvc,
		journal,
		submitMetrics,
		cfg.SubmitTimeout(),
		log,
	)
	blockSlotUseCase := blockSlotUC.NewUseCase(venueClient, snapshotSvc, blockMetrics, log)
	listAttemptsUseCase := listAttemptsUC.NewUseCase(journal, log)

	// Инициализируем handlers
	getSlotGrid := getSlotGridHandler.NewHandler(getSlotGridUseCase, log)
	startSession := startSessionHandler.NewHandler(startSessionUseCase, log)
	getSession := getSessionHandler.NewHandler(getSessionUseCase, log)
	selectDate := selectDateHandler.NewHandler(selectDateUseCase, log)
	selectTime := selectTimeHandler.NewHandler(selectTimeUseCase, log)
	submitBooking := submitBookingHandler.NewHandler(submitBookingUseCase, log)
	blockSlot := blockSlotHandler.NewHandler(blockSlotUseCase, log)
	listAttempts := listAttemptsHandler.NewHandler(listAttemptsUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if metricsCollector != nil {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// API prefix; Bearer токен (если есть) передается в бэкенд как есть
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.BearerToken)

	// --- Сетка слотов площадки ---
	api.HandleFunc("/venues/{venueId}/slots", getSlotGrid.Handle).Methods(http.MethodGet)

	// --- Сессия бронирования ---
	api.HandleFunc("/sessions", startSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}/date", selectDate.Handle).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{sessionId}/time", selectTime.Handle).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{sessionId}/submit", submitBooking.Handle).Methods(http.MethodPost)

	// --- Владелец площадки ---
	api.HandleFunc("/venues/{venueId}/blocks", blockSlot.Handle).Methods(http.MethodPost)
	api.HandleFunc("/venues/{venueId}/attempts", listAttempts.Handle).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	// Удаляем неактивные сессии
	sessions.StartSweeper(ctx, cfg.SweepInterval(), func(removed int) {
		log.Info("Session sweeper removed %d expired sessions", removed)
	})

	// Вычищаем просроченные снапшоты из кеша в памяти (Redis удаляет их сам по TTL)
	if memoryCache != nil {
		g.Go(func() error {
			ticker := time.NewTicker(cfg.CacheTTL())
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
					memoryCache.Sweep()
				}
			}
		})
	}

	g.Go(func() error {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-ctx.Done()
		log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
		)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("Server terminated with error: %v", err)
		log.Close()
		os.Exit(1)
	}

	log.Info("Server stopped gracefully")
}

func openDatabase(cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, err
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}
