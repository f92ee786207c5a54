package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"github.com/roomierooms/backend/internal/app"
	"github.com/roomierooms/backend/internal/config"
	"github.com/roomierooms/backend/internal/notify"
	"github.com/roomierooms/backend/internal/obs"
	"github.com/roomierooms/backend/internal/repository"
	"github.com/roomierooms/backend/internal/service"
	httpapi "github.com/roomierooms/backend/internal/transport/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.OTLPEndpoint != "" {
		shutdown, err := obs.InitTracer(ctx, "roomie-backend", cfg.OTLPEndpoint, cfg.Environment)
		if err != nil {
			logger.Fatal("Failed to init tracer", zap.Error(err))
		}
		defer shutdown(context.Background())
	}

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to create connection pool", zap.Error(err))
	}
	defer pool.Close()

	// База может подниматься дольше приложения — пингуем с бэкоффом
	backoff := retry.WithMaxRetries(5, retry.NewExponential(time.Second))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := pool.Ping(ctx); err != nil {
			logger.Warn("Database not ready, retrying", zap.Error(err))
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	migrator, err := app.NewMigrator(pool, cfg.MigrationsDir)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	migrator.Close()

	roomRepo := repository.NewRoomRepository(pool)
	timeslotRepo := repository.NewTimeslotRepository(pool)
	reservationRepo := repository.NewReservationRepository(pool)
	blackoutRepo := repository.NewBlackoutRepository(pool)
	userRepo := repository.NewUserRepository(pool)

	var notifier notify.Notifier = notify.Nop{}
	if cfg.NotificationsEnabled() {
		tg, err := notify.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID, logger)
		if err != nil {
			logger.Fatal("Failed to create telegram notifier", zap.Error(err))
		}
		notifier = tg
		logger.Info("Staff notifications enabled")
	}

	userService := service.NewUserService(userRepo, logger)
	bookingService := service.NewBookingService(roomRepo, timeslotRepo, reservationRepo, blackoutRepo, notifier, logger)
	availabilityService := service.NewAvailabilityService(timeslotRepo, reservationRepo, blackoutRepo)
	blackoutService := service.NewBlackoutService(roomRepo, blackoutRepo, notifier, logger)
	scheduleService := service.NewScheduleService(roomRepo, timeslotRepo, reservationRepo, blackoutRepo)

	scheduler := app.NewScheduler(blackoutRepo, scheduleService, notifier, logger)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	router := httpapi.NewRouter(httpapi.Deps{
		Config:       cfg,
		Logger:       logger,
		RoomRepo:     roomRepo,
		TimeslotRepo: timeslotRepo,
		Users:        userService,
		Booking:      bookingService,
		Availability: availabilityService,
		Blackouts:    blackoutService,
		Schedule:     scheduleService,
	})

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	go func() {
		logger.Info("Starting HTTP server",
			zap.String("addr", cfg.HTTPAddr),
			zap.String("environment", cfg.Environment),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
}
