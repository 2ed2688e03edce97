package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Freeeeeet/skillbridge_gateway/internal/app"
	"github.com/Freeeeeet/skillbridge_gateway/internal/backend"
	"github.com/Freeeeeet/skillbridge_gateway/internal/config"
	"github.com/Freeeeeet/skillbridge_gateway/internal/controller"
	"github.com/Freeeeeet/skillbridge_gateway/internal/controller/state"
	"github.com/Freeeeeet/skillbridge_gateway/internal/service"
	"github.com/Freeeeeet/skillbridge_gateway/internal/session"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Sugar().Infow("Starting skillbridge gateway",
		"environment", cfg.Environment,
		"listen_addr", cfg.ListenAddr,
		"backend_url", cfg.BackendURL)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal("Failed to connect to redis", zap.Error(err))
	}
	defer redisClient.Close()

	backendClient := backend.NewClient(cfg.BackendURL, logger)
	sessions := session.NewStore(redisClient, cfg.SessionTTL, logger)
	flows := state.NewManager()

	availabilityService := service.NewAvailabilityService(backendClient, logger)
	bookingService := service.NewBookingService(backendClient, flows, logger)
	reviewService := service.NewReviewService(backendClient, logger)

	// Фоновая чистка брошенных booking-флоу
	scheduler := app.NewScheduler(flows, cfg.SessionTTL, logger)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	ctl := controller.NewController(
		backendClient,
		sessions,
		availabilityService,
		bookingService,
		reviewService,
		cfg.JWTSecret,
		cfg.SessionTTL,
		logger,
	)

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: ctl.Router(),
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()
	logger.Info("Gateway is ready", zap.String("addr", cfg.ListenAddr))

	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
	logger.Info("Gateway stopped")
}
