package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roombook/internal/api"
	"roombook/internal/auth"
	"roombook/internal/config"
	"roombook/internal/database"
	"roombook/internal/domain"
	"roombook/internal/logging"
	"roombook/internal/metrics"
	"roombook/internal/repository"
	"roombook/internal/service"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

const cacheTTL = 10 * time.Minute

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	cfg, logger, closer, err := loadConfigAndLogger()
	if err != nil {
		return err
	}
	if closer != nil {
		defer (func(c io.Closer) { _ = c.Close() })(closer)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := initDatabase(ctx, cfg, &logger)
	if err != nil {
		return err
	}
	defer db.Close()

	cache := initCache(ctx, cfg, &logger)

	issuer := auth.NewTokenIssuer(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)
	userService := service.NewUserService(db, issuer, cfg.Auth.BcryptCost, &logger)
	roomService := service.NewRoomService(db, cache, &logger)
	bookingService := service.NewBookingService(db, &logger)

	if cfg.Monitoring.PrometheusEnabled {
		startMetrics(cfg, &logger)
	}

	server := api.NewServer(cfg, userService, roomService, bookingService, issuer, cache, &logger)
	go func() {
		if err := server.Start(); err != nil {
			logger.Error().Err(err).Msg("API server error")
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Shutdown error")
		return err
	}

	logger.Info().Msg("Shutdown complete.")
	return nil
}

func loadConfigAndLogger() (*config.Config, zerolog.Logger, io.Closer, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, zerolog.Logger{}, nil, err
	}

	baseLogger, closer, err := logging.New(cfg.Logging, cfg.App)
	if err != nil {
		return nil, zerolog.Logger{}, nil, err
	}
	logger := baseLogger.With().Str("component", "api-main").Logger()

	return cfg, logger, closer, nil
}

func initDatabase(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (*database.DB, error) {
	db, err := database.New(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error().Err(err).Msg("Database initialization failed")
		return nil, err
	}

	if err := db.SeedRooms(ctx, cfg.Rooms); err != nil {
		logger.Error().Err(err).Msg("Room catalog sync failed")
		return nil, err
	}
	return db, nil
}

// initCache wires the Redis cache behind an in-process fallback. With no
// Redis configured the service runs on the memory cache alone.
func initCache(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) domain.Cache {
	fallback := repository.NewMemoryCache(cacheTTL)
	if cfg.Redis.Address == "" {
		return fallback
	}

	redisClient := repository.NewRedisClient(cfg.Redis)
	if err := repository.Ping(ctx, redisClient); err != nil {
		logger.Warn().Err(err).Msg("Redis unavailable, starting on memory fallback")
	}

	primary := repository.NewRedisCache(redisClient, cacheTTL)
	return repository.NewFailoverCache(primary, fallback, logger)
}

func startMetrics(cfg *config.Config, logger *zerolog.Logger) {
	metrics.Register()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	addr := fmt.Sprintf(":%d", cfg.Monitoring.PrometheusPort)
	go func() {
		logger.Info().Str("addr", addr).Msg("Metrics endpoint listening")
		if err := http.ListenAndServe(addr, mux); err != nil {
			logger.Error().Err(err).Msg("Metrics server error")
		}
	}()
}
