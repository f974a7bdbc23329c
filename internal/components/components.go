package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"geoattend/internal/api"
	"geoattend/internal/config"
	"geoattend/internal/redis"
	"geoattend/internal/service"
	"geoattend/internal/storage/postgres"
	"geoattend/internal/workers"
	"geoattend/pkg/logger"
)

type Components struct {
	logger       *slog.Logger
	HttpServer   *api.Server
	Postgres     *postgres.Postgres
	Redis        *redis.Redis
	NotifyQueue  *redis.NotifyQueue
	NotifySender *service.NotifySender
	Refresher    *workers.OfficeCacheRefresher
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")
	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	officeCache := redis.NewOfficeCache(redisClient)
	notifyQueue := redis.NewNotifyQueue(redisClient.Client, "notifications:queue")

	officeSvc := service.NewOfficeAdminService(storage.Office, officeCache, logger, cfg.Geofence.OfficeCacheTTL)
	attendanceSvc := service.NewAttendanceService(
		storage.Office,
		officeCache,
		storage.Attendance,
		notifyQueue,
		logger,
		cfg.Geofence.MaxAccuracyM,
		cfg.Geofence.OfficeCacheTTL,
	)
	leaveSvc := service.NewLeaveService(storage.Leave)
	statsSvc := service.NewStatsService(storage.Stat)

	srv := service.NewService(officeSvc, attendanceSvc, leaveSvc, statsSvc)

	httpServer := api.NewServer(cfg, logger, srv)
	logger.Info("Initialized server")

	notifySender := service.NewNotifySender(logger, cfg.Webhook, notifyQueue)
	refresher := workers.NewOfficeCacheRefresher(
		storage.Office,
		officeCache,
		logger,
		cfg.Geofence.RefreshInterval,
		cfg.Geofence.OfficeCacheTTL,
		cfg.Geofence.RefreshWorkers,
	)

	return &Components{
		logger:       logger,
		HttpServer:   httpServer,
		Postgres:     storage,
		Redis:        redisClient,
		NotifyQueue:  notifyQueue,
		NotifySender: notifySender,
		Refresher:    refresher,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Component shutdown started")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components shut down",
		slog.Duration("latency", time.Since(start)))
}
