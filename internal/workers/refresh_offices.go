package workers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"geoattend/internal/domain"

	"github.com/google/uuid"
)

type OfficeSource interface {
	ListByManager(ctx context.Context, managerID uuid.UUID) ([]domain.Office, error)
	ListManagerIDs(ctx context.Context) ([]uuid.UUID, error)
}

type OfficeCacheService interface {
	SetByManager(ctx context.Context, managerID uuid.UUID, offices []domain.Office, ttl time.Duration) error
}

// OfficeCacheRefresher keeps the per-manager office cache warm so the
// attendance hot path rarely sees a miss. A ticker produces one job per
// manager; a small worker pool performs the reloads.
type OfficeCacheRefresher struct {
	offices  OfficeSource
	cache    OfficeCacheService
	logger   *slog.Logger
	interval time.Duration
	ttl      time.Duration
	poolSize int
	jobs     chan uuid.UUID
}

func NewOfficeCacheRefresher(
	offices OfficeSource,
	cache OfficeCacheService,
	logger *slog.Logger,
	interval, ttl time.Duration,
	poolSize int,
) *OfficeCacheRefresher {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if poolSize <= 0 {
		poolSize = 4
	}
	return &OfficeCacheRefresher{
		offices:  offices,
		cache:    cache,
		logger:   logger,
		interval: interval,
		ttl:      ttl,
		poolSize: poolSize,
		jobs:     make(chan uuid.UUID, 100),
	}
}

func (w *OfficeCacheRefresher) Run(ctx context.Context) {
	var wg sync.WaitGroup

	for i := 0; i < w.poolSize; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.worker(ctx)
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		w.producer(ctx)
	}()

	wg.Wait()
	w.logger.Info("office cache refresher stopped")
}

func (w *OfficeCacheRefresher) producer(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			ids, err := w.offices.ListManagerIDs(ctx)
			if err != nil {
				w.logger.Error("refresh: list manager ids failed", slog.Any("error", err))
				continue
			}
			for _, id := range ids {
				select {
				case w.jobs <- id:
				case <-ctx.Done():
					return
				default:
					// Queue full means the pool is behind; the next tick
					// will pick this manager up again.
					w.logger.Warn("refresh queue full, skipping manager",
						slog.String("manager_id", id.String()))
				}
			}
		}
	}
}

func (w *OfficeCacheRefresher) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case managerID := <-w.jobs:
			w.refresh(ctx, managerID)
		}
	}
}

func (w *OfficeCacheRefresher) refresh(ctx context.Context, managerID uuid.UUID) {
	offices, err := w.offices.ListByManager(ctx, managerID)
	if err != nil {
		w.logger.Error("refresh: list offices failed",
			slog.String("manager_id", managerID.String()),
			slog.Any("error", err),
		)
		return
	}
	if err := w.cache.SetByManager(ctx, managerID, offices, w.ttl); err != nil {
		w.logger.Error("refresh: cache set failed",
			slog.String("manager_id", managerID.String()),
			slog.Any("error", err),
		)
	}
}
