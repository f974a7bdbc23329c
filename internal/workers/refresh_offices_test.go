package workers_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"geoattend/internal/domain"
	"geoattend/internal/workers"
)

type fakeOfficeSource struct {
	mu       sync.Mutex
	managers []uuid.UUID
	listErr  error
	byMgr    map[uuid.UUID][]domain.Office
}

func (f *fakeOfficeSource) ListManagerIDs(context.Context) ([]uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.managers, nil
}

func (f *fakeOfficeSource) ListByManager(_ context.Context, managerID uuid.UUID) ([]domain.Office, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byMgr[managerID], nil
}

type fakeCache struct {
	mu   sync.Mutex
	sets map[uuid.UUID]int
}

func (f *fakeCache) SetByManager(_ context.Context, managerID uuid.UUID, _ []domain.Office, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sets == nil {
		f.sets = make(map[uuid.UUID]int)
	}
	f.sets[managerID]++
	return nil
}

func (f *fakeCache) setCount(managerID uuid.UUID) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sets[managerID]
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOfficeCacheRefresher_WarmsEveryManager(t *testing.T) {
	t.Parallel()

	m1, m2 := uuid.New(), uuid.New()
	source := &fakeOfficeSource{
		managers: []uuid.UUID{m1, m2},
		byMgr: map[uuid.UUID][]domain.Office{
			m1: {{ID: uuid.New(), ManagerID: m1}},
			m2: {{ID: uuid.New(), ManagerID: m2}},
		},
	}
	cache := &fakeCache{}

	w := workers.NewOfficeCacheRefresher(source, cache, discardLogger(), 10*time.Millisecond, time.Minute, 2)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cache.setCount(m1) > 0 && cache.setCount(m2) > 0 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("refresher did not stop after cancel")
	}

	if cache.setCount(m1) == 0 || cache.setCount(m2) == 0 {
		t.Fatalf("cache not warmed for all managers: %v", cache.sets)
	}
}

func TestOfficeCacheRefresher_SurvivesListError(t *testing.T) {
	t.Parallel()

	source := &fakeOfficeSource{listErr: errors.New("db down")}
	cache := &fakeCache{}

	w := workers.NewOfficeCacheRefresher(source, cache, discardLogger(), 10*time.Millisecond, time.Minute, 1)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("refresher did not stop")
	}
}
