package service

import (
	"context"
	"log/slog"
	"time"

	"geoattend/internal/domain"

	"github.com/google/uuid"
)

type OfficeRepository interface {
	Create(ctx context.Context, office *domain.Office) error
	List(ctx context.Context, page, limit int) ([]*domain.Office, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Office, error)
	Update(ctx context.Context, office *domain.Office) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByManager(ctx context.Context, managerID uuid.UUID) ([]domain.Office, error)
}

type OfficeCacheService interface {
	GetByManager(ctx context.Context, managerID uuid.UUID) ([]domain.Office, bool, error)
	SetByManager(ctx context.Context, managerID uuid.UUID, offices []domain.Office, ttl time.Duration) error
}

type OfficeAdmin struct {
	repo     OfficeRepository
	cache    OfficeCacheService
	logger   *slog.Logger
	cacheTTL time.Duration
}

func NewOfficeAdminService(repo OfficeRepository, cache OfficeCacheService, logger *slog.Logger, cacheTTL time.Duration) *OfficeAdmin {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &OfficeAdmin{
		repo:     repo,
		cache:    cache,
		logger:   logger,
		cacheTTL: cacheTTL,
	}
}

func (s *OfficeAdmin) Create(ctx context.Context, req domain.CreateOfficeRequest) (uuid.UUID, error) {
	managerID, err := uuid.Parse(req.ManagerID)
	if err != nil {
		return uuid.Nil, err
	}

	office := &domain.Office{
		ID:                uuid.New(),
		ManagerID:         managerID,
		Name:              req.Name,
		Lat:               req.Lat,
		Lng:               req.Lng,
		RequiredDistanceM: req.RequiredDistanceM,
	}
	if err := s.repo.Create(ctx, office); err != nil {
		return uuid.Nil, err
	}

	s.rewarmCache(ctx, managerID)
	return office.ID, nil
}

func (s *OfficeAdmin) List(ctx context.Context, page, limit int) ([]*domain.Office, int64, error) {
	return s.repo.List(ctx, page, limit)
}

func (s *OfficeAdmin) Get(ctx context.Context, id uuid.UUID) (*domain.Office, error) {
	return s.repo.Get(ctx, id)
}

func (s *OfficeAdmin) Update(ctx context.Context, id uuid.UUID, req domain.UpdateOfficeRequest) error {
	office, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if req.Name != nil {
		office.Name = *req.Name
	}
	if req.Lat != nil {
		office.Lat = *req.Lat
	}
	if req.Lng != nil {
		office.Lng = *req.Lng
	}
	if req.RequiredDistanceM != nil {
		office.RequiredDistanceM = req.RequiredDistanceM
	}
	if err := s.repo.Update(ctx, office); err != nil {
		return err
	}

	s.rewarmCache(ctx, office.ManagerID)
	return nil
}

func (s *OfficeAdmin) Delete(ctx context.Context, id uuid.UUID) error {
	office, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.rewarmCache(ctx, office.ManagerID)
	return nil
}

// rewarmCache reloads the manager's office set after a mutation so the
// attendance hot path never serves a stale fence. Failures are logged,
// never surfaced: the cache TTL bounds staleness anyway.
func (s *OfficeAdmin) rewarmCache(ctx context.Context, managerID uuid.UUID) {
	offices, err := s.repo.ListByManager(ctx, managerID)
	if err != nil {
		s.logger.Error("office cache rewarm: list failed",
			slog.String("manager_id", managerID.String()),
			slog.Any("error", err),
		)
		return
	}
	if err := s.cache.SetByManager(ctx, managerID, offices, s.cacheTTL); err != nil {
		s.logger.Error("office cache rewarm: set failed",
			slog.String("manager_id", managerID.String()),
			slog.Any("error", err),
		)
	}
}
