package service

import (
	"context"
	"log/slog"
	"time"

	"geoattend/internal/domain"
	"geoattend/internal/geofence"
	"geoattend/pkg/e"

	"github.com/google/uuid"
)

type AttendanceRepository interface {
	Save(ctx context.Context, rec *domain.AttendanceRecord) error
	ListByUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]*domain.AttendanceRecord, int64, error)
}

type NotifyQueue interface {
	Enqueue(ctx context.Context, payload domain.NotificationPayload) error
}

type attendanceService struct {
	offices      OfficeRepository
	cache        OfficeCacheService
	records      AttendanceRepository
	queue        NotifyQueue
	logger       *slog.Logger
	maxAccuracyM float64
	cacheTTL     time.Duration
}

func NewAttendanceService(
	offices OfficeRepository,
	cache OfficeCacheService,
	records AttendanceRepository,
	queue NotifyQueue,
	logger *slog.Logger,
	maxAccuracyM float64,
	cacheTTL time.Duration,
) AttendanceService {
	if maxAccuracyM <= 0 {
		maxAccuracyM = geofence.MaxAccuracyM
	}
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &attendanceService{
		offices:      offices,
		cache:        cache,
		records:      records,
		queue:        queue,
		logger:       logger,
		maxAccuracyM: maxAccuracyM,
		cacheTTL:     cacheTTL,
	}
}

func (s *attendanceService) Evaluate(ctx context.Context, managerID uuid.UUID, req domain.EvaluateRequest) (domain.EvaluateResponse, error) {
	dec, err := s.evaluate(ctx, managerID, domain.Coordinate{Lat: req.Lat, Lng: req.Lng, AccuracyM: req.AccuracyM})
	if err != nil {
		return domain.EvaluateResponse{}, err
	}

	return toEvaluateResponse(dec), nil
}

func (s *attendanceService) Mark(ctx context.Context, userID, managerID uuid.UUID, req domain.MarkAttendanceRequest) (domain.MarkAttendanceResponse, error) {
	l := s.logger.With(
		slog.String("user_id", userID.String()),
		slog.String("manager_id", managerID.String()),
	)

	dec, err := s.evaluate(ctx, managerID, domain.Coordinate{Lat: req.Lat, Lng: req.Lng, AccuracyM: req.AccuracyM})
	if err != nil {
		return domain.MarkAttendanceResponse{}, err
	}

	// The evaluator is advisory; the hard gates live here. Each refusal
	// names the explicit step the caller still owes.
	if dec.LowConfidence && !req.ConfirmAccuracy {
		l.Warn("mark refused: low confidence fix", slog.Float64("accuracy_m", derefOrZero(req.AccuracyM)))
		return domain.MarkAttendanceResponse{}, e.ErrConfirmationRequired
	}
	if dec.OverrideRequired() && !req.Override {
		l.Info("mark refused: out of range without override",
			slog.Float64("distance_m", dec.DistanceM),
			slog.Float64("required_m", dec.RequiredM),
		)
		return domain.MarkAttendanceResponse{}, e.ErrOverrideRequired
	}

	rec := &domain.AttendanceRecord{
		ID:          uuid.New(),
		UserID:      userID,
		OfficeID:    dec.Office.ID,
		Lat:         req.Lat,
		Lng:         req.Lng,
		AccuracyM:   req.AccuracyM,
		DistanceM:   dec.DistanceM,
		WithinRange: dec.WithinRange,
		Overridden:  !dec.WithinRange,
		MarkedAt:    time.Now().UTC(),
	}
	if err := s.records.Save(ctx, rec); err != nil {
		return domain.MarkAttendanceResponse{}, err
	}

	payload := domain.NotificationPayload{
		UserID:      rec.UserID,
		OfficeID:    rec.OfficeID,
		OfficeName:  dec.Office.Name,
		DistanceM:   rec.DistanceM,
		WithinRange: rec.WithinRange,
		Overridden:  rec.Overridden,
		MarkedAt:    rec.MarkedAt,
	}
	if err := s.queue.Enqueue(ctx, payload); err != nil {
		// The mark is already recorded; losing one notification is
		// acceptable, losing the mark is not.
		l.Error("enqueue notification failed", slog.Any("error", err))
	}

	l.Info("attendance marked",
		slog.String("office_id", rec.OfficeID.String()),
		slog.Float64("distance_m", rec.DistanceM),
		slog.Bool("within_range", rec.WithinRange),
		slog.Bool("overridden", rec.Overridden),
	)

	return domain.MarkAttendanceResponse{
		RecordID:    rec.ID,
		OfficeID:    rec.OfficeID,
		OfficeName:  dec.Office.Name,
		DistanceM:   rec.DistanceM,
		WithinRange: rec.WithinRange,
		Overridden:  rec.Overridden,
		MarkedAt:    rec.MarkedAt,
	}, nil
}

func (s *attendanceService) History(ctx context.Context, userID uuid.UUID, page, limit int) ([]*domain.AttendanceRecord, int64, error) {
	return s.records.ListByUser(ctx, userID, page, limit)
}

func (s *attendanceService) evaluate(ctx context.Context, managerID uuid.UUID, coord domain.Coordinate) (geofence.Decision, error) {
	if coord.Lat < -90 || coord.Lat > 90 || coord.Lng < -180 || coord.Lng > 180 {
		return geofence.Decision{}, e.ErrInvalidCoordinates
	}

	offices, err := s.loadOffices(ctx, managerID)
	if err != nil {
		return geofence.Decision{}, err
	}

	dec := geofence.Evaluate(coord, offices, s.maxAccuracyM)
	if dec.NoOffices() {
		return geofence.Decision{}, e.ErrNoOffices
	}
	return dec, nil
}

// loadOffices serves the cached set when present and falls back to
// postgres, re-populating the cache best effort.
func (s *attendanceService) loadOffices(ctx context.Context, managerID uuid.UUID) ([]domain.Office, error) {
	offices, found, err := s.cache.GetByManager(ctx, managerID)
	if err != nil {
		s.logger.Warn("office cache get failed, falling back to db",
			slog.String("manager_id", managerID.String()),
			slog.Any("error", err),
		)
	} else if found {
		return offices, nil
	}

	offices, err = s.offices.ListByManager(ctx, managerID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetByManager(ctx, managerID, offices, s.cacheTTL); err != nil {
		s.logger.Warn("office cache set failed",
			slog.String("manager_id", managerID.String()),
			slog.Any("error", err),
		)
	}

	return offices, nil
}

func toEvaluateResponse(dec geofence.Decision) domain.EvaluateResponse {
	return domain.EvaluateResponse{
		DistanceM:        dec.DistanceM,
		Office:           dec.Office,
		RequiredM:        dec.RequiredM,
		WithinRange:      dec.WithinRange,
		LowConfidence:    dec.LowConfidence,
		OverrideRequired: dec.OverrideRequired(),
	}
}

func derefOrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
