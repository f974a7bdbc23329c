package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"geoattend/internal/domain"
	"geoattend/internal/service"
	mock_service "geoattend/internal/service/mocks"
	"geoattend/pkg/e"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func f64ptr(v float64) *float64 { return &v }

// latForMeters converts a ground distance along a meridian into degrees
// of latitude, so offices can be placed an exact number of meters away.
func latForMeters(m float64) float64 {
	return m * 180 / (math.Pi * 6371000)
}

func officeAt(managerID uuid.UUID, name string, lat, lng float64, requiredM *float64) domain.Office {
	return domain.Office{
		ID:                uuid.New(),
		ManagerID:         managerID,
		Name:              name,
		Lat:               lat,
		Lng:               lng,
		RequiredDistanceM: requiredM,
	}
}

func newAttendanceFixture(t *testing.T) (
	*mock_service.MockOfficeRepository,
	*mock_service.MockOfficeCacheService,
	*mock_service.MockAttendanceRepository,
	*mock_service.MockNotifyQueue,
	service.AttendanceService,
) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	offices := mock_service.NewMockOfficeRepository(ctrl)
	cache := mock_service.NewMockOfficeCacheService(ctrl)
	records := mock_service.NewMockAttendanceRepository(ctrl)
	queue := mock_service.NewMockNotifyQueue(ctrl)

	svc := service.NewAttendanceService(offices, cache, records, queue, discardLogger(), 1500, 5*time.Minute)
	return offices, cache, records, queue, svc
}

func TestAttendanceService_Evaluate_CacheHit(t *testing.T) {
	t.Parallel()

	_, cache, _, _, svc := newAttendanceFixture(t)
	managerID := uuid.New()
	office := officeAt(managerID, "HQ", 0, 0, nil)

	cache.EXPECT().
		GetByManager(gomock.Any(), managerID).
		Return([]domain.Office{office}, true, nil).
		Times(1)

	resp, err := svc.Evaluate(context.Background(), managerID, domain.EvaluateRequest{
		Lat: latForMeters(500),
		Lng: 0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.WithinRange {
		t.Fatalf("expected within range at ~500m with default 1000m, got distance %.2f", resp.DistanceM)
	}
	if resp.Office == nil || resp.Office.ID != office.ID {
		t.Fatalf("expected nearest office %s, got %+v", office.ID, resp.Office)
	}
	if resp.RequiredM != 1000 {
		t.Fatalf("expected default required distance 1000, got %.2f", resp.RequiredM)
	}
	if resp.OverrideRequired {
		t.Fatalf("override must not be required for an in-range fix")
	}
}

func TestAttendanceService_Evaluate_CacheMissFallsBackToRepo(t *testing.T) {
	t.Parallel()

	offices, cache, _, _, svc := newAttendanceFixture(t)
	managerID := uuid.New()
	office := officeAt(managerID, "HQ", 0, 0, nil)

	cache.EXPECT().
		GetByManager(gomock.Any(), managerID).
		Return(nil, false, nil).
		Times(1)
	offices.EXPECT().
		ListByManager(gomock.Any(), managerID).
		Return([]domain.Office{office}, nil).
		Times(1)
	cache.EXPECT().
		SetByManager(gomock.Any(), managerID, []domain.Office{office}, 5*time.Minute).
		Return(nil).
		Times(1)

	resp, err := svc.Evaluate(context.Background(), managerID, domain.EvaluateRequest{Lat: 0, Lng: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.DistanceM != 0 {
		t.Fatalf("expected zero distance at the office itself, got %.4f", resp.DistanceM)
	}
}

func TestAttendanceService_Evaluate_CacheErrorFallsBackToRepo(t *testing.T) {
	t.Parallel()

	offices, cache, _, _, svc := newAttendanceFixture(t)
	managerID := uuid.New()
	office := officeAt(managerID, "HQ", 0, 0, nil)

	cache.EXPECT().
		GetByManager(gomock.Any(), managerID).
		Return(nil, false, errors.New("redis down")).
		Times(1)
	offices.EXPECT().
		ListByManager(gomock.Any(), managerID).
		Return([]domain.Office{office}, nil).
		Times(1)
	cache.EXPECT().
		SetByManager(gomock.Any(), managerID, gomock.Any(), gomock.Any()).
		Return(errors.New("redis still down")).
		Times(1)

	if _, err := svc.Evaluate(context.Background(), managerID, domain.EvaluateRequest{Lat: 0, Lng: 0}); err != nil {
		t.Fatalf("cache failures must not surface, got: %v", err)
	}
}

func TestAttendanceService_Evaluate_NoOffices(t *testing.T) {
	t.Parallel()

	_, cache, _, _, svc := newAttendanceFixture(t)
	managerID := uuid.New()

	cache.EXPECT().
		GetByManager(gomock.Any(), managerID).
		Return([]domain.Office{}, true, nil).
		Times(1)

	_, err := svc.Evaluate(context.Background(), managerID, domain.EvaluateRequest{Lat: 0, Lng: 0})
	if !errors.Is(err, e.ErrNoOffices) {
		t.Fatalf("expected ErrNoOffices, got: %v", err)
	}
}

func TestAttendanceService_Evaluate_InvalidCoordinates(t *testing.T) {
	t.Parallel()

	_, _, _, _, svc := newAttendanceFixture(t)

	_, err := svc.Evaluate(context.Background(), uuid.New(), domain.EvaluateRequest{Lat: 91, Lng: 0})
	if !errors.Is(err, e.ErrInvalidCoordinates) {
		t.Fatalf("expected ErrInvalidCoordinates, got: %v", err)
	}
}

func TestAttendanceService_Mark_WithinRange(t *testing.T) {
	t.Parallel()

	_, cache, records, queue, svc := newAttendanceFixture(t)
	managerID := uuid.New()
	userID := uuid.New()
	office := officeAt(managerID, "HQ", 0, 0, nil)

	cache.EXPECT().
		GetByManager(gomock.Any(), managerID).
		Return([]domain.Office{office}, true, nil).
		Times(1)
	records.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *domain.AttendanceRecord) error {
			if rec.UserID != userID {
				t.Fatalf("record user = %s, want %s", rec.UserID, userID)
			}
			if rec.OfficeID != office.ID {
				t.Fatalf("record office = %s, want %s", rec.OfficeID, office.ID)
			}
			if !rec.WithinRange || rec.Overridden {
				t.Fatalf("in-range mark must not be overridden: %+v", rec)
			}
			return nil
		}).
		Times(1)
	queue.EXPECT().
		Enqueue(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	resp, err := svc.Mark(context.Background(), userID, managerID, domain.MarkAttendanceRequest{
		Lat: latForMeters(200),
		Lng: 0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.OfficeName != "HQ" {
		t.Fatalf("office name = %q, want HQ", resp.OfficeName)
	}
	if resp.Overridden {
		t.Fatalf("in-range mark reported as overridden")
	}
}

func TestAttendanceService_Mark_OutOfRangeWithoutOverride(t *testing.T) {
	t.Parallel()

	_, cache, _, _, svc := newAttendanceFixture(t)
	managerID := uuid.New()
	office := officeAt(managerID, "HQ", 0, 0, nil)

	cache.EXPECT().
		GetByManager(gomock.Any(), managerID).
		Return([]domain.Office{office}, true, nil).
		Times(1)

	_, err := svc.Mark(context.Background(), uuid.New(), managerID, domain.MarkAttendanceRequest{
		Lat: latForMeters(5000),
		Lng: 0,
	})
	if !errors.Is(err, e.ErrOverrideRequired) {
		t.Fatalf("expected ErrOverrideRequired, got: %v", err)
	}
}

func TestAttendanceService_Mark_OutOfRangeWithOverride(t *testing.T) {
	t.Parallel()

	_, cache, records, queue, svc := newAttendanceFixture(t)
	managerID := uuid.New()
	office := officeAt(managerID, "HQ", 0, 0, nil)

	cache.EXPECT().
		GetByManager(gomock.Any(), managerID).
		Return([]domain.Office{office}, true, nil).
		Times(1)
	records.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *domain.AttendanceRecord) error {
			if rec.WithinRange {
				t.Fatalf("5km fix reported as within range")
			}
			if !rec.Overridden {
				t.Fatalf("overridden out-of-range mark must be flagged")
			}
			return nil
		}).
		Times(1)
	queue.EXPECT().
		Enqueue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p domain.NotificationPayload) error {
			if !p.Overridden {
				t.Fatalf("notification must carry the override flag")
			}
			return nil
		}).
		Times(1)

	resp, err := svc.Mark(context.Background(), uuid.New(), managerID, domain.MarkAttendanceRequest{
		Lat:      latForMeters(5000),
		Lng:      0,
		Override: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Overridden {
		t.Fatalf("response must report the override")
	}
}

func TestAttendanceService_Mark_LowConfidenceWithoutConfirmation(t *testing.T) {
	t.Parallel()

	_, cache, _, _, svc := newAttendanceFixture(t)
	managerID := uuid.New()
	office := officeAt(managerID, "HQ", 0, 0, nil)

	cache.EXPECT().
		GetByManager(gomock.Any(), managerID).
		Return([]domain.Office{office}, true, nil).
		Times(1)

	_, err := svc.Mark(context.Background(), uuid.New(), managerID, domain.MarkAttendanceRequest{
		Lat:       latForMeters(200),
		Lng:       0,
		AccuracyM: f64ptr(2000),
	})
	if !errors.Is(err, e.ErrConfirmationRequired) {
		t.Fatalf("expected ErrConfirmationRequired, got: %v", err)
	}
}

func TestAttendanceService_Mark_LowConfidenceConfirmed(t *testing.T) {
	t.Parallel()

	_, cache, records, queue, svc := newAttendanceFixture(t)
	managerID := uuid.New()
	office := officeAt(managerID, "HQ", 0, 0, nil)

	cache.EXPECT().
		GetByManager(gomock.Any(), managerID).
		Return([]domain.Office{office}, true, nil).
		Times(1)
	records.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	resp, err := svc.Mark(context.Background(), uuid.New(), managerID, domain.MarkAttendanceRequest{
		Lat:             latForMeters(200),
		Lng:             0,
		AccuracyM:       f64ptr(2000),
		ConfirmAccuracy: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.WithinRange {
		t.Fatalf("confirmed low-confidence in-range mark should be within range")
	}
}

func TestAttendanceService_Mark_SaveError(t *testing.T) {
	t.Parallel()

	_, cache, records, _, svc := newAttendanceFixture(t)
	managerID := uuid.New()
	office := officeAt(managerID, "HQ", 0, 0, nil)
	saveErr := errors.New("insert failed")

	cache.EXPECT().
		GetByManager(gomock.Any(), managerID).
		Return([]domain.Office{office}, true, nil).
		Times(1)
	records.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(saveErr).
		Times(1)

	_, err := svc.Mark(context.Background(), uuid.New(), managerID, domain.MarkAttendanceRequest{Lat: 0, Lng: 0})
	if !errors.Is(err, saveErr) {
		t.Fatalf("expected save error to surface, got: %v", err)
	}
}

func TestAttendanceService_Mark_EnqueueFailureDoesNotFailMark(t *testing.T) {
	t.Parallel()

	_, cache, records, queue, svc := newAttendanceFixture(t)
	managerID := uuid.New()
	office := officeAt(managerID, "HQ", 0, 0, nil)

	cache.EXPECT().
		GetByManager(gomock.Any(), managerID).
		Return([]domain.Office{office}, true, nil).
		Times(1)
	records.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	queue.EXPECT().
		Enqueue(gomock.Any(), gomock.Any()).
		Return(errors.New("queue full")).
		Times(1)

	if _, err := svc.Mark(context.Background(), uuid.New(), managerID, domain.MarkAttendanceRequest{Lat: 0, Lng: 0}); err != nil {
		t.Fatalf("a lost notification must not fail the mark, got: %v", err)
	}
}

func TestAttendanceService_Mark_NearestOfficeWins(t *testing.T) {
	t.Parallel()

	_, cache, records, queue, svc := newAttendanceFixture(t)
	managerID := uuid.New()
	far := officeAt(managerID, "far", latForMeters(5000), 0, nil)
	near := officeAt(managerID, "near", latForMeters(300), 0, nil)

	cache.EXPECT().
		GetByManager(gomock.Any(), managerID).
		Return([]domain.Office{far, near}, true, nil).
		Times(1)
	records.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	resp, err := svc.Mark(context.Background(), uuid.New(), managerID, domain.MarkAttendanceRequest{Lat: 0, Lng: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.OfficeID != near.ID {
		t.Fatalf("resolved office = %s, want nearest %s", resp.OfficeID, near.ID)
	}
}

func TestAttendanceService_History(t *testing.T) {
	t.Parallel()

	_, _, records, _, svc := newAttendanceFixture(t)
	userID := uuid.New()
	want := []*domain.AttendanceRecord{{ID: uuid.New(), UserID: userID}}

	records.EXPECT().
		ListByUser(gomock.Any(), userID, 1, 20).
		Return(want, int64(1), nil).
		Times(1)

	got, total, err := svc.History(context.Background(), userID, 1, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 || len(got) != 1 || got[0].ID != want[0].ID {
		t.Fatalf("unexpected history result: total=%d records=%+v", total, got)
	}
}
