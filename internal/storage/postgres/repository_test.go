//go:build integration

package postgres

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"geoattend/internal/domain"
	"geoattend/pkg/e"
)

var (
	testPool *pgxpool.Pool
	tc       testcontainers.Container
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMain(m *testing.M) {
	ctx := context.Background()

	user := "postgres"
	pass := "postgres"
	db := "postgres"

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": pass,
			"POSTGRES_DB":       db,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(90 * time.Second),
	}

	var err error
	tc, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	mappedPort, _ := tc.MappedPort(ctx, "5432/tcp")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, mappedPort.Port(), db)

	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("pgxpool.New:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := testPool.Ping(ctx); err != nil {
		fmt.Println("pool.Ping:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := setupSchema(ctx, testPool); err != nil {
		fmt.Println("setupSchema:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	code := m.Run()

	testPool.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

func setupSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS offices (
			id uuid PRIMARY KEY,
			manager_id uuid NOT NULL,
			name text NOT NULL,
			lat double precision NOT NULL,
			lng double precision NOT NULL,
			required_distance_m double precision,
			created_at timestamptz NOT NULL
		);

		CREATE TABLE IF NOT EXISTS attendance_marks (
			id uuid PRIMARY KEY,
			user_id uuid NOT NULL,
			office_id uuid NOT NULL REFERENCES offices (id),
			lat double precision NOT NULL,
			lng double precision NOT NULL,
			accuracy_m double precision,
			distance_m double precision NOT NULL,
			within_range boolean NOT NULL,
			overridden boolean NOT NULL,
			marked_at timestamptz NOT NULL
		);

		CREATE TABLE IF NOT EXISTS leave_requests (
			id uuid PRIMARY KEY,
			user_id uuid NOT NULL,
			type text NOT NULL,
			start_date timestamptz NOT NULL,
			end_date timestamptz NOT NULL,
			reason text NOT NULL DEFAULT '',
			status text NOT NULL,
			created_at timestamptz NOT NULL,
			decided_at timestamptz
		);
	`)
	return err
}

func truncateAll(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(),
		`TRUNCATE TABLE attendance_marks, leave_requests, offices`)
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
}

func createOffice(t *testing.T, repo *OfficeRepo, managerID uuid.UUID, name string, createdAt time.Time) *domain.Office {
	t.Helper()
	o := &domain.Office{
		ManagerID: managerID,
		Name:      name,
		Lat:       55.75,
		Lng:       37.61,
		CreatedAt: createdAt,
	}
	if err := repo.Create(context.Background(), o); err != nil {
		t.Fatalf("create office %q: %v", name, err)
	}
	return o
}

func TestOfficeRepo_Create_SetsDefaults(t *testing.T) {
	truncateAll(t)

	repo := NewOfficeRepo(testPool, testLogger())

	o := &domain.Office{
		ManagerID: uuid.New(),
		Name:      "HQ",
		Lat:       55.75,
		Lng:       37.61,
	}
	if err := repo.Create(context.Background(), o); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if o.ID == uuid.Nil {
		t.Fatalf("expected ID set")
	}
	if o.CreatedAt.IsZero() {
		t.Fatalf("expected CreatedAt set")
	}

	got, err := repo.Get(context.Background(), o.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Lat != o.Lat || got.Lng != o.Lng {
		t.Fatalf("lat/lng mismatch got=(%v,%v) want=(%v,%v)", got.Lat, got.Lng, o.Lat, o.Lng)
	}
	if got.RequiredDistanceM != nil {
		t.Fatalf("expected nil required distance, got %v", *got.RequiredDistanceM)
	}
}

func TestOfficeRepo_Create_DuplicateID(t *testing.T) {
	truncateAll(t)

	repo := NewOfficeRepo(testPool, testLogger())
	id := uuid.New()

	first := &domain.Office{ID: id, ManagerID: uuid.New(), Name: "A", Lat: 1, Lng: 2}
	if err := repo.Create(context.Background(), first); err != nil {
		t.Fatalf("Create: %v", err)
	}

	dup := &domain.Office{ID: id, ManagerID: uuid.New(), Name: "B", Lat: 3, Lng: 4}
	err := repo.Create(context.Background(), dup)
	if !errors.Is(err, e.ErrUniqueViolation) {
		t.Fatalf("expected ErrUniqueViolation, got: %v", err)
	}
}

func TestOfficeRepo_ListByManager_CreationOrder(t *testing.T) {
	truncateAll(t)

	repo := NewOfficeRepo(testPool, testLogger())
	managerID := uuid.New()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	first := createOffice(t, repo, managerID, "first", base)
	second := createOffice(t, repo, managerID, "second", base.Add(time.Second))
	createOffice(t, repo, uuid.New(), "other manager", base)

	got, err := repo.ListByManager(context.Background(), managerID)
	if err != nil {
		t.Fatalf("ListByManager: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 offices, got %d", len(got))
	}
	if got[0].ID != first.ID || got[1].ID != second.ID {
		t.Fatalf("expected creation order [first, second], got [%s, %s]", got[0].Name, got[1].Name)
	}
}

func TestOfficeRepo_ListManagerIDs_Distinct(t *testing.T) {
	truncateAll(t)

	repo := NewOfficeRepo(testPool, testLogger())
	managerID := uuid.New()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	createOffice(t, repo, managerID, "a", base)
	createOffice(t, repo, managerID, "b", base.Add(time.Second))
	other := uuid.New()
	createOffice(t, repo, other, "c", base)

	ids, err := repo.ListManagerIDs(context.Background())
	if err != nil {
		t.Fatalf("ListManagerIDs: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected 2 distinct managers, got %d: %v", len(ids), ids)
	}
}

func TestOfficeRepo_Update_NotFound(t *testing.T) {
	truncateAll(t)

	repo := NewOfficeRepo(testPool, testLogger())

	err := repo.Update(context.Background(), &domain.Office{ID: uuid.New(), Name: "ghost"})
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestOfficeRepo_Delete_ThenGone(t *testing.T) {
	truncateAll(t)

	repo := NewOfficeRepo(testPool, testLogger())
	o := createOffice(t, repo, uuid.New(), "HQ", time.Now().UTC())

	if err := repo.Delete(context.Background(), o.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := repo.Get(context.Background(), o.ID); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got: %v", err)
	}
	if err := repo.Delete(context.Background(), o.ID); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got: %v", err)
	}
}

func TestAttendanceRepo_SaveAndListByUser(t *testing.T) {
	truncateAll(t)

	offices := NewOfficeRepo(testPool, testLogger())
	repo := NewAttendanceRepo(testPool, testLogger())

	office := createOffice(t, offices, uuid.New(), "HQ", time.Now().UTC())
	userID := uuid.New()

	base := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		acc := float64(10 + i)
		rec := &domain.AttendanceRecord{
			UserID:      userID,
			OfficeID:    office.ID,
			Lat:         55.75,
			Lng:         37.61,
			AccuracyM:   &acc,
			DistanceM:   float64(100 * i),
			WithinRange: i == 0,
			Overridden:  i != 0,
			MarkedAt:    base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Save(context.Background(), rec); err != nil {
			t.Fatalf("Save #%d: %v", i, err)
		}
		if rec.ID == uuid.Nil {
			t.Fatalf("expected ID set on save")
		}
	}

	got, total, err := repo.ListByUser(context.Background(), userID, 1, 2)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected total=3, got %d", total)
	}
	if len(got) != 2 {
		t.Fatalf("expected page of 2, got %d", len(got))
	}
	if got[0].MarkedAt.Before(got[1].MarkedAt) {
		t.Fatalf("expected DESC order by marked_at")
	}
	if got[0].AccuracyM == nil {
		t.Fatalf("accuracy lost in round trip")
	}
}

func TestAttendanceRepo_Save_Invalid(t *testing.T) {
	truncateAll(t)

	repo := NewAttendanceRepo(testPool, testLogger())

	err := repo.Save(context.Background(), &domain.AttendanceRecord{OfficeID: uuid.New()})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for nil user, got: %v", err)
	}

	err = repo.Save(context.Background(), &domain.AttendanceRecord{
		UserID:   uuid.New(),
		OfficeID: uuid.New(),
		Lat:      91,
	})
	if !errors.Is(err, e.ErrInvalidCoordinates) {
		t.Fatalf("expected ErrInvalidCoordinates, got: %v", err)
	}
}

func TestLeaveRepo_DecisionFlow(t *testing.T) {
	truncateAll(t)

	repo := NewLeaveRepo(testPool, testLogger())
	userID := uuid.New()

	lr := &domain.LeaveRequest{
		UserID:    userID,
		Type:      domain.LeaveAnnual,
		StartDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		Reason:    "vacation",
	}
	if err := repo.Create(context.Background(), lr); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if lr.Status != domain.LeavePending {
		t.Fatalf("expected pending default, got %s", lr.Status)
	}

	pending, total, err := repo.ListByStatus(context.Background(), domain.LeavePending, 1, 10)
	if err != nil {
		t.Fatalf("ListByStatus: %v", err)
	}
	if total != 1 || len(pending) != 1 {
		t.Fatalf("expected one pending request, total=%d len=%d", total, len(pending))
	}

	now := time.Now().UTC()
	lr.Status = domain.LeaveApproved
	lr.DecidedAt = &now
	if err := repo.Update(context.Background(), lr); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.Get(context.Background(), lr.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != domain.LeaveApproved || got.DecidedAt == nil {
		t.Fatalf("decision not persisted: %+v", got)
	}

	mine, total, err := repo.ListByUser(context.Background(), userID, 1, 10)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if total != 1 || len(mine) != 1 {
		t.Fatalf("expected one request for user, total=%d len=%d", total, len(mine))
	}
}

func TestLeaveRepo_Get_NotFound(t *testing.T) {
	truncateAll(t)

	repo := NewLeaveRepo(testPool, testLogger())

	if _, err := repo.Get(context.Background(), uuid.New()); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestStatsRepo_CountsWithinWindow(t *testing.T) {
	truncateAll(t)

	offices := NewOfficeRepo(testPool, testLogger())
	attendance := NewAttendanceRepo(testPool, testLogger())
	repo := NewStats(testPool, testLogger())

	office := createOffice(t, offices, uuid.New(), "HQ", time.Now().UTC())

	userA, userB := uuid.New(), uuid.New()
	marks := []struct {
		user uuid.UUID
		at   time.Time
	}{
		{userA, time.Now().UTC().Add(-10 * time.Minute)},
		{userA, time.Now().UTC().Add(-20 * time.Minute)},
		{userB, time.Now().UTC().Add(-30 * time.Minute)},
		{userB, time.Now().UTC().Add(-3 * time.Hour)}, // outside the window
	}
	for i, mk := range marks {
		rec := &domain.AttendanceRecord{
			UserID:      mk.user,
			OfficeID:    office.ID,
			Lat:         55.75,
			Lng:         37.61,
			WithinRange: true,
			MarkedAt:    mk.at,
		}
		if err := attendance.Save(context.Background(), rec); err != nil {
			t.Fatalf("Save #%d: %v", i, err)
		}
	}

	unique, err := repo.CountUniqueUsers(context.Background(), 60)
	if err != nil {
		t.Fatalf("CountUniqueUsers: %v", err)
	}
	if unique != 2 {
		t.Fatalf("unique users = %d, want 2", unique)
	}

	total, err := repo.CountTotalMarks(context.Background(), 60)
	if err != nil {
		t.Fatalf("CountTotalMarks: %v", err)
	}
	if total != 3 {
		t.Fatalf("total marks = %d, want 3", total)
	}
}

func TestStatsRepo_WindowBounds(t *testing.T) {
	repo := NewStats(testPool, testLogger())

	for _, minutes := range []int{0, -1, 1441} {
		if _, err := repo.CountTotalMarks(context.Background(), minutes); !errors.Is(err, e.ErrInvalidInput) {
			t.Fatalf("minutes=%d: expected ErrInvalidInput, got: %v", minutes, err)
		}
	}
}
