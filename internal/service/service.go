package service

import (
	"context"

	"geoattend/internal/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock.go -package=mock_service geoattend/internal/service OfficeRepository,OfficeCacheService,AttendanceRepository,NotifyQueue,LeaveRepository,StatsRepository
type OfficeAdminService interface {
	Create(ctx context.Context, req domain.CreateOfficeRequest) (uuid.UUID, error)
	List(ctx context.Context, page, limit int) ([]*domain.Office, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Office, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateOfficeRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// AttendanceService is the geofence surface: Evaluate is the advisory
// check, Mark re-evaluates and records when the caller has supplied the
// confirmations the decision asked for.
type AttendanceService interface {
	Evaluate(ctx context.Context, managerID uuid.UUID, req domain.EvaluateRequest) (domain.EvaluateResponse, error)
	Mark(ctx context.Context, userID, managerID uuid.UUID, req domain.MarkAttendanceRequest) (domain.MarkAttendanceResponse, error)
	History(ctx context.Context, userID uuid.UUID, page, limit int) ([]*domain.AttendanceRecord, int64, error)
}

type LeaveService interface {
	Submit(ctx context.Context, userID uuid.UUID, req domain.SubmitLeaveRequest) (uuid.UUID, error)
	ListForUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]*domain.LeaveRequest, int64, error)
	ListByStatus(ctx context.Context, status domain.LeaveStatus, page, limit int) ([]*domain.LeaveRequest, int64, error)
	Decide(ctx context.Context, id uuid.UUID, req domain.DecideLeaveRequest) error
}

type StatsService interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.AttendanceStats, error)
}

type Service struct {
	OfficeAdminService OfficeAdminService
	AttendanceService  AttendanceService
	LeaveService       LeaveService
	StatsService       StatsService
}

func NewService(
	officeAdminService OfficeAdminService,
	attendanceService AttendanceService,
	leaveService LeaveService,
	statsService StatsService,
) *Service {
	return &Service{
		OfficeAdminService: officeAdminService,
		AttendanceService:  attendanceService,
		LeaveService:       leaveService,
		StatsService:       statsService,
	}
}
