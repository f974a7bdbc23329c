package postgres

import (
	"context"

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
	ListManagerIDs(ctx context.Context) ([]uuid.UUID, error)
}

type AttendanceRepository interface {
	Save(ctx context.Context, rec *domain.AttendanceRecord) error
	ListByUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]*domain.AttendanceRecord, int64, error)
}

type LeaveRepository interface {
	Create(ctx context.Context, req *domain.LeaveRequest) error
	Get(ctx context.Context, id uuid.UUID) (*domain.LeaveRequest, error)
	Update(ctx context.Context, req *domain.LeaveRequest) error
	ListByUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]*domain.LeaveRequest, int64, error)
	ListByStatus(ctx context.Context, status domain.LeaveStatus, page, limit int) ([]*domain.LeaveRequest, int64, error)
}

type StatsRepository interface {
	CountUniqueUsers(ctx context.Context, minutes int) (int64, error)
	CountTotalMarks(ctx context.Context, minutes int) (int64, error)
}

func (p *Postgres) Offices() OfficeRepository { return p.Office }

func (p *Postgres) Attendances() AttendanceRepository { return p.Attendance }

func (p *Postgres) Leaves() LeaveRepository { return p.Leave }

func (p *Postgres) Stats() StatsRepository { return p.Stat }
