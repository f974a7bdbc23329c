package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"geoattend/internal/domain"
	"geoattend/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LeaveRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewLeaveRepo(pool *pgxpool.Pool, logger *slog.Logger) *LeaveRepo {
	return &LeaveRepo{pool: pool, logger: logger}
}

func (p *LeaveRepo) Create(ctx context.Context, req *domain.LeaveRequest) error {
	const op = "postgres.Leave.Create"

	if req == nil || req.UserID == uuid.Nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		INSERT INTO leave_requests (id, user_id, type, start_date, end_date, reason, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now().UTC()
	}
	if req.Status == "" {
		req.Status = domain.LeavePending
	}

	_, err := p.pool.Exec(ctx, query,
		req.ID,
		req.UserID,
		req.Type,
		req.StartDate,
		req.EndDate,
		req.Reason,
		req.Status,
		req.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *LeaveRepo) Get(ctx context.Context, id uuid.UUID) (*domain.LeaveRequest, error) {
	const op = "postgres.Leave.Get"

	const query = `
		SELECT id, user_id, type, start_date, end_date, reason, status, created_at, decided_at
		FROM leave_requests
		WHERE id = $1
	`

	var lr domain.LeaveRequest
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&lr.ID, &lr.UserID, &lr.Type,
		&lr.StartDate, &lr.EndDate, &lr.Reason,
		&lr.Status, &lr.CreatedAt, &lr.DecidedAt,
	)
	if err != nil {
		if err != pgx.ErrNoRows {
			p.logger.Error("db queryrow failed", slog.String("op", op), slog.Any("error", err))
		}
		return nil, e.WrapError(ctx, op, err)
	}

	return &lr, nil
}

func (p *LeaveRepo) Update(ctx context.Context, req *domain.LeaveRequest) error {
	const op = "postgres.Leave.Update"

	const query = `
		UPDATE leave_requests
		SET status = $2, decided_at = $3
		WHERE id = $1
	`

	tag, err := p.pool.Exec(ctx, query, req.ID, req.Status, req.DecidedAt)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if tag.RowsAffected() == 0 {
		return e.WrapError(ctx, op, pgx.ErrNoRows)
	}

	return nil
}

func (p *LeaveRepo) ListByUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]*domain.LeaveRequest, int64, error) {
	const op = "postgres.Leave.ListByUser"

	return p.list(ctx, op,
		`SELECT COUNT(*) FROM leave_requests WHERE user_id = $1`,
		`SELECT id, user_id, type, start_date, end_date, reason, status, created_at, decided_at
		 FROM leave_requests
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`,
		userID, page, limit,
	)
}

func (p *LeaveRepo) ListByStatus(ctx context.Context, status domain.LeaveStatus, page, limit int) ([]*domain.LeaveRequest, int64, error) {
	const op = "postgres.Leave.ListByStatus"

	return p.list(ctx, op,
		`SELECT COUNT(*) FROM leave_requests WHERE status = $1`,
		`SELECT id, user_id, type, start_date, end_date, reason, status, created_at, decided_at
		 FROM leave_requests
		 WHERE status = $1
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`,
		status, page, limit,
	)
}

func (p *LeaveRepo) list(ctx context.Context, op, countQuery, listQuery string, filter any, page, limit int) ([]*domain.LeaveRequest, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	var total int64
	if err := p.pool.QueryRow(ctx, countQuery, filter).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	rows, err := p.pool.Query(ctx, listQuery, filter, limit, offset)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	requests := make([]*domain.LeaveRequest, 0, limit)
	for rows.Next() {
		var lr domain.LeaveRequest
		if err := rows.Scan(
			&lr.ID, &lr.UserID, &lr.Type,
			&lr.StartDate, &lr.EndDate, &lr.Reason,
			&lr.Status, &lr.CreatedAt, &lr.DecidedAt,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, 0, e.WrapError(ctx, op, err)
		}
		requests = append(requests, &lr)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return requests, total, nil
}
