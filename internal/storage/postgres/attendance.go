package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"geoattend/internal/domain"
	"geoattend/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AttendanceRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewAttendanceRepo(pool *pgxpool.Pool, logger *slog.Logger) *AttendanceRepo {
	return &AttendanceRepo{pool: pool, logger: logger}
}

func (p *AttendanceRepo) Save(ctx context.Context, rec *domain.AttendanceRecord) error {
	const op = "postgres.Attendance.Save"

	if rec == nil || rec.UserID == uuid.Nil || rec.OfficeID == uuid.Nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if rec.Lat < -90 || rec.Lat > 90 || rec.Lng < -180 || rec.Lng > 180 {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	const query = `
		INSERT INTO attendance_marks
			(id, user_id, office_id, lat, lng, accuracy_m, distance_m, within_range, overridden, marked_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.MarkedAt.IsZero() {
		rec.MarkedAt = time.Now().UTC()
	}

	_, err := p.pool.Exec(ctx, query,
		rec.ID,
		rec.UserID,
		rec.OfficeID,
		rec.Lat,
		rec.Lng,
		rec.AccuracyM,
		rec.DistanceM,
		rec.WithinRange,
		rec.Overridden,
		rec.MarkedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.String("user_id", rec.UserID.String()),
		)
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *AttendanceRepo) ListByUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]*domain.AttendanceRecord, int64, error) {
	const op = "postgres.Attendance.ListByUser"

	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	const countQuery = `SELECT COUNT(*) FROM attendance_marks WHERE user_id = $1`

	var total int64
	if err := p.pool.QueryRow(ctx, countQuery, userID).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	const listQuery = `
		SELECT id, user_id, office_id, lat, lng, accuracy_m, distance_m, within_range, overridden, marked_at
		FROM attendance_marks
		WHERE user_id = $1
		ORDER BY marked_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := p.pool.Query(ctx, listQuery, userID, limit, offset)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	records := make([]*domain.AttendanceRecord, 0, limit)
	for rows.Next() {
		var r domain.AttendanceRecord
		if err := rows.Scan(
			&r.ID, &r.UserID, &r.OfficeID,
			&r.Lat, &r.Lng, &r.AccuracyM,
			&r.DistanceM, &r.WithinRange, &r.Overridden, &r.MarkedAt,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, 0, e.WrapError(ctx, op, err)
		}
		records = append(records, &r)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return records, total, nil
}
