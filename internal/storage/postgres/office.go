package postgres

import (
	"context"
	"log/slog"
	"time"

	"geoattend/internal/domain"
	"geoattend/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OfficeRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewOfficeRepo(pool *pgxpool.Pool, logger *slog.Logger) *OfficeRepo {
	return &OfficeRepo{pool: pool, logger: logger}
}

func (p *OfficeRepo) Create(ctx context.Context, office *domain.Office) error {
	const op = "postgres.Office.Create"

	const query = `
		INSERT INTO offices (id, manager_id, name, lat, lng, required_distance_m, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	if office.ID == uuid.Nil {
		office.ID = uuid.New()
	}
	if office.CreatedAt.IsZero() {
		office.CreatedAt = time.Now().UTC()
	}

	_, err := p.pool.Exec(ctx, query,
		office.ID,
		office.ManagerID,
		office.Name,
		office.Lat,
		office.Lng,
		office.RequiredDistanceM,
		office.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *OfficeRepo) List(ctx context.Context, page, limit int) ([]*domain.Office, int64, error) {
	const op = "postgres.Office.List"

	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	const countQuery = `SELECT COUNT(*) FROM offices`

	var total int64
	if err := p.pool.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	const listQuery = `
		SELECT id, manager_id, name, lat, lng, required_distance_m, created_at
		FROM offices
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := p.pool.Query(ctx, listQuery, limit, offset)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	offices := make([]*domain.Office, 0, limit)
	for rows.Next() {
		var o domain.Office
		if err := rows.Scan(&o.ID, &o.ManagerID, &o.Name, &o.Lat, &o.Lng, &o.RequiredDistanceM, &o.CreatedAt); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, 0, e.WrapError(ctx, op, err)
		}
		offices = append(offices, &o)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return offices, total, nil
}

func (p *OfficeRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Office, error) {
	const op = "postgres.Office.Get"

	const query = `
		SELECT id, manager_id, name, lat, lng, required_distance_m, created_at
		FROM offices
		WHERE id = $1
	`

	var o domain.Office
	err := p.pool.QueryRow(ctx, query, id).
		Scan(&o.ID, &o.ManagerID, &o.Name, &o.Lat, &o.Lng, &o.RequiredDistanceM, &o.CreatedAt)
	if err != nil {
		if err != pgx.ErrNoRows {
			p.logger.Error("db queryrow failed", slog.String("op", op), slog.Any("error", err))
		}
		return nil, e.WrapError(ctx, op, err)
	}

	return &o, nil
}

func (p *OfficeRepo) Update(ctx context.Context, office *domain.Office) error {
	const op = "postgres.Office.Update"

	const query = `
		UPDATE offices
		SET name = $2, lat = $3, lng = $4, required_distance_m = $5
		WHERE id = $1
	`

	tag, err := p.pool.Exec(ctx, query,
		office.ID,
		office.Name,
		office.Lat,
		office.Lng,
		office.RequiredDistanceM,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if tag.RowsAffected() == 0 {
		return e.WrapError(ctx, op, pgx.ErrNoRows)
	}

	return nil
}

func (p *OfficeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Office.Delete"

	tag, err := p.pool.Exec(ctx, `DELETE FROM offices WHERE id = $1`, id)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if tag.RowsAffected() == 0 {
		return e.WrapError(ctx, op, pgx.ErrNoRows)
	}

	return nil
}

// ListByManager returns the manager's offices in creation order; the
// evaluator's tie-breaking depends on a stable order here.
func (p *OfficeRepo) ListByManager(ctx context.Context, managerID uuid.UUID) ([]domain.Office, error) {
	const op = "postgres.Office.ListByManager"

	const query = `
		SELECT id, manager_id, name, lat, lng, required_distance_m, created_at
		FROM offices
		WHERE manager_id = $1
		ORDER BY created_at ASC, id ASC
	`

	rows, err := p.pool.Query(ctx, query, managerID)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	offices := make([]domain.Office, 0, 8)
	for rows.Next() {
		var o domain.Office
		if err := rows.Scan(&o.ID, &o.ManagerID, &o.Name, &o.Lat, &o.Lng, &o.RequiredDistanceM, &o.CreatedAt); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		offices = append(offices, o)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return offices, nil
}

func (p *OfficeRepo) ListManagerIDs(ctx context.Context) ([]uuid.UUID, error) {
	const op = "postgres.Office.ListManagerIDs"

	rows, err := p.pool.Query(ctx, `SELECT DISTINCT manager_id FROM offices`)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0, 8)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return ids, nil
}
