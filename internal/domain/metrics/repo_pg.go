package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const metricCols = `id, user_id, type, value, unit, status, notes, recorded_at, created_at`

func scanMetric(row pgx.Row) (*Metric, error) {
	var m Metric
	err := row.Scan(&m.ID, &m.UserID, &m.Type, &m.Value, &m.Unit,
		&m.Status, &m.Notes, &m.RecordedAt, &m.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &m, err
}

func (r *repoPG) Create(ctx context.Context, m *Metric) error {
	m.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO health_metric (id, user_id, type, value, unit, status, notes, recorded_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		m.ID, m.UserID, m.Type, m.Value, m.Unit, m.Status, m.Notes, m.RecordedAt)
	return err
}

func (r *repoPG) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Metric, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM health_metric WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+metricCols+` FROM health_metric WHERE user_id = $1 ORDER BY recorded_at DESC LIMIT $2 OFFSET $3`, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	items, err := collect(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *repoPG) ListAllByUser(ctx context.Context, userID uuid.UUID) ([]*Metric, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+metricCols+` FROM health_metric WHERE user_id = $1 ORDER BY recorded_at`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func (r *repoPG) ListByUserSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]*Metric, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+metricCols+` FROM health_metric WHERE user_id = $1 AND recorded_at >= $2 ORDER BY recorded_at`, userID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func (r *repoPG) LatestByType(ctx context.Context, userID uuid.UUID, t Type) (*Metric, error) {
	return scanMetric(r.pool.QueryRow(ctx, `SELECT `+metricCols+` FROM health_metric WHERE user_id = $1 AND type = $2 ORDER BY recorded_at DESC LIMIT 1`, userID, t))
}

func collect(rows pgx.Rows) ([]*Metric, error) {
	var items []*Metric
	for rows.Next() {
		m, err := scanMetric(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}
