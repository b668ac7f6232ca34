package healthgoal

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const goalCols = `id, user_id, title, description, target_date, achieved, created_at, updated_at`

func scanGoal(row pgx.Row) (*Goal, error) {
	var g Goal
	err := row.Scan(&g.ID, &g.UserID, &g.Title, &g.Description,
		&g.TargetDate, &g.Achieved, &g.CreatedAt, &g.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &g, err
}

func (r *repoPG) Create(ctx context.Context, g *Goal) error {
	g.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO health_goal (id, user_id, title, description, target_date, achieved)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		g.ID, g.UserID, g.Title, g.Description, g.TargetDate, g.Achieved)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Goal, error) {
	return scanGoal(r.pool.QueryRow(ctx, `SELECT `+goalCols+` FROM health_goal WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, g *Goal) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE health_goal SET title=$2, description=$3, target_date=$4,
			achieved=$5, updated_at=NOW()
		WHERE id = $1`,
		g.ID, g.Title, g.Description, g.TargetDate, g.Achieved)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM health_goal WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Goal, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM health_goal WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+goalCols+` FROM health_goal WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, g)
	}
	return items, total, rows.Err()
}
