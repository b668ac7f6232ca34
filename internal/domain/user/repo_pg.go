package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const userCols = `id, email, password_hash, name, age, gender, blood_type,
	weight, height, allergies, emergency_contact_name,
	emergency_contact_relationship, emergency_contact_phone, is_admin,
	profile_photo_url, created_at, updated_at`

func scanUser(row pgx.Row) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Age, &u.Gender,
		&u.BloodType, &u.Weight, &u.Height, &u.Allergies, &u.EmergencyContactName,
		&u.EmergencyContactRelationship, &u.EmergencyContactPhone, &u.IsAdmin,
		&u.ProfilePhotoURL, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &u, err
}

func (r *repoPG) Create(ctx context.Context, u *User) error {
	u.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO app_user (id, email, password_hash, name, age, gender,
			blood_type, weight, height, allergies, emergency_contact_name,
			emergency_contact_relationship, emergency_contact_phone, is_admin)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`,
		u.ID, u.Email, u.PasswordHash, u.Name, u.Age, u.Gender,
		u.BloodType, u.Weight, u.Height, u.Allergies, u.EmergencyContactName,
		u.EmergencyContactRelationship, u.EmergencyContactPhone, u.IsAdmin)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateEmail
	}
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userCols+` FROM app_user WHERE id = $1`, id))
}

func (r *repoPG) GetByEmail(ctx context.Context, email string) (*User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userCols+` FROM app_user WHERE email = $1`, email))
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*User, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM app_user`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+userCols+` FROM app_user ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, u)
	}
	return items, total, rows.Err()
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM app_user WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) Promote(ctx context.Context, id uuid.UUID) (*User, error) {
	return scanUser(r.pool.QueryRow(ctx, `
		UPDATE app_user SET is_admin = TRUE, updated_at = NOW()
		WHERE id = $1
		RETURNING `+userCols, id))
}

func (r *repoPG) UpdateProfilePhoto(ctx context.Context, id uuid.UUID, url string) (*User, error) {
	return scanUser(r.pool.QueryRow(ctx, `
		UPDATE app_user SET profile_photo_url = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING `+userCols, id, url))
}
