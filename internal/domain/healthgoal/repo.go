package healthgoal

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no goal matches the lookup.
var ErrNotFound = errors.New("health goal not found")

type Repository interface {
	Create(ctx context.Context, g *Goal) error
	GetByID(ctx context.Context, id uuid.UUID) (*Goal, error)
	Update(ctx context.Context, g *Goal) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Goal, int, error)
}
