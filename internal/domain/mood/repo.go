package mood

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a user has no mood entries.
var ErrNotFound = errors.New("mood entry not found")

type Repository interface {
	Create(ctx context.Context, e *Entry) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Entry, int, error)
	Latest(ctx context.Context, userID uuid.UUID) (*Entry, error)
}
