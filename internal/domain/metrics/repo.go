package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no metric matches the lookup.
var ErrNotFound = errors.New("metric not found")

// Repository stores metric samples. Samples are append-only: there are
// no update or delete operations.
type Repository interface {
	Create(ctx context.Context, m *Metric) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Metric, int, error)
	ListAllByUser(ctx context.Context, userID uuid.UUID) ([]*Metric, error)
	ListByUserSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]*Metric, error)
	LatestByType(ctx context.Context, userID uuid.UUID, t Type) (*Metric, error)
}
