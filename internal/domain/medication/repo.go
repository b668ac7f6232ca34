package medication

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no medication matches the lookup.
var ErrNotFound = errors.New("medication not found")

type Repository interface {
	Create(ctx context.Context, m *Medication) error
	GetByID(ctx context.Context, id uuid.UUID) (*Medication, error)
	Update(ctx context.Context, m *Medication) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Medication, int, error)
	ListAllByUser(ctx context.Context, userID uuid.UUID) ([]*Medication, error)
	UpdateImage(ctx context.Context, id uuid.UUID, url string) (*Medication, error)
}
