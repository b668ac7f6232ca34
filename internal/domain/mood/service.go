package mood

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	moods Repository
}

func NewService(moods Repository) *Service {
	return &Service{moods: moods}
}

func (s *Service) Record(ctx context.Context, e *Entry) error {
	if e.UserID == uuid.Nil {
		return fmt.Errorf("user_id is required")
	}
	if !e.Mood.Valid() {
		return fmt.Errorf("invalid mood %q", e.Mood)
	}
	if e.RecordedAt.IsZero() {
		e.RecordedAt = time.Now()
	}
	return s.moods.Create(ctx, e)
}

func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Entry, int, error) {
	return s.moods.ListByUser(ctx, userID, limit, offset)
}

func (s *Service) Latest(ctx context.Context, userID uuid.UUID) (*Entry, error) {
	return s.moods.Latest(ctx, userID)
}
