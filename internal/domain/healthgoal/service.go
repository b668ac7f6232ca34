package healthgoal

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	goals Repository
}

func NewService(goals Repository) *Service {
	return &Service{goals: goals}
}

func (s *Service) Create(ctx context.Context, g *Goal) error {
	if g.Title == "" {
		return fmt.Errorf("title is required")
	}
	if g.UserID == uuid.Nil {
		return fmt.Errorf("user_id is required")
	}
	return s.goals.Create(ctx, g)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Goal, error) {
	return s.goals.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, g *Goal) error {
	if g.Title == "" {
		return fmt.Errorf("title is required")
	}
	return s.goals.Update(ctx, g)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.goals.Delete(ctx, id)
}

func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Goal, int, error) {
	return s.goals.ListByUser(ctx, userID, limit, offset)
}
