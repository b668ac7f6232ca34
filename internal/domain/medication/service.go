package medication

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	meds Repository
}

func NewService(meds Repository) *Service {
	return &Service{meds: meds}
}

func (s *Service) Create(ctx context.Context, m *Medication) error {
	if m.Name == "" {
		return fmt.Errorf("name is required")
	}
	if m.Dosage == "" {
		return fmt.Errorf("dosage is required")
	}
	if m.UserID == uuid.Nil {
		return fmt.Errorf("user_id is required")
	}
	if m.StartDate.IsZero() {
		m.StartDate = time.Now()
	}
	return s.meds.Create(ctx, m)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Medication, error) {
	return s.meds.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, m *Medication) error {
	if m.Name == "" {
		return fmt.Errorf("name is required")
	}
	if m.Dosage == "" {
		return fmt.Errorf("dosage is required")
	}
	return s.meds.Update(ctx, m)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.meds.Delete(ctx, id)
}

func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Medication, int, error) {
	return s.meds.ListByUser(ctx, userID, limit, offset)
}

// Upcoming returns the user's next doses due today.
func (s *Service) Upcoming(ctx context.Context, userID uuid.UUID, now time.Time) ([]UpcomingDose, error) {
	meds, err := s.meds.ListAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return UpcomingDoses(meds, now), nil
}

func (s *Service) UpdateImage(ctx context.Context, id uuid.UUID, url string) (*Medication, error) {
	if url == "" {
		return nil, fmt.Errorf("Image URL is required.")
	}
	return s.meds.UpdateImage(ctx, id, url)
}
