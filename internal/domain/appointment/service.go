package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	appts Repository
}

func NewService(appts Repository) *Service {
	return &Service{appts: appts}
}

func (s *Service) validate(a *Appointment) error {
	if a.Title == "" {
		return fmt.Errorf("title is required")
	}
	if a.DoctorName == "" {
		return fmt.Errorf("doctor_name is required")
	}
	if a.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if a.Type == "" {
		a.Type = TypeCheckup
	}
	if !a.Type.Valid() {
		return fmt.Errorf("invalid appointment type %q", a.Type)
	}
	if a.Status == "" {
		a.Status = StatusScheduled
	}
	if !a.Status.Valid() {
		return fmt.Errorf("invalid appointment status %q", a.Status)
	}
	return nil
}

func (s *Service) Create(ctx context.Context, a *Appointment) error {
	if a.UserID == uuid.Nil {
		return fmt.Errorf("user_id is required")
	}
	if err := s.validate(a); err != nil {
		return err
	}
	return s.appts.Create(ctx, a)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.appts.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, a *Appointment) error {
	if err := s.validate(a); err != nil {
		return err
	}
	return s.appts.Update(ctx, a)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.appts.Delete(ctx, id)
}

func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Appointment, int, error) {
	return s.appts.ListByUser(ctx, userID, limit, offset)
}

// Upcoming returns the user's next scheduled appointments after now.
func (s *Service) Upcoming(ctx context.Context, userID uuid.UUID, now time.Time) ([]*Appointment, error) {
	appts, err := s.appts.ListAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return Upcoming(appts, now), nil
}
