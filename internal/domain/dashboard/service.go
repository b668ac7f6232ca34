package dashboard

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/medwise/medwise/internal/domain/appointment"
	"github.com/medwise/medwise/internal/domain/medication"
	"github.com/medwise/medwise/internal/domain/metrics"
	"github.com/medwise/medwise/internal/domain/mood"
)

// Summary is the single-call payload the home screen renders from.
type Summary struct {
	UpcomingDoses        []medication.UpcomingDose  `json:"upcoming_doses"`
	UpcomingAppointments []*appointment.Appointment `json:"upcoming_appointments"`
	LatestMood           *mood.Entry                `json:"latest_mood,omitempty"`
	HealthScore          int                        `json:"health_score"`
}

type Service struct {
	meds    *medication.Service
	appts   *appointment.Service
	moods   *mood.Service
	metrics *metrics.Service
}

func NewService(meds *medication.Service, appts *appointment.Service, moods *mood.Service, m *metrics.Service) *Service {
	return &Service{meds: meds, appts: appts, moods: moods, metrics: m}
}

// Summary assembles the dashboard for one user. A user with no mood
// entries simply gets a nil latest mood; any other failure aborts.
func (s *Service) Summary(ctx context.Context, userID uuid.UUID, now time.Time) (*Summary, error) {
	doses, err := s.meds.Upcoming(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	appts, err := s.appts.Upcoming(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	latest, err := s.moods.Latest(ctx, userID)
	if err != nil && !errors.Is(err, mood.ErrNotFound) {
		return nil, err
	}
	score, err := s.metrics.ScoreFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	if doses == nil {
		doses = []medication.UpcomingDose{}
	}
	if appts == nil {
		appts = []*appointment.Appointment{}
	}
	return &Summary{
		UpcomingDoses:        doses,
		UpcomingAppointments: appts,
		LatestMood:           latest,
		HealthScore:          score,
	}, nil
}
