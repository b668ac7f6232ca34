package metrics

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Service struct {
	metrics Repository
	log     zerolog.Logger
}

func NewService(metrics Repository, log zerolog.Logger) *Service {
	return &Service{metrics: metrics, log: log}
}

// Record validates and stores one sample. Recording a weight or height
// sample also derives a BMI sample when the counterpart measurement
// exists, so the BMI series stays current without clients computing it.
func (s *Service) Record(ctx context.Context, m *Metric) error {
	if m.UserID == uuid.Nil {
		return errors.New("user_id is required")
	}
	if err := ValidateValue(m.Type, m.Value); err != nil {
		return err
	}
	if m.RecordedAt.IsZero() {
		m.RecordedAt = time.Now()
	}
	m.Status = Classify(m.Type, m.Value)
	if err := s.metrics.Create(ctx, m); err != nil {
		return err
	}

	if m.Type == TypeWeight || m.Type == TypeHeight {
		if err := s.deriveBMI(ctx, m); err != nil {
			// A missing counterpart or storage hiccup must not fail
			// the sample that was already written.
			s.log.Warn().Err(err).Str("user_id", m.UserID.String()).Msg("bmi derivation skipped")
		}
	}
	return nil
}

func (s *Service) deriveBMI(ctx context.Context, m *Metric) error {
	weight, height := m.Value, m.Value
	counterpart := TypeHeight
	if m.Type == TypeHeight {
		counterpart = TypeWeight
	}
	other, err := s.metrics.LatestByType(ctx, m.UserID, counterpart)
	if err != nil {
		return err
	}
	if m.Type == TypeWeight {
		height = other.Value
	} else {
		weight = other.Value
	}
	if height <= 0 {
		return errors.New("height must be positive")
	}
	hm := height / 100
	bmi := math.Round(weight/(hm*hm)*10) / 10
	return s.metrics.Create(ctx, &Metric{
		UserID:     m.UserID,
		Type:       TypeBMI,
		Value:      bmi,
		Status:     Classify(TypeBMI, bmi),
		RecordedAt: m.RecordedAt,
	})
}

func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Metric, int, error) {
	return s.metrics.ListByUser(ctx, userID, limit, offset)
}

// SeriesFor returns one type's samples within the window, oldest first.
func (s *Service) SeriesFor(ctx context.Context, userID uuid.UUID, t Type, days int, now time.Time) ([]*Metric, error) {
	if !Known(t) {
		return nil, errors.New("unknown metric type")
	}
	cutoff := now.Add(-time.Duration(days) * 24 * time.Hour)
	samples, err := s.metrics.ListByUserSince(ctx, userID, cutoff)
	if err != nil {
		return nil, err
	}
	return Series(samples, t, days, now), nil
}

// TrendsFor summarizes all sampled types within the window.
func (s *Service) TrendsFor(ctx context.Context, userID uuid.UUID, days int, now time.Time) ([]Trend, error) {
	cutoff := now.Add(-time.Duration(days) * 24 * time.Hour)
	samples, err := s.metrics.ListByUserSince(ctx, userID, cutoff)
	if err != nil {
		return nil, err
	}
	return Trends(samples, days, now), nil
}

// ScoreFor computes the user's current health score over all samples.
func (s *Service) ScoreFor(ctx context.Context, userID uuid.UUID) (int, error) {
	samples, err := s.metrics.ListAllByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	return HealthScore(samples), nil
}

// Export returns every sample for CSV export, oldest first.
func (s *Service) Export(ctx context.Context, userID uuid.UUID) ([]*Metric, error) {
	return s.metrics.ListAllByUser(ctx, userID)
}
