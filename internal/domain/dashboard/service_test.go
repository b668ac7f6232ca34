package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medwise/medwise/internal/domain/appointment"
	"github.com/medwise/medwise/internal/domain/medication"
	"github.com/medwise/medwise/internal/domain/metrics"
	"github.com/medwise/medwise/internal/domain/mood"
)

type medRepo struct{ meds []*medication.Medication }

func (r *medRepo) Create(context.Context, *medication.Medication) error { return nil }
func (r *medRepo) GetByID(context.Context, uuid.UUID) (*medication.Medication, error) {
	return nil, medication.ErrNotFound
}
func (r *medRepo) Update(context.Context, *medication.Medication) error { return nil }
func (r *medRepo) Delete(context.Context, uuid.UUID) error             { return nil }
func (r *medRepo) ListByUser(context.Context, uuid.UUID, int, int) ([]*medication.Medication, int, error) {
	return r.meds, len(r.meds), nil
}
func (r *medRepo) ListAllByUser(context.Context, uuid.UUID) ([]*medication.Medication, error) {
	return r.meds, nil
}
func (r *medRepo) UpdateImage(context.Context, uuid.UUID, string) (*medication.Medication, error) {
	return nil, medication.ErrNotFound
}

type apptRepo struct{ appts []*appointment.Appointment }

func (r *apptRepo) Create(context.Context, *appointment.Appointment) error { return nil }
func (r *apptRepo) GetByID(context.Context, uuid.UUID) (*appointment.Appointment, error) {
	return nil, appointment.ErrNotFound
}
func (r *apptRepo) Update(context.Context, *appointment.Appointment) error { return nil }
func (r *apptRepo) Delete(context.Context, uuid.UUID) error                { return nil }
func (r *apptRepo) ListByUser(context.Context, uuid.UUID, int, int) ([]*appointment.Appointment, int, error) {
	return r.appts, len(r.appts), nil
}
func (r *apptRepo) ListAllByUser(context.Context, uuid.UUID) ([]*appointment.Appointment, error) {
	return r.appts, nil
}

type moodRepo struct{ entries []*mood.Entry }

func (r *moodRepo) Create(context.Context, *mood.Entry) error { return nil }
func (r *moodRepo) ListByUser(context.Context, uuid.UUID, int, int) ([]*mood.Entry, int, error) {
	return r.entries, len(r.entries), nil
}
func (r *moodRepo) Latest(context.Context, uuid.UUID) (*mood.Entry, error) {
	if len(r.entries) == 0 {
		return nil, mood.ErrNotFound
	}
	return r.entries[len(r.entries)-1], nil
}

type metricRepo struct{ items []*metrics.Metric }

func (r *metricRepo) Create(context.Context, *metrics.Metric) error { return nil }
func (r *metricRepo) ListByUser(context.Context, uuid.UUID, int, int) ([]*metrics.Metric, int, error) {
	return r.items, len(r.items), nil
}
func (r *metricRepo) ListAllByUser(context.Context, uuid.UUID) ([]*metrics.Metric, error) {
	return r.items, nil
}
func (r *metricRepo) ListByUserSince(context.Context, uuid.UUID, time.Time) ([]*metrics.Metric, error) {
	return r.items, nil
}
func (r *metricRepo) LatestByType(context.Context, uuid.UUID, metrics.Type) (*metrics.Metric, error) {
	return nil, metrics.ErrNotFound
}

func newSummaryService(meds *medRepo, appts *apptRepo, moods *moodRepo, mts *metricRepo) *Service {
	return NewService(
		medication.NewService(meds),
		appointment.NewService(appts),
		mood.NewService(moods),
		metrics.NewService(mts, zerolog.Nop()),
	)
}

func TestSummaryComposesAllSections(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	meds := &medRepo{meds: []*medication.Medication{
		{Name: "Lisinopril", Dosage: "10mg", Times: []string{"20:00"}},
	}}
	appts := &apptRepo{appts: []*appointment.Appointment{
		{Title: "Checkup", Status: appointment.StatusScheduled, Date: now.Add(24 * time.Hour)},
	}}
	moods := &moodRepo{entries: []*mood.Entry{
		{Mood: mood.LevelHappy, RecordedAt: now.Add(-time.Hour)},
	}}
	mts := &metricRepo{items: []*metrics.Metric{
		{Type: metrics.TypeSleep, Value: 8, RecordedAt: now.Add(-time.Hour)},
	}}

	summary, err := newSummaryService(meds, appts, moods, mts).Summary(context.Background(), userID, now)
	require.NoError(t, err)

	require.Len(t, summary.UpcomingDoses, 1)
	assert.Equal(t, "20:00", summary.UpcomingDoses[0].Time)
	require.Len(t, summary.UpcomingAppointments, 1)
	assert.Equal(t, "Checkup", summary.UpcomingAppointments[0].Title)
	require.NotNil(t, summary.LatestMood)
	assert.Equal(t, mood.LevelHappy, summary.LatestMood.Mood)
	assert.Equal(t, 100, summary.HealthScore)
}

func TestSummaryEmptyUser(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	summary, err := newSummaryService(&medRepo{}, &apptRepo{}, &moodRepo{}, &metricRepo{}).
		Summary(context.Background(), uuid.New(), now)
	require.NoError(t, err)

	assert.Empty(t, summary.UpcomingDoses)
	assert.Empty(t, summary.UpcomingAppointments)
	assert.Nil(t, summary.LatestMood)
	assert.Equal(t, 0, summary.HealthScore)
	assert.NotNil(t, summary.UpcomingDoses)
	assert.NotNil(t, summary.UpcomingAppointments)
}
