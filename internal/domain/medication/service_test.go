package medication

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	byID map[uuid.UUID]*Medication
}

func newMockRepo() *mockRepo {
	return &mockRepo{byID: make(map[uuid.UUID]*Medication)}
}

func (m *mockRepo) Create(_ context.Context, med *Medication) error {
	med.ID = uuid.New()
	m.byID[med.ID] = med
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Medication, error) {
	med, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return med, nil
}

func (m *mockRepo) Update(_ context.Context, med *Medication) error {
	if _, ok := m.byID[med.ID]; !ok {
		return ErrNotFound
	}
	m.byID[med.ID] = med
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.byID[id]; !ok {
		return ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

func (m *mockRepo) ListByUser(_ context.Context, userID uuid.UUID, limit, offset int) ([]*Medication, int, error) {
	all := m.allFor(userID)
	return all, len(all), nil
}

func (m *mockRepo) ListAllByUser(_ context.Context, userID uuid.UUID) ([]*Medication, error) {
	return m.allFor(userID), nil
}

func (m *mockRepo) UpdateImage(_ context.Context, id uuid.UUID, url string) (*Medication, error) {
	med, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	med.ImageURL = &url
	return med, nil
}

func (m *mockRepo) allFor(userID uuid.UUID) []*Medication {
	var out []*Medication
	for _, med := range m.byID {
		if med.UserID == userID {
			out = append(out, med)
		}
	}
	return out
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(newMockRepo())
	userID := uuid.New()

	err := svc.Create(context.Background(), &Medication{Dosage: "10mg", UserID: userID})
	assert.EqualError(t, err, "name is required")

	err = svc.Create(context.Background(), &Medication{Name: "Lisinopril", UserID: userID})
	assert.EqualError(t, err, "dosage is required")

	err = svc.Create(context.Background(), &Medication{Name: "Lisinopril", Dosage: "10mg"})
	assert.EqualError(t, err, "user_id is required")
}

func TestCreateDefaultsStartDate(t *testing.T) {
	svc := NewService(newMockRepo())

	m := &Medication{Name: "Lisinopril", Dosage: "10mg", UserID: uuid.New()}
	require.NoError(t, svc.Create(context.Background(), m))
	assert.False(t, m.StartDate.IsZero())
}

func TestUpcomingLoadsUserMedications(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	userID := uuid.New()
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	require.NoError(t, svc.Create(context.Background(), &Medication{
		Name: "Lisinopril", Dosage: "10mg", UserID: userID,
		Times: []string{"09:00", "20:00"},
	}))
	require.NoError(t, svc.Create(context.Background(), &Medication{
		Name: "Other", Dosage: "5mg", UserID: uuid.New(),
		Times: []string{"18:00"},
	}))

	doses, err := svc.Upcoming(context.Background(), userID, now)
	require.NoError(t, err)
	require.Len(t, doses, 1)
	assert.Equal(t, "20:00", doses[0].Time)
	assert.Equal(t, "Lisinopril", doses[0].Medication.Name)
}

func TestUpdateImageRequiresURL(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)

	m := &Medication{Name: "Lisinopril", Dosage: "10mg", UserID: uuid.New()}
	require.NoError(t, svc.Create(context.Background(), m))

	_, err := svc.UpdateImage(context.Background(), m.ID, "")
	assert.Error(t, err)

	got, err := svc.UpdateImage(context.Background(), m.ID, "https://cdn.example.com/pill.jpg")
	require.NoError(t, err)
	require.NotNil(t, got.ImageURL)
	assert.Equal(t, "https://cdn.example.com/pill.jpg", *got.ImageURL)
}
