package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	items []*Metric
}

func (m *mockRepo) Create(_ context.Context, mt *Metric) error {
	mt.ID = uuid.New()
	cp := *mt
	m.items = append(m.items, &cp)
	return nil
}

func (m *mockRepo) ListByUser(_ context.Context, userID uuid.UUID, limit, offset int) ([]*Metric, int, error) {
	all := m.forUser(userID)
	return all, len(all), nil
}

func (m *mockRepo) ListAllByUser(_ context.Context, userID uuid.UUID) ([]*Metric, error) {
	return m.forUser(userID), nil
}

func (m *mockRepo) ListByUserSince(_ context.Context, userID uuid.UUID, since time.Time) ([]*Metric, error) {
	var out []*Metric
	for _, mt := range m.forUser(userID) {
		if !mt.RecordedAt.Before(since) {
			out = append(out, mt)
		}
	}
	return out, nil
}

func (m *mockRepo) LatestByType(_ context.Context, userID uuid.UUID, t Type) (*Metric, error) {
	var latest *Metric
	for _, mt := range m.forUser(userID) {
		if mt.Type != t {
			continue
		}
		if latest == nil || mt.RecordedAt.After(latest.RecordedAt) {
			latest = mt
		}
	}
	if latest == nil {
		return nil, ErrNotFound
	}
	return latest, nil
}

func (m *mockRepo) forUser(userID uuid.UUID) []*Metric {
	var out []*Metric
	for _, mt := range m.items {
		if mt.UserID == userID {
			out = append(out, mt)
		}
	}
	return out
}

func (m *mockRepo) ofType(t Type) []*Metric {
	var out []*Metric
	for _, mt := range m.items {
		if mt.Type == t {
			out = append(out, mt)
		}
	}
	return out
}

func TestRecordDerivesBMI(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, zerolog.Nop())
	userID := uuid.New()

	err := svc.Record(context.Background(), &Metric{
		UserID: userID, Type: TypeHeight, Value: 175,
	})
	require.NoError(t, err)
	// Height alone cannot produce a BMI yet.
	assert.Empty(t, repo.ofType(TypeBMI))

	err = svc.Record(context.Background(), &Metric{
		UserID: userID, Type: TypeWeight, Value: 70,
	})
	require.NoError(t, err)

	bmis := repo.ofType(TypeBMI)
	require.Len(t, bmis, 1)
	assert.Equal(t, 22.9, bmis[0].Value)
	assert.Equal(t, userID, bmis[0].UserID)
}

func TestRecordHeightDerivesBMIFromLatestWeight(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, zerolog.Nop())
	userID := uuid.New()

	require.NoError(t, svc.Record(context.Background(), &Metric{
		UserID: userID, Type: TypeWeight, Value: 70,
	}))
	require.NoError(t, svc.Record(context.Background(), &Metric{
		UserID: userID, Type: TypeHeight, Value: 180,
	}))

	bmis := repo.ofType(TypeBMI)
	require.Len(t, bmis, 1)
	assert.Equal(t, 21.6, bmis[0].Value) // 70 / 1.80^2 = 21.60...
}

func TestRecordRejectsImplausibleValue(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, zerolog.Nop())

	err := svc.Record(context.Background(), &Metric{
		UserID: uuid.New(), Type: TypeWeight, Value: 20,
	})
	assert.Error(t, err)
	assert.Empty(t, repo.items)
}

func TestRecordRejectsUnknownType(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, zerolog.Nop())

	err := svc.Record(context.Background(), &Metric{
		UserID: uuid.New(), Type: Type("cholesterol"), Value: 100,
	})
	assert.Error(t, err)
	assert.Empty(t, repo.items)
}

func TestRecordDefaultsRecordedAt(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, zerolog.Nop())

	m := &Metric{UserID: uuid.New(), Type: TypeSleep, Value: 8}
	require.NoError(t, svc.Record(context.Background(), m))
	assert.False(t, m.RecordedAt.IsZero())
}

func TestScoreFor(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, zerolog.Nop())
	userID := uuid.New()

	require.NoError(t, svc.Record(context.Background(), &Metric{
		UserID: userID, Type: TypeSleep, Value: 8,
	}))
	require.NoError(t, svc.Record(context.Background(), &Metric{
		UserID: userID, Type: TypeHeartRate, Value: 110,
	}))

	score, err := svc.ScoreFor(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 85, score)
}
