package mood

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

type mockRepo struct {
	entries []*Entry
}

func (m *mockRepo) Create(_ context.Context, e *Entry) error {
	e.ID = uuid.New()
	m.entries = append(m.entries, e)
	return nil
}

func (m *mockRepo) ListByUser(_ context.Context, userID uuid.UUID, limit, offset int) ([]*Entry, int, error) {
	var out []*Entry
	for _, e := range m.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, len(out), nil
}

func (m *mockRepo) Latest(_ context.Context, userID uuid.UUID) (*Entry, error) {
	var latest *Entry
	for _, e := range m.entries {
		if e.UserID != userID {
			continue
		}
		if latest == nil || e.RecordedAt.After(latest.RecordedAt) {
			latest = e
		}
	}
	if latest == nil {
		return nil, ErrNotFound
	}
	return latest, nil
}

func TestRecordValidatesMood(t *testing.T) {
	svc := NewService(&mockRepo{})

	err := svc.Record(context.Background(), &Entry{UserID: uuid.New(), Mood: Level("ecstatic")})
	if err == nil {
		t.Error("expected error for unknown mood level")
	}

	err = svc.Record(context.Background(), &Entry{Mood: LevelNeutral})
	if err == nil {
		t.Error("expected error for missing user id")
	}
}

func TestRecordDefaultsRecordedAt(t *testing.T) {
	svc := NewService(&mockRepo{})

	e := &Entry{UserID: uuid.New(), Mood: LevelNeutral}
	if err := svc.Record(context.Background(), e); err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if e.RecordedAt.IsZero() {
		t.Error("recorded_at not defaulted")
	}
}

func TestLatestReturnsMostRecent(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)
	userID := uuid.New()
	now := time.Now()

	repo.entries = []*Entry{
		{UserID: userID, Mood: LevelSad, RecordedAt: now.Add(-2 * time.Hour)},
		{UserID: userID, Mood: LevelHappy, RecordedAt: now.Add(-time.Hour)},
		{UserID: uuid.New(), Mood: LevelStressed, RecordedAt: now},
	}

	e, err := svc.Latest(context.Background(), userID)
	if err != nil {
		t.Fatalf("latest failed: %v", err)
	}
	if e.Mood != LevelHappy {
		t.Errorf("got mood %s, want %s", e.Mood, LevelHappy)
	}
}

func TestLatestEmpty(t *testing.T) {
	svc := NewService(&mockRepo{})
	_, err := svc.Latest(context.Background(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}
