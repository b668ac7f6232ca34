package mood

import (
	"time"

	"github.com/google/uuid"
)

// Level is a self-reported mood on a five-step scale.
type Level string

const (
	LevelHappy    Level = "happy"
	LevelNeutral  Level = "neutral"
	LevelSad      Level = "sad"
	LevelAnxious  Level = "anxious"
	LevelStressed Level = "stressed"
)

func (l Level) Valid() bool {
	switch l {
	case LevelHappy, LevelNeutral, LevelSad, LevelAnxious, LevelStressed:
		return true
	}
	return false
}

// Entry is one mood check-in. Entries are append-only.
type Entry struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Mood       Level     `json:"mood"`
	Note       *string   `json:"note,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
	CreatedAt  time.Time `json:"created_at"`
}
