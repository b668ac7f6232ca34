package medication

import (
	"time"

	"github.com/google/uuid"
)

// Medication maps to the medication table. Times holds the configured daily
// dose times as zero-padded "HH:MM" strings, in the order the user entered
// them.
type Medication struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	UserID         uuid.UUID  `db:"user_id" json:"user_id"`
	Name           string     `db:"name" json:"name"`
	Dosage         string     `db:"dosage" json:"dosage"`
	Frequency      string     `db:"frequency" json:"frequency"`
	Times          []string   `db:"times" json:"times"`
	StartDate      time.Time  `db:"start_date" json:"start_date"`
	EndDate        *time.Time `db:"end_date" json:"end_date,omitempty"`
	Notes          *string    `db:"notes" json:"notes,omitempty"`
	RefillReminder bool       `db:"refill_reminder" json:"refill_reminder"`
	RemainingDoses int        `db:"remaining_doses" json:"remaining_doses"`
	DurationDays   int        `db:"duration_days" json:"duration_days"`
	ImageURL       *string    `db:"image_url" json:"image_url,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
}

// IsActive reports whether the medication is active at the given instant:
// it has no end date, or its end date is strictly in the future.
func (m *Medication) IsActive(now time.Time) bool {
	return m.EndDate == nil || m.EndDate.After(now)
}
