package appointment

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of an appointment.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Type categorizes the visit.
type Type string

const (
	TypeCheckup    Type = "checkup"
	TypeFollowup   Type = "followup"
	TypeSpecialist Type = "specialist"
	TypeEmergency  Type = "emergency"
)

func (t Type) Valid() bool {
	switch t {
	case TypeCheckup, TypeFollowup, TypeSpecialist, TypeEmergency:
		return true
	}
	return false
}

type Appointment struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Title      string    `json:"title"`
	DoctorName string    `json:"doctor_name"`
	Specialty  *string   `json:"specialty,omitempty"`
	Location   *string   `json:"location,omitempty"`
	Date       time.Time `json:"date"`
	Type       Type      `json:"type"`
	Status     Status    `json:"status"`
	Notes      *string   `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
