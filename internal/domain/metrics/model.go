package metrics

import (
	"time"

	"github.com/google/uuid"
)

// Type identifies what a metric sample measures. The set is closed: the
// normal-range table below is the source of truth for which types exist.
type Type string

const (
	TypeWeight        Type = "weight"
	TypeBloodPressure Type = "blood_pressure"
	TypeHeartRate     Type = "heart_rate"
	TypeBloodSugar    Type = "blood_sugar"
	TypeTemperature   Type = "temperature"
	TypeHeight        Type = "height"
	TypeBMI           Type = "bmi"
	TypeSleep         Type = "sleep"
	TypeSteps         Type = "steps"
	TypeWater         Type = "water"
)

// Range is the inclusive band a metric type is considered healthy in.
type Range struct {
	Min float64
	Max float64
}

// NormalRanges maps each known metric type to its healthy band.
var NormalRanges = map[Type]Range{
	TypeWeight:        {50, 90},
	TypeBloodPressure: {90, 140},
	TypeHeartRate:     {60, 100},
	TypeBloodSugar:    {70, 100},
	TypeTemperature:   {36.1, 37.2},
	TypeHeight:        {140, 200},
	TypeBMI:           {18.5, 24.9},
	TypeSleep:         {7, 9},
	TypeSteps:         {8000, 15000},
	TypeWater:         {6, 10},
}

// Known reports whether t is one of the supported metric types.
func Known(t Type) bool {
	_, ok := NormalRanges[t]
	return ok
}

// Metric is a single recorded sample. Samples are append-only. Status is
// derived from the type's normal range when the sample is written.
type Metric struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Type       Type      `json:"type"`
	Value      float64   `json:"value"`
	Unit       string    `json:"unit,omitempty"`
	Status     Status    `json:"status,omitempty"`
	Notes      *string   `json:"notes,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
	CreatedAt  time.Time `json:"created_at"`
}
