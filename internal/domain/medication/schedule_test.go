package medication

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func med(name string, times []string, endDate *time.Time) *Medication {
	return &Medication{
		Name:    name,
		Dosage:  "1 tablet",
		Times:   times,
		EndDate: endDate,
	}
}

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 10, hour, min, 0, 0, time.UTC)
}

func TestUpcomingDosesFiltersPastTimes(t *testing.T) {
	meds := []*Medication{med("Lisinopril", []string{"09:00", "14:00", "20:00"}, nil)}

	doses := UpcomingDoses(meds, at(15, 0))
	require.Len(t, doses, 1)
	assert.Equal(t, "20:00", doses[0].Time)
}

func TestUpcomingDosesNoRolloverToTomorrow(t *testing.T) {
	meds := []*Medication{med("Lisinopril", []string{"06:00", "08:00"}, nil)}

	doses := UpcomingDoses(meds, at(22, 0))
	assert.Empty(t, doses)
}

func TestUpcomingDosesSortedAndCapped(t *testing.T) {
	meds := []*Medication{
		med("A", []string{"21:00", "18:00"}, nil),
		med("B", []string{"19:00", "20:00"}, nil),
	}

	doses := UpcomingDoses(meds, at(15, 0))
	require.Len(t, doses, MaxUpcomingDoses)
	assert.Equal(t, "18:00", doses[0].Time)
	assert.Equal(t, "19:00", doses[1].Time)
	assert.Equal(t, "20:00", doses[2].Time)
}

func TestUpcomingDosesSkipsInactiveMedications(t *testing.T) {
	yesterday := at(0, 0).Add(-24 * time.Hour)
	tomorrow := at(0, 0).Add(48 * time.Hour)
	meds := []*Medication{
		med("Expired", []string{"18:00"}, &yesterday),
		med("Active", []string{"19:00"}, &tomorrow),
		med("OpenEnded", []string{"20:00"}, nil),
	}

	doses := UpcomingDoses(meds, at(15, 0))
	require.Len(t, doses, 2)
	assert.Equal(t, "Active", doses[0].Medication.Name)
	assert.Equal(t, "OpenEnded", doses[1].Medication.Name)
}

func TestUpcomingDosesExactTimeNotPast(t *testing.T) {
	meds := []*Medication{med("A", []string{"15:00"}, nil)}

	doses := UpcomingDoses(meds, at(15, 0))
	require.Len(t, doses, 1)
	assert.Equal(t, "15:00", doses[0].Time)
}

func TestUpcomingDosesUnparseableTimeKept(t *testing.T) {
	meds := []*Medication{med("A", []string{"not-a-time"}, nil)}

	doses := UpcomingDoses(meds, at(23, 59))
	require.Len(t, doses, 1)
	assert.Equal(t, "not-a-time", doses[0].Time)
}

func TestUpcomingDosesEmptyInput(t *testing.T) {
	assert.Empty(t, UpcomingDoses(nil, at(12, 0)))
}
