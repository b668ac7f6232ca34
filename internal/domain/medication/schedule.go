package medication

import (
	"sort"
	"time"
)

// MaxUpcomingDoses caps the upcoming-dose list shown on the dashboard.
const MaxUpcomingDoses = 3

// UpcomingDose is one occurrence of a medication's configured daily time.
type UpcomingDose struct {
	Medication *Medication `json:"medication"`
	Time       string      `json:"time"`
	IsPast     bool        `json:"is_past"`
}

// UpcomingDoses derives the next doses due today across all active
// medications: each active medication expands to one candidate per
// configured daily time, candidates already past today are discarded, the
// rest are sorted ascending by their zero-padded "HH:MM" string, and the
// first MaxUpcomingDoses are returned.
//
// When every time of a medication has passed for today, none of its doses
// appear; the list does not roll over to tomorrow. Empty input yields empty
// output.
func UpcomingDoses(meds []*Medication, now time.Time) []UpcomingDose {
	var doses []UpcomingDose
	for _, m := range meds {
		if !m.IsActive(now) {
			continue
		}
		for _, t := range m.Times {
			if pastToday(t, now) {
				continue
			}
			doses = append(doses, UpcomingDose{Medication: m, Time: t})
		}
	}

	// Lexicographic order is chronological order for zero-padded "HH:MM".
	sort.SliceStable(doses, func(i, j int) bool {
		return doses[i].Time < doses[j].Time
	})

	if len(doses) > MaxUpcomingDoses {
		doses = doses[:MaxUpcomingDoses]
	}
	return doses
}

// pastToday reports whether the "HH:MM" occurrence, placed on today's date,
// is strictly before now. Unparseable times are treated as not past.
func pastToday(hhmm string, now time.Time) bool {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return false
	}
	occurrence := time.Date(now.Year(), now.Month(), now.Day(),
		t.Hour(), t.Minute(), 0, 0, now.Location())
	return occurrence.Before(now)
}
