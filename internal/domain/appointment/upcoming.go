package appointment

import (
	"sort"
	"time"
)

// MaxUpcoming caps the upcoming-appointment list shown on the dashboard.
const MaxUpcoming = 3

// Upcoming selects the next scheduled appointments strictly after now,
// soonest first, capped at MaxUpcoming. Completed and cancelled
// appointments never appear.
func Upcoming(appts []*Appointment, now time.Time) []*Appointment {
	var out []*Appointment
	for _, a := range appts {
		if a.Status != StatusScheduled {
			continue
		}
		if !a.Date.After(now) {
			continue
		}
		out = append(out, a)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	if len(out) > MaxUpcoming {
		out = out[:MaxUpcoming]
	}
	return out
}
