package metrics

import "fmt"

// Status grades a sample against its type's normal range.
type Status string

const (
	StatusGood     Status = "good"
	StatusWarning  Status = "warning"
	StatusCritical Status = "critical"
)

// Classify grades value for the given metric type. Values inside the
// normal band are good; values within 20% outside it are warning;
// anything further is critical. Types without a known range classify as
// good, so an unrecognized type never raises an alarm.
func Classify(t Type, value float64) Status {
	r, ok := NormalRanges[t]
	if !ok {
		return StatusGood
	}
	if value >= r.Min && value <= r.Max {
		return StatusGood
	}
	if value >= r.Min*0.8 && value <= r.Max*1.2 {
		return StatusWarning
	}
	return StatusCritical
}

// ValidateValue rejects samples that are physiologically implausible for
// their type. The accepted window is deliberately wider than the normal
// band: half the minimum up to twice the maximum. Unknown types are
// rejected outright.
func ValidateValue(t Type, value float64) error {
	r, ok := NormalRanges[t]
	if !ok {
		return fmt.Errorf("unknown metric type %q", t)
	}
	if value < r.Min*0.5 || value > r.Max*2 {
		return fmt.Errorf("value %g out of plausible range for %s", value, t)
	}
	return nil
}
