package metrics

import (
	"math"
	"sort"
	"time"
)

// DefaultWindowDays is the lookback applied when a request names none.
const DefaultWindowDays = 30

// WindowDays are the lookbacks the API accepts.
var WindowDays = map[int]bool{7: true, 30: true, 90: true, 365: true}

// Series filters samples to one type recorded within the last `days`
// days and returns them oldest first. Samples exactly at the cutoff are
// included.
func Series(samples []*Metric, t Type, days int, now time.Time) []*Metric {
	cutoff := now.Add(-time.Duration(days) * 24 * time.Hour)
	var out []*Metric
	for _, m := range samples {
		if m.Type != t {
			continue
		}
		if m.RecordedAt.Before(cutoff) {
			continue
		}
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RecordedAt.Before(out[j].RecordedAt)
	})
	return out
}

// Point is one chartable sample in a series, oldest first. Date is the
// short display label charting clients render on the axis.
type Point struct {
	Date      string    `json:"date"`
	Value     float64   `json:"value"`
	Status    Status    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// SeriesPoints maps a series to chartable points. Ascending timestamp
// order is preserved from Series.
func SeriesPoints(series []*Metric) []Point {
	points := make([]Point, 0, len(series))
	for _, m := range series {
		status := m.Status
		if status == "" {
			status = Classify(m.Type, m.Value)
		}
		points = append(points, Point{
			Date:      m.RecordedAt.Format("Jan 2"),
			Value:     m.Value,
			Status:    status,
			Timestamp: m.RecordedAt,
		})
	}
	return points
}

// Trend is the percentage change between the two most recent samples of
// one type, with the latest sample's value and status.
type Trend struct {
	Type   Type     `json:"type"`
	Latest float64  `json:"latest"`
	Status Status   `json:"status"`
	Change *float64 `json:"change,omitempty"`
}

// ChangePercent computes (latest-previous)/previous*100 over an
// oldest-first series. It needs at least two points; with fewer it
// reports false. A zero previous value yields IEEE Inf/NaN, which
// callers drop before serializing.
func ChangePercent(series []*Metric) (float64, bool) {
	if len(series) < 2 {
		return 0, false
	}
	latest := series[len(series)-1].Value
	previous := series[len(series)-2].Value
	return (latest - previous) / previous * 100, true
}

// Trends summarizes every known metric type that has at least one sample
// in the window: latest value, its status, and the percentage change when
// two or more samples exist. Non-finite changes are omitted.
func Trends(samples []*Metric, days int, now time.Time) []Trend {
	var out []Trend
	for t := range NormalRanges {
		series := Series(samples, t, days, now)
		if len(series) == 0 {
			continue
		}
		latest := series[len(series)-1].Value
		tr := Trend{Type: t, Latest: latest, Status: Classify(t, latest)}
		if change, ok := ChangePercent(series); ok && !math.IsInf(change, 0) && !math.IsNaN(change) {
			tr.Change = &change
		}
		out = append(out, tr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}

// HealthScore condenses the latest sample of each type into a single
// 0-100 score: good samples contribute 100, warning 70, critical 40,
// averaged and rounded. No samples at all scores zero.
func HealthScore(samples []*Metric) int {
	latest := make(map[Type]*Metric)
	for _, m := range samples {
		cur, ok := latest[m.Type]
		if !ok || m.RecordedAt.After(cur.RecordedAt) {
			latest[m.Type] = m
		}
	}
	if len(latest) == 0 {
		return 0
	}
	var sum float64
	for t, m := range latest {
		switch Classify(t, m.Value) {
		case StatusGood:
			sum += 100
		case StatusWarning:
			sum += 70
		default:
			sum += 40
		}
	}
	return int(math.Round(sum / float64(len(latest))))
}
