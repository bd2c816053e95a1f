package reports

import (
	"time"

	"github.com/DamianMlM/yummy-bakery-web/internal/models"
)

// Range is an inclusive local-day interval. Build it with NewRange so the
// bounds are normalized to 00:00:00 and 23:59:59 regardless of the
// time-of-day precision of the inputs.
//
// Callers must hand in Start <= End; the dashboard clamps a reversed pair
// at the input boundary before it ever reaches here.
type Range struct {
	Start time.Time
	End   time.Time
}

func NewRange(start, end time.Time) Range {
	return Range{Start: dayStart(start), End: dayEnd(end)}
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// IsSingleDay drives the time-series bucketing: hours for a single day,
// calendar days otherwise.
func (r Range) IsSingleDay() bool {
	y1, m1, d1 := r.Start.Date()
	y2, m2, d2 := r.End.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Filter narrows orders to those created inside the range, both ends
// inclusive.
func Filter(orders []models.Order, r Range) []models.Order {
	filtered := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if r.Contains(o.CreatedAt) {
			filtered = append(filtered, o)
		}
	}
	return filtered
}
