package schedule

import (
	"time"

	"github.com/staffhub/wfm-backend-go/internal/domain/attendance"
)

// WeekendSet is the organization's non-working weekdays.
type WeekendSet map[time.Weekday]bool

// DefaultWeekend is Saturday+Sunday.
func DefaultWeekend() WeekendSet {
	return WeekendSet{time.Saturday: true, time.Sunday: true}
}

// ParseWeekendSet builds a WeekendSet from weekday names ("Saturday",...).
// Unknown names are ignored; an empty input falls back to the default.
func ParseWeekendSet(names []string) WeekendSet {
	byName := map[string]time.Weekday{
		"Sunday":    time.Sunday,
		"Monday":    time.Monday,
		"Tuesday":   time.Tuesday,
		"Wednesday": time.Wednesday,
		"Thursday":  time.Thursday,
		"Friday":    time.Friday,
		"Saturday":  time.Saturday,
	}

	set := WeekendSet{}
	for _, name := range names {
		if d, ok := byName[name]; ok {
			set[d] = true
		}
	}
	if len(set) == 0 {
		return DefaultWeekend()
	}
	return set
}

// WorkingDaysCalculator counts expected working days: the attendance-rate
// denominator. It knows nothing about any individual employee's attendance.
type WorkingDaysCalculator struct {
	weekend WeekendSet
}

func NewWorkingDaysCalculator(weekend WeekendSet) *WorkingDaysCalculator {
	if len(weekend) == 0 {
		weekend = DefaultWeekend()
	}
	return &WorkingDaysCalculator{weekend: weekend}
}

// IsWeekend reports whether date falls on a configured weekend day.
func (c *WorkingDaysCalculator) IsWeekend(date time.Time) bool {
	return c.weekend[date.Weekday()]
}

// Count returns the number of calendar days in [start, end] inclusive that
// are neither weekend nor holiday. Returns 0 when end precedes start.
func (c *WorkingDaysCalculator) Count(start, end time.Time, holidays []time.Time) int {
	if end.Before(start) {
		return 0
	}

	holidaySet := make(map[string]bool, len(holidays))
	for _, h := range holidays {
		holidaySet[attendance.DateKey(h)] = true
	}

	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if c.IsWeekend(d) || holidaySet[attendance.DateKey(d)] {
			continue
		}
		count++
	}
	return count
}
