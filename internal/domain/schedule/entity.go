package schedule

import "time"

// Holiday is one organizational holiday. Holidays are excluded from the
// working-day denominator alongside the configured weekend days.
type Holiday struct {
	Date time.Time
	Name string
}
