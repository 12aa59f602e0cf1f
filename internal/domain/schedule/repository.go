package schedule

import (
	"context"
	"time"
)

// HolidayRepository is the holiday calendar collaborator.
type HolidayRepository interface {
	// ListBetween returns holidays with Date in [from, to] inclusive.
	ListBetween(ctx context.Context, from, to time.Time) ([]Holiday, error)
}
