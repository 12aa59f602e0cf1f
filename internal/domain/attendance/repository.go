package attendance

import (
	"context"
	"time"
)

// EventLogRepository is the append-only store of attendance events. Events
// are immutable once appended; there is no update or delete.
type EventLogRepository interface {
	// Append persists one event and returns it with ID and CreatedAt set.
	Append(ctx context.Context, event Event) (Event, error)

	// ListByEmployeeAndDate returns the events for one employee on one
	// calendar day, ordered by OccurredAt ascending.
	ListByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]Event, error)

	// ListByEmployeeAndRange returns the events for one employee with
	// Date in [from, to] inclusive, ordered by OccurredAt ascending.
	ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]Event, error)

	// ListByRange returns events for every employee with Date in [from, to]
	// inclusive, ordered by employee then OccurredAt. Used by trend and
	// department projections.
	ListByRange(ctx context.Context, from, to time.Time) ([]Event, error)
}
