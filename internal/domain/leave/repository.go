package leave

import (
	"context"
	"time"
)

// LeaveDayRepository is the read model over approved leave. The leave
// request workflow (submission, quota, approval) lives in another service;
// aggregation only consumes the approved dates.
type LeaveDayRepository interface {
	// ListApprovedDays returns the approved leave dates for one employee
	// with Date in [from, to] inclusive.
	ListApprovedDays(ctx context.Context, employeeID string, from, to time.Time) ([]LeaveDay, error)
}
