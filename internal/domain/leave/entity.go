package leave

import "time"

// LeaveDay is one approved leave date for one employee, already expanded
// from the request's date range by the leave workflow service.
type LeaveDay struct {
	EmployeeID string
	Date       time.Time
	LeaveType  *string
}
