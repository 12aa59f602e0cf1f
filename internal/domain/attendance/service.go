package attendance

import (
	"context"
)

// AttendanceService defines the attendance mutations and the today view.
// The acting employee is identified by the access-token claims in ctx.
type AttendanceService interface {
	// CheckIn opens the day for the authenticated employee.
	CheckIn(ctx context.Context) (CheckInResponse, error)

	// BreakIn starts a break.
	BreakIn(ctx context.Context) (BreakInResponse, error)

	// BreakOut closes the open break.
	BreakOut(ctx context.Context) (BreakOutResponse, error)

	// CheckOut closes the day. An open break is closed at the checkout
	// instant by appending an explicit break-out event first.
	CheckOut(ctx context.Context) (CheckOutResponse, error)

	// GetTodayStatus reports the current state machine position and the
	// open timestamps for the authenticated employee.
	GetTodayStatus(ctx context.Context) (TodayStatusResponse, error)

	// CloseDay appends a missed check-out for another employee on a prior
	// date (manager correction, audited via RecordedBy).
	CloseDay(ctx context.Context, req CloseDayRequest) (DailyRecordResponse, error)
}
