package attendance

import (
	"time"
)

// EventType is one of the four immutable attendance actions.
type EventType string

const (
	EventCheckIn  EventType = "CHECK_IN"
	EventBreakIn  EventType = "BREAK_IN"
	EventBreakOut EventType = "BREAK_OUT"
	EventCheckOut EventType = "CHECK_OUT"
)

func (t EventType) Valid() bool {
	switch t {
	case EventCheckIn, EventBreakIn, EventBreakOut, EventCheckOut:
		return true
	}
	return false
}

// DayState is the per-(employee, date) state machine position.
type DayState string

const (
	StateNotCheckedIn DayState = "NOT_CHECKED_IN"
	StateCheckedIn    DayState = "CHECKED_IN"
	StateOnBreak      DayState = "ON_BREAK"
	StateCheckedOut   DayState = "CHECKED_OUT"
)

// Event is one immutable timestamped attendance action. Corrections append
// new events (with RecordedBy set to the acting admin); rows are never
// mutated in place.
type Event struct {
	ID         string
	EmployeeID string
	Type       EventType
	// OccurredAt is the absolute instant, stored UTC.
	OccurredAt time.Time
	// Date is the organizational calendar day the event belongs to. The day
	// boundary is the configured organization timezone, not UTC midnight.
	Date       time.Time
	RecordedBy *string
	CreatedAt  time.Time
}

// DayStatus is the closed set of daily classifications. Invalid values are
// rejected at the compiler boundary so a stray string can never propagate
// into reports.
type DayStatus string

const (
	StatusPresent   DayStatus = "PRESENT"
	StatusLate      DayStatus = "LATE"
	StatusHalfDay   DayStatus = "HALF_DAY"
	StatusAbsent    DayStatus = "ABSENT"
	StatusLeave     DayStatus = "LEAVE"
	StatusWeekend   DayStatus = "WEEKEND"
	StatusHoliday   DayStatus = "HOLIDAY"
	StatusCheckedIn DayStatus = "CHECKED_IN"
)

func (s DayStatus) Valid() bool {
	switch s {
	case StatusPresent, StatusLate, StatusHalfDay, StatusAbsent,
		StatusLeave, StatusWeekend, StatusHoliday, StatusCheckedIn:
		return true
	}
	return false
}

// BreakInterval is one break inside the day envelope. End is nil while the
// break is still open.
type BreakInterval struct {
	Start time.Time
	End   *time.Time
}

func (b BreakInterval) Closed() bool {
	return b.End != nil
}

// DailyRecord is the derived per-day summary. It is a pure function of the
// day's events plus Policy; it is recomputed on read and never edited.
type DailyRecord struct {
	EmployeeID string
	Date       time.Time
	CheckIn    *time.Time
	CheckOut   *time.Time
	Breaks     []BreakInterval
	Status     DayStatus

	TotalHours    float64
	BreakHours    float64
	OvertimeHours float64
	// LateByMinutes is set only when Status is LATE.
	LateByMinutes int

	// HasOpenBreak flags a break that was never closed. The open interval is
	// excluded from BreakHours, never silently closed.
	HasOpenBreak bool
	// OnApprovedLeave notes that an approved leave existed for the date even
	// though the employee physically attended (attendance is ground truth).
	OnApprovedLeave bool
}

// Policy is the attendance configuration every derivation depends on.
type Policy struct {
	// ShiftStart is the offset from local midnight, e.g. 9h for 09:00.
	ShiftStart            time.Duration
	GraceMinutes          int
	HalfDayThresholdHours float64
	StandardShiftHours    float64
}

// DateOf maps an absolute instant to its organizational calendar day,
// normalized to midnight UTC so dates compare and format cleanly.
func DateOf(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// DateKey formats a normalized date for map keys and wire payloads.
func DateKey(date time.Time) string {
	return date.Format("2006-01-02")
}
