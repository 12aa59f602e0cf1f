package attendance

import (
	"time"

	"github.com/staffhub/wfm-backend-go/internal/domain/attendance"
)

// Apply validates one event against the current day state and returns the
// next state. Illegal transitions leave the state unchanged and return a
// distinct, reportable error.
//
//	NOT_CHECKED_IN → CHECKED_IN → ON_BREAK → CHECKED_IN → CHECKED_OUT
//
// CHECKED_OUT is terminal for the date.
func Apply(state attendance.DayState, eventType attendance.EventType) (attendance.DayState, error) {
	if !eventType.Valid() {
		return state, attendance.ErrInvalidEvent
	}

	switch eventType {
	case attendance.EventCheckIn:
		switch state {
		case attendance.StateNotCheckedIn:
			return attendance.StateCheckedIn, nil
		case attendance.StateCheckedOut:
			return state, attendance.ErrAlreadyCheckedOutToday
		default:
			return state, attendance.ErrAlreadyCheckedIn
		}

	case attendance.EventBreakIn:
		switch state {
		case attendance.StateCheckedIn:
			return attendance.StateOnBreak, nil
		case attendance.StateOnBreak:
			return state, attendance.ErrAlreadyOnBreak
		case attendance.StateCheckedOut:
			return state, attendance.ErrAlreadyCheckedOutToday
		default:
			return state, attendance.ErrNotCheckedIn
		}

	case attendance.EventBreakOut:
		switch state {
		case attendance.StateOnBreak:
			return attendance.StateCheckedIn, nil
		default:
			return state, attendance.ErrNotOnBreak
		}

	case attendance.EventCheckOut:
		switch state {
		case attendance.StateCheckedIn:
			return attendance.StateCheckedOut, nil
		case attendance.StateOnBreak:
			// The service closes the break first; the machine itself never
			// skips a state.
			return state, attendance.ErrNotOnBreak
		case attendance.StateCheckedOut:
			return state, attendance.ErrAlreadyCheckedOutToday
		default:
			return state, attendance.ErrNotCheckedIn
		}
	}

	return state, attendance.ErrInvalidEvent
}

// DeriveState folds a day's events (already validated on append) into the
// current state machine position.
func DeriveState(events []attendance.Event) attendance.DayState {
	state := attendance.StateNotCheckedIn
	for _, e := range events {
		next, err := Apply(state, e.Type)
		if err != nil {
			// Appends go through Apply, so a stored sequence never produces
			// an illegal transition; skip rather than guess if it somehow
			// does.
			continue
		}
		state = next
	}
	return state
}

// OpenBreakStart returns the start instant of the currently open break, or
// nil if no break is open.
func OpenBreakStart(events []attendance.Event) *time.Time {
	var open *time.Time
	for _, e := range events {
		switch e.Type {
		case attendance.EventBreakIn:
			t := e.OccurredAt
			open = &t
		case attendance.EventBreakOut:
			open = nil
		}
	}
	return open
}

// NextActions lists the event types the machine would accept from state, in
// wire form for the today-status payload.
func NextActions(state attendance.DayState) []string {
	switch state {
	case attendance.StateNotCheckedIn:
		return []string{string(attendance.EventCheckIn)}
	case attendance.StateCheckedIn:
		return []string{string(attendance.EventBreakIn), string(attendance.EventCheckOut)}
	case attendance.StateOnBreak:
		return []string{string(attendance.EventBreakOut), string(attendance.EventCheckOut)}
	default:
		return []string{}
	}
}
