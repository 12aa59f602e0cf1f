package attendance

import "errors"

// State-transition errors. Each rejection tells the caller which prior
// action is required, never a generic failure.
var (
	ErrAlreadyCheckedIn       = errors.New("you have already checked in today")
	ErrNotCheckedIn           = errors.New("you have not checked in today: check in first")
	ErrAlreadyOnBreak         = errors.New("you are already on break: break out first")
	ErrNotOnBreak             = errors.New("you are not on break: break in first")
	ErrAlreadyCheckedOutToday = errors.New("you have already checked out today: the day is closed")
)

// General errors
var (
	ErrOutOfOrderEvent = errors.New("event is not newer than the latest recorded event for this day")
	ErrInvalidEvent    = errors.New("invalid attendance event type")
	ErrDayNotOpen      = errors.New("no open attendance session exists for this day")
)
