package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/staffhub/wfm-backend-go/internal/domain/attendance"
	"github.com/staffhub/wfm-backend-go/internal/domain/employee"
	"github.com/staffhub/wfm-backend-go/internal/pkg/keylock"
	"github.com/staffhub/wfm-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	events    attendance.EventLogRepository
	employees employee.EmployeeRepository
	policy    attendance.Policy
	loc       *time.Location
	locks     *keylock.KeyedMutex
	now       func() time.Time
}

func NewAttendanceService(
	events attendance.EventLogRepository,
	employees employee.EmployeeRepository,
	policy attendance.Policy,
	loc *time.Location,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		events:    events,
		employees: employees,
		policy:    policy,
		loc:       loc,
		locks:     keylock.New(),
		now:       time.Now,
	}
}

// employeeIDFromClaims extracts the acting employee from the access token.
func employeeIDFromClaims(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing or invalid")
	}
	return employeeID, nil
}

// lockKey serializes mutations per (employee, organizational day).
func lockKey(employeeID string, date time.Time) string {
	return employeeID + ":" + attendance.DateKey(date)
}

// appendEvent runs the read-state → validate → append sequence under the
// day lock. It returns the appended event and the full day's events
// including it.
func (a *AttendanceServiceImpl) appendEvent(
	ctx context.Context,
	employeeID string,
	eventType attendance.EventType,
	occurredAt time.Time,
	recordedBy *string,
) (attendance.Event, []attendance.Event, error) {
	date := attendance.DateOf(occurredAt, a.loc)

	unlock := a.locks.Lock(lockKey(employeeID, date))
	defer unlock()

	events, err := a.events.ListByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.Event{}, nil, fmt.Errorf("failed to list events for day: %w", err)
	}

	// Events for a day are processed in timestamp order; an event at or
	// before the newest recorded one is rejected outright.
	if n := len(events); n > 0 && !occurredAt.After(events[n-1].OccurredAt) {
		return attendance.Event{}, nil, attendance.ErrOutOfOrderEvent
	}

	state := DeriveState(events)

	var appended []attendance.Event

	// Checking out while on break closes the break at the checkout instant
	// with an explicit event; the break is never silently swallowed.
	if eventType == attendance.EventCheckOut && state == attendance.StateOnBreak {
		next, err := Apply(state, attendance.EventBreakOut)
		if err != nil {
			return attendance.Event{}, nil, err
		}
		closing, err := a.events.Append(ctx, attendance.Event{
			EmployeeID: employeeID,
			Type:       attendance.EventBreakOut,
			OccurredAt: occurredAt,
			Date:       date,
			RecordedBy: recordedBy,
		})
		if err != nil {
			return attendance.Event{}, nil, fmt.Errorf("failed to close open break: %w", err)
		}
		appended = append(appended, closing)
		state = next
	}

	if _, err := Apply(state, eventType); err != nil {
		return attendance.Event{}, nil, err
	}

	event, err := a.events.Append(ctx, attendance.Event{
		EmployeeID: employeeID,
		Type:       eventType,
		OccurredAt: occurredAt,
		Date:       date,
		RecordedBy: recordedBy,
	})
	if err != nil {
		return attendance.Event{}, nil, fmt.Errorf("failed to append attendance event: %w", err)
	}
	appended = append(appended, event)

	return event, append(events, appended...), nil
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context) (attendance.CheckInResponse, error) {
	employeeID, err := employeeIDFromClaims(ctx)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	now := a.now().UTC()
	event, _, err := a.appendEvent(ctx, employeeID, attendance.EventCheckIn, now, nil)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	status := attendance.StatusPresent
	if lateBy(now, event.Date, a.policy, a.loc) > 0 {
		status = attendance.StatusLate
	}

	return attendance.CheckInResponse{
		EmployeeID:  employeeID,
		Date:        attendance.DateKey(event.Date),
		CheckInTime: now.In(a.loc).Format("2006-01-02 15:04:05"),
		Status:      string(status),
	}, nil
}

// BreakIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) BreakIn(ctx context.Context) (attendance.BreakInResponse, error) {
	employeeID, err := employeeIDFromClaims(ctx)
	if err != nil {
		return attendance.BreakInResponse{}, err
	}

	now := a.now().UTC()
	event, _, err := a.appendEvent(ctx, employeeID, attendance.EventBreakIn, now, nil)
	if err != nil {
		return attendance.BreakInResponse{}, err
	}

	return attendance.BreakInResponse{
		EmployeeID:     employeeID,
		Date:           attendance.DateKey(event.Date),
		BreakStartTime: now.In(a.loc).Format("2006-01-02 15:04:05"),
	}, nil
}

// BreakOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) BreakOut(ctx context.Context) (attendance.BreakOutResponse, error) {
	employeeID, err := employeeIDFromClaims(ctx)
	if err != nil {
		return attendance.BreakOutResponse{}, err
	}

	now := a.now().UTC()
	date := attendance.DateOf(now, a.loc)

	before, err := a.events.ListByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.BreakOutResponse{}, fmt.Errorf("failed to list events for day: %w", err)
	}
	breakStart := OpenBreakStart(before)

	event, _, err := a.appendEvent(ctx, employeeID, attendance.EventBreakOut, now, nil)
	if err != nil {
		return attendance.BreakOutResponse{}, err
	}

	duration := 0
	if breakStart != nil {
		duration = int(math.Floor(now.Sub(*breakStart).Minutes()))
	}

	return attendance.BreakOutResponse{
		EmployeeID:           employeeID,
		Date:                 attendance.DateKey(event.Date),
		BreakEndTime:         now.In(a.loc).Format("2006-01-02 15:04:05"),
		BreakDurationMinutes: duration,
	}, nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context) (attendance.CheckOutResponse, error) {
	employeeID, err := employeeIDFromClaims(ctx)
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}

	now := a.now().UTC()
	event, events, err := a.appendEvent(ctx, employeeID, attendance.EventCheckOut, now, nil)
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}

	rec := CompileDailyRecord(employeeID, event.Date, events, a.policy, DayContext{}, a.loc)

	return attendance.CheckOutResponse{
		EmployeeID:   employeeID,
		Date:         attendance.DateKey(event.Date),
		CheckOutTime: now.In(a.loc).Format("2006-01-02 15:04:05"),
		TotalHours:   rec.TotalHours,
	}, nil
}

// GetTodayStatus implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetTodayStatus(ctx context.Context) (attendance.TodayStatusResponse, error) {
	employeeID, err := employeeIDFromClaims(ctx)
	if err != nil {
		return attendance.TodayStatusResponse{}, err
	}

	now := a.now().UTC()
	date := attendance.DateOf(now, a.loc)

	events, err := a.events.ListByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.TodayStatusResponse{}, fmt.Errorf("failed to list events for day: %w", err)
	}

	state := DeriveState(events)
	rec := CompileDailyRecord(employeeID, date, events, a.policy, DayContext{}, a.loc)

	return attendance.TodayStatusResponse{
		EmployeeID:  employeeID,
		Date:        attendance.DateKey(date),
		State:       state,
		CheckIn:     wireTime(rec.CheckIn, a.loc),
		CheckOut:    wireTime(rec.CheckOut, a.loc),
		BreakStart:  wireTime(OpenBreakStart(events), a.loc),
		NextActions: NextActions(state),
	}, nil
}

// CloseDay implements attendance.AttendanceService. A manager appends the
// missed check-out for a day left open; the event carries the acting
// manager's id for audit.
func (a *AttendanceServiceImpl) CloseDay(ctx context.Context, req attendance.CloseDayRequest) (attendance.DailyRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DailyRecordResponse{}, err
	}

	actorID, err := employeeIDFromClaims(ctx)
	if err != nil {
		return attendance.DailyRecordResponse{}, err
	}

	emp, err := a.employees.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.DailyRecordResponse{}, employee.ErrEmployeeNotFound
		}
		return attendance.DailyRecordResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	checkOutAt, _ := time.Parse(time.RFC3339, req.CheckOutTime)
	checkOutAt = checkOutAt.UTC()

	reqDate, _ := time.Parse("2006-01-02", req.Date)
	if !attendance.DateOf(checkOutAt, a.loc).Equal(reqDate) {
		return attendance.DailyRecordResponse{}, validator.ValidationErrors{{
			Field:   "checkOutTime",
			Message: "checkOutTime must fall on the requested date",
		}}
	}

	_, events, err := a.appendEvent(ctx, req.EmployeeID, attendance.EventCheckOut, checkOutAt, &actorID)
	if err != nil {
		return attendance.DailyRecordResponse{}, err
	}

	rec := CompileDailyRecord(req.EmployeeID, reqDate, events, a.policy, DayContext{}, a.loc)
	return attendance.MapDailyRecordToResponse(rec, emp.FullName, a.loc), nil
}

func wireTime(t *time.Time, loc *time.Location) *string {
	if t == nil {
		return nil
	}
	formatted := t.In(loc).Format("2006-01-02 15:04:05")
	return &formatted
}
