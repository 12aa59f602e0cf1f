package attendance

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhub/wfm-backend-go/internal/domain/attendance"
)

var testPolicy = attendance.Policy{
	ShiftStart:            9 * time.Hour,
	GraceMinutes:          15,
	HalfDayThresholdHours: 6,
	StandardShiftHours:    8,
}

var testDate = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func dayEvents(pairs ...struct {
	t attendance.EventType
	h int
	m int
}) []attendance.Event {
	events := make([]attendance.Event, 0, len(pairs))
	for _, p := range pairs {
		events = append(events, attendance.Event{
			EmployeeID: "emp-1",
			Type:       p.t,
			OccurredAt: time.Date(2025, 3, 10, p.h, p.m, 0, 0, time.UTC),
			Date:       testDate,
		})
	}
	return events
}

func ev(t attendance.EventType, h, m int) struct {
	t attendance.EventType
	h int
	m int
} {
	return struct {
		t attendance.EventType
		h int
		m int
	}{t, h, m}
}

func TestCompileDailyRecord_FullDayWithBreak(t *testing.T) {
	t.Parallel()

	events := dayEvents(
		ev(attendance.EventCheckIn, 9, 0),
		ev(attendance.EventBreakIn, 13, 0),
		ev(attendance.EventBreakOut, 13, 30),
		ev(attendance.EventCheckOut, 18, 0),
	)

	rec := CompileDailyRecord("emp-1", testDate, events, testPolicy, DayContext{}, time.UTC)

	require.NotNil(t, rec.CheckIn)
	require.NotNil(t, rec.CheckOut)
	assert.Equal(t, attendance.StatusPresent, rec.Status)
	assert.Equal(t, 8.5, rec.TotalHours)
	assert.Equal(t, 0.5, rec.BreakHours)
	assert.Equal(t, 0.5, rec.OvertimeHours)
	assert.Equal(t, 0, rec.LateByMinutes)
	assert.False(t, rec.HasOpenBreak)
}

func TestCompileDailyRecord_LateCheckIn(t *testing.T) {
	t.Parallel()

	events := dayEvents(
		ev(attendance.EventCheckIn, 9, 45),
		ev(attendance.EventCheckOut, 18, 0),
	)

	rec := CompileDailyRecord("emp-1", testDate, events, testPolicy, DayContext{}, time.UTC)

	assert.Equal(t, attendance.StatusLate, rec.Status)
	assert.Equal(t, 30, rec.LateByMinutes)
	assert.Equal(t, 8.25, rec.TotalHours)
}

func TestCompileDailyRecord_WithinGraceIsPresent(t *testing.T) {
	t.Parallel()

	events := dayEvents(
		ev(attendance.EventCheckIn, 9, 15),
		ev(attendance.EventCheckOut, 17, 0),
	)

	rec := CompileDailyRecord("emp-1", testDate, events, testPolicy, DayContext{}, time.UTC)

	assert.Equal(t, attendance.StatusPresent, rec.Status)
	assert.Equal(t, 0, rec.LateByMinutes)
}

func TestCompileDailyRecord_HalfDay(t *testing.T) {
	t.Parallel()

	events := dayEvents(
		ev(attendance.EventCheckIn, 9, 0),
		ev(attendance.EventCheckOut, 13, 0),
	)

	rec := CompileDailyRecord("emp-1", testDate, events, testPolicy, DayContext{}, time.UTC)

	assert.Equal(t, attendance.StatusHalfDay, rec.Status)
	assert.Equal(t, 4.0, rec.TotalHours)
	assert.Equal(t, 0.0, rec.OvertimeHours)
}

func TestCompileDailyRecord_HalfDayOverridesLate(t *testing.T) {
	t.Parallel()

	// Late arrival and a short day; the stronger classification wins.
	events := dayEvents(
		ev(attendance.EventCheckIn, 10, 0),
		ev(attendance.EventCheckOut, 13, 0),
	)

	rec := CompileDailyRecord("emp-1", testDate, events, testPolicy, DayContext{}, time.UTC)

	assert.Equal(t, attendance.StatusHalfDay, rec.Status)
	assert.Equal(t, 0, rec.LateByMinutes)
}

func TestCompileDailyRecord_NoEventsIsAbsent(t *testing.T) {
	t.Parallel()

	rec := CompileDailyRecord("emp-1", testDate, nil, testPolicy, DayContext{}, time.UTC)

	assert.Equal(t, attendance.StatusAbsent, rec.Status)
	assert.Nil(t, rec.CheckIn)
	assert.Nil(t, rec.CheckOut)
	assert.Equal(t, 0.0, rec.TotalHours)
}

func TestCompileDailyRecord_NoEventsOnLeave(t *testing.T) {
	t.Parallel()

	rec := CompileDailyRecord("emp-1", testDate, nil, testPolicy, DayContext{OnLeave: true}, time.UTC)

	assert.Equal(t, attendance.StatusLeave, rec.Status)
	assert.True(t, rec.OnApprovedLeave)
}

func TestCompileDailyRecord_LeaveWithCheckInCountsAsWorked(t *testing.T) {
	t.Parallel()

	events := dayEvents(
		ev(attendance.EventCheckIn, 9, 0),
		ev(attendance.EventCheckOut, 17, 0),
	)

	rec := CompileDailyRecord("emp-1", testDate, events, testPolicy, DayContext{OnLeave: true}, time.UTC)

	assert.Equal(t, attendance.StatusPresent, rec.Status)
	assert.Equal(t, 8.0, rec.TotalHours)
}

func TestCompileDailyRecord_OpenDayIsCheckedIn(t *testing.T) {
	t.Parallel()

	events := dayEvents(ev(attendance.EventCheckIn, 9, 0))

	rec := CompileDailyRecord("emp-1", testDate, events, testPolicy, DayContext{}, time.UTC)

	assert.Equal(t, attendance.StatusCheckedIn, rec.Status)
	assert.Equal(t, 0.0, rec.TotalHours)
	assert.Nil(t, rec.CheckOut)
}

func TestCompileDailyRecord_WeekendAndHolidayWin(t *testing.T) {
	t.Parallel()

	events := dayEvents(
		ev(attendance.EventCheckIn, 9, 0),
		ev(attendance.EventCheckOut, 17, 0),
	)

	weekend := CompileDailyRecord("emp-1", testDate, events, testPolicy, DayContext{Weekend: true}, time.UTC)
	assert.Equal(t, attendance.StatusWeekend, weekend.Status)
	assert.Equal(t, 8.0, weekend.TotalHours)

	holiday := CompileDailyRecord("emp-1", testDate, events, testPolicy, DayContext{Holiday: true}, time.UTC)
	assert.Equal(t, attendance.StatusHoliday, holiday.Status)
}

func TestCompileDailyRecord_OpenBreakExcluded(t *testing.T) {
	t.Parallel()

	events := dayEvents(
		ev(attendance.EventCheckIn, 9, 0),
		ev(attendance.EventBreakIn, 12, 0),
		ev(attendance.EventBreakOut, 12, 30),
		ev(attendance.EventBreakIn, 16, 0),
	)

	rec := CompileDailyRecord("emp-1", testDate, events, testPolicy, DayContext{}, time.UTC)

	assert.True(t, rec.HasOpenBreak)
	assert.Equal(t, 0.5, rec.BreakHours)
}

func TestCompileDailyRecord_OvertimeAfterStandardShift(t *testing.T) {
	t.Parallel()

	events := dayEvents(
		ev(attendance.EventCheckIn, 9, 0),
		ev(attendance.EventCheckOut, 19, 30),
	)

	rec := CompileDailyRecord("emp-1", testDate, events, testPolicy, DayContext{}, time.UTC)

	assert.Equal(t, 10.5, rec.TotalHours)
	assert.Equal(t, 2.5, rec.OvertimeHours)
}

func TestCompileDailyRecord_DeliveryOrderIrrelevant(t *testing.T) {
	t.Parallel()

	events := dayEvents(
		ev(attendance.EventCheckIn, 9, 0),
		ev(attendance.EventBreakIn, 13, 0),
		ev(attendance.EventBreakOut, 13, 30),
		ev(attendance.EventCheckOut, 18, 0),
	)
	want := CompileDailyRecord("emp-1", testDate, events, testPolicy, DayContext{}, time.UTC)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := make([]attendance.Event, len(events))
		copy(shuffled, events)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got := CompileDailyRecord("emp-1", testDate, shuffled, testPolicy, DayContext{}, time.UTC)
		assert.Equal(t, want, got)
	}
}

func TestCompileDailyRecord_Deterministic(t *testing.T) {
	t.Parallel()

	events := dayEvents(
		ev(attendance.EventCheckIn, 9, 7),
		ev(attendance.EventBreakIn, 12, 11),
		ev(attendance.EventBreakOut, 12, 43),
		ev(attendance.EventCheckOut, 17, 58),
	)

	first := CompileDailyRecord("emp-1", testDate, events, testPolicy, DayContext{}, time.UTC)
	second := CompileDailyRecord("emp-1", testDate, events, testPolicy, DayContext{}, time.UTC)
	assert.Equal(t, first, second)
}
