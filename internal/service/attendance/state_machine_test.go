package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/staffhub/wfm-backend-go/internal/domain/attendance"
)

func TestApply_Transitions(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		state     attendance.DayState
		event     attendance.EventType
		wantState attendance.DayState
		wantErr   error
	}{
		{"check in from fresh day", attendance.StateNotCheckedIn, attendance.EventCheckIn, attendance.StateCheckedIn, nil},
		{"break in while checked in", attendance.StateCheckedIn, attendance.EventBreakIn, attendance.StateOnBreak, nil},
		{"break out while on break", attendance.StateOnBreak, attendance.EventBreakOut, attendance.StateCheckedIn, nil},
		{"check out while checked in", attendance.StateCheckedIn, attendance.EventCheckOut, attendance.StateCheckedOut, nil},

		{"double check in", attendance.StateCheckedIn, attendance.EventCheckIn, attendance.StateCheckedIn, attendance.ErrAlreadyCheckedIn},
		{"check in while on break", attendance.StateOnBreak, attendance.EventCheckIn, attendance.StateOnBreak, attendance.ErrAlreadyCheckedIn},
		{"check in after check out", attendance.StateCheckedOut, attendance.EventCheckIn, attendance.StateCheckedOut, attendance.ErrAlreadyCheckedOutToday},
		{"break in before check in", attendance.StateNotCheckedIn, attendance.EventBreakIn, attendance.StateNotCheckedIn, attendance.ErrNotCheckedIn},
		{"double break in", attendance.StateOnBreak, attendance.EventBreakIn, attendance.StateOnBreak, attendance.ErrAlreadyOnBreak},
		{"break in after check out", attendance.StateCheckedOut, attendance.EventBreakIn, attendance.StateCheckedOut, attendance.ErrAlreadyCheckedOutToday},
		{"break out without break", attendance.StateCheckedIn, attendance.EventBreakOut, attendance.StateCheckedIn, attendance.ErrNotOnBreak},
		{"break out before check in", attendance.StateNotCheckedIn, attendance.EventBreakOut, attendance.StateNotCheckedIn, attendance.ErrNotOnBreak},
		{"check out before check in", attendance.StateNotCheckedIn, attendance.EventCheckOut, attendance.StateNotCheckedIn, attendance.ErrNotCheckedIn},
		{"check out while on break", attendance.StateOnBreak, attendance.EventCheckOut, attendance.StateOnBreak, attendance.ErrNotOnBreak},
		{"double check out", attendance.StateCheckedOut, attendance.EventCheckOut, attendance.StateCheckedOut, attendance.ErrAlreadyCheckedOutToday},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Apply(c.state, c.event)
			assert.Equal(t, c.wantState, got)
			if c.wantErr != nil {
				assert.ErrorIs(t, err, c.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestApply_InvalidEventType(t *testing.T) {
	t.Parallel()

	got, err := Apply(attendance.StateCheckedIn, attendance.EventType("LUNCH"))
	assert.Equal(t, attendance.StateCheckedIn, got)
	assert.ErrorIs(t, err, attendance.ErrInvalidEvent)
}

func eventAt(eventType attendance.EventType, hour, minute int) attendance.Event {
	return attendance.Event{
		EmployeeID: "emp-1",
		Type:       eventType,
		OccurredAt: time.Date(2025, 3, 10, hour, minute, 0, 0, time.UTC),
		Date:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestDeriveState(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		events []attendance.Event
		want   attendance.DayState
	}{
		{"no events", nil, attendance.StateNotCheckedIn},
		{"checked in", []attendance.Event{eventAt(attendance.EventCheckIn, 9, 0)}, attendance.StateCheckedIn},
		{"on break", []attendance.Event{
			eventAt(attendance.EventCheckIn, 9, 0),
			eventAt(attendance.EventBreakIn, 12, 0),
		}, attendance.StateOnBreak},
		{"back from break", []attendance.Event{
			eventAt(attendance.EventCheckIn, 9, 0),
			eventAt(attendance.EventBreakIn, 12, 0),
			eventAt(attendance.EventBreakOut, 12, 30),
		}, attendance.StateCheckedIn},
		{"full day", []attendance.Event{
			eventAt(attendance.EventCheckIn, 9, 0),
			eventAt(attendance.EventBreakIn, 12, 0),
			eventAt(attendance.EventBreakOut, 12, 30),
			eventAt(attendance.EventCheckOut, 17, 0),
		}, attendance.StateCheckedOut},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, DeriveState(c.events))
		})
	}
}

func TestOpenBreakStart(t *testing.T) {
	t.Parallel()

	open := []attendance.Event{
		eventAt(attendance.EventCheckIn, 9, 0),
		eventAt(attendance.EventBreakIn, 12, 0),
	}
	got := OpenBreakStart(open)
	if assert.NotNil(t, got) {
		assert.Equal(t, open[1].OccurredAt, *got)
	}

	closed := append(open, eventAt(attendance.EventBreakOut, 12, 30))
	assert.Nil(t, OpenBreakStart(closed))
}

func TestNextActions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"CHECK_IN"}, NextActions(attendance.StateNotCheckedIn))
	assert.Equal(t, []string{"BREAK_IN", "CHECK_OUT"}, NextActions(attendance.StateCheckedIn))
	assert.Equal(t, []string{"BREAK_OUT", "CHECK_OUT"}, NextActions(attendance.StateOnBreak))
	assert.Empty(t, NextActions(attendance.StateCheckedOut))
}
