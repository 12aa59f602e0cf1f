package attendance

import (
	"math"
	"sort"
	"time"

	"github.com/staffhub/wfm-backend-go/internal/domain/attendance"
)

// DayContext carries the calendar facts the compiler cannot derive from
// events alone.
type DayContext struct {
	Weekend bool
	Holiday bool
	OnLeave bool
}

// CompileDailyRecord derives the daily record for one (employee, date) from
// that day's events plus policy. It is deterministic and side-effect free:
// identical inputs always produce identical records. Events are sorted by
// timestamp defensively; delivery order never changes the result.
func CompileDailyRecord(
	employeeID string,
	date time.Time,
	events []attendance.Event,
	pol attendance.Policy,
	dayCtx DayContext,
	loc *time.Location,
) attendance.DailyRecord {
	sorted := make([]attendance.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OccurredAt.Before(sorted[j].OccurredAt)
	})

	rec := attendance.DailyRecord{
		EmployeeID:      employeeID,
		Date:            date,
		OnApprovedLeave: dayCtx.OnLeave,
	}

	// Day envelope: first check-in, first check-out after it. Break
	// intervals pair up inside the envelope.
	for _, e := range sorted {
		switch e.Type {
		case attendance.EventCheckIn:
			if rec.CheckIn == nil {
				t := e.OccurredAt
				rec.CheckIn = &t
			}
		case attendance.EventCheckOut:
			if rec.CheckIn != nil && rec.CheckOut == nil {
				t := e.OccurredAt
				rec.CheckOut = &t
			}
		case attendance.EventBreakIn:
			if rec.CheckIn != nil && rec.CheckOut == nil && !hasOpenInterval(rec.Breaks) {
				rec.Breaks = append(rec.Breaks, attendance.BreakInterval{Start: e.OccurredAt})
			}
		case attendance.EventBreakOut:
			if n := len(rec.Breaks); n > 0 && !rec.Breaks[n-1].Closed() {
				t := e.OccurredAt
				rec.Breaks[n-1].End = &t
			}
		}
	}

	// Closed intervals only. An unclosed break at day's end is flagged and
	// excluded, never closed on the employee's behalf.
	var breakTotal time.Duration
	for _, b := range rec.Breaks {
		if b.Closed() {
			breakTotal += b.End.Sub(b.Start)
		} else {
			rec.HasOpenBreak = true
		}
	}
	rec.BreakHours = roundHours(breakTotal.Hours())

	if rec.CheckIn != nil && rec.CheckOut != nil {
		worked := rec.CheckOut.Sub(*rec.CheckIn) - breakTotal
		rec.TotalHours = roundHours(math.Max(0, worked.Hours()))
		rec.OvertimeHours = roundHours(math.Max(0, rec.TotalHours-pol.StandardShiftHours))
	}

	rec.Status = classify(rec, pol, dayCtx, loc)
	if rec.Status == attendance.StatusLate {
		rec.LateByMinutes = lateBy(*rec.CheckIn, date, pol, loc)
	}
	return rec
}

func classify(rec attendance.DailyRecord, pol attendance.Policy, dayCtx DayContext, loc *time.Location) attendance.DayStatus {
	// Calendar classification wins so weekend/holiday days stay out of the
	// working-day reconciliation; hour fields are still reported.
	if dayCtx.Weekend {
		return attendance.StatusWeekend
	}
	if dayCtx.Holiday {
		return attendance.StatusHoliday
	}

	if rec.CheckIn == nil {
		if dayCtx.OnLeave {
			return attendance.StatusLeave
		}
		return attendance.StatusAbsent
	}

	if rec.CheckOut == nil {
		// Day in progress, or left open: represented explicitly, never
		// guessed at.
		return attendance.StatusCheckedIn
	}

	if rec.TotalHours > 0 && rec.TotalHours < pol.HalfDayThresholdHours {
		return attendance.StatusHalfDay
	}

	if lateBy(*rec.CheckIn, rec.Date, pol, loc) > 0 {
		return attendance.StatusLate
	}

	return attendance.StatusPresent
}

// lateBy measures minutes past the grace limit (shift start plus grace),
// floored to whole minutes. Zero means on time.
func lateBy(checkIn time.Time, date time.Time, pol attendance.Policy, loc *time.Location) int {
	graceLimit := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc).
		Add(pol.ShiftStart).
		Add(time.Duration(pol.GraceMinutes) * time.Minute)
	diff := checkIn.Sub(graceLimit).Minutes()
	if diff <= 0 {
		return 0
	}
	return int(math.Floor(diff))
}

func hasOpenInterval(breaks []attendance.BreakInterval) bool {
	n := len(breaks)
	return n > 0 && !breaks[n-1].Closed()
}

// roundHours keeps derived hour values stable across recomputation
// regardless of float accumulation order.
func roundHours(h float64) float64 {
	return math.Round(h*100) / 100
}
