package report

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	attendanceDomain "github.com/staffhub/wfm-backend-go/internal/domain/attendance"
	"github.com/staffhub/wfm-backend-go/internal/domain/employee"
	"github.com/staffhub/wfm-backend-go/internal/domain/leave"
	"github.com/staffhub/wfm-backend-go/internal/domain/report"
	scheduleDomain "github.com/staffhub/wfm-backend-go/internal/domain/schedule"
	attendanceService "github.com/staffhub/wfm-backend-go/internal/service/attendance"
	"github.com/staffhub/wfm-backend-go/internal/service/schedule"
)

type ReportServiceImpl struct {
	events    attendanceDomain.EventLogRepository
	employees employee.EmployeeRepository
	leaveDays leave.LeaveDayRepository
	holidays  scheduleDomain.HolidayRepository
	calc      *schedule.WorkingDaysCalculator
	policy    attendanceDomain.Policy
	loc       *time.Location
	now       func() time.Time
}

func NewReportService(
	events attendanceDomain.EventLogRepository,
	employees employee.EmployeeRepository,
	leaveDays leave.LeaveDayRepository,
	holidays scheduleDomain.HolidayRepository,
	calc *schedule.WorkingDaysCalculator,
	policy attendanceDomain.Policy,
	loc *time.Location,
) report.ReportService {
	return &ReportServiceImpl{
		events:    events,
		employees: employees,
		leaveDays: leaveDays,
		holidays:  holidays,
		calc:      calc,
		policy:    policy,
		loc:       loc,
		now:       time.Now,
	}
}

// monthBounds returns the first and last day of a month, normalized.
func monthBounds(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}

// monthInputs is everything one employee-month aggregation consumes.
type monthInputs struct {
	eventsByDay map[string][]attendanceDomain.Event
	leaveSet    map[string]bool
	holidaySet  map[string]bool
	holidays    []time.Time
}

func (r *ReportServiceImpl) loadMonthInputs(ctx context.Context, employeeID string, start, end time.Time) (monthInputs, error) {
	in := monthInputs{
		eventsByDay: make(map[string][]attendanceDomain.Event),
		leaveSet:    make(map[string]bool),
		holidaySet:  make(map[string]bool),
	}

	events, err := r.events.ListByEmployeeAndRange(ctx, employeeID, start, end)
	if err != nil {
		return monthInputs{}, fmt.Errorf("failed to list attendance events: %w", err)
	}
	for _, e := range events {
		key := attendanceDomain.DateKey(e.Date)
		in.eventsByDay[key] = append(in.eventsByDay[key], e)
	}

	leaveDays, err := r.leaveDays.ListApprovedDays(ctx, employeeID, start, end)
	if err != nil {
		return monthInputs{}, fmt.Errorf("failed to list approved leave days: %w", err)
	}
	for _, ld := range leaveDays {
		in.leaveSet[attendanceDomain.DateKey(ld.Date)] = true
	}

	holidays, err := r.holidays.ListBetween(ctx, start, end)
	if err != nil {
		return monthInputs{}, fmt.Errorf("failed to list holidays: %w", err)
	}
	for _, h := range holidays {
		in.holidaySet[attendanceDomain.DateKey(h.Date)] = true
		in.holidays = append(in.holidays, h.Date)
	}

	return in, nil
}

// aggregateMonth compiles every day of the month and folds the records into
// a MonthlySummary. Pure given its inputs; recomputed on every read.
func (r *ReportServiceImpl) aggregateMonth(
	emp employee.Employee,
	year, month int,
	in monthInputs,
) (report.MonthlySummary, []attendanceDomain.DailyRecord) {
	start, end := monthBounds(year, month)

	var (
		records     []attendanceDomain.DailyRecord
		presentDays int
		lateDays    int
		halfDays    int
		leaveDays   int
		workedHours float64
		workedCount int
		overtimeSum float64
	)

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := attendanceDomain.DateKey(d)
		dayCtx := attendanceService.DayContext{
			Weekend: r.calc.IsWeekend(d),
			Holiday: in.holidaySet[key],
			OnLeave: in.leaveSet[key],
		}

		rec := attendanceService.CompileDailyRecord(emp.ID, d, in.eventsByDay[key], r.policy, dayCtx, r.loc)
		records = append(records, rec)

		switch rec.Status {
		case attendanceDomain.StatusWeekend, attendanceDomain.StatusHoliday:
			// Excluded from both numerator and denominator.
			continue
		case attendanceDomain.StatusPresent:
			presentDays++
		case attendanceDomain.StatusLate:
			// Late still counts toward presence, tracked separately.
			presentDays++
			lateDays++
		case attendanceDomain.StatusHalfDay:
			halfDays++
		case attendanceDomain.StatusLeave:
			leaveDays++
		}

		switch rec.Status {
		case attendanceDomain.StatusPresent, attendanceDomain.StatusLate, attendanceDomain.StatusHalfDay:
			workedHours += rec.TotalHours
			workedCount++
			overtimeSum += rec.OvertimeHours
		}
	}

	workingDays := r.calc.Count(start, end, in.holidays)

	// absentDays is derived, never summed independently, so the four
	// counters always reconcile to workingDays.
	absentDays := workingDays - presentDays - halfDays - leaveDays
	if absentDays < 0 {
		absentDays = 0
	}

	rate := 0.0
	if workingDays > 0 {
		rate = (float64(presentDays) + 0.5*float64(halfDays)) / float64(workingDays) * 100
	}
	rate = math.Min(100, math.Max(0, rate))

	avgHours := 0.0
	if workedCount > 0 {
		avgHours = workedHours / float64(workedCount)
	}

	return report.MonthlySummary{
		EmployeeID:         emp.ID,
		EmployeeName:       emp.FullName,
		PeriodMonth:        month,
		PeriodYear:         year,
		WorkingDays:        workingDays,
		PresentDays:        presentDays,
		AbsentDays:         absentDays,
		LateDays:           lateDays,
		HalfDays:           halfDays,
		LeaveDays:          leaveDays,
		AttendanceRate:     math.Round(rate*100) / 100,
		AverageHours:       math.Round(avgHours*100) / 100,
		TotalOvertimeHours: math.Round(overtimeSum*100) / 100,
		GeneratedAt:        r.now().In(r.loc).Format("2006-01-02 15:04:05"),
	}, records
}

// GetMonthlySummary implements report.ReportService.
func (r *ReportServiceImpl) GetMonthlySummary(ctx context.Context, req report.MonthlySummaryRequest) (report.MonthlySummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlySummaryResponse{}, err
	}

	emp, err := r.employees.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return report.MonthlySummaryResponse{}, employee.ErrEmployeeNotFound
		}
		return report.MonthlySummaryResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	start, end := monthBounds(req.Year, req.Month)
	in, err := r.loadMonthInputs(ctx, emp.ID, start, end)
	if err != nil {
		return report.MonthlySummaryResponse{}, err
	}

	summary, records := r.aggregateMonth(emp, req.Year, req.Month, in)

	days := make([]attendanceDomain.DailyRecordResponse, 0, len(records))
	for _, rec := range records {
		days = append(days, attendanceDomain.MapDailyRecordToResponse(rec, emp.FullName, r.loc))
	}

	return report.MonthlySummaryResponse{
		Summary: summary,
		Days:    days,
	}, nil
}
