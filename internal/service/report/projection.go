package report

import (
	"context"
	"fmt"
	"math"
	"sort"

	attendanceDomain "github.com/staffhub/wfm-backend-go/internal/domain/attendance"
	"github.com/staffhub/wfm-backend-go/internal/domain/report"
	attendanceService "github.com/staffhub/wfm-backend-go/internal/service/attendance"
)

// Read-side projections. Nothing here re-derives attendance facts: every
// number is a fold over aggregateMonth / CompileDailyRecord output.

// GetDepartmentSummary implements report.ReportService.
func (r *ReportServiceImpl) GetDepartmentSummary(ctx context.Context, req report.DepartmentSummaryRequest) (report.DepartmentSummaryReport, error) {
	if err := req.Validate(); err != nil {
		return report.DepartmentSummaryReport{}, err
	}

	employees, err := r.employees.ListActive(ctx)
	if err != nil {
		return report.DepartmentSummaryReport{}, fmt.Errorf("failed to list employees: %w", err)
	}

	start, end := monthBounds(req.Year, req.Month)

	type bucket struct {
		summary report.DepartmentSummary
		rateSum float64
	}
	buckets := make(map[string]*bucket)

	for _, emp := range employees {
		in, err := r.loadMonthInputs(ctx, emp.ID, start, end)
		if err != nil {
			return report.DepartmentSummaryReport{}, err
		}
		summary, _ := r.aggregateMonth(emp, req.Year, req.Month, in)

		b, ok := buckets[emp.Department]
		if !ok {
			b = &bucket{summary: report.DepartmentSummary{Department: emp.Department}}
			buckets[emp.Department] = b
		}
		b.summary.Employees++
		b.summary.PresentDays += summary.PresentDays
		b.summary.AbsentDays += summary.AbsentDays
		b.summary.LateDays += summary.LateDays
		b.summary.HalfDays += summary.HalfDays
		b.summary.LeaveDays += summary.LeaveDays
		b.summary.TotalOvertimeHours += summary.TotalOvertimeHours
		b.rateSum += summary.AttendanceRate
	}

	departments := make([]report.DepartmentSummary, 0, len(buckets))
	for _, b := range buckets {
		if b.summary.Employees > 0 {
			b.summary.AvgAttendanceRate = math.Round(b.rateSum/float64(b.summary.Employees)*100) / 100
		}
		b.summary.TotalOvertimeHours = math.Round(b.summary.TotalOvertimeHours*100) / 100
		departments = append(departments, b.summary)
	}
	sort.Slice(departments, func(i, j int) bool {
		return departments[i].Department < departments[j].Department
	})

	return report.DepartmentSummaryReport{
		PeriodMonth: req.Month,
		PeriodYear:  req.Year,
		GeneratedAt: r.now().In(r.loc).Format("2006-01-02 15:04:05"),
		Departments: departments,
	}, nil
}

// GetDailyTrend implements report.ReportService.
func (r *ReportServiceImpl) GetDailyTrend(ctx context.Context, days int) (report.DailyTrendResponse, error) {
	if days < 1 || days > 31 {
		return report.DailyTrendResponse{}, report.ErrInvalidTrendDays
	}

	today := attendanceDomain.DateOf(r.now().UTC(), r.loc)
	from := today.AddDate(0, 0, -(days - 1))

	employees, err := r.employees.ListActive(ctx)
	if err != nil {
		return report.DailyTrendResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	events, err := r.events.ListByRange(ctx, from, today)
	if err != nil {
		return report.DailyTrendResponse{}, fmt.Errorf("failed to list attendance events: %w", err)
	}

	holidays, err := r.holidays.ListBetween(ctx, from, today)
	if err != nil {
		return report.DailyTrendResponse{}, fmt.Errorf("failed to list holidays: %w", err)
	}
	holidaySet := make(map[string]bool, len(holidays))
	for _, h := range holidays {
		holidaySet[attendanceDomain.DateKey(h.Date)] = true
	}

	// Approved leave must be consulted per employee so a leave day is never
	// miscounted as absent.
	leaveByEmployee := make(map[string]map[string]bool, len(employees))
	for _, emp := range employees {
		leaveDays, err := r.leaveDays.ListApprovedDays(ctx, emp.ID, from, today)
		if err != nil {
			return report.DailyTrendResponse{}, fmt.Errorf("failed to list approved leave days: %w", err)
		}
		set := make(map[string]bool, len(leaveDays))
		for _, ld := range leaveDays {
			set[attendanceDomain.DateKey(ld.Date)] = true
		}
		leaveByEmployee[emp.ID] = set
	}

	// employee → day → events
	byEmployeeDay := make(map[string]map[string][]attendanceDomain.Event)
	for _, e := range events {
		key := attendanceDomain.DateKey(e.Date)
		if byEmployeeDay[e.EmployeeID] == nil {
			byEmployeeDay[e.EmployeeID] = make(map[string][]attendanceDomain.Event)
		}
		byEmployeeDay[e.EmployeeID][key] = append(byEmployeeDay[e.EmployeeID][key], e)
	}

	series := make([]report.DailyTrendPoint, 0, days)
	for d := from; !d.After(today); d = d.AddDate(0, 0, 1) {
		key := attendanceDomain.DateKey(d)
		point := report.DailyTrendPoint{Date: key}

		for _, emp := range employees {
			dayCtx := attendanceService.DayContext{
				Weekend: r.calc.IsWeekend(d),
				Holiday: holidaySet[key],
				OnLeave: leaveByEmployee[emp.ID][key],
			}
			rec := attendanceService.CompileDailyRecord(emp.ID, d, byEmployeeDay[emp.ID][key], r.policy, dayCtx, r.loc)
			switch rec.Status {
			case attendanceDomain.StatusPresent, attendanceDomain.StatusHalfDay:
				point.Present++
			case attendanceDomain.StatusLate:
				point.Late++
			case attendanceDomain.StatusAbsent:
				point.Absent++
			}
		}
		series = append(series, point)
	}

	return report.DailyTrendResponse{
		Days:   days,
		Series: series,
	}, nil
}
