package report

import (
	"fmt"
	"time"

	"github.com/staffhub/wfm-backend-go/internal/domain/attendance"
	"github.com/staffhub/wfm-backend-go/internal/pkg/validator"
)

// ========================================
// MONTHLY SUMMARY
// ========================================

type MonthlySummaryRequest struct {
	EmployeeID string
	Month      int
	Year       int
}

func (r *MonthlySummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	currentYear := time.Now().Year()
	if r.Year < 2020 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2020 and %d", currentYear+1),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MonthlySummary is the per-subject per-month aggregate. It is recomputed
// from the month's daily records on every read so it can never drift from
// the underlying events. The four day counters always reconcile:
// presentDays + halfDays + absentDays + leaveDays = workingDays.
type MonthlySummary struct {
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	PeriodMonth  int    `json:"periodMonth"`
	PeriodYear   int    `json:"periodYear"`

	WorkingDays int `json:"workingDays"`
	PresentDays int `json:"presentDays"`
	AbsentDays  int `json:"absentDays"`
	LateDays    int `json:"lateDays"`
	HalfDays    int `json:"halfDays"`
	LeaveDays   int `json:"leaveDays"`

	AttendanceRate     float64 `json:"attendanceRate"`
	AverageHours       float64 `json:"averageHours"`
	TotalOvertimeHours float64 `json:"totalOvertimeHours"`

	GeneratedAt string `json:"generatedAt"`
}

type MonthlySummaryResponse struct {
	Summary MonthlySummary                   `json:"summary"`
	Days    []attendance.DailyRecordResponse `json:"days"`
}

// ========================================
// DEPARTMENT ROLL-UP
// ========================================

type DepartmentSummaryRequest struct {
	Month int
	Year  int
}

func (r *DepartmentSummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	currentYear := time.Now().Year()
	if r.Year < 2020 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2020 and %d", currentYear+1),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DepartmentSummary sums and averages MonthlySummary fields per department.
// It introduces no new rules: every number is a fold over aggregator output.
type DepartmentSummary struct {
	Department         string  `json:"department"`
	Employees          int     `json:"employees"`
	PresentDays        int     `json:"presentDays"`
	AbsentDays         int     `json:"absentDays"`
	LateDays           int     `json:"lateDays"`
	HalfDays           int     `json:"halfDays"`
	LeaveDays          int     `json:"leaveDays"`
	AvgAttendanceRate  float64 `json:"avgAttendanceRate"`
	TotalOvertimeHours float64 `json:"totalOvertimeHours"`
}

type DepartmentSummaryReport struct {
	PeriodMonth int                 `json:"periodMonth"`
	PeriodYear  int                 `json:"periodYear"`
	GeneratedAt string              `json:"generatedAt"`
	Departments []DepartmentSummary `json:"departments"`
}

// ========================================
// DAILY TREND
// ========================================

// DailyTrendPoint is one day of the cross-subject trend series.
type DailyTrendPoint struct {
	Date    string `json:"date"`
	Present int    `json:"present"`
	Late    int    `json:"late"`
	Absent  int    `json:"absent"`
}

type DailyTrendResponse struct {
	Days   int               `json:"days"`
	Series []DailyTrendPoint `json:"series"`
}
