package report

import "context"

// ReportService is the single source of derived attendance statistics.
// Every screen (personal dashboard, admin report, supervisor report) must
// consume this output rather than re-deriving its own numbers.
type ReportService interface {
	// GetMonthlySummary aggregates one employee's month: summary statistics
	// plus the per-day records that produced them.
	GetMonthlySummary(ctx context.Context, req MonthlySummaryRequest) (MonthlySummaryResponse, error)

	// GetDepartmentSummary rolls monthly summaries up by department.
	GetDepartmentSummary(ctx context.Context, req DepartmentSummaryRequest) (DepartmentSummaryReport, error)

	// GetDailyTrend returns per-day present/late/absent counts across all
	// employees for the most recent days.
	GetDailyTrend(ctx context.Context, days int) (DailyTrendResponse, error)
}
