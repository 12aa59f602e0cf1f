package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/staffhub/wfm-backend-go/internal/domain/leave"
	"github.com/staffhub/wfm-backend-go/internal/pkg/database"
)

type leaveDayRepository struct {
	db *database.DB
}

func NewLeaveDayRepository(db *database.DB) leave.LeaveDayRepository {
	return &leaveDayRepository{db: db}
}

// ListApprovedDays implements leave.LeaveDayRepository. The leave workflow
// service owns the table; this side only reads approved rows.
func (r *leaveDayRepository) ListApprovedDays(ctx context.Context, employeeID string, from, to time.Time) ([]leave.LeaveDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, date, leave_type
		FROM leave_days
		WHERE employee_id = $1
		  AND date >= $2
		  AND date <= $3
		  AND status = 'APPROVED'
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leave days: %w", err)
	}
	defer rows.Close()

	var days []leave.LeaveDay
	for rows.Next() {
		var d leave.LeaveDay
		if err := rows.Scan(&d.EmployeeID, &d.Date, &d.LeaveType); err != nil {
			return nil, fmt.Errorf("failed to scan leave day: %w", err)
		}
		d.Date = time.Date(d.Date.Year(), d.Date.Month(), d.Date.Day(), 0, 0, 0, 0, time.UTC)
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave days: %w", err)
	}

	return days, nil
}
