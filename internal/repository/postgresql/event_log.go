package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/staffhub/wfm-backend-go/internal/domain/attendance"
	"github.com/staffhub/wfm-backend-go/internal/pkg/database"
)

type eventLogRepository struct {
	db *database.DB
}

func NewEventLogRepository(db *database.DB) attendance.EventLogRepository {
	return &eventLogRepository{db: db}
}

// Append implements attendance.EventLogRepository. The table is append-only;
// corrections arrive as new rows, never updates.
func (r *eventLogRepository) Append(ctx context.Context, event attendance.Event) (attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.Event{}, fmt.Errorf("failed to generate event id: %w", err)
	}
	event.ID = id.String()

	query := `
		INSERT INTO attendance_events (
			id, employee_id, event_type, occurred_at, date, recorded_by
		) VALUES (
			$1, $2, $3, $4, $5, $6
		) RETURNING created_at
	`

	err = q.QueryRow(ctx, query,
		event.ID,
		event.EmployeeID,
		string(event.Type),
		event.OccurredAt,
		event.Date,
		event.RecordedBy,
	).Scan(&event.CreatedAt)

	if err != nil {
		return attendance.Event{}, fmt.Errorf("failed to append attendance event: %w", err)
	}

	return event, nil
}

const eventColumns = `id, employee_id, event_type, occurred_at, date, recorded_by, created_at`

func scanEvents(rows pgx.Rows) ([]attendance.Event, error) {
	var events []attendance.Event
	for rows.Next() {
		var (
			e         attendance.Event
			eventType string
		)
		if err := rows.Scan(
			&e.ID, &e.EmployeeID, &eventType, &e.OccurredAt, &e.Date, &e.RecordedBy, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance event: %w", err)
		}
		e.Type = attendance.EventType(eventType)
		if !e.Type.Valid() {
			return nil, attendance.ErrInvalidEvent
		}
		e.OccurredAt = e.OccurredAt.UTC()
		e.Date = time.Date(e.Date.Year(), e.Date.Month(), e.Date.Day(), 0, 0, 0, 0, time.UTC)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance events: %w", err)
	}
	return events, nil
}

// ListByEmployeeAndDate implements attendance.EventLogRepository.
func (r *eventLogRepository) ListByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + eventColumns + `
		FROM attendance_events
		WHERE employee_id = $1
		  AND date = $2
		ORDER BY occurred_at ASC
	`

	rows, err := q.Query(ctx, query, employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list events by employee and date: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// ListByEmployeeAndRange implements attendance.EventLogRepository.
func (r *eventLogRepository) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + eventColumns + `
		FROM attendance_events
		WHERE employee_id = $1
		  AND date >= $2
		  AND date <= $3
		ORDER BY occurred_at ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list events by employee and range: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// ListByRange implements attendance.EventLogRepository.
func (r *eventLogRepository) ListByRange(ctx context.Context, from, to time.Time) ([]attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + eventColumns + `
		FROM attendance_events
		WHERE date >= $1
		  AND date <= $2
		ORDER BY employee_id, occurred_at ASC
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list events by range: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}
