package attendance

import (
	"time"

	"github.com/staffhub/wfm-backend-go/internal/pkg/validator"
)

// Wire field names (employeeId, checkIn, checkOut, totalHours, overtime,
// breakTime, lateByMinutes, ...) are shared by every caller: the personal
// dashboard, the admin report and the supervisor report all read the same
// payloads, so the same subject/date always shows identical values.

type CheckInResponse struct {
	EmployeeID  string `json:"employeeId"`
	Date        string `json:"date"`
	CheckInTime string `json:"checkInTime"`
	Status      string `json:"status"`
}

type BreakInResponse struct {
	EmployeeID     string `json:"employeeId"`
	Date           string `json:"date"`
	BreakStartTime string `json:"breakStartTime"`
}

type BreakOutResponse struct {
	EmployeeID           string `json:"employeeId"`
	Date                 string `json:"date"`
	BreakEndTime         string `json:"breakEndTime"`
	BreakDurationMinutes int    `json:"breakDurationMinutes"`
}

type CheckOutResponse struct {
	EmployeeID   string  `json:"employeeId"`
	Date         string  `json:"date"`
	CheckOutTime string  `json:"checkOutTime"`
	TotalHours   float64 `json:"totalHours"`
}

// TodayStatusResponse reports the current state plus the open timestamps.
// NextActions lists the event types the state machine would accept, so the
// UI offers exactly what a mutation would allow.
type TodayStatusResponse struct {
	EmployeeID  string   `json:"employeeId"`
	Date        string   `json:"date"`
	State       DayState `json:"state"`
	CheckIn     *string  `json:"checkIn"`
	CheckOut    *string  `json:"checkOut"`
	BreakStart  *string  `json:"breakStart"`
	NextActions []string `json:"nextActions"`
}

type BreakIntervalResponse struct {
	Start string  `json:"start"`
	End   *string `json:"end"`
}

// DailyRecordResponse is the wire shape of one compiled daily record.
type DailyRecordResponse struct {
	EmployeeID    string                  `json:"employeeId"`
	EmployeeName  string                  `json:"employeeName"`
	Date          string                  `json:"date"`
	CheckIn       *string                 `json:"checkIn"`
	CheckOut      *string                 `json:"checkOut"`
	Breaks        []BreakIntervalResponse `json:"breaks,omitempty"`
	Status        DayStatus               `json:"status"`
	TotalHours    float64                 `json:"totalHours"`
	Overtime      float64                 `json:"overtime"`
	BreakTime     float64                 `json:"breakTime"`
	LateByMinutes int                     `json:"lateByMinutes"`
	HasOpenBreak  bool                    `json:"hasOpenBreak,omitempty"`
	LeaveNote     bool                    `json:"leaveNote,omitempty"`
}

// CloseDayRequest is the manager correction for a day left open: it appends
// the missed check-out (closing any open break first) through the same
// state-machine path as a self-service check-out.
type CloseDayRequest struct {
	EmployeeID   string `json:"employeeId"`
	Date         string `json:"date"`
	CheckOutTime string `json:"checkOutTime"`
}

func (r *CloseDayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if _, ok := validator.IsValidDateTime(r.CheckOutTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "checkOutTime",
			Message: "checkOutTime must be an ISO8601 timestamp",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// timePtrToWire safely converts a *time.Time to a wire string in loc.
func timePtrToWire(t *time.Time, loc *time.Location) *string {
	if t == nil {
		return nil
	}
	formatted := t.In(loc).Format("2006-01-02 15:04:05")
	return &formatted
}

// MapDailyRecordToResponse converts a compiled DailyRecord to its wire shape.
func MapDailyRecordToResponse(rec DailyRecord, employeeName string, loc *time.Location) DailyRecordResponse {
	breaks := make([]BreakIntervalResponse, 0, len(rec.Breaks))
	for _, b := range rec.Breaks {
		start := b.Start
		breaks = append(breaks, BreakIntervalResponse{
			Start: *timePtrToWire(&start, loc),
			End:   timePtrToWire(b.End, loc),
		})
	}

	return DailyRecordResponse{
		EmployeeID:    rec.EmployeeID,
		EmployeeName:  employeeName,
		Date:          DateKey(rec.Date),
		CheckIn:       timePtrToWire(rec.CheckIn, loc),
		CheckOut:      timePtrToWire(rec.CheckOut, loc),
		Breaks:        breaks,
		Status:        rec.Status,
		TotalHours:    rec.TotalHours,
		Overtime:      rec.OvertimeHours,
		BreakTime:     rec.BreakHours,
		LateByMinutes: rec.LateByMinutes,
		HasOpenBreak:  rec.HasOpenBreak,
		LeaveNote:     rec.OnApprovedLeave,
	}
}
