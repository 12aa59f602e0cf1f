package response

import (
	"errors"
	"net/http"

	"github.com/staffhub/wfm-backend-go/internal/domain/attendance"
	"github.com/staffhub/wfm-backend-go/internal/domain/employee"
	"github.com/staffhub/wfm-backend-go/internal/domain/report"
	"github.com/staffhub/wfm-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. State-transition
// rejections carry the exact reason so the caller knows which prior action
// is required; persistence failures fall through to 500 so callers can
// distinguish "retry later" from "your action is invalid".
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance state-transition errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn),
		errors.Is(err, attendance.ErrAlreadyOnBreak),
		errors.Is(err, attendance.ErrAlreadyCheckedOutToday),
		errors.Is(err, attendance.ErrOutOfOrderEvent):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrNotCheckedIn),
		errors.Is(err, attendance.ErrNotOnBreak),
		errors.Is(err, attendance.ErrDayNotOpen),
		errors.Is(err, attendance.ErrInvalidEvent):
		BadRequest(w, err.Error(), nil)

	// Lookup errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Report errors
	case errors.Is(err, report.ErrInvalidMonth),
		errors.Is(err, report.ErrInvalidYear),
		errors.Is(err, report.ErrInvalidDateRange),
		errors.Is(err, report.ErrInvalidTrendDays):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
