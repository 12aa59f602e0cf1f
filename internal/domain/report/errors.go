package report

import "errors"

var (
	ErrInvalidMonth     = errors.New("month must be between 1 and 12")
	ErrInvalidYear      = errors.New("year must be a valid year")
	ErrInvalidDateRange = errors.New("end date must be after start date")
	ErrInvalidTrendDays = errors.New("trend window must be between 1 and 31 days")
)
