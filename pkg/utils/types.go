package utils

import "errors"

// Validation errors raised while building a flight record from user input
var (
	ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:MM")
	ErrInvalidDuration   = errors.New("landing must be after takeoff on the same day")
	ErrInvalidDate       = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidMonth      = errors.New("invalid month, expected YYYY-MM")
)

// Layouts
const (
	DAY_LAYOUT   = "2006-01-02"
	MONTH_LAYOUT = "2006-01"
)
