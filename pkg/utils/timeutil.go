package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var timeOfDayRe = regexp.MustCompile(`^([01]?\d|2[0-3]):([0-5]\d)$`)

// ParseInt converts string to int
func ParseInt(value string) int {
	parsedValue, _ := strconv.Atoi(value)
	return parsedValue
}

// IsValidTime reports whether t is a valid H:MM or HH:MM time of day
func IsValidTime(t string) bool {
	return timeOfDayRe.MatchString(t)
}

// TimeToMinutes converts an HH:MM time of day to minutes since midnight
func TimeToMinutes(t string) (int, error) {
	match := timeOfDayRe.FindStringSubmatch(t)
	if match == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, t)
	}
	return ParseInt(match[1])*60 + ParseInt(match[2]), nil
}

// Duration returns the minutes between takeoff and landing.
// Flights crossing midnight are not supported and fail with ErrInvalidDuration.
func Duration(takeoff, landing string) (int, error) {
	from, err := TimeToMinutes(takeoff)
	if err != nil {
		return 0, err
	}
	to, err := TimeToMinutes(landing)
	if err != nil {
		return 0, err
	}

	minutes := to - from
	if minutes <= 0 {
		return 0, fmt.Errorf("%w: takeoff %s, landing %s", ErrInvalidDuration, takeoff, landing)
	}
	return minutes, nil
}

// EpochToTime converts a nanosecond epoch timestamp to a UTC time
func EpochToTime(ts int64) time.Time {
	return time.Unix(0, ts).UTC()
}

// EpochToCalendarDay returns the UTC calendar day (YYYY-MM-DD) of ts
func EpochToCalendarDay(ts int64) string {
	return EpochToTime(ts).Format(DAY_LAYOUT)
}

// EpochToCalendarMonth returns the UTC calendar month (YYYY-MM) of ts
func EpochToCalendarMonth(ts int64) string {
	return EpochToTime(ts).Format(MONTH_LAYOUT)
}

// DateToEpoch converts a YYYY-MM-DD date to the nanosecond timestamp of its
// UTC midnight, so EpochToCalendarDay returns the same date
func DateToEpoch(date string) (int64, error) {
	t, err := time.Parse(DAY_LAYOUT, date)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return t.UnixNano(), nil
}

// ValidMonth reports whether month is a YYYY-MM string
func ValidMonth(month string) bool {
	_, err := time.Parse(MONTH_LAYOUT, month)
	return err == nil
}

// MonthBounds returns the half-open UTC range [start, end) of a YYYY-MM month
// as nanosecond timestamps
func MonthBounds(month string) (int64, int64, error) {
	start, err := time.Parse(MONTH_LAYOUT, month)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidMonth, month)
	}
	end := start.AddDate(0, 1, 0)
	return start.UnixNano(), end.UnixNano(), nil
}

// FormatDuration formats minutes as H:MM
func FormatDuration(minutes int) string {
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}

// FormatHoursFromMinutes formats minutes for display, e.g. "12h 30m"
func FormatHoursFromMinutes(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}
