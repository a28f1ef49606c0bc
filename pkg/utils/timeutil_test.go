package utils

import (
	"errors"
	"testing"
	"time"
)

func TestTimeToMinutes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "midnight", input: "00:00", want: 0},
		{name: "single digit hour", input: "9:05", want: 545},
		{name: "two digit hour", input: "09:05", want: 545},
		{name: "last minute of day", input: "23:59", want: 1439},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "12:60", wantErr: true},
		{name: "single digit minute", input: "12:5", wantErr: true},
		{name: "missing colon", input: "1200", wantErr: true},
		{name: "trailing text", input: "12:00pm", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := TimeToMinutes(test.input)
			if test.wantErr {
				if !errors.Is(err, ErrInvalidTimeFormat) {
					t.Fatalf("TimeToMinutes(%q) error = %v, want ErrInvalidTimeFormat", test.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("TimeToMinutes(%q) unexpected error: %v", test.input, err)
			}
			if got != test.want {
				t.Errorf("TimeToMinutes(%q) = %d, want %d", test.input, got, test.want)
			}
		})
	}
}

func TestDuration(t *testing.T) {
	got, err := Duration("09:00", "10:30")
	if err != nil {
		t.Fatalf("Duration() unexpected error: %v", err)
	}
	if got != 90 {
		t.Errorf("Duration(09:00, 10:30) = %d, want 90", got)
	}

	if _, err := Duration("10:00", "09:00"); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("Duration(10:00, 09:00) error = %v, want ErrInvalidDuration", err)
	}
	if _, err := Duration("10:00", "10:00"); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("Duration(10:00, 10:00) error = %v, want ErrInvalidDuration", err)
	}
	if _, err := Duration("10:00", "25:00"); !errors.Is(err, ErrInvalidTimeFormat) {
		t.Errorf("Duration(10:00, 25:00) error = %v, want ErrInvalidTimeFormat", err)
	}
}

func TestEpochToCalendar(t *testing.T) {
	// 2024-03-31 23:30 UTC is already April in UTC+2, bucketing must stay UTC
	ts := time.Date(2024, 3, 31, 23, 30, 0, 0, time.UTC).UnixNano()

	if got := EpochToCalendarDay(ts); got != "2024-03-31" {
		t.Errorf("EpochToCalendarDay() = %s, want 2024-03-31", got)
	}
	if got := EpochToCalendarMonth(ts); got != "2024-03" {
		t.Errorf("EpochToCalendarMonth() = %s, want 2024-03", got)
	}
	if got := EpochToCalendarDay(0); got != "1970-01-01" {
		t.Errorf("EpochToCalendarDay(0) = %s, want 1970-01-01", got)
	}
}

func TestDateToEpoch(t *testing.T) {
	got, err := DateToEpoch("2024-03-01")
	if err != nil {
		t.Fatalf("DateToEpoch() unexpected error: %v", err)
	}
	want := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).UnixNano()
	if got != want {
		t.Errorf("DateToEpoch(UTC) = %d, want %d", got, want)
	}

	if day := EpochToCalendarDay(got); day != "2024-03-01" {
		t.Errorf("EpochToCalendarDay(DateToEpoch) = %s, want 2024-03-01", day)
	}
	if month := EpochToCalendarMonth(got); month != "2024-03" {
		t.Errorf("EpochToCalendarMonth(DateToEpoch) = %s, want 2024-03", month)
	}

	for _, bad := range []string{"", "2024-3-1", "2024-02-30", "01/03/2024", "2024-03-01T00:00:00Z"} {
		if _, err := DateToEpoch(bad); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("DateToEpoch(%q) error = %v, want ErrInvalidDate", bad, err)
		}
	}
}

func TestMonthBounds(t *testing.T) {
	start, end, err := MonthBounds("2024-02")
	if err != nil {
		t.Fatalf("MonthBounds() unexpected error: %v", err)
	}
	if want := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC).UnixNano(); start != want {
		t.Errorf("start = %d, want %d", start, want)
	}
	if want := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).UnixNano(); end != want {
		t.Errorf("end = %d, want %d", end, want)
	}

	if _, _, err := MonthBounds("2024-13"); !errors.Is(err, ErrInvalidMonth) {
		t.Errorf("MonthBounds(2024-13) error = %v, want ErrInvalidMonth", err)
	}
	if ValidMonth("March") {
		t.Error("ValidMonth(March) = true, want false")
	}
}

func TestFormatting(t *testing.T) {
	tests := []struct {
		minutes  int
		duration string
		hours    string
	}{
		{0, "0:00", "0m"},
		{45, "0:45", "45m"},
		{60, "1:00", "1h"},
		{90, "1:30", "1h 30m"},
		{750, "12:30", "12h 30m"},
	}

	for _, test := range tests {
		if got := FormatDuration(test.minutes); got != test.duration {
			t.Errorf("FormatDuration(%d) = %s, want %s", test.minutes, got, test.duration)
		}
		if got := FormatHoursFromMinutes(test.minutes); got != test.hours {
			t.Errorf("FormatHoursFromMinutes(%d) = %s, want %s", test.minutes, got, test.hours)
		}
	}
}
