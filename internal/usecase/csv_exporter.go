package usecase

import (
	"bytes"
	"io"
	"strconv"
	"strings"
	"time"

	"flightlog-service/internal/domain/entity"
	"flightlog-service/pkg/utils"
)

const (
	csvBOM       = "\uFEFF"
	csvSeparator = ","
	csvLineBreak = "\r\n"
)

// CSVHeader is the fixed column set of a flight log export
var CSVHeader = []string{
	"Date", "Student", "Instructor", "Aircraft", "Type", "Exercise",
	"Takeoff", "Landing", "Total", "LandingType", "LandingCount",
}

// ExportCSV renders flights as an Excel-compatible CSV document:
// UTF-8 with BOM, CRLF between rows, no trailing line break.
func ExportCSV(flights []entity.FlightRecord) []byte {
	var buf bytes.Buffer
	// bytes.Buffer writes never fail
	_ = WriteCSV(&buf, flights)
	return buf.Bytes()
}

// WriteCSV streams the CSV document of ExportCSV to w
func WriteCSV(w io.Writer, flights []entity.FlightRecord) error {
	if _, err := io.WriteString(w, csvBOM+csvRow(CSVHeader)); err != nil {
		return err
	}
	for _, f := range flights {
		if _, err := io.WriteString(w, csvLineBreak+csvRow(csvFields(f))); err != nil {
			return err
		}
	}
	return nil
}

// ExportFilename returns the default download name for an export made at now
func ExportFilename(now time.Time) string {
	return "flight-log-" + now.UTC().Format(utils.DAY_LAYOUT) + ".csv"
}

func csvFields(f entity.FlightRecord) []string {
	return []string{
		utils.EpochToCalendarDay(f.Date),
		f.Student,
		f.Instructor,
		f.Aircraft,
		f.FlightType.Label(),
		f.Exercise,
		f.TakeoffTime,
		f.LandingTime,
		utils.FormatDuration(f.Duration),
		f.LandingType.Label(),
		strconv.Itoa(f.LandingCount),
	}
}

func csvRow(fields []string) string {
	escaped := make([]string, len(fields))
	for i, field := range fields {
		escaped[i] = escapeCSVField(field)
	}
	return strings.Join(escaped, csvSeparator)
}

// escapeCSVField quotes a field only when it contains a comma, a double quote
// or a newline
func escapeCSVField(field string) string {
	if !strings.ContainsAny(field, ",\"\n") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
