// Package dates normalizes the date representations that show up in the
// sheet's timestamp column. Sheets hand back either a serial day count, a
// DD/MM/YYYY string (with or without a time part) or, for manually edited
// cells, anything a generic parse can handle.
package dates

import (
	"strconv"
	"strings"
	"time"
)

// Canonical is the layout used for all date equality checks.
const Canonical = "2006-01-02"

// TimestampLayout is how timestamps are written to the sheet.
const TimestampLayout = "02/01/2006 15:04:05"

// Sheet serial day 25569 corresponds to the Unix epoch (1970-01-01).
const serialEpochOffset = 25569

const secondsPerDay = 86400

var fallbackLayouts = []string{
	Canonical,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Normalize converts a raw sheet cell into a canonical YYYY-MM-DD string.
// Returns "" when the value is unparseable; callers treat "" as a date that
// never matches any canonical date.
func Normalize(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	// Numeric cells are sheet serial dates.
	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		sec := int64((serial - serialEpochOffset) * secondsPerDay)
		return time.Unix(sec, 0).UTC().Format(Canonical)
	}

	// DD/MM/YYYY or DD/MM/YYYY HH:mm:ss, single-digit day/month allowed.
	if strings.Contains(raw, "/") {
		datePart := raw
		if i := strings.IndexByte(raw, ' '); i >= 0 {
			datePart = raw[:i]
		}
		for _, layout := range []string{"02/01/2006", "2/1/2006"} {
			if t, err := time.Parse(layout, datePart); err == nil {
				return t.Format(Canonical)
			}
		}
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(Canonical)
		}
	}
	return ""
}

// IsCanonical reports whether date is a valid YYYY-MM-DD string.
func IsCanonical(date string) bool {
	_, err := time.Parse(Canonical, date)
	return err == nil
}

// PreviousDay returns the calendar day before a canonical date, handling
// month and year rollover. Returns "" if date is not canonical.
func PreviousDay(date string) string {
	t, err := time.Parse(Canonical, date)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, -1).Format(Canonical)
}

// FormatTimestamp renders a submission instant the way rows store it.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
