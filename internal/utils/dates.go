package utils

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used across the API and database.
const DateLayout = "2006-01-02"

// ParseDate converts a yyyy-mm-dd formatted string into a UTC midnight instant.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, dateStr, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected yyyy-mm-dd", dateStr)
	}
	return t, nil
}

// FormatDate renders an instant back to yyyy-mm-dd.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Today returns the current UTC calendar day at midnight.
func Today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// DurationInDays returns the number of whole days between two instants,
// taking the ceiling of the absolute difference. Same-day input yields 0;
// callers that require a minimum rental length enforce it themselves.
func DurationInDays(start, end time.Time) int32 {
	diff := end.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	days := diff / (24 * time.Hour)
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return int32(days)
}

// RangesOverlap reports whether two inclusive date ranges share at least
// one day. An inverted range behaves as empty and never overlaps.
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	if aEnd.Before(aStart) || bEnd.Before(bStart) {
		return false
	}
	return !aEnd.Before(bStart) && !bEnd.Before(aStart)
}
