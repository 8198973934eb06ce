package utils

import (
	"strings"
	"time"
)

const (
	layoutDate      = "2006-01-02"
	layoutDateTime  = "2006-01-02 15:04:05"
	layoutDateLocal = "2006-01-02T15:04"
)

// NowMillis returns the current time as epoch milliseconds.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// ParseInstant accepts RFC3339 and the datetime-local form the booking
// form sends ("2006-01-02T15:04"), plus plain dates.
func ParseInstant(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(layoutDateLocal, s, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(layoutDateTime, s, time.Local); err == nil {
		return t, nil
	}
	return time.ParseInLocation(layoutDate, s, time.Local)
}

// FormatDate formats time to YYYY-MM-DD in local timezone.
func FormatDate(t time.Time) string {
	return t.In(time.Local).Format(layoutDate)
}

// FormatDateTime formats time to "YYYY-MM-DD HH:MM:SS" in local timezone.
func FormatDateTime(t time.Time) string {
	return t.In(time.Local).Format(layoutDateTime)
}
