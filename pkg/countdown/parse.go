package countdown

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidDate = errors.New("invalid date")
	ErrInvalidTime = errors.New("invalid time")
)

// DateLayouts are the accepted date input formats, tried in order
var DateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

// DateHint describes DateLayouts for input hints
const DateHint = "YYYY-MM-DD, MM/DD/YYYY or Month DD, YYYY"

var timeLayouts = []string{
	"15:04:05",
	"15:04",
}

// ParseDate parses a date in any of DateLayouts and returns local midnight of that date
func ParseDate(s string) (time.Time, error) {
	value := strings.TrimSpace(s)
	for _, layout := range DateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q (use %s)", ErrInvalidDate, s, DateHint)
}

// ParseTime parses HH:MM:SS or HH:MM and returns the offset from midnight
// Empty input means midnight
func ParseTime(s string) (time.Duration, error) {
	value := strings.TrimSpace(s)
	if value == "" {
		return 0, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return time.Duration(t.Hour())*time.Hour +
				time.Duration(t.Minute())*time.Minute +
				time.Duration(t.Second())*time.Second, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (use HH:MM:SS, e.g. %s)", ErrInvalidTime, s, DefaultTime)
}

// Combine joins a date and a time-of-day offset into a local time
func Combine(date time.Time, offset time.Duration) time.Time {
	y, m, d := date.Date()
	h := int(offset / time.Hour)
	min := int(offset % time.Hour / time.Minute)
	sec := int(offset % time.Minute / time.Second)
	return time.Date(y, m, d, h, min, sec, 0, time.Local)
}
