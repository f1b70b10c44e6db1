package models

import (
	"strings"
	"time"
)

// Event represents a tracked occasion
type Event struct {
	ID       string    // Stable row identity (UUID)
	Label    string    // Display label, unique ignoring case
	Target   time.Time // Target date and time in local time
	Location string    // Optional location
	Custom   bool      // User-created; built-ins are never persisted
}

// LabelKey returns the case-insensitive key used for uniqueness
func LabelKey(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// Key returns the uniqueness key of the event label
func (e *Event) Key() string {
	return LabelKey(e.Label)
}

// DateOf truncates t to local midnight of its calendar date
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDate reports whether a and b fall on the same calendar date
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DateKey identifies the calendar date of t, independent of location pointers
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
