package models

import "time"

const (
	WeekStartMonday = "monday"
	WeekStartSunday = "sunday"
)

// Settings holds the user settings persisted alongside custom events
type Settings struct {
	DarkMode  bool   `json:"dark_mode"`
	WeekStart string `json:"week_start"` // "monday" or "sunday"
	Chime     bool   `json:"chime"`      // play a tone when a custom event arrives
	AutoStart bool   `json:"auto_start"` // launch at login
}

// DefaultSettings returns the settings used when no data file exists
func DefaultSettings() Settings {
	return Settings{
		DarkMode:  false,
		WeekStart: WeekStartMonday,
		Chime:     true,
		AutoStart: false,
	}
}

// Normalize fills in missing or unknown values with defaults
func (s *Settings) Normalize() {
	switch s.WeekStart {
	case WeekStartMonday, WeekStartSunday:
	default:
		s.WeekStart = WeekStartMonday
	}
}

// FirstWeekday returns the weekday that starts a calendar week
func (s *Settings) FirstWeekday() time.Weekday {
	if s.WeekStart == WeekStartSunday {
		return time.Sunday
	}
	return time.Monday
}
