package countdown

import (
	"fmt"
	"strings"
	"time"
)

// Display layouts
const (
	DateFormat      = "January 02, 2006"
	DateFormatShort = "Mon, Jan 02, 2006"
	TimeFormat      = "15:04:05"
	DateTimeDisplay = "Jan 02, 2006 15:04:05"
	DefaultTime     = "00:00:00"
)

// FormatDelta renders the distance to a target as "In: 3d 4h 5m" or "Ago: 2h 1m"
func FormatDelta(delta time.Duration) string {
	total := int64(delta / time.Second)
	prefix := "In: "
	if total < 0 {
		prefix = "Ago: "
		total = -total
	}

	days := total / 86400
	rem := total % 86400
	hours := rem / 3600
	rem %= 3600
	minutes := rem / 60
	seconds := rem % 60

	if prefix == "Ago: " && days == 0 && hours == 0 && minutes == 0 {
		return "Just now or Past"
	}

	parts := []string{}
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if (days == 0 && total > 0) || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%ds", seconds))
	}

	return prefix + strings.Join(parts, " ")
}

// Until formats the distance from now to target
func Until(target, now time.Time) string {
	return FormatDelta(target.Sub(now))
}
