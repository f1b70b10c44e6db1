package countdown

import "time"

// Indicator classifies how close an event is
type Indicator int

const (
	Past Indicator = iota
	Urgent
	Soon
	Near
	Far
)

// Thresholds in days
const (
	ThresholdUrgent = 1
	ThresholdSoon   = 7
	ThresholdNear   = 30
)

// Indicate returns the indicator for target as seen at now
func Indicate(target, now time.Time) Indicator {
	days := target.Sub(now).Hours() / 24
	switch {
	case days < 0:
		return Past
	case days <= ThresholdUrgent:
		return Urgent
	case days <= ThresholdSoon:
		return Soon
	case days <= ThresholdNear:
		return Near
	default:
		return Far
	}
}

// Symbol returns the glyph shown next to the event
func (i Indicator) Symbol() string {
	switch i {
	case Past:
		return "✅"
	case Urgent:
		return "🔥"
	case Soon:
		return "⏳"
	case Near:
		return "🗓️"
	default:
		return "•"
	}
}

func (i Indicator) String() string {
	switch i {
	case Past:
		return "past"
	case Urgent:
		return "urgent"
	case Soon:
		return "soon"
	case Near:
		return "near"
	default:
		return "far"
	}
}
