package calendar

import (
	"errors"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/borgmon/event-tracker/pkg/models"
)

// ErrInvalidMonthDay is returned for month/day pairs that never occur
var ErrInvalidMonthDay = errors.New("invalid month/day")

// maxDays is the longest each month can be, counting February 29
var maxDays = [13]int{0, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// ValidMonthDay reports whether month/day occurs in at least some year
func ValidMonthDay(month time.Month, day int) bool {
	if month < time.January || month > time.December {
		return false
	}
	return day >= 1 && day <= maxDays[month]
}

// NextOccurrence returns local midnight of the first date on or after today's
// date that falls on month/day. February 29 resolves to the next leap year.
func NextOccurrence(month time.Month, day int, today time.Time) (time.Time, error) {
	if !ValidMonthDay(month, day) {
		return time.Time{}, fmt.Errorf("%w: %02d-%02d", ErrInvalidMonthDay, int(month), day)
	}

	loc := today.Location()
	midnight := models.DateOf(today)

	r, err := rrule.NewRRule(rrule.ROption{
		Freq:       rrule.YEARLY,
		Dtstart:    time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, loc),
		Bymonth:    []int{int(month)},
		Bymonthday: []int{day},
	})
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to build yearly rule: %w", err)
	}

	next := r.After(midnight, true)
	if next.IsZero() {
		return time.Time{}, fmt.Errorf("%w: %02d-%02d has no future occurrence", ErrInvalidMonthDay, int(month), day)
	}
	return next.In(loc), nil
}

// ProjectBuiltins projects each occasion to its next occurrence as a built-in event.
// Occasions whose label skip reports true are left out.
func ProjectBuiltins(occasions []Occasion, today time.Time, skip func(label string) bool) []models.Event {
	log := appLog()
	events := make([]models.Event, 0, len(occasions))

	for _, occ := range occasions {
		if skip != nil && skip(occ.Label) {
			log.Debug().Str("label", occ.Label).Msg("built-in shadowed by custom event")
			continue
		}

		next, err := NextOccurrence(occ.Month, occ.Day, today)
		if err != nil {
			log.Error().Err(err).Str("label", occ.Label).Msg("skipping built-in occasion")
			continue
		}

		events = append(events, models.Event{
			Label:  occ.Label,
			Target: next,
			Custom: false,
		})
	}

	return events
}
