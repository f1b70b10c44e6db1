package calendar

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"

	"github.com/borgmon/event-tracker/pkg/models"
)

const productID = "-//borgmon//Event Tracker//EN"

// ExportICS writes events as a VCALENDAR. Built-in events carry a yearly rule.
func ExportICS(w io.Writer, events []models.Event, now time.Time) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)

	for _, ev := range events {
		vevent := ical.NewEvent()

		uid := ev.ID
		if uid == "" {
			uid = uuid.New().String()
		}
		vevent.Props.SetText(ical.PropUID, uid)
		vevent.Props.SetDateTime(ical.PropDateTimeStamp, now.UTC())
		vevent.Props.SetDateTime(ical.PropDateTimeStart, ev.Target.UTC())
		vevent.Props.SetText(ical.PropSummary, ev.Label)
		if ev.Location != "" {
			vevent.Props.SetText(ical.PropLocation, ev.Location)
		}
		if !ev.Custom {
			rule := ical.NewProp(ical.PropRecurrenceRule)
			rule.Value = "FREQ=YEARLY"
			vevent.Props.Set(rule)
		}

		cal.Children = append(cal.Children, vevent.Component)
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("failed to encode calendar: %w", err)
	}
	return nil
}

// ImportStats counts what an import skipped
type ImportStats struct {
	Components int
	Events     int
	Cancelled  int
	Incomplete int
	Finished   int // recurring events with no occurrence left
}

// ImportICS reads VEVENTs as custom events. Recurring events are projected
// to their first occurrence on or after now.
func ImportICS(r io.Reader, now time.Time) ([]models.Event, ImportStats, error) {
	log := appLog()
	stats := ImportStats{}
	events := []models.Event{}

	decoder := ical.NewDecoder(r)
	for {
		cal, err := decoder.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, stats, fmt.Errorf("failed to decode calendar: %w", err)
		}

		for _, comp := range cal.Children {
			stats.Components++
			if comp.Name != ical.CompEvent {
				continue
			}
			stats.Events++

			normalizeTimezones(comp)
			ev, ok := parseEvent(comp, now, &stats)
			if !ok {
				continue
			}
			events = append(events, ev)
		}
	}

	log.Info().
		Int("components", stats.Components).
		Int("events", stats.Events).
		Int("imported", len(events)).
		Int("cancelled", stats.Cancelled).
		Int("incomplete", stats.Incomplete).
		Int("finished", stats.Finished).
		Msg("iCalendar import parsed")

	return events, stats, nil
}

func parseEvent(comp *ical.Component, now time.Time, stats *ImportStats) (models.Event, bool) {
	log := appLog()
	ev := models.Event{Custom: true}

	if summary, err := comp.Props.Text(ical.PropSummary); err == nil {
		ev.Label = strings.TrimSpace(summary)
	}
	if location, err := comp.Props.Text(ical.PropLocation); err == nil {
		ev.Location = strings.TrimSpace(location)
	}

	status := ""
	if prop := comp.Props.Get(ical.PropStatus); prop != nil {
		status = strings.ToUpper(prop.Value)
	}
	if status == "CANCELLED" || isCancelledTitle(ev.Label) {
		stats.Cancelled++
		log.Debug().Str("label", ev.Label).Msg("skipping cancelled event")
		return ev, false
	}

	startProp := comp.Props.Get(ical.PropDateTimeStart)
	if ev.Label == "" || startProp == nil {
		stats.Incomplete++
		log.Debug().Str("label", ev.Label).Msg("skipping event without summary or start")
		return ev, false
	}

	start, err := parseDateTime(startProp)
	if err != nil {
		stats.Incomplete++
		log.Debug().Err(err).Str("label", ev.Label).Msg("skipping event with unreadable start")
		return ev, false
	}
	ev.Target = start

	set, err := comp.RecurrenceSet(start.Location())
	if err != nil {
		log.Debug().Err(err).Str("label", ev.Label).Msg("ignoring unreadable recurrence")
	} else if set != nil {
		next := set.After(now.In(start.Location()), true)
		if next.IsZero() {
			stats.Finished++
			return ev, false
		}
		ev.Target = next
	}

	ev.Target = ev.Target.In(time.Local)
	return ev, true
}

func parseDateTime(prop *ical.Prop) (time.Time, error) {
	loc := locationOf(prop)
	if t, err := prop.DateTime(loc); err == nil {
		return t, nil
	}

	formats := []string{
		"20060102T150405",
		"20060102T150405Z",
		"20060102",
		time.RFC3339,
		"2006-01-02T15:04:05",
	}
	for _, format := range formats {
		if t, err := time.ParseInLocation(format, prop.Value, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse datetime value: %s", prop.Value)
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

func isCancelledTitle(title string) bool {
	clean := nonAlnum.ReplaceAllString(strings.ToLower(title), "")
	return strings.HasPrefix(clean, "canceled") || strings.HasPrefix(clean, "cancelled")
}
