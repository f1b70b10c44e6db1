package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/borgmon/event-tracker/pkg/countdown"
	"github.com/borgmon/event-tracker/pkg/models"
	"github.com/borgmon/event-tracker/pkg/ui/components"
)

const calendarHint = "Click a date on the calendar to see its events."

func (et *EventTracker) buildCalendarTab() fyne.CanvasObject {
	et.dayDetail = widget.NewLabel(calendarHint)
	et.dayDetail.Wrapping = fyne.TextWrapWord

	et.monthCalendar = components.NewMonthCalendar(time.Now(), et.settings.FirstWeekday(), et.showDay)

	split := container.NewVSplit(et.monthCalendar, container.NewVScroll(et.dayDetail))
	split.Offset = 0.7
	return split
}

func (et *EventTracker) showDay(day time.Time) {
	et.dayDetail.SetText(dayDetailText(day, et.events.On(day)))
}

// refreshCalendar updates markers, the week start and the selected day's detail
func (et *EventTracker) refreshCalendar() {
	if et.monthCalendar == nil {
		return
	}
	et.monthCalendar.SetFirstWeekday(et.settings.FirstWeekday())
	et.monthCalendar.SetMarks(et.events.Dates())

	if selected := et.monthCalendar.Selected(); !selected.IsZero() {
		et.showDay(selected)
	}
}

// dayDetailText lists the events of one day, earliest first
func dayDetailText(day time.Time, events []models.Event) string {
	dayText := day.Format(countdown.DateFormat)
	if len(events) == 0 {
		return fmt.Sprintf("No events scheduled for %s.", dayText)
	}

	sorted := append([]models.Event(nil), events...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Target.Before(sorted[j].Target)
	})

	lines := []string{fmt.Sprintf("Events for %s:", dayText)}
	for _, ev := range sorted {
		lines = append(lines, fmt.Sprintf("- %s at %s%s", ev.Label, ev.Target.Format(countdown.TimeFormat), locationSuffix(ev)))
	}
	return strings.Join(lines, "\n")
}

func locationSuffix(ev models.Event) string {
	if ev.Location == "" {
		return ""
	}
	return fmt.Sprintf(" (%s)", ev.Location)
}
