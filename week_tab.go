package main

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/borgmon/event-tracker/pkg/calendar"
	"github.com/borgmon/event-tracker/pkg/countdown"
	"github.com/borgmon/event-tracker/pkg/models"
)

// weekDay is one day section of the week view
type weekDay struct {
	Heading string
	Lines   []string
}

func (et *EventTracker) buildWeekTab() fyne.CanvasObject {
	et.weekHeader = widget.NewLabelWithStyle("Week: Loading...", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	et.weekContent = container.NewVBox()

	prev := widget.NewButtonWithIcon("Prev Week", theme.NavigateBackIcon(), func() {
		et.weekStart = et.weekStart.AddDate(0, 0, -7)
		et.refreshWeek()
	})
	today := widget.NewButton("Today", func() {
		et.weekStart = calendar.WeekStart(time.Now(), et.settings.FirstWeekday())
		et.refreshWeek()
	})
	next := widget.NewButtonWithIcon("Next Week", theme.NavigateNextIcon(), func() {
		et.weekStart = et.weekStart.AddDate(0, 0, 7)
		et.refreshWeek()
	})
	next.IconPlacement = widget.ButtonIconTrailingText

	et.weekStartPick = widget.NewSelect([]string{"Monday", "Sunday"}, func(value string) {
		weekStart := models.WeekStartMonday
		if value == "Sunday" {
			weekStart = models.WeekStartSunday
		}
		if weekStart == et.settings.WeekStart {
			return
		}
		et.settings.WeekStart = weekStart
		et.weekStart = calendar.WeekStart(et.weekStart, et.settings.FirstWeekday())
		et.setStatus(fmt.Sprintf("Weeks now start on %s.", value))
		et.refreshCalendar()
		et.refreshWeek()
	})

	controls := container.NewBorder(nil, nil,
		container.NewHBox(prev, today, next),
		container.NewHBox(widget.NewLabel("Week starts on"), et.weekStartPick),
	)

	return container.NewBorder(
		container.NewVBox(controls, et.weekHeader),
		nil, nil, nil,
		container.NewVScroll(et.weekContent),
	)
}

func (et *EventTracker) refreshWeek() {
	if et.weekContent == nil {
		return
	}
	header, days := weekSummary(et.weekStart, et.events.Between(et.weekStart, et.weekStart.AddDate(0, 0, 7)))
	et.weekHeader.SetText(header)

	et.weekContent.Objects = nil
	for _, day := range days {
		et.weekContent.Add(widget.NewLabelWithStyle(day.Heading, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
		for _, line := range day.Lines {
			et.weekContent.Add(widget.NewLabel(line))
		}
	}
	et.weekContent.Refresh()
}

// weekSummary groups events into the seven days starting at start
func weekSummary(start time.Time, events []models.Event) (string, []weekDay) {
	header := fmt.Sprintf("Week: %s - %s",
		start.Format(countdown.DateFormatShort),
		calendar.WeekEnd(start).Format(countdown.DateFormatShort))

	days := []weekDay{}
	for _, date := range calendar.WeekDays(start) {
		day := weekDay{Heading: date.Format(countdown.DateFormatShort)}
		for _, ev := range events {
			if !models.SameDate(ev.Target, date) {
				continue
			}
			day.Lines = append(day.Lines, fmt.Sprintf("  %s - %s%s", ev.Target.Format(countdown.TimeFormat), ev.Label, locationSuffix(ev)))
		}
		if len(day.Lines) == 0 {
			day.Lines = []string{"  No events scheduled"}
		}
		days = append(days, day)
	}
	return header, days
}
