package components

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/borgmon/event-tracker/pkg/calendar"
	"github.com/borgmon/event-tracker/pkg/models"
)

// MonthCalendar shows one month as a grid of DayCells with event markers
type MonthCalendar struct {
	widget.BaseWidget

	// OnSelected is called with the tapped date
	OnSelected func(time.Time)
	// Now supplies the current time for the today highlight
	Now func() time.Time

	year     int
	month    time.Month
	first    time.Weekday
	marks    map[string]int
	selected time.Time

	title   *widget.Label
	headers *fyne.Container
	grid    *fyne.Container
	content *fyne.Container
}

// NewMonthCalendar creates a calendar showing the month of shown
func NewMonthCalendar(shown time.Time, first time.Weekday, onSelected func(time.Time)) *MonthCalendar {
	mc := &MonthCalendar{
		OnSelected: onSelected,
		Now:        time.Now,
		year:       shown.Year(),
		month:      shown.Month(),
		first:      first,
		marks:      map[string]int{},
	}

	mc.title = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	prev := widget.NewButtonWithIcon("", theme.NavigateBackIcon(), mc.PrevMonth)
	next := widget.NewButtonWithIcon("", theme.NavigateNextIcon(), mc.NextMonth)

	mc.headers = container.NewGridWithColumns(7)
	mc.grid = container.NewGridWithColumns(7)
	mc.content = container.NewBorder(
		container.NewVBox(container.NewBorder(nil, nil, prev, next, mc.title), mc.headers),
		nil, nil, nil,
		mc.grid,
	)

	mc.ExtendBaseWidget(mc)
	mc.rebuild()
	return mc
}

// CreateRenderer implements fyne.Widget
func (mc *MonthCalendar) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(mc.content)
}

// Shown returns the displayed year and month
func (mc *MonthCalendar) Shown() (int, time.Month) {
	return mc.year, mc.month
}

// Selected returns the selected date, or the zero time
func (mc *MonthCalendar) Selected() time.Time {
	return mc.selected
}

// Title returns the month heading, e.g. "October 2026"
func (mc *MonthCalendar) Title() string {
	return mc.title.Text
}

// SetMonth displays the given month
func (mc *MonthCalendar) SetMonth(year int, month time.Month) {
	// Normalize overflowing months such as 13 or 0
	d := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	mc.year, mc.month = d.Year(), d.Month()
	mc.rebuild()
}

// NextMonth advances the displayed month
func (mc *MonthCalendar) NextMonth() {
	mc.SetMonth(mc.year, mc.month+1)
}

// PrevMonth moves the displayed month back
func (mc *MonthCalendar) PrevMonth() {
	mc.SetMonth(mc.year, mc.month-1)
}

// SetFirstWeekday changes which weekday starts each row
func (mc *MonthCalendar) SetFirstWeekday(first time.Weekday) {
	if mc.first == first {
		return
	}
	mc.first = first
	mc.rebuild()
}

// SetMarks replaces the marker counts, keyed by models.DateKey
func (mc *MonthCalendar) SetMarks(marks map[string]int) {
	if marks == nil {
		marks = map[string]int{}
	}
	mc.marks = marks
	mc.rebuild()
}

// Select highlights date, switching months if needed, and fires OnSelected
func (mc *MonthCalendar) Select(date time.Time) {
	mc.selected = models.DateOf(date)
	if date.Year() != mc.year || date.Month() != mc.month {
		mc.year, mc.month = date.Year(), date.Month()
	}
	mc.rebuild()
	if mc.OnSelected != nil {
		mc.OnSelected(mc.selected)
	}
}

// Scrolled implements fyne.Scrollable; the wheel pages through months
func (mc *MonthCalendar) Scrolled(ev *fyne.ScrollEvent) {
	switch {
	case ev.Scrolled.DY > 0:
		mc.PrevMonth()
	case ev.Scrolled.DY < 0:
		mc.NextMonth()
	}
}

// Cells returns the day cells of the displayed month, pad cells included
func (mc *MonthCalendar) Cells() []*DayCell {
	cells := make([]*DayCell, 0, len(mc.grid.Objects))
	for _, obj := range mc.grid.Objects {
		if c, ok := obj.(*DayCell); ok {
			cells = append(cells, c)
		}
	}
	return cells
}

func (mc *MonthCalendar) rebuild() {
	mc.title.SetText(fmt.Sprintf("%s %d", mc.month, mc.year))

	mc.headers.Objects = nil
	for _, h := range calendar.WeekdayHeaders(mc.first) {
		mc.headers.Add(widget.NewLabelWithStyle(h, fyne.TextAlignCenter, fyne.TextStyle{Italic: true}))
	}

	now := time.Now
	if mc.Now != nil {
		now = mc.Now
	}
	today := now()

	mc.grid.Objects = nil
	for _, row := range calendar.MonthGrid(mc.year, mc.month, mc.first, time.Local) {
		for _, day := range row {
			cell := NewDayCell(day, mc.Select)
			if !day.IsZero() {
				cell.Marks = mc.marks[models.DateKey(day)]
				cell.Today = models.SameDate(day, today)
				cell.Selected = !mc.selected.IsZero() && models.SameDate(day, mc.selected)
			}
			mc.grid.Add(cell)
		}
	}

	mc.headers.Refresh()
	mc.grid.Refresh()
}
