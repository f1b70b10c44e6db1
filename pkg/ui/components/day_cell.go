package components

import (
	"image/color"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// maxDots caps the marker suffix on busy days
const maxDots = 3

// DayCell is one tappable day of a MonthCalendar
type DayCell struct {
	widget.BaseWidget
	Date     time.Time
	Marks    int
	Today    bool
	Selected bool
	OnTapped func(time.Time)

	hovered bool
}

// NewDayCell creates a DayCell for date. A zero date renders as an empty pad cell.
func NewDayCell(date time.Time, onTapped func(time.Time)) *DayCell {
	c := &DayCell{
		Date:     date,
		OnTapped: onTapped,
	}
	c.ExtendBaseWidget(c)
	return c
}

// Text is what the cell shows: the day number followed by one dot per event
func (c *DayCell) Text() string {
	if c.Date.IsZero() {
		return ""
	}
	return cellText(c.Date.Day(), c.Marks)
}

func cellText(day, marks int) string {
	text := strconv.Itoa(day)
	if marks <= 0 {
		return text
	}
	if marks > maxDots {
		marks = maxDots
	}
	return text + " " + strings.Repeat("•", marks)
}

// CreateRenderer implements fyne.Widget
func (c *DayCell) CreateRenderer() fyne.WidgetRenderer {
	text := canvas.NewText(c.Text(), theme.Color(theme.ColorNameForeground))
	text.Alignment = fyne.TextAlignCenter

	bg := canvas.NewRectangle(color.Transparent)
	bg.CornerRadius = theme.InputRadiusSize()

	r := &dayCellRenderer{
		cell: c,
		text: text,
		bg:   bg,
	}
	r.Refresh()
	return r
}

// Tapped implements fyne.Tappable
func (c *DayCell) Tapped(*fyne.PointEvent) {
	if c.Date.IsZero() || c.OnTapped == nil {
		return
	}
	c.OnTapped(c.Date)
}

// MouseIn implements desktop.Hoverable
func (c *DayCell) MouseIn(*desktop.MouseEvent) {
	c.hovered = true
	c.Refresh()
}

// MouseMoved implements desktop.Hoverable
func (c *DayCell) MouseMoved(*desktop.MouseEvent) {}

// MouseOut implements desktop.Hoverable
func (c *DayCell) MouseOut() {
	c.hovered = false
	c.Refresh()
}

type dayCellRenderer struct {
	cell *DayCell
	text *canvas.Text
	bg   *canvas.Rectangle
}

func (r *dayCellRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.text.Resize(size)
}

func (r *dayCellRenderer) MinSize() fyne.Size {
	textSize := fyne.MeasureText("30 •••", theme.TextSize(), fyne.TextStyle{Bold: true})
	return fyne.NewSize(textSize.Width+theme.Padding()*2, textSize.Height+theme.Padding()*3)
}

func (r *dayCellRenderer) Refresh() {
	c := r.cell
	r.text.Text = c.Text()
	r.text.TextStyle = fyne.TextStyle{Bold: c.Marks > 0 || c.Today}

	switch {
	case c.Marks > 0:
		r.text.Color = theme.Color(theme.ColorNamePrimary)
	default:
		r.text.Color = theme.Color(theme.ColorNameForeground)
	}

	switch {
	case c.Date.IsZero():
		r.bg.FillColor = color.Transparent
	case c.Selected:
		r.bg.FillColor = theme.Color(theme.ColorNameSelection)
	case c.hovered:
		r.bg.FillColor = theme.Color(theme.ColorNameHover)
	case c.Today:
		r.bg.FillColor = theme.Color(theme.ColorNameFocus)
	default:
		r.bg.FillColor = theme.Color(theme.ColorNameInputBackground)
	}

	r.bg.Refresh()
	r.text.Refresh()
}

func (r *dayCellRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.bg, r.text}
}

func (r *dayCellRenderer) Destroy() {}
