package components

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellText(t *testing.T) {
	assert.Equal(t, "7", cellText(7, 0))
	assert.Equal(t, "7 •", cellText(7, 1))
	assert.Equal(t, "31 •••", cellText(31, 3))
	assert.Equal(t, "31 •••", cellText(31, 9))
}

func TestDayCellPadIsInert(t *testing.T) {
	test.NewTempApp(t)

	tapped := false
	cell := NewDayCell(time.Time{}, func(time.Time) { tapped = true })
	test.Tap(cell)

	assert.False(t, tapped)
	assert.Empty(t, cell.Text())
}

func TestMonthCalendarLayout(t *testing.T) {
	test.NewTempApp(t)

	shown := time.Date(2026, time.February, 10, 0, 0, 0, 0, time.Local)
	mc := NewMonthCalendar(shown, time.Monday, nil)
	mc.Now = func() time.Time { return shown }
	mc.SetMarks(map[string]int{"2026-02-14": 2})

	assert.Equal(t, "February 2026", mc.Title())

	cells := mc.Cells()
	// February 2026 starts on a Sunday: six pad cells before it in a Monday-first grid
	require.Len(t, cells, 35)
	for _, c := range cells[:6] {
		assert.True(t, c.Date.IsZero())
	}
	assert.Equal(t, 1, cells[6].Date.Day())

	var marked, today *DayCell
	for _, c := range cells {
		if c.Marks > 0 {
			marked = c
		}
		if c.Today {
			today = c
		}
	}
	require.NotNil(t, marked)
	assert.Equal(t, 14, marked.Date.Day())
	assert.Equal(t, "14 ••", marked.Text())
	require.NotNil(t, today)
	assert.Equal(t, 10, today.Date.Day())
}

func TestMonthCalendarNavigation(t *testing.T) {
	test.NewTempApp(t)

	mc := NewMonthCalendar(time.Date(2026, time.December, 1, 0, 0, 0, 0, time.Local), time.Sunday, nil)

	mc.NextMonth()
	year, month := mc.Shown()
	assert.Equal(t, 2027, year)
	assert.Equal(t, time.January, month)

	mc.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.Delta{DY: 1}})
	mc.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.Delta{DY: 1}})
	year, month = mc.Shown()
	assert.Equal(t, 2026, year)
	assert.Equal(t, time.November, month)
}

func TestMonthCalendarSelect(t *testing.T) {
	test.NewTempApp(t)

	var got time.Time
	mc := NewMonthCalendar(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.Local), time.Sunday, func(d time.Time) {
		got = d
	})

	var target *DayCell
	for _, c := range mc.Cells() {
		if c.Date.Day() == 17 {
			target = c
		}
	}
	require.NotNil(t, target)
	test.Tap(target)

	assert.Equal(t, 17, got.Day())
	assert.Equal(t, 17, mc.Selected().Day())

	mc.Select(time.Date(2026, time.July, 4, 9, 30, 0, 0, time.Local))
	_, month := mc.Shown()
	assert.Equal(t, time.July, month)
	assert.Equal(t, 0, got.Hour())
}

func TestStatusBarClears(t *testing.T) {
	test.NewTempApp(t)

	sb := NewStatusBar(widget.NewButton("x", nil))
	sb.SetClearAfter(20 * time.Millisecond)

	sb.SetStatus("Ready.")
	assert.Equal(t, "Ready.", sb.Status())

	assert.Eventually(t, func() bool {
		return sb.Status() == ""
	}, time.Second, 5*time.Millisecond)
}

func TestStatusBarNewMessageCancelsClear(t *testing.T) {
	test.NewTempApp(t)

	sb := NewStatusBar()
	sb.SetClearAfter(50 * time.Millisecond)

	sb.SetStatus("first")
	sb.SetClearAfter(time.Hour)
	sb.SetStatus("second")

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, "second", sb.Status())
	sb.Stop()
}

func TestStatusBarPinnedMessageStays(t *testing.T) {
	test.NewTempApp(t)

	sb := NewStatusBar()
	sb.SetClearAfter(20 * time.Millisecond)

	sb.SetStatus("transient")
	sb.PinStatus("No data file found. Using defaults.")

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, "No data file found. Using defaults.", sb.Status())

	sb.SetStatus("Ready.")
	assert.Eventually(t, func() bool {
		return sb.Status() == ""
	}, time.Second, 5*time.Millisecond)
}
