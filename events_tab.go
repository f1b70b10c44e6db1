package main

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/borgmon/event-tracker/pkg/countdown"
	"github.com/borgmon/event-tracker/pkg/models"
)

// Column 0 holds the removal checks; the others are rendered by eventCell
var eventColumns = []string{"✓", "", "Label", "Location", "Next Occurrence", "Time Difference"}

func (et *EventTracker) buildEventsTab() fyne.CanvasObject {
	modes := []string{}
	for _, m := range models.SortModes() {
		modes = append(modes, string(m))
	}
	et.sortSelect = widget.NewSelect(modes, nil)
	et.sortSelect.SetSelected(string(et.sortMode))
	et.sortSelect.OnChanged = et.onSortChanged

	table := widget.NewTable(
		func() (rows int, cols int) {
			return len(et.eventRows), len(eventColumns)
		},
		func() fyne.CanvasObject {
			label := widget.NewLabel("Template")
			label.Truncation = fyne.TextTruncateEllipsis
			return container.NewStack(label, widget.NewCheck("", nil))
		},
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			cell := obj.(*fyne.Container)
			label := cell.Objects[0].(*widget.Label)
			check := cell.Objects[1].(*widget.Check)

			if id.Row >= len(et.eventRows) {
				label.SetText("")
				check.Hide()
				return
			}
			ev := et.eventRows[id.Row]

			if id.Col == 0 {
				label.Hide()
				check.OnChanged = nil
				check.SetChecked(et.checked[ev.ID])
				check.OnChanged = func(on bool) {
					et.setChecked(ev.ID, on)
				}
				check.Show()
				return
			}

			check.Hide()
			label.Show()
			now := time.Now()
			label.Importance = cellImportance(ev, now)
			label.SetText(eventCell(ev, id.Col-1, now))
		},
	)

	table.ShowHeaderRow = true
	table.CreateHeader = func() fyne.CanvasObject {
		label := widget.NewLabel("Header")
		label.TextStyle.Bold = true
		return label
	}
	table.UpdateHeader = func(id widget.TableCellID, obj fyne.CanvasObject) {
		obj.(*widget.Label).SetText(eventColumns[id.Col])
	}

	for i, width := range []float32{44, 44, 240, 160, 200, 200} {
		table.SetColumnWidth(i, width)
	}

	table.OnSelected = func(id widget.TableCellID) {
		if id.Row < 0 || id.Row >= len(et.eventRows) || id.Col == 0 {
			return
		}
		et.selectedID = et.eventRows[id.Row].ID
		et.updateRemoveButton()
	}
	table.OnUnselected = func(widget.TableCellID) {
		et.selectedID = ""
		et.updateRemoveButton()
	}

	et.eventsTable = table

	return container.NewBorder(
		container.NewHBox(widget.NewLabel("Sort by:"), et.sortSelect),
		nil, nil, nil,
		table,
	)
}

// eventCell renders one column of an event row
func eventCell(ev models.Event, col int, now time.Time) string {
	switch col {
	case 0:
		return countdown.Indicate(ev.Target, now).Symbol()
	case 1:
		return ev.Label
	case 2:
		return ev.Location
	case 3:
		return ev.Target.Format(countdown.DateTimeDisplay)
	case 4:
		return countdown.Until(ev.Target, now)
	default:
		return ""
	}
}

func cellImportance(ev models.Event, now time.Time) widget.Importance {
	switch countdown.Indicate(ev.Target, now) {
	case countdown.Past:
		return widget.LowImportance
	case countdown.Urgent:
		return widget.DangerImportance
	case countdown.Soon:
		return widget.WarningImportance
	default:
		return widget.MediumImportance
	}
}

func (et *EventTracker) onSortChanged(value string) {
	mode := models.ParseSortMode(value)
	if mode == et.sortMode && et.eventRows != nil {
		return
	}
	et.setStatus(fmt.Sprintf("Sorting by %s...", mode))
	et.sortMode = mode
	et.prefs.SetSortMode(mode)
	et.refreshEvents()
	et.setStatus("Sort complete.")
}

func (et *EventTracker) setChecked(id string, on bool) {
	if on {
		et.checked[id] = true
	} else {
		delete(et.checked, id)
	}
	et.updateRemoveButton()
}

// selectedIDs returns the checked events and the highlighted row, in row order
func (et *EventTracker) selectedIDs() []string {
	ids := []string{}
	for _, ev := range et.eventRows {
		if et.checked[ev.ID] || ev.ID == et.selectedID {
			ids = append(ids, ev.ID)
		}
	}
	return ids
}

// refreshEvents re-sorts the rows and keeps the selection on the same event
func (et *EventTracker) refreshEvents() {
	if et.eventsTable == nil {
		return
	}
	et.eventRows = et.events.Sorted(et.sortMode, time.Now())

	row := -1
	present := make(map[string]bool, len(et.eventRows))
	for i, ev := range et.eventRows {
		present[ev.ID] = true
		if ev.ID == et.selectedID {
			row = i
		}
	}
	for id := range et.checked {
		if !present[id] {
			delete(et.checked, id)
		}
	}
	if row < 0 {
		et.selectedID = ""
		et.eventsTable.UnselectAll()
	}

	et.eventsTable.Refresh()
	if row >= 0 {
		et.eventsTable.Select(widget.TableCellID{Row: row, Col: 2})
	}
	et.updateRemoveButton()
}
