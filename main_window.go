package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
)

func (et *EventTracker) buildMainWindow() {
	et.window = et.app.NewWindow("Event Tracker")
	et.window.SetIcon(theme.HistoryIcon())

	form := et.buildAddEventForm()
	bottom := et.buildBottomBar()

	et.tabs = container.NewAppTabs(
		container.NewTabItem("Event List", et.buildEventsTab()),
		container.NewTabItem("Calendar", et.buildCalendarTab()),
		container.NewTabItem("Week View", et.buildWeekTab()),
	)
	et.tabs.OnSelected = func(item *container.TabItem) {
		et.prefs.SetSelectedTab(et.tabs.SelectedIndex())
		if item.Text == "Week View" {
			et.refreshWeek()
		}
	}

	et.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu("File",
			fyne.NewMenuItem("Import iCalendar…", et.showImportDialog),
			fyne.NewMenuItem("Export iCalendar…", et.showExportDialog),
			fyne.NewMenuItemSeparator(),
			&fyne.MenuItem{Label: "Quit", IsQuit: true, Action: et.shutdown},
		),
	))

	et.window.SetContent(container.NewBorder(
		container.NewPadded(form),
		bottom,
		nil, nil,
		et.tabs,
	))
	et.window.Resize(fyne.NewSize(900, 700))
	et.window.SetCloseIntercept(et.shutdown)

	et.setupSystemTray()
}
