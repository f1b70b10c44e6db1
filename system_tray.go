package main

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"

	"github.com/borgmon/event-tracker/pkg/models"
	"github.com/borgmon/event-tracker/pkg/platform"
)

const trayUpcomingLimit = 5

func (et *EventTracker) setupSystemTray() {
	et.updateSystemTrayMenu()
}

func (et *EventTracker) updateSystemTrayMenu() {
	if desk, ok := et.app.(desktop.App); ok {
		menuItems := []*fyne.MenuItem{}

		// Add upcoming events section at the top
		lines := trayLines(et.events.Upcoming(time.Now(), trayUpcomingLimit))
		if len(lines) > 0 {
			headerItem := fyne.NewMenuItem("Upcoming:", nil)
			headerItem.Disabled = true
			menuItems = append(menuItems, headerItem)

			for _, line := range lines {
				item := fyne.NewMenuItem(line, nil)
				item.Disabled = true
				menuItems = append(menuItems, item)
			}

			menuItems = append(menuItems, fyne.NewMenuItemSeparator())
		}

		menuItems = append(menuItems,
			fyne.NewMenuItem("Show Window", func() {
				platform.Raise(et.window)
			}),
		)

		menuItems = append(menuItems, fyne.NewMenuItemSeparator())
		menuItems = append(menuItems, &fyne.MenuItem{Label: "Quit", IsQuit: true, Action: et.shutdown})

		menu := fyne.NewMenu("Event Tracker", menuItems...)
		desk.SetSystemTrayMenu(menu)
		desk.SetSystemTrayIcon(theme.HistoryIcon())
	}
}

// trayLines formats upcoming events for the tray menu
func trayLines(events []models.Event) []string {
	lines := make([]string, 0, len(events))
	for _, ev := range events {
		lines = append(lines, fmt.Sprintf("  %s - %s", ev.Target.Format("Jan 02 15:04"), truncateString(ev.Label, 35)))
	}
	return lines
}

// truncateString truncates a string to maxLen runes, adding "..." if needed
func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
