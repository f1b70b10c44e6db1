package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/borgmon/event-tracker/pkg/models"
	"github.com/borgmon/event-tracker/pkg/ui/components"
)

func (et *EventTracker) buildBottomBar() fyne.CanvasObject {
	et.darkModeCheck = widget.NewCheck("Dark Mode", nil)
	et.autoStartCheck = widget.NewCheck("Launch at Login", nil)
	et.chimeCheck = widget.NewCheck("Chime", nil)

	et.removeButton = widget.NewButtonWithIcon("Remove Selected", theme.DeleteIcon(), et.removeSelected)
	et.removeButton.Importance = widget.DangerImportance
	et.removeButton.Disable()

	et.statusBar = components.NewStatusBar(
		et.darkModeCheck,
		et.autoStartCheck,
		et.chimeCheck,
		et.removeButton,
	)

	et.syncSettingsControls()
	return et.statusBar.GetContainer()
}

// syncSettingsControls shows the current settings without firing change handlers
func (et *EventTracker) syncSettingsControls() {
	et.darkModeCheck.OnChanged = nil
	et.autoStartCheck.OnChanged = nil
	et.chimeCheck.OnChanged = nil

	et.darkModeCheck.SetChecked(et.settings.DarkMode)
	et.autoStartCheck.SetChecked(et.settings.AutoStart)
	et.chimeCheck.SetChecked(et.settings.Chime)
	if et.weekStartPick != nil {
		if et.settings.WeekStart == models.WeekStartSunday {
			et.weekStartPick.SetSelected("Sunday")
		} else {
			et.weekStartPick.SetSelected("Monday")
		}
	}

	et.darkModeCheck.OnChanged = et.onDarkModeChanged
	et.autoStartCheck.OnChanged = et.onAutoStartChanged
	et.chimeCheck.OnChanged = func(on bool) {
		et.settings.Chime = on
	}
}

func (et *EventTracker) onDarkModeChanged(on bool) {
	et.settings.DarkMode = on
	applyTheme(et.app, on)
	mode := "Light"
	if on {
		mode = "Dark"
	}
	et.setStatus(fmt.Sprintf("Switched to %s Mode.", mode))
}

func (et *EventTracker) onAutoStartChanged(on bool) {
	et.settings.AutoStart = on
	go func() {
		if err := et.autostart(on); err != nil {
			et.log.Error().Err(err).Bool("enable", on).Msg("failed to update autostart")
			fyne.Do(func() {
				et.setStatus("Error: Failed to set Launch at Login")
			})
			return
		}
		fyne.Do(func() {
			if on {
				et.setStatus("Launch at Login enabled.")
			} else {
				et.setStatus("Launch at Login disabled.")
			}
		})
	}()
}

func (et *EventTracker) updateRemoveButton() {
	if et.removeButton == nil {
		return
	}
	if len(et.selectedIDs()) > 0 {
		et.removeButton.Enable()
	} else {
		et.removeButton.Disable()
	}
}
