package main

import (
	"errors"
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"github.com/borgmon/event-tracker/pkg/calendar"
	"github.com/borgmon/event-tracker/pkg/models"
	"github.com/borgmon/event-tracker/pkg/store"
)

var icsFilter = storage.NewExtensionFileFilter([]string{".ics"})

func (et *EventTracker) removeSelected() {
	ids := et.selectedIDs()
	if len(ids) == 0 {
		et.setStatus("No events selected to remove.")
		return
	}

	dialog.ShowConfirm("Confirm Removal", removalPrompt(len(ids)), func(confirmed bool) {
		if confirmed {
			et.removeEvents(ids)
		}
	}, et.window)
}

func removalPrompt(n int) string {
	if n > 1 {
		return fmt.Sprintf("Remove %d selected event(s)?", n)
	}
	return "Remove selected event?"
}

// removeEvents deletes the given events and refreshes every view
func (et *EventTracker) removeEvents(ids []string) {
	removed := et.events.Remove(ids...)
	if removed == 0 {
		et.setStatus("Could not remove selected event(s) (already gone?).")
		return
	}

	et.log.Info().Strs("ids", ids).Int("removed", removed).Msg("events removed")
	et.selectedID = ""
	for _, id := range ids {
		delete(et.checked, id)
	}
	et.setStatus(fmt.Sprintf("Removed %d event(s).", removed))
	et.refreshAll()
}

func (et *EventTracker) showImportDialog() {
	open := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, et.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		imported, stats, err := calendar.ImportICS(reader, time.Now())
		if err != nil {
			et.log.Error().Err(err).Str("uri", reader.URI().String()).Msg("import failed")
			dialog.ShowError(err, et.window)
			return
		}

		added, duplicates := et.importEvents(imported)
		skipped := stats.Cancelled + stats.Incomplete + stats.Finished
		et.log.Info().
			Str("uri", reader.URI().String()).
			Int("added", added).
			Int("duplicates", duplicates).
			Int("skipped", skipped).
			Msg("iCalendar imported")

		et.setStatus(importSummary(added, duplicates, skipped))
		et.refreshAll()
	}, et.window)
	open.SetFilter(icsFilter)
	open.Show()
}

// importEvents adds imported events, counting labels that already exist
func (et *EventTracker) importEvents(events []models.Event) (int, int) {
	added, errs := et.events.AddAll(events)
	duplicates := 0
	for _, err := range errs {
		if errors.Is(err, store.ErrDuplicateLabel) {
			duplicates++
			continue
		}
		et.log.Warn().Err(err).Msg("skipping imported event")
	}
	return added, duplicates
}

func importSummary(added, duplicates, skipped int) string {
	msg := fmt.Sprintf("Imported %d event(s).", added)
	if duplicates > 0 {
		msg += fmt.Sprintf(" Skipped %d duplicate(s).", duplicates)
	}
	if skipped > 0 {
		msg += fmt.Sprintf(" Ignored %d unusable event(s).", skipped)
	}
	return msg
}

func (et *EventTracker) showExportDialog() {
	save := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, et.window)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		events := et.events.All()
		if err := calendar.ExportICS(writer, events, time.Now()); err != nil {
			et.log.Error().Err(err).Str("uri", writer.URI().String()).Msg("export failed")
			dialog.ShowError(err, et.window)
			return
		}

		et.log.Info().Str("uri", writer.URI().String()).Int("events", len(events)).Msg("iCalendar exported")
		et.setStatus(fmt.Sprintf("Exported %d event(s) to %s.", len(events), writer.URI().Name()))
	}, et.window)
	save.SetFileName("events.ics")
	save.SetFilter(icsFilter)
	save.Show()
}
