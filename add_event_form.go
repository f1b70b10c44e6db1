package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/borgmon/event-tracker/pkg/countdown"
	"github.com/borgmon/event-tracker/pkg/models"
	"github.com/borgmon/event-tracker/pkg/store"
)

func (et *EventTracker) buildAddEventForm() fyne.CanvasObject {
	et.labelEntry = widget.NewEntry()
	et.labelEntry.SetPlaceHolder("Event label")

	et.locationEntry = widget.NewEntry()
	et.locationEntry.SetPlaceHolder("Optional")

	et.dateEntry = widget.NewEntry()
	et.dateEntry.SetPlaceHolder(countdown.DateHint)

	et.timeEntry = widget.NewEntry()
	et.timeEntry.SetPlaceHolder(countdown.DefaultTime)

	for _, entry := range []*widget.Entry{et.labelEntry, et.locationEntry, et.dateEntry, et.timeEntry} {
		entry.OnSubmitted = func(string) {
			et.addCustomEvent()
		}
	}
	et.resetForm()

	addButton := widget.NewButtonWithIcon("Add Event", theme.ContentAddIcon(), et.addCustomEvent)
	addButton.Importance = widget.HighImportance

	form := widget.NewForm(
		widget.NewFormItem("Label", et.labelEntry),
		widget.NewFormItem("Location", et.locationEntry),
		&widget.FormItem{Text: "Date", Widget: et.dateEntry, HintText: countdown.DateHint},
		&widget.FormItem{Text: "Time", Widget: et.timeEntry, HintText: "(HH:MM:SS)"},
	)

	return widget.NewCard("Add Custom Event", "", container.NewBorder(nil, nil, nil,
		container.NewVBox(addButton),
		form,
	))
}

// resetForm clears the inputs back to today at the default time
func (et *EventTracker) resetForm() {
	et.labelEntry.SetText("")
	et.locationEntry.SetText("")
	et.dateEntry.SetText(time.Now().Format(countdown.DateFormat))
	et.timeEntry.SetText(countdown.DefaultTime)
}

// parseEventInput turns the raw form values into a custom event
func parseEventInput(label, location, date, clock string) (models.Event, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return models.Event{}, store.ErrEmptyLabel
	}

	day, err := countdown.ParseDate(date)
	if err != nil {
		return models.Event{}, err
	}
	offset, err := countdown.ParseTime(clock)
	if err != nil {
		return models.Event{}, err
	}

	return models.Event{
		Label:    label,
		Target:   countdown.Combine(day, offset),
		Location: strings.TrimSpace(location),
		Custom:   true,
	}, nil
}

// inputErrorMessage maps a form validation error to the text shown to the user
func inputErrorMessage(err error) string {
	switch {
	case errors.Is(err, store.ErrEmptyLabel):
		return "Please enter an event label."
	case errors.Is(err, countdown.ErrInvalidDate):
		return fmt.Sprintf("Invalid date format. Please use %s.", countdown.DateHint)
	case errors.Is(err, countdown.ErrInvalidTime):
		return fmt.Sprintf("Invalid time format. Please use HH:MM:SS (e.g., %s).", countdown.DefaultTime)
	default:
		return err.Error()
	}
}

func (et *EventTracker) addCustomEvent() {
	ev, err := parseEventInput(et.labelEntry.Text, et.locationEntry.Text, et.dateEntry.Text, et.timeEntry.Text)
	if err != nil {
		dialog.ShowInformation("Input Error", inputErrorMessage(err), et.window)
		return
	}

	added, err := et.events.Add(ev)
	if errors.Is(err, store.ErrDuplicateLabel) {
		dialog.ShowInformation("Duplicate Label",
			fmt.Sprintf("An event with the label '%s' already exists.", ev.Label), et.window)
		return
	}
	if err != nil {
		dialog.ShowError(err, et.window)
		return
	}

	et.log.Info().Str("label", added.Label).Time("target", added.Target).Msg("custom event added")

	et.resetForm()
	et.window.Canvas().Focus(et.labelEntry)
	et.setStatus(fmt.Sprintf("Added custom event: %s", added.Label))
	et.refreshAll()
}
