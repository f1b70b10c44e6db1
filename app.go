package main

import (
	"errors"
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/borgmon/event-tracker/pkg/audio"
	"github.com/borgmon/event-tracker/pkg/calendar"
	"github.com/borgmon/event-tracker/pkg/logger"
	"github.com/borgmon/event-tracker/pkg/models"
	"github.com/borgmon/event-tracker/pkg/platform"
	"github.com/borgmon/event-tracker/pkg/scheduler"
	"github.com/borgmon/event-tracker/pkg/store"
	"github.com/borgmon/event-tracker/pkg/ui/components"
)

const refreshInterval = 1 * time.Second

type EventTracker struct {
	app       fyne.App
	window    fyne.Window
	events    *store.EventStore
	data      *store.DataStore
	prefs     *store.PrefsStore
	scheduler *scheduler.Scheduler
	log       *zerolog.Logger

	settings  models.Settings
	sortMode  models.SortMode
	weekStart time.Time

	refreshTicker *time.Ticker
	stopRefresh   chan struct{}
	lastTick      time.Time
	chime         *audio.Player
	autostart     func(enable bool) error
	started       bool
	closing       bool

	// Add form
	labelEntry    *widget.Entry
	locationEntry *widget.Entry
	dateEntry     *widget.Entry
	timeEntry     *widget.Entry

	// Event list tab
	eventsTable *widget.Table
	eventRows   []models.Event
	selectedID  string
	checked     map[string]bool
	sortSelect  *widget.Select

	// Calendar tab
	monthCalendar *components.MonthCalendar
	dayDetail     *widget.Label

	// Week tab
	weekHeader    *widget.Label
	weekContent   *fyne.Container
	weekStartPick *widget.Select

	// Bottom bar
	statusBar      *components.StatusBar
	darkModeCheck  *widget.Check
	autoStartCheck *widget.Check
	chimeCheck     *widget.Check
	removeButton   *widget.Button

	tabs *container.AppTabs
}

func NewEventTracker(a fyne.App, data *store.DataStore) *EventTracker {
	et := &EventTracker{
		app:       a,
		events:    store.NewEventStore(),
		data:      data,
		prefs:     store.NewPrefsStore(a),
		scheduler: scheduler.New(time.Local),
		log:       logger.For("app"),
		settings:  models.DefaultSettings(),
		sortMode:  models.DefaultSort,
		weekStart: calendar.WeekStart(time.Now(), time.Monday),
		autostart: setupAutostart,
	}
	et.checked = make(map[string]bool)
	et.buildMainWindow()
	return et
}

func (et *EventTracker) run() {
	et.app.Lifecycle().SetOnStarted(func() {
		et.start()
	})
	et.window.ShowAndRun()
}

// start loads the data file and starts the timers
func (et *EventTracker) start() {
	if et.started {
		return
	}
	et.started = true
	now := time.Now()

	et.setStatus("Loading data...")
	custom := et.loadData()

	applyTheme(et.app, et.settings.DarkMode)
	et.syncSettingsControls()
	go func(enable bool) {
		if err := et.autostart(enable); err != nil {
			et.log.Warn().Err(err).Msg("failed to sync autostart state")
		}
	}(et.settings.AutoStart)

	added, errs := et.events.AddAll(custom)
	for _, err := range errs {
		et.log.Warn().Err(err).Msg("skipping stored event")
	}
	et.log.Info().Int("custom", added).Msg("custom events added")

	et.setStatus("Adding built-in events...")
	builtinCount := et.projectBuiltins(now)
	if builtinCount > 0 {
		et.setStatus(fmt.Sprintf("Added %d built-in events.", builtinCount))
	} else {
		et.setStatus("No new built-in events added (might exist as custom).")
	}

	et.weekStart = calendar.WeekStart(now, et.settings.FirstWeekday())
	et.sortMode = et.prefs.SortMode()
	et.sortSelect.SetSelected(string(et.sortMode))
	if tab := et.prefs.SelectedTab(); tab >= 0 && tab < len(et.tabs.Items) {
		et.tabs.SelectIndex(tab)
	}

	et.refreshAll()
	et.startRefresh()
	et.startRollover()
	et.setStatus("Ready.")
}

// loadData reads the data file and adopts its settings. Failures fall back to defaults.
func (et *EventTracker) loadData() []models.Event {
	data, err := et.data.Load()
	et.settings = data.Settings

	switch {
	case errors.Is(err, store.ErrNoDataFile):
		et.log.Info().Str("path", et.data.Path()).Msg("no data file, using defaults")
		et.pinStatus("No data file found. Using defaults.")
	case errors.Is(err, store.ErrCorruptData):
		et.log.Error().Err(err).Msg("corrupted data file")
		et.setStatus(fmt.Sprintf("Error: Corrupted data in %s. Using defaults.", et.data.Path()))
	case err != nil:
		et.log.Error().Err(err).Msg("failed to load data file")
		et.setStatus(fmt.Sprintf("Error loading data file: %v. Using defaults.", err))
	default:
		et.setStatus(fmt.Sprintf("Loaded settings and %d custom events.", len(data.Events)))
	}

	return data.Events
}

// projectBuiltins replaces the built-in events with their next occurrences from now
func (et *EventTracker) projectBuiltins(now time.Time) int {
	builtins := calendar.ProjectBuiltins(calendar.BuiltinOccasions(), now, nil)
	added := et.events.ReplaceBuiltins(builtins)
	et.log.Info().Int("builtins", added).Msg("built-in events projected")
	return added
}

func (et *EventTracker) startRefresh() {
	et.lastTick = time.Now()
	et.refreshTicker = time.NewTicker(refreshInterval)
	et.stopRefresh = make(chan struct{})

	go func(ticker *time.Ticker, stop chan struct{}) {
		for {
			select {
			case <-ticker.C:
				fyne.Do(et.tick)
			case <-stop:
				return
			}
		}
	}(et.refreshTicker, et.stopRefresh)
}

// tick refreshes the countdowns and announces events that just arrived
func (et *EventTracker) tick() {
	now := time.Now()
	arrived := et.events.Arrived(et.lastTick, now)
	et.lastTick = now

	if et.eventsTable != nil {
		et.eventsTable.Refresh()
	}
	for _, ev := range arrived {
		et.announce(ev)
	}
}

func (et *EventTracker) startRollover() {
	err := et.scheduler.OnMidnight(func() {
		fyne.Do(et.rollover)
	})
	if err != nil {
		et.log.Error().Err(err).Msg("failed to schedule midnight rollover")
		return
	}
	et.scheduler.Start()
	et.log.Debug().Time("next", et.scheduler.Next()).Msg("midnight rollover scheduled")
}

// rollover moves built-ins whose date has passed to next year
func (et *EventTracker) rollover() {
	now := time.Now()
	count := et.projectBuiltins(now)
	et.log.Info().Int("builtins", count).Msg("midnight rollover")
	et.refreshAll()
}

// announce tells the user a custom event has arrived
func (et *EventTracker) announce(ev models.Event) {
	et.log.Info().Str("label", ev.Label).Time("target", ev.Target).Msg("event arrived")

	et.app.SendNotification(fyne.NewNotification("Event Tracker", arrivalMessage(ev)))
	et.setStatus(fmt.Sprintf("Event arrived: %s", ev.Label))

	if et.settings.Chime {
		go func() {
			p := audio.PlayChime(audio.ArrivalChime)
			fyne.Do(func() {
				et.chime.Stop()
				et.chime = p
			})
		}()
	}

	platform.Raise(et.window)
}

func arrivalMessage(ev models.Event) string {
	if ev.Location != "" {
		return fmt.Sprintf("%s is now (%s)", ev.Label, ev.Location)
	}
	return fmt.Sprintf("%s is now", ev.Label)
}

// refreshAll redraws every view from the store
func (et *EventTracker) refreshAll() {
	et.refreshEvents()
	et.refreshCalendar()
	et.refreshWeek()
	et.updateSystemTrayMenu()
}

func (et *EventTracker) setStatus(msg string) {
	et.log.Debug().Str("status", msg).Msg("status")
	if et.statusBar != nil {
		et.statusBar.SetStatus(msg)
	}
}

func (et *EventTracker) pinStatus(msg string) {
	et.log.Debug().Str("status", msg).Msg("status")
	if et.statusBar != nil {
		et.statusBar.PinStatus(msg)
	}
}

// shutdown stops the timers, saves the data file and quits
func (et *EventTracker) shutdown() {
	if et.closing {
		return
	}
	et.closing = true

	if et.refreshTicker != nil {
		et.refreshTicker.Stop()
		close(et.stopRefresh)
		et.refreshTicker = nil
	}
	if et.started {
		et.scheduler.Stop()
	}
	et.chime.Stop()

	saved, err := et.data.Save(et.settings, et.events.All())
	if err != nil {
		et.log.Error().Err(err).Msg("failed to save data")
		et.setStatus(fmt.Sprintf("Error saving data: %v", err))
	} else {
		et.setStatus(fmt.Sprintf("Saved settings and %d custom events.", saved))
	}

	et.statusBar.Stop()
	et.app.Quit()
}
