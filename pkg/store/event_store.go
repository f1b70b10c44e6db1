package store

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/borgmon/event-tracker/pkg/models"
)

var (
	ErrEmptyLabel     = errors.New("event label is empty")
	ErrDuplicateLabel = errors.New("an event with this label already exists")
	ErrMissingTarget  = errors.New("event target time is missing")
)

// EventStore holds the tracked events in memory
type EventStore struct {
	mu sync.RWMutex

	// Map of event ID to Event
	events map[string]*models.Event

	// Map of lowercased label to event ID
	byLabel map[string]string

	// Labels of built-ins the user removed; rollovers must not bring them back
	removedBuiltins map[string]struct{}
}

// NewEventStore creates an empty EventStore
func NewEventStore() *EventStore {
	return &EventStore{
		events:          make(map[string]*models.Event),
		byLabel:         make(map[string]string),
		removedBuiltins: make(map[string]struct{}),
	}
}

// Add validates and stores a copy of ev, assigning an ID when it has none
func (es *EventStore) Add(ev models.Event) (*models.Event, error) {
	es.mu.Lock()
	defer es.mu.Unlock()

	return es.add(ev)
}

func (es *EventStore) add(ev models.Event) (*models.Event, error) {
	ev.Label = strings.TrimSpace(ev.Label)
	ev.Location = strings.TrimSpace(ev.Location)

	if ev.Label == "" {
		return nil, ErrEmptyLabel
	}
	if ev.Target.IsZero() {
		return nil, fmt.Errorf("%w: %q", ErrMissingTarget, ev.Label)
	}
	if _, exists := es.byLabel[ev.Key()]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, ev.Label)
	}
	if ev.ID == "" {
		ev.ID = uuid.New().String()
	}

	stored := ev
	es.events[stored.ID] = &stored
	es.byLabel[stored.Key()] = stored.ID

	out := stored
	return &out, nil
}

// AddAll adds every event it can and returns how many were added along with the per-event errors
func (es *EventStore) AddAll(events []models.Event) (int, []error) {
	es.mu.Lock()
	defer es.mu.Unlock()

	added := 0
	var errs []error
	for _, ev := range events {
		if _, err := es.add(ev); err != nil {
			errs = append(errs, err)
			continue
		}
		added++
	}
	return added, errs
}

// Remove deletes the events with the given IDs and returns how many were removed
func (es *EventStore) Remove(ids ...string) int {
	es.mu.Lock()
	defer es.mu.Unlock()

	removed := 0
	for _, id := range ids {
		ev, exists := es.events[id]
		if !exists {
			continue
		}
		if !ev.Custom {
			es.removedBuiltins[ev.Key()] = struct{}{}
		}
		es.removeEvent(id)
		removed++
	}
	return removed
}

// removeEvent removes an event and its label index entry
func (es *EventStore) removeEvent(id string) bool {
	ev, exists := es.events[id]
	if !exists {
		return false
	}
	delete(es.byLabel, ev.Key())
	delete(es.events, id)
	return true
}

// ReplaceBuiltins swaps all built-in events for the given ones.
// Built-ins whose label is taken by a custom event or was removed with
// Remove are dropped. A built-in that is replaced keeps its ID.
func (es *EventStore) ReplaceBuiltins(builtins []models.Event) int {
	es.mu.Lock()
	defer es.mu.Unlock()

	previous := make(map[string]string)
	for id, ev := range es.events {
		if !ev.Custom {
			previous[ev.Key()] = id
			es.removeEvent(id)
		}
	}

	added := 0
	for _, ev := range builtins {
		ev.Custom = false
		if _, gone := es.removedBuiltins[ev.Key()]; gone {
			continue
		}
		if id, ok := previous[ev.Key()]; ok {
			ev.ID = id
		}
		if _, err := es.add(ev); err == nil {
			added++
		}
	}
	return added
}

// Get returns a copy of the event with the given ID
func (es *EventStore) Get(id string) (models.Event, bool) {
	es.mu.RLock()
	defer es.mu.RUnlock()

	ev, ok := es.events[id]
	if !ok {
		return models.Event{}, false
	}
	return *ev, true
}

// HasLabel reports whether an event uses label, ignoring case
func (es *EventStore) HasLabel(label string) bool {
	es.mu.RLock()
	defer es.mu.RUnlock()

	_, ok := es.byLabel[models.LabelKey(label)]
	return ok
}

// Len returns the number of tracked events
func (es *EventStore) Len() int {
	es.mu.RLock()
	defer es.mu.RUnlock()

	return len(es.events)
}

// snapshot returns copies of all events in label order so results are stable
func (es *EventStore) snapshot(keep func(*models.Event) bool) []models.Event {
	es.mu.RLock()
	defer es.mu.RUnlock()

	result := make([]models.Event, 0, len(es.events))
	for _, ev := range es.events {
		if keep == nil || keep(ev) {
			result = append(result, *ev)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Key() < result[j].Key()
	})
	return result
}

// All returns every event ordered by label
func (es *EventStore) All() []models.Event {
	return es.snapshot(nil)
}

// Custom returns the user-created events ordered by label
func (es *EventStore) Custom() []models.Event {
	return es.snapshot(func(ev *models.Event) bool { return ev.Custom })
}

// Sorted returns all events in the requested display order
func (es *EventStore) Sorted(mode models.SortMode, now time.Time) []models.Event {
	result := es.snapshot(nil)
	switch mode {
	case models.SortAlpha:
		// snapshot is already label-ordered
	case models.SortAlphaRev:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Key() > result[j].Key()
		})
	default:
		sort.SliceStable(result, func(i, j int) bool {
			return absDuration(result[i].Target.Sub(now)) < absDuration(result[j].Target.Sub(now))
		})
	}
	return result
}

// On returns the events on the calendar date of day, ordered by time of day
func (es *EventStore) On(day time.Time) []models.Event {
	result := es.snapshot(func(ev *models.Event) bool {
		return models.SameDate(ev.Target, day)
	})
	sortByTarget(result)
	return result
}

// Between returns events with start <= Target < end, ordered by target
func (es *EventStore) Between(start, end time.Time) []models.Event {
	result := es.snapshot(func(ev *models.Event) bool {
		return !ev.Target.Before(start) && ev.Target.Before(end)
	})
	sortByTarget(result)
	return result
}

// Dates counts events per calendar date, keyed by models.DateKey
func (es *EventStore) Dates() map[string]int {
	es.mu.RLock()
	defer es.mu.RUnlock()

	counts := make(map[string]int)
	for _, ev := range es.events {
		counts[models.DateKey(ev.Target)]++
	}
	return counts
}

// Upcoming returns up to limit events after now, soonest first
func (es *EventStore) Upcoming(now time.Time, limit int) []models.Event {
	result := es.snapshot(func(ev *models.Event) bool {
		return ev.Target.After(now)
	})
	sortByTarget(result)
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}

// Arrived returns custom events whose target lies in (prev, now]
func (es *EventStore) Arrived(prev, now time.Time) []models.Event {
	result := es.snapshot(func(ev *models.Event) bool {
		return ev.Custom && ev.Target.After(prev) && !ev.Target.After(now)
	})
	sortByTarget(result)
	return result
}

func sortByTarget(events []models.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Target.Before(events[j].Target)
	})
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
