package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/borgmon/event-tracker/pkg/models"
)

var now = time.Date(2026, 10, 14, 12, 0, 0, 0, time.Local)

func at(days int, h int) time.Time {
	d := time.Date(2026, 10, 14, 0, 0, 0, 0, time.Local).AddDate(0, 0, days)
	return d.Add(time.Duration(h) * time.Hour)
}

func seeded(t *testing.T) *EventStore {
	t.Helper()
	es := NewEventStore()
	for _, ev := range []models.Event{
		{Label: "Halloween", Target: at(17, 0)},
		{Label: "dentist", Target: at(1, 9), Location: "Clinic", Custom: true},
		{Label: "Yesterday", Target: at(-1, 12), Custom: true},
		{Label: "Lunch", Target: at(1, 13), Custom: true},
	} {
		_, err := es.Add(ev)
		require.NoError(t, err)
	}
	return es
}

func TestAddRejectsDuplicateLabels(t *testing.T) {
	es := seeded(t)

	_, err := es.Add(models.Event{Label: "HALLOWEEN", Target: at(3, 0), Custom: true})
	assert.ErrorIs(t, err, ErrDuplicateLabel)

	_, err = es.Add(models.Event{Label: "  Dentist ", Target: at(3, 0), Custom: true})
	assert.ErrorIs(t, err, ErrDuplicateLabel)

	assert.Equal(t, 4, es.Len())
	assert.True(t, es.HasLabel("lunch"))
}

func TestAddValidates(t *testing.T) {
	es := NewEventStore()

	_, err := es.Add(models.Event{Label: "   ", Target: now})
	assert.ErrorIs(t, err, ErrEmptyLabel)

	_, err = es.Add(models.Event{Label: "No time"})
	assert.ErrorIs(t, err, ErrMissingTarget)

	ev, err := es.Add(models.Event{Label: " Trip ", Target: now, Location: " Oslo "})
	require.NoError(t, err)
	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, "Trip", ev.Label)
	assert.Equal(t, "Oslo", ev.Location)

	got, ok := es.Get(ev.ID)
	require.True(t, ok)
	assert.Equal(t, *ev, got)
}

func TestRemove(t *testing.T) {
	es := seeded(t)
	lunch := es.On(at(1, 0))[1]
	require.Equal(t, "Lunch", lunch.Label)

	assert.Equal(t, 1, es.Remove(lunch.ID, "missing"))
	assert.Equal(t, 0, es.Remove(lunch.ID))
	assert.False(t, es.HasLabel("Lunch"))
	assert.Equal(t, 3, es.Len())

	_, err := es.Add(models.Event{Label: "lunch", Target: at(2, 0)})
	assert.NoError(t, err)
}

func labels(events []models.Event) []string {
	out := make([]string, len(events))
	for i, ev := range events {
		out[i] = ev.Label
	}
	return out
}

func TestSorted(t *testing.T) {
	es := seeded(t)

	assert.Equal(t, []string{"dentist", "Halloween", "Lunch", "Yesterday"}, labels(es.Sorted(models.SortAlpha, now)))
	assert.Equal(t, []string{"Yesterday", "Lunch", "Halloween", "dentist"}, labels(es.Sorted(models.SortAlphaRev, now)))
	// distances: Yesterday 24h, dentist 21h, Lunch 25h, Halloween ~16.5d
	assert.Equal(t, []string{"dentist", "Yesterday", "Lunch", "Halloween"}, labels(es.Sorted(models.SortClosest, now)))
}

func TestQueries(t *testing.T) {
	es := seeded(t)

	assert.Equal(t, []string{"dentist", "Lunch"}, labels(es.On(at(1, 20))))
	assert.Empty(t, es.On(at(5, 0)))

	assert.Equal(t, []string{"Yesterday", "dentist", "Lunch"}, labels(es.Between(at(-1, 0), at(2, 0))))

	dates := es.Dates()
	assert.Equal(t, 2, dates[models.DateKey(at(1, 0))])
	assert.Equal(t, 1, dates["2026-10-31"])

	assert.Equal(t, []string{"dentist", "Lunch"}, labels(es.Upcoming(now, 2)))
	assert.Equal(t, []string{"dentist", "Lunch", "Yesterday"}, labels(es.Custom()))

	arrived := es.Arrived(at(1, 8), at(1, 9))
	assert.Equal(t, []string{"dentist"}, labels(arrived))
	assert.Empty(t, es.Arrived(at(1, 9), at(1, 10)))
	// built-ins never arrive
	assert.Empty(t, es.Arrived(at(16, 23), at(17, 1)))
}

func TestReplaceBuiltins(t *testing.T) {
	es := seeded(t)

	added := es.ReplaceBuiltins([]models.Event{
		{Label: "Halloween", Target: at(382, 0)},
		{Label: "Lunch", Target: at(3, 0)},
		{Label: "Christmas Day", Target: at(72, 0)},
	})

	assert.Equal(t, 2, added)
	assert.Equal(t, []string{"Christmas Day", "dentist", "Halloween", "Lunch", "Yesterday"}, labels(es.All()))

	for _, ev := range es.All() {
		if ev.Label == "Lunch" {
			assert.True(t, ev.Custom)
		}
		if ev.Label == "Halloween" {
			assert.True(t, at(382, 0).Equal(ev.Target))
		}
	}
}

func TestReplaceBuiltinsAfterRemove(t *testing.T) {
	es := NewEventStore()
	builtins := []models.Event{
		{Label: "Groundhog Day", Target: at(111, 0)},
		{Label: "Halloween", Target: at(17, 0)},
	}
	require.Equal(t, 2, es.ReplaceBuiltins(builtins))

	ids := map[string]string{}
	for _, ev := range es.All() {
		ids[ev.Label] = ev.ID
	}
	require.Equal(t, 1, es.Remove(ids["Groundhog Day"]))

	// Next midnight projects the same built-ins a day later
	added := es.ReplaceBuiltins([]models.Event{
		{Label: "Groundhog Day", Target: at(476, 0)},
		{Label: "Halloween", Target: at(382, 0)},
	})

	assert.Equal(t, 1, added)
	assert.False(t, es.HasLabel("Groundhog Day"))
	require.True(t, es.HasLabel("Halloween"))

	all := es.All()
	require.Len(t, all, 1)
	assert.Equal(t, ids["Halloween"], all[0].ID)
	assert.True(t, at(382, 0).Equal(all[0].Target))
}

func TestRemovedCustomDoesNotHideBuiltin(t *testing.T) {
	es := NewEventStore()
	custom, err := es.Add(models.Event{Label: "Halloween", Target: at(2, 0), Custom: true})
	require.NoError(t, err)
	require.Equal(t, 1, es.Remove(custom.ID))

	assert.Equal(t, 1, es.ReplaceBuiltins([]models.Event{{Label: "Halloween", Target: at(17, 0)}}))
	assert.True(t, es.HasLabel("halloween"))
}

func TestAddAll(t *testing.T) {
	es := seeded(t)
	added, errs := es.AddAll([]models.Event{
		{Label: "New", Target: at(2, 0), Custom: true},
		{Label: "lunch", Target: at(2, 0), Custom: true},
	})
	assert.Equal(t, 1, added)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrDuplicateLabel)
}
