package calendar

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/borgmon/event-tracker/pkg/models"
)

func TestExportImportRoundTrip(t *testing.T) {
	now := time.Date(2026, 10, 14, 9, 0, 0, 0, time.Local)
	events := []models.Event{
		{ID: "a", Label: "Dentist", Target: time.Date(2026, 11, 3, 14, 30, 0, 0, time.Local), Location: "Main St, Suite 4", Custom: true},
		{ID: "b", Label: "Halloween", Target: day(2026, 10, 31), Custom: false},
	}

	var buf bytes.Buffer
	require.NoError(t, ExportICS(&buf, events, now))
	assert.Contains(t, buf.String(), "BEGIN:VCALENDAR")
	assert.Contains(t, buf.String(), "RRULE:FREQ=YEARLY")

	imported, stats, err := ImportICS(&buf, now)
	require.NoError(t, err)
	require.Len(t, imported, 2)
	assert.Equal(t, 2, stats.Events)

	assert.Equal(t, "Dentist", imported[0].Label)
	assert.Equal(t, "Main St, Suite 4", imported[0].Location)
	assert.True(t, events[0].Target.Equal(imported[0].Target))
	assert.True(t, imported[0].Custom)

	assert.Equal(t, "Halloween", imported[1].Label)
	assert.True(t, day(2026, 10, 31).Equal(imported[1].Target))
}

func TestImportSkipsCancelledAndIncomplete(t *testing.T) {
	data := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//test//EN",
		"BEGIN:VEVENT",
		"UID:1",
		"DTSTAMP:20261001T000000Z",
		"DTSTART:20261101T100000Z",
		"SUMMARY:Cancelled: standup",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:2",
		"DTSTAMP:20261001T000000Z",
		"DTSTART:20261101T100000Z",
		"SUMMARY:Review",
		"STATUS:CANCELLED",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:3",
		"DTSTAMP:20261001T000000Z",
		"SUMMARY:No start",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:4",
		"DTSTAMP:20261001T000000Z",
		"DTSTART;TZID=Eastern Standard Time:20261102T090000",
		"SUMMARY:Kickoff",
		"END:VEVENT",
		"END:VCALENDAR",
		"",
	}, "\r\n")

	events, stats, err := ImportICS(strings.NewReader(data), time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Kickoff", events[0].Label)
	assert.Equal(t, 2, stats.Cancelled)
	assert.Equal(t, 1, stats.Incomplete)

	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	assert.True(t, time.Date(2026, 11, 2, 9, 0, 0, 0, ny).Equal(events[0].Target))
}

func TestImportRejectsGarbage(t *testing.T) {
	_, _, err := ImportICS(strings.NewReader("<html>nope</html>"), time.Now())
	assert.Error(t, err)
}
