package countdown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDelta(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{0, "In: 0s"},
		{45 * time.Second, "In: 45s"},
		{time.Hour + 5*time.Second, "In: 1h 5s"},
		{2*time.Minute + 3*time.Second, "In: 2m 3s"},
		{3*24*time.Hour + 4*time.Hour + 5*time.Minute + 6*time.Second, "In: 3d 4h 5m"},
		{24 * time.Hour, "In: 1d"},
		{500 * time.Millisecond, "In: 0s"},
		{-30 * time.Second, "Just now or Past"},
		{-59 * time.Second, "Just now or Past"},
		{-61 * time.Second, "Ago: 1m 1s"},
		{-(2*time.Hour + 30*time.Second), "Ago: 2h 30s"},
		{-(25 * time.Hour), "Ago: 1d 1h"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatDelta(c.in), "delta %v", c.in)
	}
}

func TestIndicate(t *testing.T) {
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, time.Local)
	assert.Equal(t, Past, Indicate(now.Add(-time.Second), now))
	assert.Equal(t, Urgent, Indicate(now, now))
	assert.Equal(t, Urgent, Indicate(now.Add(24*time.Hour), now))
	assert.Equal(t, Soon, Indicate(now.Add(24*time.Hour+time.Second), now))
	assert.Equal(t, Soon, Indicate(now.Add(7*24*time.Hour), now))
	assert.Equal(t, Near, Indicate(now.Add(30*24*time.Hour), now))
	assert.Equal(t, Far, Indicate(now.Add(31*24*time.Hour), now))
	assert.Equal(t, "🔥", Urgent.Symbol())
	assert.Equal(t, "far", Far.String())
}

func TestParseDate(t *testing.T) {
	want := time.Date(2026, 12, 25, 0, 0, 0, 0, time.Local)
	for _, in := range []string{"2026-12-25", "12/25/2026", "December 25, 2026", "Dec 25, 2026", " 2026-12-25 "} {
		got, err := ParseDate(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), in)
	}

	_, err := ParseDate("25.12.2026")
	assert.ErrorIs(t, err, ErrInvalidDate)
	_, err = ParseDate("2026-02-30")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestParseTime(t *testing.T) {
	d, err := ParseTime("")
	require.NoError(t, err)
	assert.Zero(t, d)

	d, err = ParseTime("13:45:10")
	require.NoError(t, err)
	assert.Equal(t, 13*time.Hour+45*time.Minute+10*time.Second, d)

	d, err = ParseTime("07:30")
	require.NoError(t, err)
	assert.Equal(t, 7*time.Hour+30*time.Minute, d)

	_, err = ParseTime("25:00:00")
	assert.ErrorIs(t, err, ErrInvalidTime)
	_, err = ParseTime("noon")
	assert.ErrorIs(t, err, ErrInvalidTime)
}

func TestCombine(t *testing.T) {
	date := time.Date(2026, 3, 8, 0, 0, 0, 0, time.Local)
	got := Combine(date, 9*time.Hour+15*time.Minute+1*time.Second)
	assert.Equal(t, 9, got.Hour())
	assert.Equal(t, 15, got.Minute())
	assert.Equal(t, 1, got.Second())
	assert.Equal(t, 8, got.Day())
}
