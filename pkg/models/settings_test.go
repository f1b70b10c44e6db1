package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSettingsNormalize(t *testing.T) {
	s := Settings{WeekStart: "friday"}
	s.Normalize()
	assert.Equal(t, WeekStartMonday, s.WeekStart)
	assert.Equal(t, time.Monday, s.FirstWeekday())

	s = Settings{WeekStart: WeekStartSunday}
	s.Normalize()
	assert.Equal(t, time.Sunday, s.FirstWeekday())
}

func TestParseSortMode(t *testing.T) {
	assert.Equal(t, SortAlphaRev, ParseSortMode("Alphabetical (Z-A)"))
	assert.Equal(t, SortClosest, ParseSortMode(""))
	assert.Equal(t, SortClosest, ParseSortMode("bogus"))
}

func TestLabelKey(t *testing.T) {
	assert.Equal(t, "halloween", LabelKey("  HalloWeen "))
	a := time.Date(2024, 2, 29, 23, 59, 0, 0, time.Local)
	b := time.Date(2024, 2, 29, 0, 0, 1, 0, time.Local)
	assert.True(t, SameDate(a, b))
	assert.Equal(t, b.Add(-time.Second), DateOf(a))
}
