package store

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/borgmon/event-tracker/pkg/models"
)

func TestPrefsStore(t *testing.T) {
	ps := NewPrefsStore(test.NewApp())

	assert.Equal(t, models.SortClosest, ps.SortMode())
	assert.Equal(t, 0, ps.SelectedTab())

	ps.SetSortMode(models.SortAlphaRev)
	ps.SetSelectedTab(2)

	assert.Equal(t, models.SortAlphaRev, ps.SortMode())
	assert.Equal(t, 2, ps.SelectedTab())
}
