package store

import (
	"fyne.io/fyne/v2"

	"github.com/borgmon/event-tracker/pkg/models"
)

const (
	prefSortMode = "sort_mode"
	prefTab      = "selected_tab"
)

// PrefsStore keeps UI state in Fyne preferences
type PrefsStore struct {
	app fyne.App
}

// NewPrefsStore creates a PrefsStore instance
func NewPrefsStore(app fyne.App) *PrefsStore {
	return &PrefsStore{app: app}
}

// SortMode returns the last chosen list ordering
func (ps *PrefsStore) SortMode() models.SortMode {
	return models.ParseSortMode(ps.app.Preferences().StringWithFallback(prefSortMode, string(models.DefaultSort)))
}

// SetSortMode remembers the list ordering
func (ps *PrefsStore) SetSortMode(mode models.SortMode) {
	ps.app.Preferences().SetString(prefSortMode, string(mode))
}

// SelectedTab returns the index of the last selected tab
func (ps *PrefsStore) SelectedTab() int {
	return ps.app.Preferences().IntWithFallback(prefTab, 0)
}

// SetSelectedTab remembers the selected tab
func (ps *PrefsStore) SetSelectedTab(index int) {
	ps.app.Preferences().SetInt(prefTab, index)
}
