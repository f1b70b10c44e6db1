package components

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// DefaultClearAfter is how long a status message stays visible
const DefaultClearAfter = 4 * time.Second

// StatusBar shows transient status messages with controls on the right
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label

	mu         sync.Mutex
	clearAfter time.Duration
	timer      *time.Timer
	generation uint64
}

// NewStatusBar creates a status bar with trailing controls
func NewStatusBar(trailing ...fyne.CanvasObject) *StatusBar {
	statusLabel := widget.NewLabel("")
	statusLabel.Truncation = fyne.TextTruncateEllipsis

	controls := container.NewHBox(trailing...)

	mainContainer := container.NewBorder(
		widget.NewSeparator(), nil,
		nil,
		controls,
		statusLabel,
	)

	return &StatusBar{
		container:   mainContainer,
		statusLabel: statusLabel,
		clearAfter:  DefaultClearAfter,
	}
}

// GetContainer returns the bar's root object
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

// SetClearAfter changes how long messages stay visible
func (sb *StatusBar) SetClearAfter(d time.Duration) {
	sb.mu.Lock()
	sb.clearAfter = d
	sb.mu.Unlock()
}

// Status returns the visible message
func (sb *StatusBar) Status() string {
	return sb.statusLabel.Text
}

// SetStatus shows msg and schedules it to clear. A newer message cancels the pending clear.
func (sb *StatusBar) SetStatus(msg string) {
	sb.statusLabel.SetText(msg)

	sb.mu.Lock()
	defer sb.mu.Unlock()

	if sb.timer != nil {
		sb.timer.Stop()
	}
	sb.generation++
	gen := sb.generation
	sb.timer = time.AfterFunc(sb.clearAfter, func() {
		fyne.Do(func() {
			sb.clear(gen)
		})
	})
}

// PinStatus shows msg until the next message replaces it
func (sb *StatusBar) PinStatus(msg string) {
	sb.statusLabel.SetText(msg)

	sb.mu.Lock()
	defer sb.mu.Unlock()

	if sb.timer != nil {
		sb.timer.Stop()
		sb.timer = nil
	}
	sb.generation++
}

func (sb *StatusBar) clear(gen uint64) {
	sb.mu.Lock()
	current := sb.generation == gen
	sb.mu.Unlock()

	if current {
		sb.statusLabel.SetText("")
	}
}

// Stop cancels any pending clear
func (sb *StatusBar) Stop() {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if sb.timer != nil {
		sb.timer.Stop()
		sb.timer = nil
	}
}
