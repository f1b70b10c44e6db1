package platform

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestRaiseShowsWindow(t *testing.T) {
	a := test.NewTempApp(t)
	w := a.NewWindow("raise")
	defer w.Close()

	assert.NotPanics(t, func() { Raise(w) })
}
