package platform

import "fyne.io/fyne/v2"

// Raise shows w and brings the application in front of other apps
func Raise(w fyne.Window) {
	w.Show()
	w.RequestFocus()
	if !isAppActive() {
		activateApp()
	}
}

// IsAppActive reports whether the application has focus
func IsAppActive() bool {
	return isAppActive()
}
