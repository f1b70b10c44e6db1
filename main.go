package main

import (
	"flag"
	"path/filepath"

	"fyne.io/fyne/v2/app"

	"github.com/borgmon/event-tracker/pkg/logger"
	"github.com/borgmon/event-tracker/pkg/store"
)

const appID = "com.borgmon.event-tracker"

func main() {
	dataPath := flag.String("data", "", "path to the data file (defaults to the app storage directory)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger.Console(*debug)

	a := app.NewWithID(appID)

	path := *dataPath
	if path == "" {
		path = filepath.Join(a.Storage().RootURI().Path(), store.DefaultFileName)
	}

	et := NewEventTracker(a, store.NewDataStore(path))
	et.run()
}
