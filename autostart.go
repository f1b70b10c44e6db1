package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/emersion/go-autostart"

	"github.com/borgmon/event-tracker/pkg/logger"
)

func loginItem() (*autostart.App, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to locate executable: %w", err)
	}

	// Resolve symlinks if any
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable: %w", err)
	}

	return &autostart.App{
		Name:        "event-tracker",
		DisplayName: "Event Tracker",
		Exec:        []string{execPath},
	}, nil
}

// setupAutostart makes the login item match enable
func setupAutostart(enable bool) error {
	log := logger.For("autostart")

	app, err := loginItem()
	if err != nil {
		return err
	}

	switch {
	case enable && !app.IsEnabled():
		if err := app.Enable(); err != nil {
			return fmt.Errorf("failed to enable autostart: %w", err)
		}
		log.Info().Msg("autostart enabled")
	case !enable && app.IsEnabled():
		if err := app.Disable(); err != nil {
			return fmt.Errorf("failed to disable autostart: %w", err)
		}
		log.Info().Msg("autostart disabled")
	}

	return nil
}
