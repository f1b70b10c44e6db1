package logger

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu   sync.RWMutex
	base = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
)

// Init replaces the process-wide logger
func Init(w io.Writer, level zerolog.Level) {
	l := zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()

	mu.Lock()
	base = l
	mu.Unlock()
}

// Console writes human-readable lines to stderr, at debug level when debug is set
func Console(debug bool) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	Init(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}, level)
}

// For returns a logger tagged with the given component
func For(component string) *zerolog.Logger {
	mu.RLock()
	l := base.With().Str("component", component).Logger()
	mu.RUnlock()
	return &l
}
