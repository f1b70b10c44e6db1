package calendar

import (
	"github.com/rs/zerolog"

	"github.com/borgmon/event-tracker/pkg/logger"
)

func appLog() *zerolog.Logger {
	return logger.For("calendar")
}
