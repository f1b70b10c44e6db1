package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/borgmon/event-tracker/pkg/logger"
)

// Scheduler runs calendar-driven jobs such as the midnight rollover
type Scheduler struct {
	cron *cron.Cron
}

// New creates a Scheduler evaluating specs in loc
func New(loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	return &Scheduler{
		cron: cron.New(cron.WithLocation(loc)),
	}
}

// OnMidnight runs fn at the start of every day
func (s *Scheduler) OnMidnight(fn func()) error {
	return s.Schedule("@midnight", "midnight rollover", fn)
}

// Schedule registers fn under a cron spec
func (s *Scheduler) Schedule(spec, name string, fn func()) error {
	_, err := s.cron.AddFunc(spec, func() {
		logger.For("scheduler").Debug().Str("job", name).Msg("running job")
		fn()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule %s (%s): %w", name, spec, err)
	}
	return nil
}

// Next returns the next time any job fires, or the zero time when none are registered
func (s *Scheduler) Next() time.Time {
	var next time.Time
	for _, entry := range s.cron.Entries() {
		n := entry.Next
		if n.IsZero() {
			n = entry.Schedule.Next(time.Now())
		}
		if next.IsZero() || n.Before(next) {
			next = n
		}
	}
	return next
}

// Start begins running jobs in the background
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the scheduler and waits for running jobs to finish
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
