package reload

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// Schedule triggers reloads on a cron spec with a leading seconds field,
// e.g. "0 */5 * * * *", or a descriptor such as "@every 30s".
type Schedule struct {
	cron *cron.Cron
	spec string
}

// NewSchedule parses spec and registers notify. Call Start to begin.
func NewSchedule(spec string, notify func(Reason)) (*Schedule, error) {
	c := cron.New(cron.WithSeconds())
	if _, err := c.AddFunc(spec, func() { notify(ReasonSchedule) }); err != nil {
		return nil, fmt.Errorf("invalid refresh schedule %q: %w", spec, err)
	}
	return &Schedule{cron: c, spec: spec}, nil
}

// Start runs the schedule in its own goroutine.
func (s *Schedule) Start() {
	s.cron.Start()
	log.Printf("INFO: Refresh scheduled: %s", s.spec)
}

// Stop halts the schedule and waits for a running notification to return.
func (s *Schedule) Stop() {
	<-s.cron.Stop().Done()
	log.Printf("INFO: Refresh schedule stopped")
}
