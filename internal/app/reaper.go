package app

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// DefaultReapSchedule runs the session reaper every ten minutes.
const DefaultReapSchedule = "@every 10m"

// Reaper discards expired sessions on a cron schedule.
type Reaper struct {
	cron     *cron.Cron
	sessions *SessionService
	log      zerolog.Logger
}

// NewReaper schedules sessions.Reap according to spec, a standard five-field
// cron expression or a descriptor such as "@every 5m".
func NewReaper(sessions *SessionService, spec string, log zerolog.Logger) (*Reaper, error) {
	r := &Reaper{cron: cron.New(), sessions: sessions, log: log}
	if _, err := r.cron.AddFunc(spec, r.Run); err != nil {
		return nil, fmt.Errorf("reap schedule %q: %w", spec, err)
	}
	return r, nil
}

// Run performs one reaping pass.
func (r *Reaper) Run() {
	ctx := r.log.WithContext(context.Background())
	if _, err := r.sessions.Reap(ctx); err != nil {
		r.log.Warn().Err(err).Msg("session reap failed")
	}
}

// Start begins running the schedule in the background.
func (r *Reaper) Start() {
	r.cron.Start()
}

// Stop halts the schedule and returns a context that is done once any
// running pass has finished.
func (r *Reaper) Stop() context.Context {
	return r.cron.Stop()
}
