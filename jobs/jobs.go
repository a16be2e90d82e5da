// Package jobs runs the background schedule.
package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Midnight fires at the start of every day in the scheduler's location.
const Midnight = "0 0 * * *"

// Purger drops cached responses; utils.CacheInvalidator satisfies it.
type Purger interface {
	PurgeEvents(ctx context.Context) (int, error)
}

// Scheduler wraps a cron runner with the site's jobs.
type Scheduler struct {
	cron *cron.Cron
	log  logrus.FieldLogger
}

func NewScheduler(loc *time.Location, log logrus.FieldLogger) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	return &Scheduler{
		cron: cron.New(cron.WithLocation(loc), cron.WithChain(cron.Recover(cron.DefaultLogger))),
		log:  log,
	}
}

// AddCachePurge purges cached event responses on the cron schedule. Event statuses are
// derived from today's date, so cached lists go stale when the day changes.
// done, if set, observes every run.
func (s *Scheduler) AddCachePurge(schedule string, p Purger, done func(error)) error {
	_, err := s.cron.AddFunc(schedule, func() {
		RunCachePurge(context.Background(), p, s.log, done)
	})
	return err
}

// RunCachePurge performs one purge.
func RunCachePurge(ctx context.Context, p Purger, log logrus.FieldLogger, done func(error)) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	n, err := p.PurgeEvents(ctx)
	if err != nil {
		log.WithError(err).Warn("event cache purge failed")
	} else {
		log.WithField("deleted", n).Info("event cache purged")
	}
	if done != nil {
		done(err)
	}
}

func (s *Scheduler) Start() { s.cron.Start() }

// Stop halts the schedule and waits for a running job up to ctx.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}

// Entries reports the number of scheduled jobs.
func (s *Scheduler) Entries() int { return len(s.cron.Entries()) }
