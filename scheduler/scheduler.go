// SPDX-License-Identifier: GPL-3.0-or-later
package scheduler

import (
	"context"
	"time"

	"github.com/CrawX/go-mailpoll/domain"
	"github.com/CrawX/go-mailpoll/log"

	"github.com/sirupsen/logrus"
)

type Task interface {
	Execute(ctx context.Context, args map[string]string) error
}

// Scheduler runs a task right away and then once per polling period. Runs never overlap and a
// failed run is not retried before the next period.
type Scheduler struct {
	task          Task
	settings      domain.SettingsSource
	defaultPeriod time.Duration
	l             *logrus.Logger
}

func NewScheduler(task Task, settings domain.SettingsSource, defaultPeriod time.Duration) *Scheduler {
	return &Scheduler{
		task:          task,
		settings:      settings,
		defaultPeriod: defaultPeriod,
		l:             log.Logger(log.LOG_SCHEDULER),
	}
}

// Run blocks until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	period := s.defaultPeriod
	for {
		start := time.Now()
		err := s.task.Execute(ctx, nil)
		if err != nil {
			s.l.WithError(err).Error("Poll cycle failed")
		} else {
			s.l.WithField("duration", time.Since(start)).Debug("Poll cycle finished")
		}

		period = s.nextPeriod(period)
		timer := time.NewTimer(period)
		select {
		case <-ctx.Done():
			timer.Stop()
			s.l.Info("Scheduler stopped")
			return
		case <-timer.C:
		}
	}
}

// nextPeriod re-reads the period so changes apply without a restart. The last known period is
// kept when settings cannot be read.
func (s *Scheduler) nextPeriod(last time.Duration) time.Duration {
	pc, err := s.settings.PollConfiguration()
	if err != nil {
		s.l.WithError(err).Warn("Could not read polling period, keeping last one")
		return last
	}
	if pc.PollingPeriod <= 0 {
		return last
	}
	return pc.PollingPeriod
}
