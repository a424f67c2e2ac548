// SPDX-License-Identifier: GPL-3.0-or-later
package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/CrawX/go-mailpoll/domain"
	"github.com/CrawX/go-mailpoll/log"
	"github.com/CrawX/go-mailpoll/metrics"

	"github.com/sirupsen/logrus"
)

type problemRaiser interface {
	Raise(ctx context.Context, key string, expiry time.Duration) error
}

// Alerter logs operator reports and keeps dashboard problems in the problem store.
type Alerter struct {
	problems problemRaiser
	l        *logrus.Logger
}

func NewAlerter(problems problemRaiser) *Alerter {
	return &Alerter{
		problems: problems,
		l:        log.Logger(log.LOG_ALERTS),
	}
}

func (a *Alerter) ReportUnexpectedFailure(_ context.Context, err error, errorContext domain.ErrorContext) {
	fields := logrus.Fields{
		"job":     errorContext.Job,
		"context": errorContext.Message,
	}
	for k, v := range errorContext.Args {
		fields["arg_"+k] = v
	}
	if len(errorContext.RawEmail) > 0 {
		fields["raw_email"] = string(errorContext.RawEmail)
	}

	a.l.WithFields(fields).WithError(err).Error("Unexpected failure")
	metrics.OperatorReports.WithLabelValues(errorContext.Job).Inc()
}

func (a *Alerter) RaiseDashboardProblem(ctx context.Context, key string, expiry time.Duration) error {
	err := a.problems.Raise(ctx, key, expiry)
	if err != nil {
		return fmt.Errorf("could not raise dashboard problem: %w", err)
	}

	a.l.WithFields(logrus.Fields{"problem": key, "expiry": expiry}).Warn("Raised dashboard problem")
	metrics.Escalations.WithLabelValues(key).Inc()
	return nil
}
