// SPDX-License-Identifier: GPL-3.0-or-later
package poller

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CrawX/go-mailpoll/classifier"
	"github.com/CrawX/go-mailpoll/domain"
	"github.com/CrawX/go-mailpoll/log"
	"github.com/CrawX/go-mailpoll/mail"
	"github.com/CrawX/go-mailpoll/metrics"

	"github.com/sirupsen/logrus"
)

const (
	DefaultJobName = "PollMailbox"

	TimeoutErrorKey = "poll_mailbox_timeout_error_key"
	ErrorsKey       = "poll_mailbox_errors"

	// TimeoutThreshold timeouts within one window are absorbed, the next one escalates.
	TimeoutThreshold = 3
	// TimeoutWindowPeriods is the timeout window in polling periods.
	TimeoutWindowPeriods = 3
	ErrorWindow          = 24 * time.Hour
	ProblemGrace         = 5 * time.Minute

	ProblemTimeout   = "dashboard.poll_mailbox_timeout"
	ProblemAuthError = "dashboard.poll_mailbox_auth_error"
)

type Poller struct {
	settings    domain.SettingsSource
	receiver    domain.Receiver
	notifier    domain.Notifier
	persistence domain.Persistence
	store       domain.ErrorRateStore
	alerter     domain.Alerter

	configuration *configuration

	l *logrus.Logger
}

func NewPoller(settings domain.SettingsSource, receiver domain.Receiver, notifier domain.Notifier, persistence domain.Persistence, store domain.ErrorRateStore, alerter domain.Alerter, configFunc ...ConfigFunc) (*Poller, error) {
	config := &configuration{
		dialers: map[domain.MailboxProtocol]domain.MailboxDialer{},
		jobName: DefaultJobName,
	}
	for _, f := range configFunc {
		err := f(config)
		if err != nil {
			return nil, fmt.Errorf("error applying configuration: %w", err)
		}
	}

	return &Poller{
		settings:      settings,
		receiver:      receiver,
		notifier:      notifier,
		persistence:   persistence,
		store:         store,
		alerter:       alerter,
		configuration: config,
		l:             log.Logger(log.LOG_POLLER),
	}, nil
}

// Execute runs one poll cycle. Only settings and setup failures are returned, everything that
// happens while talking to the mailbox is handled within the cycle.
func (p *Poller) Execute(ctx context.Context, args map[string]string) error {
	pc, err := p.settings.PollConfiguration()
	if err != nil {
		metrics.Cycles.WithLabelValues(metrics.CycleSettingsError).Inc()
		return fmt.Errorf("could not resolve poll settings: %w", err)
	}

	if !pc.ShouldPoll() {
		if !pc.Mailbox.Complete() && (pc.PollingEnabled || pc.PollOverride != nil) {
			p.l.WithFields(logrus.Fields{"environment": pc.Environment, "host": pc.Mailbox.Host}).Warn("Mailbox host or credentials missing, skipping cycle")
		}
		p.l.WithField("environment", pc.Environment).Debug("Polling disabled, skipping cycle")
		metrics.Cycles.WithLabelValues(metrics.CycleSkipped).Inc()
		return nil
	}

	dialer, ok := p.configuration.dialers[pc.Mailbox.Protocol]
	if !ok {
		metrics.Cycles.WithLabelValues(metrics.CycleSettingsError).Inc()
		return fmt.Errorf("no dialer for protocol %q", pc.Mailbox.Protocol)
	}

	err = p.poll(ctx, dialer, pc, args)
	if err != nil {
		p.handleTransportError(ctx, pc, args, err)
	} else {
		metrics.Cycles.WithLabelValues(metrics.CyclePolled).Inc()
	}

	count, err := p.store.PruneAndCount(ctx, ErrorsKey, ErrorWindow)
	if err != nil {
		p.l.WithError(err).Warn("Could not count recent polling errors")
		return nil
	}
	metrics.ErrorsLast24h.Set(float64(count))

	return nil
}

// poll drains the mailbox. Any returned error is a transport level failure that ended the cycle.
func (p *Poller) poll(ctx context.Context, dialer domain.MailboxDialer, pc domain.PollConfiguration, args map[string]string) (err error) {
	session, err := dialer.Connect(pc.Mailbox)
	if err != nil {
		return err
	}
	defer func() {
		closeErr := session.Close()
		if closeErr == nil {
			return
		}
		if err == nil {
			err = closeErr
			return
		}
		p.l.WithError(closeErr).Warn("Could not close mailbox session")
	}()

	ids, err := session.List()
	if err != nil {
		return err
	}

	p.l.WithFields(logrus.Fields{"host": pc.Mailbox.Host, "messages": len(ids)}).Debug("Polling mailbox")
	for _, id := range ids {
		msg, err := session.Fetch(id)
		if err != nil {
			return err
		}

		err = session.Delete(id)
		if err != nil {
			return err
		}

		p.processMessage(ctx, pc, args, msg)
	}

	return nil
}

func (p *Poller) processMessage(ctx context.Context, pc domain.PollConfiguration, args map[string]string, msg *domain.IncomingMessage) {
	record, err := p.receiver.Process(ctx, msg.Raw)
	if err == nil {
		metrics.Messages.WithLabelValues(metrics.MessageAccepted).Inc()
		return
	}

	if pc.LogFailures {
		_, _, subject, _ := mail.HeaderInfos(msg.Raw)
		p.l.WithFields(logrus.Fields{
			"message": msg.Id,
			"subject": mail.ShortSubject(subject),
		}).WithError(err).Warn("Could not process incoming email")
	}

	if record != nil {
		setErr := p.persistence.SetError(record.Id, err.Error())
		if setErr != nil {
			p.l.WithError(setErr).WithField("id", record.Id).Warn("Could not store processing error")
		}
	}

	if early, ok := classifier.Early(err); ok {
		metrics.Messages.WithLabelValues(metrics.MessageEarlyRejected).Inc()
		if record == nil {
			return
		}
		setErr := p.persistence.SetRejectionMessage(record.Id, early.Explanation)
		if setErr != nil {
			p.l.WithError(setErr).WithField("id", record.Id).Warn("Could not store rejection explanation")
		}
		return
	}

	rejection, ok := classifier.Classify(err)
	if !ok {
		metrics.Messages.WithLabelValues(metrics.MessageUnrecognized).Inc()
		p.recordError(ctx)
		p.alerter.ReportUnexpectedFailure(ctx, err, domain.ErrorContext{
			Job:      p.configuration.jobName,
			Args:     args,
			Message:  "Unrecognized error type when processing incoming email",
			RawEmail: msg.Raw,
		})
		return
	}

	err = p.notifier.Notify(ctx, rejection, msg.Raw, record)
	if err != nil {
		metrics.Messages.WithLabelValues(metrics.MessageNotifyFailed).Inc()
		p.recordError(ctx)
		p.alerter.ReportUnexpectedFailure(ctx, err, domain.ErrorContext{
			Job:      p.configuration.jobName,
			Args:     args,
			Message:  fmt.Sprintf("Sending rejection %s for incoming email", rejection.Category),
			RawEmail: msg.Raw,
		})
		return
	}

	metrics.Messages.WithLabelValues(metrics.MessageRejected).Inc()
	metrics.Rejections.WithLabelValues(rejection.Category.TemplateName()).Inc()
}

func (p *Poller) handleTransportError(ctx context.Context, pc domain.PollConfiguration, args map[string]string, err error) {
	var timeoutErr *domain.ConnectionTimeoutError
	var authErr *domain.AuthenticationError

	switch {
	case errors.As(err, &timeoutErr):
		metrics.Cycles.WithLabelValues(metrics.CycleTimeout).Inc()
		p.handleTimeout(ctx, pc, args, err)
	case errors.As(err, &authErr):
		metrics.Cycles.WithLabelValues(metrics.CycleAuthError).Inc()
		p.escalate(ctx, pc, args, err, ProblemAuthError, "Signing in to poll incoming emails.")
	default:
		metrics.Cycles.WithLabelValues(metrics.CycleTransportError).Inc()
		p.recordError(ctx)
		p.alerter.ReportUnexpectedFailure(ctx, err, domain.ErrorContext{
			Job:     p.configuration.jobName,
			Args:    args,
			Message: fmt.Sprintf("Polling emails from '%s'.", pc.Mailbox.Host),
		})
	}
}

// handleTimeout absorbs up to TimeoutThreshold timeouts per window. The window is armed by the
// first timeout and expires on its own, or is reset when the threshold is exceeded.
func (p *Poller) handleTimeout(ctx context.Context, pc domain.PollConfiguration, args map[string]string, err error) {
	count, storeErr := p.store.Increment(ctx, TimeoutErrorKey)
	if storeErr != nil {
		p.l.WithError(storeErr).Error("Could not count mailbox timeout")
		return
	}

	if count == 1 {
		storeErr = p.store.Expire(ctx, TimeoutErrorKey, TimeoutWindowPeriods*pc.PollingPeriod)
		if storeErr != nil {
			p.l.WithError(storeErr).Error("Could not arm mailbox timeout window")
		}
	}

	if count <= TimeoutThreshold {
		p.l.WithFields(logrus.Fields{"host": pc.Mailbox.Host, "count": count}).WithError(err).Info("Mailbox timed out")
		return
	}

	storeErr = p.store.Reset(ctx, TimeoutErrorKey)
	if storeErr != nil {
		p.l.WithError(storeErr).Error("Could not reset mailbox timeouts")
	}
	p.recordError(ctx)
	p.escalate(ctx, pc, args, err, ProblemTimeout, fmt.Sprintf("Connecting to '%s' for polling emails.", pc.Mailbox.Host))
}

func (p *Poller) escalate(ctx context.Context, pc domain.PollConfiguration, args map[string]string, err error, problem, message string) {
	raiseErr := p.alerter.RaiseDashboardProblem(ctx, problem, pc.PollingPeriod+ProblemGrace)
	if raiseErr != nil {
		p.l.WithError(raiseErr).WithField("problem", problem).Error("Could not raise dashboard problem")
	}

	p.alerter.ReportUnexpectedFailure(ctx, err, domain.ErrorContext{
		Job:     p.configuration.jobName,
		Args:    args,
		Message: message,
	})
}

func (p *Poller) recordError(ctx context.Context) {
	err := p.store.Record(ctx, ErrorsKey)
	if err != nil {
		p.l.WithError(err).Error("Could not record polling error")
	}
}
