// SPDX-License-Identifier: GPL-3.0-or-later
package receiver

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/CrawX/go-mailpoll/domain"
	"github.com/CrawX/go-mailpoll/log"
	"github.com/CrawX/go-mailpoll/mail"

	"github.com/sirupsen/logrus"
)

// Receiver performs the envelope level checks on incoming mail and stores every mail that
// could be parsed as an incoming email record.
type Receiver struct {
	persistence       domain.Persistence
	spamChecker       domain.SpamChecker
	incomingAddresses []string
	l                 *logrus.Logger
}

type ConfigFunc func(r *Receiver)

func WithSpamChecker(checker domain.SpamChecker) ConfigFunc {
	return func(r *Receiver) {
		r.spamChecker = checker
	}
}

// WithIncomingAddresses restricts accepted mail to these destinations. Subaddresses like
// forum+reply@example.com match forum@example.com.
func WithIncomingAddresses(addresses []string) ConfigFunc {
	return func(r *Receiver) {
		for _, a := range addresses {
			r.incomingAddresses = append(r.incomingAddresses, strings.ToLower(strings.TrimSpace(a)))
		}
	}
}

func NewReceiver(persistence domain.Persistence, configFuncs ...ConfigFunc) *Receiver {
	r := &Receiver{
		persistence: persistence,
		l:           log.Logger(log.LOG_RECEIVER),
	}
	for _, f := range configFuncs {
		f(r)
	}
	return r
}

func (r *Receiver) Process(ctx context.Context, raw []byte) (*domain.IncomingEmail, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, domain.ErrEmptyEmail
	}

	unwrapped, err := mail.UnwrapSpamassassinReport(raw)
	if err != nil {
		return nil, err
	}
	flaggedUpstream := !bytes.Equal(unwrapped, raw)

	msg, err := mail.Parse(unwrapped)
	if err != nil {
		return nil, err
	}

	record, err := r.persistence.CreateIncomingEmail(domain.SaveIncomingEmail{
		MessageId:   msg.MessageId,
		FromAddress: msg.From,
		ToAddresses: strings.Join(msg.To, ", "),
		Subject:     msg.Subject,
		Raw:         string(unwrapped),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create incoming email: %w", err)
	}

	err = r.check(ctx, msg, unwrapped, flaggedUpstream)
	if err != nil {
		return record, err
	}

	r.l.WithFields(logrus.Fields{
		"id":      record.Id,
		"from":    msg.From,
		"subject": mail.ShortSubject(msg.Subject),
	}).Info("Accepted incoming email")
	return record, nil
}

func (r *Receiver) check(ctx context.Context, msg *mail.Message, raw []byte, flaggedUpstream bool) error {
	if msg.IsBounce() {
		return domain.ErrBouncedEmail
	}

	if msg.IsAutoGenerated() {
		if msg.IsReply() {
			return domain.ErrAutoGeneratedEmailReply
		}
		return domain.ErrAutoGeneratedEmail
	}

	if len(msg.From) == 0 {
		return mail.ErrNoFromAddress
	}

	if !r.acceptsDestination(msg.To) {
		return domain.ErrBadDestinationAddress
	}

	if flaggedUpstream {
		return domain.ErrScreenedEmail
	}

	if r.spamChecker != nil {
		result, err := r.spamChecker.Check(ctx, raw)
		if err != nil {
			return fmt.Errorf("could not screen incoming email: %w", err)
		}
		if result.IsSpam {
			r.l.WithFields(logrus.Fields{"from": msg.From, "score": result.Score}).Info("Screened spam")
			return domain.ErrScreenedEmail
		}
	}

	if len(strings.TrimSpace(msg.TextBody)) == 0 {
		return domain.ErrNoBodyDetected
	}

	return nil
}

func (r *Receiver) acceptsDestination(to []string) bool {
	if len(r.incomingAddresses) == 0 {
		return true
	}

	for _, address := range to {
		address = baseAddress(strings.ToLower(address))
		for _, incoming := range r.incomingAddresses {
			if address == incoming {
				return true
			}
		}
	}
	return false
}

func baseAddress(address string) string {
	at := strings.LastIndex(address, "@")
	if at < 0 {
		return address
	}
	local := address[:at]
	if plus := strings.Index(local, "+"); plus >= 0 {
		local = local[:plus]
	}
	return local + address[at:]
}
