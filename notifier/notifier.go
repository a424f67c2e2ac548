// SPDX-License-Identifier: GPL-3.0-or-later
package notifier

import (
	"context"
	"fmt"

	"github.com/CrawX/go-mailpoll/domain"
	"github.com/CrawX/go-mailpoll/log"
	"github.com/CrawX/go-mailpoll/mail"

	"github.com/sirupsen/logrus"
)

type Notifier struct {
	mailer      domain.RejectionMailer
	sender      domain.Sender
	persistence domain.Persistence
	siteName    string
	logger      *logrus.Logger
}

func NewNotifier(mailer domain.RejectionMailer, sender domain.Sender, persistence domain.Persistence, siteName string) *Notifier {
	return &Notifier{
		mailer:      mailer,
		sender:      sender,
		persistence: persistence,
		siteName:    siteName,
		logger:      log.Logger(log.LOG_NOTIFIER),
	}
}

// Notify renders the rejection for the sender of raw, records the rendered body on record and
// delivers it. A nil record skips the write. Spamassassin reports are answered using the wrapped
// original.
func (n *Notifier) Notify(ctx context.Context, rejection domain.Rejection, raw []byte, record *domain.IncomingEmail) error {
	unwrapped, err := mail.UnwrapSpamassassinReport(raw)
	if err != nil {
		return fmt.Errorf("could not unwrap rejected mail: %w", err)
	}

	original, err := mail.Parse(unwrapped)
	if err != nil {
		return fmt.Errorf("could not read rejected mail: %w", err)
	}
	if len(original.From) == 0 {
		return mail.ErrNoFromAddress
	}

	destination := ""
	if len(original.To) > 0 {
		destination = original.To[0]
	}

	args := map[string]string{
		domain.ArgFormerTitle: original.Subject,
		domain.ArgDestination: destination,
		domain.ArgSiteName:    n.siteName,
	}
	for k, v := range rejection.Args {
		args[k] = v
	}

	msg, err := n.mailer.SendRejection(rejection.Category, original.From, args)
	if err != nil {
		return fmt.Errorf("could not render rejection %s: %w", rejection.Category, err)
	}
	msg.InReplyTo = original.MessageId
	msg.AutoGeneratedReply = rejection.AutoGenerated

	if record != nil {
		err = n.persistence.SetRejectionMessage(record.Id, msg.Body)
		if err != nil {
			return fmt.Errorf("could not record rejection on incoming email %d: %w", record.Id, err)
		}
	}

	err = n.sender.Deliver(ctx, msg, rejection.Category)
	if err != nil {
		return fmt.Errorf("could not deliver rejection %s: %w", rejection.Category, err)
	}

	n.logger.WithFields(logrus.Fields{
		"to":       original.From,
		"template": rejection.Category.TemplateName(),
		"subject":  mail.ShortSubject(original.Subject),
	}).Info("notified sender of rejection")
	return nil
}
