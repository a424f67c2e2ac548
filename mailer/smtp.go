// SPDX-License-Identifier: GPL-3.0-or-later
package mailer

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"strings"
	"time"

	"github.com/CrawX/go-mailpoll/domain"
	"github.com/CrawX/go-mailpoll/log"

	"github.com/emersion/go-message/mail"
	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const EmailTypeHeader = "X-Mailpoll-Email-Type"

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	SSL      bool
	StartTLS bool
}

// SMTPSender opens a connection per delivery, rejection mails are rare.
type SMTPSender struct {
	config SMTPConfig
	now    func() time.Time
	logger *logrus.Logger
}

func NewSMTPSender(config SMTPConfig) *SMTPSender {
	return &SMTPSender{
		config: config,
		now:    time.Now,
		logger: log.Logger(log.LOG_MAILER),
	}
}

func (s *SMTPSender) dial() (*smtp.Client, error) {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	tlsConfig := &tls.Config{ServerName: s.config.Host}

	var client *smtp.Client
	var err error
	switch {
	case s.config.SSL:
		client, err = smtp.DialTLS(addr, tlsConfig)
	case s.config.StartTLS:
		client, err = smtp.DialStartTLS(addr, tlsConfig)
	default:
		client, err = smtp.Dial(addr)
	}
	if err != nil {
		return nil, fmt.Errorf("could not connect to smtp server %s: %w", addr, err)
	}

	if s.config.Password != "" {
		auth := sasl.NewPlainClient("", s.config.Username, s.config.Password)
		if err := client.Auth(auth); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("could not authenticate on smtp server: %w", err)
		}
	}

	return client, nil
}

func (s *SMTPSender) Deliver(ctx context.Context, msg *domain.OutboundMessage, category domain.RejectionCategory) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := s.buildMessage(msg, category)
	if err != nil {
		return fmt.Errorf("could not build message: %w", err)
	}

	client, err := s.dial()
	if err != nil {
		return err
	}
	defer client.Close()

	err = client.SendMail(msg.From, []string{msg.To}, body)
	if err != nil {
		return fmt.Errorf("could not send mail to %s: %w", msg.To, err)
	}

	err = client.Quit()
	if err != nil {
		s.logger.WithError(err).Warn("could not quit smtp session")
	}

	s.logger.WithFields(logrus.Fields{
		"to":   msg.To,
		"type": category.TemplateName(),
	}).Info("delivered rejection")
	return nil
}

func (s *SMTPSender) buildMessage(msg *domain.OutboundMessage, category domain.RejectionCategory) (*bytes.Buffer, error) {
	var buf bytes.Buffer

	var header mail.Header
	header.SetDate(s.now())
	header.SetSubject(msg.Subject)
	header.SetAddressList("From", []*mail.Address{{Address: msg.From}})
	header.SetAddressList("To", []*mail.Address{{Address: msg.To}})
	header.Set("Message-ID", messageId(msg.From))
	header.Set(EmailTypeHeader, category.TemplateName())

	if msg.InReplyTo != "" {
		header.SetMsgIDList("In-Reply-To", []string{msg.InReplyTo})
		header.SetMsgIDList("References", []string{msg.InReplyTo})
	}
	if msg.AutoGeneratedReply {
		header.Set("Auto-Submitted", "auto-replied")
	}

	header.SetContentType("text/plain", map[string]string{"charset": "utf-8"})
	w, err := mail.CreateSingleInlineWriter(&buf, header)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write([]byte(msg.Body)); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return &buf, nil
}

func messageId(from string) string {
	domainPart := "localhost"
	if i := strings.LastIndex(from, "@"); i >= 0 && i < len(from)-1 {
		domainPart = from[i+1:]
	}
	return fmt.Sprintf("<%s@%s>", uuid.NewString(), domainPart)
}
