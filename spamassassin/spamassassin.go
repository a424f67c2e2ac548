// SPDX-License-Identifier: GPL-3.0-or-later
package spamassassin

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"time"

	"github.com/CrawX/go-mailpoll/domain"
	"github.com/CrawX/go-mailpoll/log"

	"github.com/sirupsen/logrus"
	"github.com/teamwork/spamc"
)

const SpamassassinTimeout = 20 * time.Second

type Spamassassin struct {
	client *spamc.Client
	l      *logrus.Logger
}

func NewSpamassassin(ctx context.Context, host string) (*Spamassassin, error) {
	client := spamc.New(host, &net.Dialer{
		Timeout: SpamassassinTimeout,
	})
	err := client.Ping(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not ping spamassassin: %w", err)
	}

	return &Spamassassin{
		client: client,
		l:      log.Logger(log.LOG_SPAMASSASSIN),
	}, nil
}

func (sa *Spamassassin) Check(ctx context.Context, rawMail []byte) (*domain.SpamResult, error) {
	ctx, cancel := context.WithTimeout(ctx, SpamassassinTimeout)
	defer cancel()

	out, err := sa.client.Process(ctx, bytes.NewReader(rawMail), nil)
	if err != nil {
		return nil, fmt.Errorf("could not check spamassassin: %w", err)
	}

	err = out.Message.Close()
	if err != nil {
		return nil, fmt.Errorf("could not close response: %w", err)
	}

	sa.l.WithFields(logrus.Fields{"spam": out.IsSpam, "score": out.Score}).Debug("Checked mail")
	return &domain.SpamResult{
		IsSpam: out.IsSpam,
		Score:  out.Score,
	}, nil
}
