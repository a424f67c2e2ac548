// SPDX-License-Identifier: GPL-3.0-or-later
package poller

import (
	"fmt"

	"github.com/CrawX/go-mailpoll/domain"
)

type ConfigFunc func(c *configuration) error

func WithDialer(protocol domain.MailboxProtocol, dialer domain.MailboxDialer) ConfigFunc {
	return func(c *configuration) error {
		if dialer == nil {
			return fmt.Errorf("dialer for %s cannot be null", protocol)
		}
		if _, ok := c.dialers[protocol]; ok {
			return fmt.Errorf("dialer for %s already configured", protocol)
		}

		c.dialers[protocol] = dialer
		return nil
	}
}

func WithJobName(name string) ConfigFunc {
	return func(c *configuration) error {
		if len(name) == 0 {
			return fmt.Errorf("JobName cannot be null")
		}
		c.jobName = name
		return nil
	}
}

type configuration struct {
	dialers map[domain.MailboxProtocol]domain.MailboxDialer
	jobName string
}
