// SPDX-License-Identifier: GPL-3.0-or-later
package config

import (
	"os"
	"strconv"

	"github.com/CrawX/go-mailpoll/domain"
)

// PollOverrideEnv forces polling on or off outside of production-like environments.
const PollOverrideEnv = "POLL_MAILBOX"

// FileSource re-reads the config file for every poll cycle, so site settings like the enable flag
// take effect without a restart.
type FileSource struct {
	filename  string
	lookupEnv func(string) (string, bool)
}

func NewFileSource(filename string) *FileSource {
	return &FileSource{
		filename:  filename,
		lookupEnv: os.LookupEnv,
	}
}

func (fs *FileSource) PollConfiguration() (domain.PollConfiguration, error) {
	c, err := ReadConfig(fs.filename)
	if err != nil {
		return domain.PollConfiguration{}, err
	}

	return c.PollConfiguration(fs.lookupEnv), nil
}

func (c *Config) PollConfiguration(lookupEnv func(string) (string, bool)) domain.PollConfiguration {
	return domain.PollConfiguration{
		Mailbox: domain.MailboxSettings{
			Protocol: domain.MailboxProtocol(c.Protocol),
			Host:     c.Host,
			Port:     c.Port,
			UseSSL:   c.UseSSL,
			Username: c.Username,
			Password: c.Password,
		},
		PollingEnabled: c.PollingEnabled,
		PollingPeriod:  c.PollingPeriod(),
		LogFailures:    c.LogFailures,
		SiteName:       c.SiteName,
		Environment:    domain.Environment(c.Environment),
		PollOverride:   pollOverride(lookupEnv),
	}
}

func pollOverride(lookupEnv func(string) (string, bool)) *bool {
	value, ok := lookupEnv(PollOverrideEnv)
	if !ok {
		return nil
	}

	// Any value that is not a boolean counts as set
	override, err := strconv.ParseBool(value)
	if err != nil {
		override = true
	}
	return &override
}
