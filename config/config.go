// SPDX-License-Identifier: GPL-3.0-or-later
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/CrawX/go-mailpoll/domain"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Database string

	RedisURL      string
	RedisPassword string

	Protocol string
	Host     string
	Port     int
	UseSSL   bool
	Username string
	Password string

	PollingEnabled    bool
	PollingPeriodMins int
	LogFailures       bool

	SiteName          string
	Environment       string
	IncomingAddresses []string

	SmtpHost          string
	SmtpPort          int
	SmtpUser          string
	SmtpPassword      string
	SmtpSSL           bool
	SmtpStartTLS      bool
	NotificationEmail string

	SpamassassinHost string
	RspamdHost       string
	RspamdPassword   string

	MetricsAddress string

	Loglevel *string
}

func ReadConfig(filename string) (*Config, error) {
	config := &Config{
		Database:          "mailpoll.db",
		RedisURL:          "redis://localhost:6379/0",
		Protocol:          string(domain.ProtocolPop3),
		UseSSL:            true,
		PollingPeriodMins: 5,
		SiteName:          "Forum",
		Environment:       string(domain.EnvProduction),
		SmtpPort:          25,
	}

	_, err := toml.DecodeFile(filename, config)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	config.applyDefaultPort()

	err = config.validate()
	if err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) applyDefaultPort() {
	if c.Port != 0 {
		return
	}

	switch domain.MailboxProtocol(c.Protocol) {
	case domain.ProtocolImap:
		c.Port = 143
		if c.UseSSL {
			c.Port = 993
		}
	default:
		c.Port = 110
		if c.UseSSL {
			c.Port = 995
		}
	}
}

func (c *Config) PollingPeriod() time.Duration {
	return time.Duration(c.PollingPeriodMins) * time.Minute
}

func (c *Config) validate() error {
	if err := validateNonEmptyStringField(c.Database, "Database name must not be empty, set to a filename for the sqlite database"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.RedisURL, "RedisURL must not be empty, error counters are kept in redis"); err != nil {
		return err
	}

	switch domain.MailboxProtocol(c.Protocol) {
	case domain.ProtocolPop3, domain.ProtocolImap:
	default:
		return fmt.Errorf("Protocol must be either pop3 or imap, got %q", c.Protocol)
	}

	switch domain.Environment(c.Environment) {
	case domain.EnvProduction, domain.EnvStaging, domain.EnvDevelopment, domain.EnvTest:
	default:
		return fmt.Errorf("Environment must be one of production, staging, development or test, got %q", c.Environment)
	}

	if c.PollingPeriodMins <= 0 {
		return errors.New("PollingPeriodMins must be a positive number of minutes")
	}

	if c.PollingEnabled {
		if err := validateNonEmptyStringField(c.Host, "Host must not be empty, set to the host of the mailbox server"); err != nil {
			return err
		}

		if err := validateNonEmptyStringField(c.Username, "Username must not be empty, set to username on the mailbox server"); err != nil {
			return err
		}

		if err := validateNonEmptyStringField(c.Password, "Password must not be empty, set to password of Username on the mailbox server"); err != nil {
			return err
		}
	}

	if err := validateNonEmptyStringField(c.SmtpHost, "SmtpHost must not be empty, rejection emails are delivered through it"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.NotificationEmail, "NotificationEmail must not be empty, set to the sender address of rejection emails"); err != nil {
		return err
	}

	if len(c.SpamassassinHost) > 0 && len(c.RspamdHost) > 0 {
		return errors.New("SpamassassinHost and RspamdHost cannot be used at the same time")
	}

	return nil
}

func validateNonEmptyStringField(field string, err string) error {
	if len(strings.TrimSpace(field)) == 0 {
		return errors.New(err)
	}

	return nil
}
