// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import "time"

type Environment string

const (
	EnvProduction  = Environment("production")
	EnvStaging     = Environment("staging")
	EnvDevelopment = Environment("development")
	EnvTest        = Environment("test")
)

func (e Environment) ProductionLike() bool {
	return e == EnvProduction || e == EnvStaging
}

// PollConfiguration is resolved once per poll cycle and not re-read while the cycle runs.
type PollConfiguration struct {
	Mailbox MailboxSettings

	PollingEnabled bool
	PollingPeriod  time.Duration
	LogFailures    bool
	SiteName       string

	Environment Environment
	// PollOverride is the diagnostic environment override, nil when unset.
	PollOverride *bool
}

// ShouldPoll never polls an incomplete mailbox, not even when the override forces a run.
func (c PollConfiguration) ShouldPoll() bool {
	if !c.Mailbox.Complete() {
		return false
	}

	if c.Environment.ProductionLike() {
		return c.PollingEnabled
	}

	if c.PollOverride != nil {
		return *c.PollOverride
	}

	if c.Environment == EnvDevelopment {
		return false
	}

	return c.PollingEnabled
}
