// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mocks/alerts.go -package=mocks . ErrorRateStore,Alerter,SettingsSource

// ErrorRateStore holds named failure counters outside of process memory so they survive restarts
// and are shared between schedulers.
type ErrorRateStore interface {
	Increment(ctx context.Context, name string) (int64, error)
	// Expire arms the expiry of name unless one is already set.
	Expire(ctx context.Context, name string, expiry time.Duration) error
	Count(ctx context.Context, name string) (int64, error)
	Reset(ctx context.Context, name string) error

	// Record adds a timestamped event to the windowed counter name.
	Record(ctx context.Context, name string) error
	PruneAndCount(ctx context.Context, name string, maxAge time.Duration) (int64, error)
}

// ErrorContext describes an operator report.
type ErrorContext struct {
	Job      string
	Args     map[string]string
	Message  string
	RawEmail []byte
}

// Alerter is the operator facing surface. Raising the same problem key before it expired only
// refreshes its expiry.
type Alerter interface {
	ReportUnexpectedFailure(ctx context.Context, err error, errorContext ErrorContext)
	RaiseDashboardProblem(ctx context.Context, key string, expiry time.Duration) error
}

type SettingsSource interface {
	PollConfiguration() (PollConfiguration, error)
}
