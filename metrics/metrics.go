// SPDX-License-Identifier: GPL-3.0-or-later
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Cycle results.
const (
	CyclePolled         = "polled"
	CycleSkipped        = "skipped"
	CycleSettingsError  = "settings_error"
	CycleTimeout        = "timeout"
	CycleAuthError      = "auth_error"
	CycleTransportError = "transport_error"
)

// Message outcomes.
const (
	MessageAccepted      = "accepted"
	MessageRejected      = "rejected"
	MessageEarlyRejected = "early_rejected"
	MessageUnrecognized  = "unrecognized"
	MessageNotifyFailed  = "notify_failed"
)

var (
	// Cycles counts poll cycles by result
	Cycles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mailpoll_cycles_total",
			Help: "Total number of poll cycles",
		},
		[]string{"result"},
	)

	// Messages counts fetched messages by processing outcome
	Messages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mailpoll_messages_total",
			Help: "Total number of messages fetched from the mailbox",
		},
		[]string{"outcome"},
	)

	Rejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mailpoll_rejections_total",
			Help: "Total number of rejection notifications by template",
		},
		[]string{"template"},
	)

	Escalations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mailpoll_escalations_total",
			Help: "Total number of dashboard problems raised",
		},
		[]string{"problem"},
	)

	OperatorReports = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mailpoll_operator_reports_total",
			Help: "Total number of unexpected failures reported to operators",
		},
		[]string{"job"},
	)

	// ErrorsLast24h mirrors the windowed error counter after each polling cycle
	ErrorsLast24h = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mailpoll_errors_last_24h",
			Help: "Number of polling errors in the last 24 hours",
		},
	)
)
