// SPDX-License-Identifier: GPL-3.0-or-later
package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		loglevel string
		expected logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"WARN", logrus.WarnLevel},
		{"warning", logrus.WarnLevel},
		{"panic", logrus.PanicLevel},
		{"trace", logrus.TraceLevel},
		{"", logrus.InfoLevel},
		{"chatty", logrus.InfoLevel},
	}
	for _, tc := range tests {
		t.Run(tc.loglevel, func(t *testing.T) {
			assert.Equal(t, tc.expected, parseLevel(tc.loglevel))
		})
	}
}

func TestLoggerPrefix(t *testing.T) {
	InitLogging("info")
	l := Logger(LOG_POLLER)

	buf := &bytes.Buffer{}
	l.SetOutput(buf)
	l.WithField("host", "pop.example.com").Info("Polling mailbox")

	line := buf.String()
	assert.True(t, strings.HasPrefix(line, "PO:\t"), line)
	assert.Contains(t, line, `msg="Polling mailbox"`)
	assert.Contains(t, line, "host=pop.example.com")
}

func TestSetLogLevel(t *testing.T) {
	InitLogging("info")
	SetLogLevel("error")

	for _, prefix := range subsystems {
		assert.Equal(t, logrus.ErrorLevel, Logger(prefix).GetLevel())
	}
}

func TestLoggerUnknown(t *testing.T) {
	InitLogging("info")
	assert.Panics(t, func() { Logger("XX") })
}
