// SPDX-License-Identifier: GPL-3.0-or-later
package log

import (
	"runtime"

	"github.com/sirupsen/logrus"
)

// Subsystem prefixes.
const (
	LOG_MAIN         = "MA"
	LOG_POLLER       = "PO"
	LOG_SCHEDULER    = "SC"
	LOG_POP3         = "P3"
	LOG_IMAP         = "IM"
	LOG_RECEIVER     = "RE"
	LOG_SPAMASSASSIN = "SA"
	LOG_NOTIFIER     = "NO"
	LOG_MAILER       = "ML"
	LOG_PERSISTENCE  = "PI"
	LOG_REDIS        = "RD"
	LOG_ALERTS       = "AL"
)

var subsystems = []string{
	LOG_MAIN,
	LOG_POLLER,
	LOG_SCHEDULER,
	LOG_POP3,
	LOG_IMAP,
	LOG_RECEIVER,
	LOG_SPAMASSASSIN,
	LOG_NOTIFIER,
	LOG_MAILER,
	LOG_PERSISTENCE,
	LOG_REDIS,
	LOG_ALERTS,
}

var loggers map[string]*logrus.Logger

// PrefixFormatter prepends the subsystem to every line so interleaved output stays readable.
type PrefixFormatter struct {
	formatter logrus.Formatter
	prefix    []byte
}

func NewPrefixFormatter(prefix string) *PrefixFormatter {
	return &PrefixFormatter{
		formatter: &logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "15:04:05",
			DisableColors:   runtime.GOOS == "windows",
		},
		prefix: []byte(prefix + ":\t"),
	}
}

func (f *PrefixFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	text, err := f.formatter.Format(entry)
	if err != nil {
		return nil, err
	}

	line := make([]byte, 0, len(f.prefix)+len(text))
	line = append(line, f.prefix...)
	return append(line, text...), nil
}

// parseLevel falls back to info for unknown levels.
func parseLevel(loglevel string) logrus.Level {
	level, err := logrus.ParseLevel(loglevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

func InitLogging(loglevel string) {
	loggers = make(map[string]*logrus.Logger, len(subsystems))
	for _, prefix := range subsystems {
		l := logrus.New()
		l.SetLevel(parseLevel(loglevel))
		l.SetFormatter(NewPrefixFormatter(prefix))
		loggers[prefix] = l
	}
}

func SetLogLevel(loglevel string) {
	level := parseLevel(loglevel)
	for _, l := range loggers {
		l.SetLevel(level)
	}
}

// Logger returns the logger of a subsystem, InitLogging must have been called before.
func Logger(subsystem string) *logrus.Logger {
	l, ok := loggers[subsystem]
	if !ok {
		panic("Logger " + subsystem + " unknown")
	}

	return l
}
