// SPDX-License-Identifier: GPL-3.0-or-later
package pop3connection

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"github.com/CrawX/go-mailpoll/domain"
	"github.com/CrawX/go-mailpoll/log"

	"github.com/knadh/go-pop3"
	"github.com/sirupsen/logrus"
)

const (
	dialTimeout = 30 * time.Second
	// DefaultCommandTimeout bounds the greeting plus login and every later command.
	DefaultCommandTimeout = time.Minute
)

var (
	ErrCommandTimeout   = errors.New("no reply from server within command timeout")
	ErrSessionAbandoned = errors.New("session abandoned after an earlier command timed out")
)

type ConfigFunc func(d *Dialer)

func WithCommandTimeout(timeout time.Duration) ConfigFunc {
	return func(d *Dialer) {
		d.commandTimeout = timeout
	}
}

type Dialer struct {
	commandTimeout time.Duration
	logger         *logrus.Logger
}

func NewDialer(configFuncs ...ConfigFunc) *Dialer {
	d := &Dialer{
		commandTimeout: DefaultCommandTimeout,
		logger:         log.Logger(log.LOG_POP3),
	}
	for _, f := range configFuncs {
		f(d)
	}
	return d
}

type connResult struct {
	conn *pop3.Conn
	err  error
}

// Connect dials and logs in. go-pop3 keeps its net.Conn private, so replies are awaited behind a
// timer instead of a read deadline.
func (d *Dialer) Connect(settings domain.MailboxSettings) (domain.MailboxSession, error) {
	client := pop3.New(pop3.Opt{
		Host:        settings.Host,
		Port:        settings.Port,
		TLSEnabled:  settings.UseSSL,
		DialTimeout: dialTimeout,
	})

	d.logger.WithFields(logrus.Fields{"address": settings.Address(), "ssl": settings.UseSSL}).Debug("connecting")

	results := make(chan connResult, 1)
	go func() {
		results <- login(client, settings)
	}()

	timer := time.NewTimer(d.commandTimeout)
	defer timer.Stop()

	select {
	case r := <-results:
		if r.err != nil {
			return nil, r.err
		}
		d.logger.WithFields(logrus.Fields{"address": settings.Address(), "user": settings.Username}).Debug("logged in")
		return &session{
			conn:           r.conn,
			host:           settings.Host,
			commandTimeout: d.commandTimeout,
			logger:         d.logger,
		}, nil
	case <-timer.C:
		d.logger.WithField("address", settings.Address()).Warn("abandoning stalled connection during login")
		go func() {
			// the server may still answer, close politely then
			if r := <-results; r.conn != nil {
				_ = r.conn.Quit()
			}
		}()
		return nil, &domain.ConnectionTimeoutError{Host: settings.Host, Err: ErrCommandTimeout}
	}
}

func login(client *pop3.Client, settings domain.MailboxSettings) connResult {
	conn, err := client.NewConn()
	if err != nil {
		return connResult{err: transportError(settings.Host, fmt.Errorf("could not connect: %w", err))}
	}

	err = conn.User(settings.Username)
	if err == nil {
		err = conn.Pass(settings.Password)
	}
	if err == nil {
		return connResult{conn: conn}
	}

	if isServerReply(err) {
		_ = conn.Quit()
		return connResult{err: &domain.AuthenticationError{Host: settings.Host, Username: settings.Username, Err: err}}
	}
	return connResult{err: transportError(settings.Host, fmt.Errorf("could not log in: %w", err))}
}

// session deletions are committed with QUIT on Close. After a command timed out the session is
// abandoned: the stalled command still owns the connection, so nothing else is sent.
type session struct {
	conn           *pop3.Conn
	host           string
	commandTimeout time.Duration
	abandoned      bool
	logger         *logrus.Logger
}

func (s *session) guard(command string, op func() error) error {
	if s.abandoned {
		return &domain.ConnectionTimeoutError{Host: s.host, Err: ErrSessionAbandoned}
	}

	done := make(chan error, 1)
	go func() {
		done <- op()
	}()

	timer := time.NewTimer(s.commandTimeout)
	defer timer.Stop()

	select {
	case err := <-done:
		return err
	case <-timer.C:
		s.abandoned = true
		s.logger.WithFields(logrus.Fields{"host": s.host, "command": command}).Warn("abandoning stalled connection")
		return &domain.ConnectionTimeoutError{Host: s.host, Err: fmt.Errorf("%s: %w", command, ErrCommandTimeout)}
	}
}

func (s *session) List() ([]uint32, error) {
	var msgs []pop3.MessageID
	err := s.guard("LIST", func() (err error) {
		msgs, err = s.conn.List(0)
		return err
	})
	if err != nil {
		return nil, transportError(s.host, fmt.Errorf("could not list messages: %w", err))
	}

	ids := make([]uint32, 0, len(msgs))
	for _, m := range msgs {
		ids = append(ids, uint32(m.ID))
	}
	s.logger.WithFields(logrus.Fields{"count": len(ids)}).Debug("listed messages")
	return ids, nil
}

func (s *session) Fetch(id uint32) (*domain.IncomingMessage, error) {
	var raw *bytes.Buffer
	err := s.guard("RETR", func() (err error) {
		raw, err = s.conn.RetrRaw(int(id))
		return err
	})
	if err != nil {
		return nil, transportError(s.host, fmt.Errorf("could not retrieve message %d: %w", id, err))
	}

	return &domain.IncomingMessage{Id: id, Raw: raw.Bytes()}, nil
}

func (s *session) Delete(id uint32) error {
	err := s.guard("DELE", func() error {
		return s.conn.Dele(int(id))
	})
	if err != nil {
		return transportError(s.host, fmt.Errorf("could not delete message %d: %w", id, err))
	}
	return nil
}

// Close does not talk to an abandoned session, its pending deletions are lost.
func (s *session) Close() error {
	if s.abandoned {
		return nil
	}

	err := s.guard("QUIT", s.conn.Quit)
	if err != nil {
		return transportError(s.host, fmt.Errorf("could not quit: %w", err))
	}
	return nil
}

// isServerReply reports -ERR replies. go-pop3 returns them as plain errors carrying the reply
// text, everything else comes from the connection or is a malformed reply.
func isServerReply(err error) bool {
	var netErr net.Error
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF), errors.As(err, &netErr):
		return false
	case strings.HasPrefix(err.Error(), "unknown response:"):
		return false
	}
	return true
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func transportError(host string, err error) error {
	var timeoutErr *domain.ConnectionTimeoutError
	if errors.As(err, &timeoutErr) {
		return err
	}
	if isTimeout(err) {
		return &domain.ConnectionTimeoutError{Host: host, Err: err}
	}
	return err
}
