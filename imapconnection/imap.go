// SPDX-License-Identifier: GPL-3.0-or-later
package imapconnection

import (
	"crypto/tls"
	"errors"
	"fmt"
	"io/ioutil"
	"net"
	"time"

	"github.com/CrawX/go-mailpoll/domain"
	"github.com/CrawX/go-mailpoll/log"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap-uidplus"
	"github.com/emersion/go-imap/client"
	"github.com/sirupsen/logrus"
)

const (
	dialTimeout    = 30 * time.Second
	commandTimeout = time.Minute
	inbox          = "INBOX"
)

type Dialer struct {
	l *logrus.Logger
}

func NewDialer() *Dialer {
	return &Dialer{l: log.Logger(log.LOG_IMAP)}
}

func (d *Dialer) Connect(settings domain.MailboxSettings) (domain.MailboxSession, error) {
	dialer := &net.Dialer{Timeout: dialTimeout}

	var imapClient *client.Client
	var err error
	if settings.UseSSL {
		imapClient, err = client.DialWithDialerTLS(dialer, settings.Address(), &tls.Config{ServerName: settings.Host})
	} else {
		imapClient, err = client.DialWithDialer(dialer, settings.Address())
	}
	if err != nil {
		return nil, transportError(settings.Host, fmt.Errorf("could not dial to imap: %w", err))
	}
	imapClient.Timeout = commandTimeout

	err = imapClient.Login(settings.Username, settings.Password)
	if err != nil {
		_ = imapClient.Logout()
		if isTimeout(err) {
			return nil, &domain.ConnectionTimeoutError{Host: settings.Host, Err: err}
		}
		return nil, &domain.AuthenticationError{Host: settings.Host, Username: settings.Username, Err: err}
	}

	s := &session{
		connection: imapClient,
		uidplus:    uidplus.NewClient(imapClient),
		host:       settings.Host,
		l:          d.l,
	}

	baseLogger := d.l.WithFields(logrus.Fields{"server": settings.Address()})
	baseLogger.Debug("Logged in to server")

	uidPlusSupported, err := s.uidplus.SupportUidPlus()
	if err != nil {
		_ = s.Close()
		return nil, transportError(settings.Host, fmt.Errorf("could not check for UIDPLUS support: %w", err))
	}

	if uidPlusSupported {
		baseLogger.Debug("UIDPLUS supported on server, using UID delete")
		s.mailDeleter = &uidPlusDeleter{imapConn: s}
	} else {
		baseLogger.Info("UIDPLUS not supported on server, falling back to flag&expunge")
		s.mailDeleter = &compatibilityDeleter{imapConn: s}
	}

	_, err = imapClient.Select(inbox, false)
	if err != nil {
		_ = s.Close()
		return nil, transportError(settings.Host, fmt.Errorf("could not select %s: %w", inbox, err))
	}

	return s, nil
}

// session works on INBOX, messages are addressed by UID.
type session struct {
	connection  *client.Client
	uidplus     *uidplus.Client
	mailDeleter deleter
	host        string

	l *logrus.Logger
}

func (s *session) List() ([]uint32, error) {
	criteria := imap.NewSearchCriteria()
	criteria.WithoutFlags = []string{imap.DeletedFlag}
	uids, err := s.connection.UidSearch(criteria)
	if err != nil {
		return nil, transportError(s.host, fmt.Errorf("could not list folder: %w", err))
	}

	return uids, nil
}

func (s *session) Fetch(uid uint32) (*domain.IncomingMessage, error) {
	seqset := &imap.SeqSet{}
	seqset.AddNum(uid)

	fullBodySection := &imap.BodySectionName{
		Peek: true,
	}
	fetchItems := []imap.FetchItem{fullBodySection.FetchItem()}

	messages := make(chan *imap.Message, 1)
	done := make(chan error, 1)
	go func() {
		done <- s.connection.UidFetch(seqset, fetchItems, messages)
	}()

	var raw []byte
	var readErr error
	for msg := range messages {
		r := msg.GetBody(fullBodySection)
		if r == nil {
			readErr = fmt.Errorf("server returned no body for uid %d", uid)
			continue
		}
		raw, readErr = ioutil.ReadAll(r)
	}

	err := <-done
	if err != nil {
		return nil, transportError(s.host, fmt.Errorf("could not fetch mail: %w", err))
	}
	if readErr != nil {
		return nil, fmt.Errorf("could not read mail body: %w", readErr)
	}
	if raw == nil {
		return nil, fmt.Errorf("mail with uid %d not found", uid)
	}

	return &domain.IncomingMessage{Id: uid, Raw: raw}, nil
}

func (s *session) Delete(uid uint32) error {
	err := s.mailDeleter.delete(uid)
	if err != nil {
		return transportError(s.host, err)
	}
	return nil
}

func (s *session) Close() error {
	return s.connection.Logout()
}

func (s *session) flagDeleted(uid uint32) (*imap.SeqSet, error) {
	seqset := &imap.SeqSet{}
	seqset.AddNum(uid)
	err := s.connection.UidStore(seqset, imap.FormatFlagsOp(imap.AddFlags, true), []interface{}{imap.DeletedFlag}, nil)
	if err != nil {
		return nil, fmt.Errorf("could not set delete flag: %w", err)
	}

	return seqset, nil
}

func (s *session) UidExpunge(seqSet *imap.SeqSet, ch chan uint32) error {
	return s.uidplus.UidExpunge(seqSet, ch)
}

func (s *session) Expunge(ch chan uint32) error {
	return s.connection.Expunge(ch)
}

func (s *session) UidSearch(criteria *imap.SearchCriteria) ([]uint32, error) {
	return s.connection.UidSearch(criteria)
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func transportError(host string, err error) error {
	if isTimeout(err) {
		return &domain.ConnectionTimeoutError{Host: host, Err: err}
	}
	return err
}
