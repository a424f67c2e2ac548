// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import "fmt"

//go:generate mockgen -destination=mocks/mailbox.go -package=mocks . MailboxDialer,MailboxSession
type MailboxProtocol string

const (
	ProtocolPop3 = MailboxProtocol("pop3")
	ProtocolImap = MailboxProtocol("imap")
)

type MailboxSettings struct {
	Protocol MailboxProtocol
	Host     string
	Port     int
	UseSSL   bool
	Username string
	Password string
}

// Complete reports whether the mailbox can be signed in to at all.
func (s MailboxSettings) Complete() bool {
	return len(s.Host) > 0 && len(s.Username) > 0 && len(s.Password) > 0
}

func (s MailboxSettings) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// IncomingMessage is one mailbox item as raw transport bytes. Id is only meaningful within the
// session that produced it.
type IncomingMessage struct {
	Id  uint32
	Raw []byte
}

type MailboxDialer interface {
	Connect(settings MailboxSettings) (MailboxSession, error)
}

// MailboxSession lists, fetches and deletes messages of an open, authenticated mailbox. Close
// commits pending deletions where the protocol defers them.
type MailboxSession interface {
	List() ([]uint32, error)
	Fetch(id uint32) (*IncomingMessage, error)
	Delete(id uint32) error
	Close() error
}

// ConnectionTimeoutError is a transient transport failure, absorbed up to a threshold.
type ConnectionTimeoutError struct {
	Host string
	Err  error
}

func (e *ConnectionTimeoutError) Error() string {
	return fmt.Sprintf("timeout talking to %s: %v", e.Host, e.Err)
}

func (e *ConnectionTimeoutError) Unwrap() error {
	return e.Err
}

// AuthenticationError is terminal for the cycle and always escalates.
type AuthenticationError struct {
	Host     string
	Username string
	Err      error
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication as %s on %s failed: %v", e.Username, e.Host, e.Err)
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}
