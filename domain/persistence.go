// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import "time"

//go:generate mockgen -destination=mocks/persistence.go -package=mocks . Persistence
type IncomingEmail struct {
	Id               int64
	MessageId        string
	FromAddress      string
	ToAddresses      string
	Subject          string
	Raw              string
	Error            string
	RejectionMessage string
	CreatedAt        time.Time
}

type SaveIncomingEmail struct {
	MessageId   string
	FromAddress string
	ToAddresses string
	Subject     string
	Raw         string
}

type Persistence interface {
	Close() error
	CreateIncomingEmail(email SaveIncomingEmail) (*IncomingEmail, error)
	FindIncomingEmail(id int64) (*IncomingEmail, error)
	SetError(id int64, errorText string) error
	SetRejectionMessage(id int64, message string) error
}
