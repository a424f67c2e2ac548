// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import (
	"context"
	"errors"
	"fmt"
)

//go:generate mockgen -destination=mocks/receiver.go -package=mocks . Receiver

// Receiver turns raw mail into a forum post. It returns the incoming email record as far as it
// got, even when processing fails, so rejections can be recorded on it.
type Receiver interface {
	Process(ctx context.Context, raw []byte) (*IncomingEmail, error)
}

// Failures raised by a Receiver. Anything else is treated as unrecognized.
var (
	ErrEmptyEmail              = errors.New("empty email")
	ErrNoBodyDetected          = errors.New("no body detected")
	ErrUserNotFound            = errors.New("user not found")
	ErrScreenedEmail           = errors.New("screened email")
	ErrAutoGeneratedEmail      = errors.New("auto generated email")
	ErrInactiveUser            = errors.New("inactive user")
	ErrBlockedUser             = errors.New("blocked user")
	ErrBadDestinationAddress   = errors.New("bad destination address")
	ErrStrangersNotAllowed     = errors.New("strangers not allowed")
	ErrInsufficientTrustLevel  = errors.New("insufficient trust level")
	ErrReplyUserNotMatching    = errors.New("reply user not matching")
	ErrTopicNotFound           = errors.New("topic not found")
	ErrTopicClosed             = errors.New("topic closed")
	ErrTransactionRolledBack   = errors.New("transaction rolled back")
	ErrInvalidPostAction       = errors.New("invalid post action")
	ErrInvalidAccess           = errors.New("invalid access")
	ErrBouncedEmail            = errors.New("bounced email")
	ErrAutoGeneratedEmailReply = errors.New("auto generated email reply")
)

// InvalidPostError carries the validation detail of a post that could not be created.
type InvalidPostError struct {
	Detail string
}

func (e *InvalidPostError) Error() string {
	if len(e.Detail) == 0 {
		return "invalid post"
	}
	return e.Detail
}

// RateLimitError is raised when the sender exceeded a posting limit. Description is human
// readable, e.g. "20 posts per day".
type RateLimitError struct {
	Description string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded: %s", e.Description)
}
