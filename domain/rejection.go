// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import "context"

//go:generate mockgen -destination=mocks/rejection.go -package=mocks . RejectionMailer,Sender,Notifier

// RejectionCategory is the fixed set of reasons an incoming email is rejected with a
// notification to its sender.
type RejectionCategory int

const (
	RejectEmpty = RejectionCategory(iota + 1)
	RejectNoBodyDetected
	RejectUserNotFound
	RejectScreenedEmail
	RejectAutoGenerated
	RejectInactiveUser
	RejectBlockedUser
	RejectBadDestinationAddress
	RejectStrangersNotAllowed
	RejectInsufficientTrustLevel
	RejectReplyUserNotMatching
	RejectTopicNotFound
	RejectTopicClosed
	RejectInvalidPost
	RejectInvalidPostSpecified
	RejectInvalidPostAction
	RejectInvalidAccess
	RejectRateLimitSpecified
)

var templateNames = map[RejectionCategory]string{
	RejectEmpty:                  "email_reject_empty",
	RejectNoBodyDetected:         "email_reject_no_body",
	RejectUserNotFound:           "email_reject_user_not_found",
	RejectScreenedEmail:          "email_reject_screened_email",
	RejectAutoGenerated:          "email_reject_auto_generated",
	RejectInactiveUser:           "email_reject_inactive_user",
	RejectBlockedUser:            "email_reject_blocked_user",
	RejectBadDestinationAddress:  "email_reject_bad_destination_address",
	RejectStrangersNotAllowed:    "email_reject_strangers_not_allowed",
	RejectInsufficientTrustLevel: "email_reject_insufficient_trust_level",
	RejectReplyUserNotMatching:   "email_reject_reply_user_not_matching",
	RejectTopicNotFound:          "email_reject_topic_not_found",
	RejectTopicClosed:            "email_reject_topic_closed",
	RejectInvalidPost:            "email_reject_invalid_post",
	RejectInvalidPostSpecified:   "email_reject_invalid_post_specified",
	RejectInvalidPostAction:      "email_reject_invalid_post_action",
	RejectInvalidAccess:          "email_reject_invalid_access",
	RejectRateLimitSpecified:     "email_reject_rate_limit_specified",
}

func AllRejectionCategories() []RejectionCategory {
	categories := make([]RejectionCategory, 0, len(templateNames))
	for c := RejectEmpty; c <= RejectRateLimitSpecified; c++ {
		categories = append(categories, c)
	}
	return categories
}

// TemplateName selects the notification template, and doubles as the email type of the
// outbound message.
func (c RejectionCategory) TemplateName() string {
	name, ok := templateNames[c]
	if !ok {
		return "email_reject_unknown"
	}
	return name
}

func (c RejectionCategory) String() string {
	return c.TemplateName()
}

// Template argument keys.
const (
	ArgFormerTitle          = "former_title"
	ArgDestination          = "destination"
	ArgSiteName             = "site_name"
	ArgPostError            = "post_error"
	ArgRateLimitDescription = "rate_limit_description"
)

// Rejection is a classified processing failure that results in a notification.
type Rejection struct {
	Category RejectionCategory
	Args     map[string]string

	// AutoGenerated marks the notification as a reply to an auto generated message.
	AutoGenerated bool
}

type EarlyKind string

const (
	EarlyBounce             = EarlyKind("bounced_email")
	EarlyAutoGeneratedReply = EarlyKind("auto_generated_email_reply")
)

// EarlyRejection is recorded on the incoming email but never answered.
type EarlyRejection struct {
	Kind        EarlyKind
	Explanation string
}

type OutboundMessage struct {
	From      string
	To        string
	Subject   string
	Body      string
	InReplyTo string

	AutoGeneratedReply bool
}

type RejectionMailer interface {
	SendRejection(category RejectionCategory, to string, args map[string]string) (*OutboundMessage, error)
}

type Sender interface {
	Deliver(ctx context.Context, msg *OutboundMessage, category RejectionCategory) error
}

// Notifier answers a rejected incoming email and records the rejection on its record.
type Notifier interface {
	Notify(ctx context.Context, rejection Rejection, raw []byte, record *IncomingEmail) error
}
