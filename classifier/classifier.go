// SPDX-License-Identifier: GPL-3.0-or-later
package classifier

import (
	"errors"

	"github.com/CrawX/go-mailpoll/domain"
)

// Details up to this length are too short to tell the sender anything useful.
const minPostErrorDetail = 6

type earlyMatcher struct {
	err       error
	rejection domain.EarlyRejection
}

// Early failures are recorded on the incoming email and never answered. Order matters, the
// first match wins.
var earlyMatchers = []earlyMatcher{
	{
		err: domain.ErrBouncedEmail,
		rejection: domain.EarlyRejection{
			Kind:        domain.EarlyBounce,
			Explanation: "Email was a bounce notification and was not processed.",
		},
	},
	{
		err: domain.ErrAutoGeneratedEmailReply,
		rejection: domain.EarlyRejection{
			Kind:        domain.EarlyAutoGeneratedReply,
			Explanation: "Email was an automatically generated reply and was not processed.",
		},
	},
}

func Early(err error) (domain.EarlyRejection, bool) {
	for _, m := range earlyMatchers {
		if errors.Is(err, m.err) {
			return m.rejection, true
		}
	}
	return domain.EarlyRejection{}, false
}

var sentinelCategories = []struct {
	err      error
	category domain.RejectionCategory
}{
	{domain.ErrEmptyEmail, domain.RejectEmpty},
	{domain.ErrNoBodyDetected, domain.RejectNoBodyDetected},
	{domain.ErrUserNotFound, domain.RejectUserNotFound},
	{domain.ErrScreenedEmail, domain.RejectScreenedEmail},
	{domain.ErrAutoGeneratedEmail, domain.RejectAutoGenerated},
	{domain.ErrInactiveUser, domain.RejectInactiveUser},
	{domain.ErrBlockedUser, domain.RejectBlockedUser},
	{domain.ErrBadDestinationAddress, domain.RejectBadDestinationAddress},
	{domain.ErrStrangersNotAllowed, domain.RejectStrangersNotAllowed},
	{domain.ErrInsufficientTrustLevel, domain.RejectInsufficientTrustLevel},
	{domain.ErrReplyUserNotMatching, domain.RejectReplyUserNotMatching},
	{domain.ErrTopicNotFound, domain.RejectTopicNotFound},
	{domain.ErrTopicClosed, domain.RejectTopicClosed},
	{domain.ErrTransactionRolledBack, domain.RejectInvalidPost},
	{domain.ErrInvalidPostAction, domain.RejectInvalidPostAction},
	{domain.ErrInvalidAccess, domain.RejectInvalidAccess},
}

// Classify maps a processing failure to the rejection answered to its sender. It returns false
// for failures that are not a known rejection.
func Classify(err error) (domain.Rejection, bool) {
	if err == nil {
		return domain.Rejection{}, false
	}

	var invalidPost *domain.InvalidPostError
	if errors.As(err, &invalidPost) {
		if len(invalidPost.Detail) > minPostErrorDetail {
			return domain.Rejection{
				Category: domain.RejectInvalidPostSpecified,
				Args:     map[string]string{domain.ArgPostError: invalidPost.Detail},
			}, true
		}
		return domain.Rejection{Category: domain.RejectInvalidPost}, true
	}

	var rateLimit *domain.RateLimitError
	if errors.As(err, &rateLimit) {
		return domain.Rejection{
			Category: domain.RejectRateLimitSpecified,
			Args:     map[string]string{domain.ArgRateLimitDescription: rateLimit.Description},
		}, true
	}

	for _, s := range sentinelCategories {
		if errors.Is(err, s.err) {
			return domain.Rejection{
				Category:      s.category,
				AutoGenerated: s.category == domain.RejectAutoGenerated,
			}, true
		}
	}

	return domain.Rejection{}, false
}
