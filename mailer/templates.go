// SPDX-License-Identifier: GPL-3.0-or-later
package mailer

import "github.com/CrawX/go-mailpoll/domain"

type rejectionTemplate struct {
	subject string
	body    string
}

const defaultSubject = "[{{.site_name}}] Email issue -- {{.former_title}}"

const footer = `

Your email to {{.destination}} could not be posted to {{.site_name}}.
`

var rejectionTemplates = map[domain.RejectionCategory]rejectionTemplate{
	domain.RejectEmpty: {
		body: "We're sorry, but your email message to {{.destination}} (titled {{.former_title}}) didn't work.\n\n" +
			"We couldn't find any content in your email. Make sure your reply is at the top of the email.",
	},
	domain.RejectNoBodyDetected: {
		body: "We're sorry, but your email message to {{.destination}} (titled {{.former_title}}) didn't work.\n\n" +
			"We couldn't find a reply in it. Make sure your reply is at the top of the email, we can't process inline replies.",
	},
	domain.RejectUserNotFound: {
		subject: "[{{.site_name}}] Email issue -- Unknown User",
		body: "We're sorry, but your email message to {{.destination}} (titled {{.former_title}}) didn't work.\n\n" +
			"Your reply was sent from an unknown email address. Try sending from another address, or contact a staff member.",
	},
	domain.RejectScreenedEmail: {
		subject: "[{{.site_name}}] Email issue -- Blocked Email",
		body: "We're sorry, but your email message to {{.destination}} (titled {{.former_title}}) didn't work.\n\n" +
			"Your reply was sent from a blocked email address. Try sending from another address, or contact a staff member.",
	},
	domain.RejectAutoGenerated: {
		subject: "[{{.site_name}}] Email issue -- Auto Generated Content",
		body: "We're sorry, but your email message to {{.destination}} (titled {{.former_title}}) didn't work.\n\n" +
			"Your email was marked as \"auto generated\", which means it was automatically created by a computer " +
			"instead of being typed by a human. We can't accept those kinds of emails.",
	},
	domain.RejectInactiveUser: {
		subject: "[{{.site_name}}] Email issue -- Inactive User",
		body: "We're sorry, but your email message to {{.destination}} (titled {{.former_title}}) didn't work.\n\n" +
			"Your account associated with this email address has not been activated. Please activate your account before sending emails in.",
	},
	domain.RejectBlockedUser: {
		subject: "[{{.site_name}}] Email issue -- Blocked User",
		body: "We're sorry, but your email message to {{.destination}} (titled {{.former_title}}) didn't work.\n\n" +
			"The account associated with this email address has been blocked.",
	},
	domain.RejectBadDestinationAddress: {
		subject: "[{{.site_name}}] Email issue -- Unknown To: Address",
		body: "We're sorry, but your email message to {{.destination}} (titled {{.former_title}}) didn't work.\n\n" +
			"None of the destination addresses are recognized. Please make sure the forum address is in the To: line.",
	},
	domain.RejectStrangersNotAllowed: {
		subject: "[{{.site_name}}] Email issue -- Invalid Access",
		body: "We're sorry, but your email message to {{.destination}} (titled {{.former_title}}) didn't work.\n\n" +
			"The category you sent this email to only allows replies from users with valid accounts and known email addresses.",
	},
	domain.RejectInsufficientTrustLevel: {
		subject: "[{{.site_name}}] Email issue -- Insufficient Trust Level",
		body: "We're sorry, but your email message to {{.destination}} (titled {{.former_title}}) didn't work.\n\n" +
			"Your account does not have the required trust level to post new topics to this email address.",
	},
	domain.RejectReplyUserNotMatching: {
		subject: "[{{.site_name}}] Email issue -- Reply User Mismatch",
		body: "We're sorry, but your email message to {{.destination}} (titled {{.former_title}}) didn't work.\n\n" +
			"Your reply was sent from a different email address than the one we expected.",
	},
	domain.RejectTopicNotFound: {
		subject: "[{{.site_name}}] Email issue -- Topic Not Found",
		body: "We're sorry, but your email message to {{.destination}} (titled {{.former_title}}) didn't work.\n\n" +
			"The topic you are replying to no longer exists, perhaps it was deleted.",
	},
	domain.RejectTopicClosed: {
		subject: "[{{.site_name}}] Email issue -- Topic Closed",
		body: "We're sorry, but your email message to {{.destination}} (titled {{.former_title}}) didn't work.\n\n" +
			"The topic you are replying to is currently closed and no longer accepting replies.",
	},
	domain.RejectInvalidPost: {
		body: "We're sorry, but your email message to {{.destination}} (titled {{.former_title}}) didn't work.\n\n" +
			"Some possible causes are: complex formatting, message too large, message too small.",
	},
	domain.RejectInvalidPostSpecified: {
		body: "We're sorry, but your email message to {{.destination}} (titled {{.former_title}}) didn't work.\n\n" +
			"Reason:\n\n{{.post_error}}",
	},
	domain.RejectInvalidPostAction: {
		subject: "[{{.site_name}}] Email issue -- Invalid Post Action",
		body: "We're sorry, but your email message to {{.destination}} (titled {{.former_title}}) didn't work.\n\n" +
			"The post action was not recognized.",
	},
	domain.RejectInvalidAccess: {
		subject: "[{{.site_name}}] Email issue -- Invalid Access",
		body: "We're sorry, but your email message to {{.destination}} (titled {{.former_title}}) didn't work.\n\n" +
			"Your account does not have the privileges to post new topics in that category.",
	},
	domain.RejectRateLimitSpecified: {
		subject: "[{{.site_name}}] Email issue -- Rate Limited",
		body: "We're sorry, but your email message to {{.destination}} (titled {{.former_title}}) didn't work.\n\n" +
			"Reason: {{.rate_limit_description}}",
	},
}
