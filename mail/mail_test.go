// SPDX-License-Identifier: GPL-3.0-or-later
package mail

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func raw(lines ...string) []byte {
	return []byte(strings.Join(lines, "\r\n"))
}

var plainMail = raw(
	"From: Alice <alice@example.com>",
	"To: forum@example.com, Bob <bob@example.com>",
	"Subject: =?UTF-8?B?TcKlIFLDqsOQIMOHw6XCp8Ovw7HDsA==?=",
	"Message-Id: <abc@example.com>",
	"",
	"Hello there",
)

func TestParse(t *testing.T) {
	msg, err := Parse(plainMail)
	assert.NoError(t, err)

	assert.Equal(t, "alice@example.com", msg.From)
	assert.Equal(t, []string{"forum@example.com", "bob@example.com"}, msg.To)
	assert.Equal(t, "M¥ RêÐ Çå§ïñð", msg.Subject)
	assert.Equal(t, "abc@example.com", msg.MessageId)
	assert.Equal(t, "Hello there", msg.TextBody)
	assert.False(t, msg.IsReply())
	assert.False(t, msg.IsAutoGenerated())
	assert.False(t, msg.IsBounce())
}

func TestParseMultipart(t *testing.T) {
	msg, err := Parse(raw(
		"From: alice@example.com",
		"Content-Type: multipart/alternative; boundary=XX",
		"",
		"--XX",
		"Content-Type: text/plain",
		"",
		"",
		"--XX",
		"Content-Type: text/html",
		"",
		"<p>hi</p>",
		"--XX--",
		"",
	))
	assert.NoError(t, err)
	assert.Equal(t, "<p>hi</p>", msg.TextBody)
}

func TestHeaderInfos(t *testing.T) {
	tests := []struct {
		name    string
		rawMail []byte
		from    string
		to      string
		subject string
		err     string
	}{
		{"plain", plainMail, "alice@example.com", "forum@example.com", "M¥ RêÐ Çå§ïñð", ""},
		{"norecipient", raw("From: alice@example.com", "Subject: Saying Hello", "", "body"), "alice@example.com", "", "Saying Hello", ""},
		{"nofrom", raw("To: forum@example.com", "", "body"), "", "", "", "mail has no From address"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			from, to, subject, err := HeaderInfos(tc.rawMail)

			if len(tc.err) == 0 {
				assert.NoError(t, err)
				assert.Equal(t, tc.from, from)
				assert.Equal(t, tc.to, to)
				assert.Equal(t, tc.subject, subject)
			} else {
				assert.Empty(t, from)
				assert.EqualError(t, err, tc.err)
			}
		})
	}
}

func TestIsAutoGenerated(t *testing.T) {
	tests := []struct {
		header   string
		expected bool
	}{
		{"Auto-Submitted: auto-replied", true},
		{"Auto-Submitted: no", false},
		{"Precedence: bulk", true},
		{"Precedence: first-class", false},
		{"X-Autoreply: yes", true},
		{"X-Autorespond: vacation", true},
		{"X-Mailer: mutt", false},
	}
	for _, tc := range tests {
		t.Run(tc.header, func(t *testing.T) {
			msg, err := Parse(raw("From: alice@example.com", tc.header, "", "body"))
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, msg.IsAutoGenerated())
		})
	}
}

func TestIsBounce(t *testing.T) {
	tests := []struct {
		name     string
		headers  []string
		expected bool
	}{
		{"report", []string{"From: mta@example.com", "Content-Type: multipart/report; report-type=delivery-status; boundary=XX"}, true},
		{"nullsender", []string{"From: mta@example.com", "Return-Path: <>"}, true},
		{"mailerdaemon", []string{"From: MAILER-DAEMON@example.com"}, true},
		{"plain", []string{"From: alice@example.com", "Return-Path: <alice@example.com>"}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg, err := Parse(raw(append(tc.headers, "", "")...))
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, msg.IsBounce())
		})
	}
}

func TestIsReply(t *testing.T) {
	msg, err := Parse(raw("From: alice@example.com", "References: <a@x> <b@x>", "", "body"))
	assert.NoError(t, err)
	assert.Equal(t, []string{"<a@x>", "<b@x>"}, msg.References)
	assert.True(t, msg.IsReply())
}

func TestUnwrapSpamassassinReport(t *testing.T) {
	original := "From: alice@example.com\r\nSubject: Saying Hello\r\n\r\nHello\r\n"
	wrapped := raw(
		"From: alice@example.com",
		"X-Spam-Flag: YES",
		"X-Spam-Status: Yes, score=9.1",
		"Content-Type: multipart/mixed; boundary=SA",
		"",
		"--SA",
		"Content-Type: text/plain",
		"",
		"Spam detection software has identified this message as spam.",
		"--SA",
		"Content-Type: message/rfc822; x-spam-type=original",
		"",
		original,
		"--SA--",
		"",
	)

	result, err := UnwrapSpamassassinReport(wrapped)
	assert.NoError(t, err)
	assert.Equal(t, original, string(result))

	result, err = UnwrapSpamassassinReport(plainMail)
	assert.NoError(t, err)
	assert.Equal(t, plainMail, result)
}

func TestShortSubject(t *testing.T) {
	assert.Equal(t, "short", ShortSubject("short"))
	assert.Equal(t, "012345678901234567890123456789...", ShortSubject("0123456789012345678901234567890123"))
}
