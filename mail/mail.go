// SPDX-License-Identifier: GPL-3.0-or-later
package mail

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"strings"

	gomessage "github.com/emersion/go-message"
	_ "github.com/emersion/go-message/charset"
	gomail "github.com/emersion/go-message/mail"
)

var ErrNoFromAddress = errors.New("mail has no From address")

// Message holds the envelope level data of an incoming email.
type Message struct {
	MessageId  string
	From       string
	To         []string
	Subject    string
	InReplyTo  string
	References []string
	TextBody   string

	header gomail.Header
}

func Parse(rawMail []byte) (*Message, error) {
	entity, err := gomessage.Read(bytes.NewReader(rawMail))
	if err != nil && !gomessage.IsUnknownCharset(err) {
		return nil, fmt.Errorf("could not parse mail: %w", err)
	}

	h := gomail.Header{Header: entity.Header}
	msg := &Message{
		header:    h,
		InReplyTo: h.Get("In-Reply-To"),
	}

	msg.Subject, err = h.Subject()
	if err != nil {
		return nil, fmt.Errorf("could not decode subject header: %w", err)
	}

	msg.MessageId, _ = h.MessageID()
	msg.References = strings.Fields(h.Get("References"))

	from, err := h.AddressList("From")
	if err == nil && len(from) > 0 {
		msg.From = from[0].Address
	}

	for _, field := range []string{"To", "Cc"} {
		addrs, err := h.AddressList(field)
		if err != nil {
			continue
		}
		for _, a := range addrs {
			msg.To = append(msg.To, a.Address)
		}
	}

	msg.TextBody, err = textBody(entity)
	if err != nil {
		return nil, err
	}

	return msg, nil
}

// HeaderInfos returns sender, first recipient and subject of a raw mail.
func HeaderInfos(rawMail []byte) (string, string, string, error) {
	msg, err := Parse(rawMail)
	if err != nil {
		return "", "", "", err
	}

	if len(msg.From) == 0 {
		return "", "", "", ErrNoFromAddress
	}

	to := ""
	if len(msg.To) > 0 {
		to = msg.To[0]
	}

	return msg.From, to, msg.Subject, nil
}

var autoGeneratedPrecedence = map[string]bool{
	"bulk":       true,
	"list":       true,
	"junk":       true,
	"auto_reply": true,
}

// IsAutoGenerated reports mails sent by machines, like vacation responders or mailing lists.
func (m *Message) IsAutoGenerated() bool {
	autoSubmitted := strings.ToLower(strings.TrimSpace(m.header.Get("Auto-Submitted")))
	if len(autoSubmitted) > 0 && autoSubmitted != "no" {
		return true
	}

	if autoGeneratedPrecedence[strings.ToLower(strings.TrimSpace(m.header.Get("Precedence")))] {
		return true
	}

	for _, key := range []string{"X-Autoreply", "X-Autorespond", "X-Auto-Response-Suppress"} {
		if len(m.header.Get(key)) > 0 {
			return true
		}
	}

	return false
}

// IsReply is set for mails referencing an earlier message.
func (m *Message) IsReply() bool {
	return len(m.InReplyTo) > 0 || len(m.References) > 0
}

// IsBounce detects delivery status notifications.
func (m *Message) IsBounce() bool {
	mediaType, params, err := m.header.ContentType()
	if err == nil && mediaType == "multipart/report" && strings.EqualFold(params["report-type"], "delivery-status") {
		return true
	}

	if strings.TrimSpace(m.header.Get("Return-Path")) == "<>" {
		return true
	}

	local := strings.ToLower(m.From)
	if i := strings.Index(local, "@"); i >= 0 {
		local = local[:i]
	}
	return local == "mailer-daemon" || local == "postmaster"
}

// UnwrapSpamassassinReport returns the original mail if rawMail is a spamassassin report
// wrapping it, rawMail otherwise.
func UnwrapSpamassassinReport(rawMail []byte) ([]byte, error) {
	entity, err := gomessage.Read(bytes.NewReader(rawMail))
	if err != nil && !gomessage.IsUnknownCharset(err) {
		return nil, fmt.Errorf("could not parse mail: %w", err)
	}

	saHeaders := 0
	fields := entity.Header.Fields()
	for fields.Next() {
		if strings.HasPrefix(strings.ToLower(fields.Key()), "x-spam-") {
			saHeaders++
		}
	}
	if saHeaders < 2 {
		return rawMail, nil
	}

	mr := entity.MultipartReader()
	if mr == nil {
		return rawMail, nil
	}

	for {
		p, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return rawMail, nil
		}
		if err != nil {
			return nil, fmt.Errorf("unexpected error while unwrapping: %w", err)
		}

		_, params, _ := p.Header.ContentType()
		if params["x-spam-type"] == "original" {
			unwrapped, err := ioutil.ReadAll(p.Body)
			if err != nil {
				return nil, fmt.Errorf("unexpected error while reading wrapped body: %w", err)
			}

			return unwrapped, nil
		}
	}
}

func ShortSubject(subject string) string {
	if (len(subject)) > 30 {
		subject = subject[:30] + "..."
	}
	return subject
}

func textBody(entity *gomessage.Entity) (string, error) {
	mr := entity.MultipartReader()
	if mr == nil {
		mediaType, _, _ := entity.Header.ContentType()
		if len(mediaType) > 0 && !strings.HasPrefix(mediaType, "text/") {
			return "", nil
		}
		body, err := ioutil.ReadAll(entity.Body)
		if err != nil {
			return "", fmt.Errorf("could not read body: %w", err)
		}
		return string(body), nil
	}

	for {
		part, err := mr.NextPart()
		if err != nil {
			// io.EOF or a truncated multipart body, both end the search
			return "", nil
		}

		body, err := textBody(part)
		if err != nil {
			return "", err
		}
		if len(strings.TrimSpace(body)) > 0 {
			return body, nil
		}
	}
}
