// SPDX-License-Identifier: GPL-3.0-or-later
package mailer

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/CrawX/go-mailpoll/domain"
	"github.com/CrawX/go-mailpoll/log"

	"github.com/sirupsen/logrus"
)

type compiledTemplate struct {
	subject *template.Template
	body    *template.Template
}

// RejectionMailer renders the notification for a rejection category.
type RejectionMailer struct {
	from      string
	templates map[domain.RejectionCategory]compiledTemplate
	logger    *logrus.Logger
}

func NewRejectionMailer(from string) (*RejectionMailer, error) {
	rm := &RejectionMailer{
		from:      from,
		templates: make(map[domain.RejectionCategory]compiledTemplate, len(rejectionTemplates)),
		logger:    log.Logger(log.LOG_MAILER),
	}

	for category, t := range rejectionTemplates {
		subject := t.subject
		if len(subject) == 0 {
			subject = defaultSubject
		}

		compiled := compiledTemplate{}
		var err error
		compiled.subject, err = parse(category.TemplateName()+".subject", subject)
		if err != nil {
			return nil, err
		}
		compiled.body, err = parse(category.TemplateName()+".body", t.body+footer)
		if err != nil {
			return nil, err
		}
		rm.templates[category] = compiled
	}

	return rm, nil
}

func parse(name, text string) (*template.Template, error) {
	t, err := template.New(name).Option("missingkey=zero").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("could not parse template %s: %w", name, err)
	}
	return t, nil
}

func (rm *RejectionMailer) SendRejection(category domain.RejectionCategory, to string, args map[string]string) (*domain.OutboundMessage, error) {
	t, ok := rm.templates[category]
	if !ok {
		return nil, fmt.Errorf("no template for rejection %s", category)
	}

	subject, err := render(t.subject, args)
	if err != nil {
		return nil, err
	}
	body, err := render(t.body, args)
	if err != nil {
		return nil, err
	}

	rm.logger.WithFields(logrus.Fields{
		"template": category.TemplateName(),
		"to":       to,
	}).Debug("rendered rejection")

	return &domain.OutboundMessage{
		From:    rm.from,
		To:      to,
		Subject: subject,
		Body:    body,
	}, nil
}

func render(t *template.Template, args map[string]string) (string, error) {
	var buf bytes.Buffer
	err := t.Execute(&buf, args)
	if err != nil {
		return "", fmt.Errorf("could not render %s: %w", t.Name(), err)
	}
	return buf.String(), nil
}
