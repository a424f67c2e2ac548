// SPDX-License-Identifier: GPL-3.0-or-later
package notifier

import (
	"context"
	"errors"
	"testing"

	"github.com/CrawX/go-mailpoll/domain"
	"github.com/CrawX/go-mailpoll/domain/mocks"
	"github.com/CrawX/go-mailpoll/log"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

var rawMail = []byte("From: Alice <alice@example.com>\r\n" +
	"To: forum+reply@example.com\r\n" +
	"Subject: Saying Hello\r\n" +
	"Message-Id: <abc@example.com>\r\n" +
	"\r\n" +
	"Hello\r\n")

type fixture struct {
	mailer      *mocks.MockRejectionMailer
	sender      *mocks.MockSender
	persistence *mocks.MockPersistence
	notifier    *Notifier
}

func newFixture(t *testing.T) *fixture {
	log.InitLogging("panic")
	ctrl := gomock.NewController(t)
	f := &fixture{
		mailer:      mocks.NewMockRejectionMailer(ctrl),
		sender:      mocks.NewMockSender(ctrl),
		persistence: mocks.NewMockPersistence(ctrl),
	}
	f.notifier = NewNotifier(f.mailer, f.sender, f.persistence, "Meta")
	return f
}

func TestNotify(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	rejection := domain.Rejection{
		Category: domain.RejectRateLimitSpecified,
		Args:     map[string]string{domain.ArgRateLimitDescription: "20 posts per day"},
	}
	rendered := &domain.OutboundMessage{From: "noreply@example.com", To: "alice@example.com", Body: "rate limited"}

	gomock.InOrder(
		f.mailer.EXPECT().SendRejection(domain.RejectRateLimitSpecified, "alice@example.com", map[string]string{
			domain.ArgFormerTitle:          "Saying Hello",
			domain.ArgDestination:          "forum+reply@example.com",
			domain.ArgSiteName:             "Meta",
			domain.ArgRateLimitDescription: "20 posts per day",
		}).Return(rendered, nil),
		f.persistence.EXPECT().SetRejectionMessage(int64(7), "rate limited").Return(nil),
		f.sender.EXPECT().Deliver(ctx, rendered, domain.RejectRateLimitSpecified).Return(nil),
	)

	err := f.notifier.Notify(ctx, rejection, rawMail, &domain.IncomingEmail{Id: 7})
	assert.NoError(t, err)
	assert.Equal(t, "abc@example.com", rendered.InReplyTo)
	assert.False(t, rendered.AutoGeneratedReply)
}

func TestNotifySpamassassinReport(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	wrapped := []byte("From: Spamassassin <spamd@mail.example.com>\r\n" +
		"To: postmaster@example.com\r\n" +
		"Subject: *****SPAM***** Saying Hello\r\n" +
		"X-Spam-Flag: YES\r\n" +
		"X-Spam-Status: Yes, score=9.1\r\n" +
		"Content-Type: multipart/mixed; boundary=SA\r\n" +
		"\r\n" +
		"--SA\r\n" +
		"Content-Type: text/plain\r\n" +
		"\r\n" +
		"Spam detection software has identified this message as spam.\r\n" +
		"--SA\r\n" +
		"Content-Type: message/rfc822; x-spam-type=original\r\n" +
		"\r\n" +
		string(rawMail) +
		"--SA--\r\n")
	rendered := &domain.OutboundMessage{Body: "spam"}

	f.mailer.EXPECT().SendRejection(domain.RejectScreenedEmail, "alice@example.com", map[string]string{
		domain.ArgFormerTitle: "Saying Hello",
		domain.ArgDestination: "forum+reply@example.com",
		domain.ArgSiteName:    "Meta",
	}).Return(rendered, nil)
	f.sender.EXPECT().Deliver(ctx, rendered, domain.RejectScreenedEmail).Return(nil)

	err := f.notifier.Notify(ctx, domain.Rejection{Category: domain.RejectScreenedEmail}, wrapped, nil)
	assert.NoError(t, err)
	assert.Equal(t, "abc@example.com", rendered.InReplyTo)
}

func TestNotifyAutoGenerated(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	rendered := &domain.OutboundMessage{Body: "auto"}

	f.mailer.EXPECT().SendRejection(domain.RejectAutoGenerated, "alice@example.com", gomock.Any()).Return(rendered, nil)
	f.sender.EXPECT().Deliver(ctx, rendered, domain.RejectAutoGenerated).Return(nil)

	err := f.notifier.Notify(ctx, domain.Rejection{Category: domain.RejectAutoGenerated, AutoGenerated: true}, rawMail, nil)
	assert.NoError(t, err)
	assert.True(t, rendered.AutoGeneratedReply)
}

func TestNotifyPersistenceError(t *testing.T) {
	f := newFixture(t)
	dbErr := errors.New("database is locked")

	f.mailer.EXPECT().SendRejection(domain.RejectTopicClosed, "alice@example.com", gomock.Any()).Return(&domain.OutboundMessage{Body: "closed"}, nil)
	f.persistence.EXPECT().SetRejectionMessage(int64(3), "closed").Return(dbErr)

	err := f.notifier.Notify(context.Background(), domain.Rejection{Category: domain.RejectTopicClosed}, rawMail, &domain.IncomingEmail{Id: 3})
	assert.ErrorIs(t, err, dbErr)
}

func TestNotifyErrors(t *testing.T) {
	f := newFixture(t)
	renderErr := errors.New("no template")
	deliverErr := errors.New("connection refused")

	err := f.notifier.Notify(context.Background(), domain.Rejection{Category: domain.RejectEmpty}, []byte("To: forum@example.com\r\n\r\nbody"), nil)
	assert.EqualError(t, err, "mail has no From address")

	f.mailer.EXPECT().SendRejection(domain.RejectEmpty, "alice@example.com", gomock.Any()).Return(nil, renderErr)
	err = f.notifier.Notify(context.Background(), domain.Rejection{Category: domain.RejectEmpty}, rawMail, nil)
	assert.ErrorIs(t, err, renderErr)

	f.mailer.EXPECT().SendRejection(domain.RejectEmpty, "alice@example.com", gomock.Any()).Return(&domain.OutboundMessage{}, nil)
	f.sender.EXPECT().Deliver(gomock.Any(), gomock.Any(), domain.RejectEmpty).Return(deliverErr)
	err = f.notifier.Notify(context.Background(), domain.Rejection{Category: domain.RejectEmpty}, rawMail, nil)
	assert.ErrorIs(t, err, deliverErr)
}
