// Package mailer provides outbound email delivery behind a small
// interface so handlers never talk to a transport directly. Production
// deployments use SMTP or SendGrid; without credentials a log-only
// mailer prints messages (including OTP codes) to the application log.
package mailer

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Message is a single outbound email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Mailer delivers a single message.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
	Close() error
}

// LogMailer writes messages to the log instead of delivering them.
// Used as the mock-mode fallback when no mail credentials are set.
type LogMailer struct {
	log *logrus.Logger
}

// NewLogMailer constructs a LogMailer.
func NewLogMailer(log *logrus.Logger) *LogMailer {
	return &LogMailer{log: log}
}

// Send logs the message and reports success.
func (m *LogMailer) Send(_ context.Context, msg Message) error {
	m.log.WithFields(logrus.Fields{
		"to":      msg.To,
		"subject": msg.Subject,
	}).Infof("[EMAIL MOCK] %s", msg.HTML)
	return nil
}

// Close is a no-op for the log mailer.
func (m *LogMailer) Close() error { return nil }
