package mailer

import (
	"context"
	"time"

	gomail "github.com/wneessen/go-mail"
)

// SMTPMailer sends mail over an authenticated SSL connection. The
// client is constructed once at startup and closed at shutdown.
type SMTPMailer struct {
	client *gomail.Client
	from   string
}

// NewSMTPMailer builds an SMTP client for the given account. Port 465
// with implicit TLS, matching the production mail provider.
func NewSMTPMailer(host, user, pass, from string) (*SMTPMailer, error) {
	client, err := gomail.NewClient(host,
		gomail.WithPort(465),
		gomail.WithSSL(),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(user),
		gomail.WithPassword(pass),
		gomail.WithTimeout(10*time.Second),
	)
	if err != nil {
		return nil, err
	}

	if from == "" {
		from = user
	}

	return &SMTPMailer{client: client, from: from}, nil
}

// Send delivers one message, dialing as needed.
func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	mail := gomail.NewMsg()
	if err := mail.From(m.from); err != nil {
		return err
	}
	if err := mail.To(msg.To); err != nil {
		return err
	}
	mail.Subject(msg.Subject)
	mail.SetBodyString(gomail.TypeTextHTML, msg.HTML)

	return m.client.DialAndSendWithContext(ctx, mail)
}

// Close tears down the SMTP connection.
func (m *SMTPMailer) Close() error {
	return m.client.Close()
}
