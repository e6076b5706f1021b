package mailer

import (
	"context"
	"fmt"
	netmail "net/mail"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridMailer delivers mail through the SendGrid HTTP API.
type SendGridMailer struct {
	client   *sendgrid.Client
	fromName string
	fromAddr string
}

// NewSendGridMailer constructs a SendGrid-backed mailer. The from value
// may be a bare address or an RFC 5322 "Name <addr>" string.
func NewSendGridMailer(apiKey, from string) (*SendGridMailer, error) {
	addr, err := netmail.ParseAddress(from)
	if err != nil {
		return nil, fmt.Errorf("invalid sender address %q: %w", from, err)
	}

	return &SendGridMailer{
		client:   sendgrid.NewSendClient(apiKey),
		fromName: addr.Name,
		fromAddr: addr.Address,
	}, nil
}

// Send delivers one message via the SendGrid API.
func (m *SendGridMailer) Send(ctx context.Context, msg Message) error {
	from := sgmail.NewEmail(m.fromName, m.fromAddr)
	to := sgmail.NewEmail("", msg.To)
	email := sgmail.NewSingleEmail(from, msg.Subject, to, "", msg.HTML)

	resp, err := m.client.SendWithContext(ctx, email)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}

	return nil
}

// Close is a no-op for the API client.
func (m *SendGridMailer) Close() error { return nil }
