package mailer

import (
	"context"
	"strings"

	"github.com/resend/resend-go/v2"
)

// Message is a plain-text email.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	Text    string
}

// Mailer sends email through an external provider and returns the provider's message ID.
type Mailer interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// ProviderError is a send failure reported by the email provider. Message is
// the provider's own text without the SDK's "[ERROR]: " prefix.
type ProviderError struct {
	Message string
	Err     error
}

func (e *ProviderError) Error() string { return "resend: " + e.Message }

func (e *ProviderError) Unwrap() error { return e.Err }

// ResendMailer delivers mail through the Resend API.
type ResendMailer struct {
	client *resend.Client
}

// NewResendMailer creates a ResendMailer authenticated with apiKey.
func NewResendMailer(apiKey string) *ResendMailer {
	return &ResendMailer{client: resend.NewClient(apiKey)}
}

// FromAPIKey returns a Resend-backed Mailer, or a nil Mailer when apiKey is
// empty. A nil Mailer means the contact relay is not configured.
func FromAPIKey(apiKey string) Mailer {
	if apiKey == "" {
		return nil
	}
	return NewResendMailer(apiKey)
}

// Send submits msg to Resend.
func (m *ResendMailer) Send(ctx context.Context, msg Message) (string, error) {
	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Text:    msg.Text,
		ReplyTo: msg.ReplyTo,
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", &ProviderError{
			Message: strings.TrimPrefix(err.Error(), "[ERROR]: "),
			Err:     err,
		}
	}
	return sent.Id, nil
}
