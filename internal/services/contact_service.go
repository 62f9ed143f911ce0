package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"inductra/internal/mailer"
	"inductra/internal/models"

	"github.com/go-playground/validator/v10"
)

// DeliveryFailedMessage is reported when the provider gives no message of its own.
const DeliveryFailedMessage = "Mail gönderilemedi"

var (
	// ErrMissingContactFields is returned when name, email or message is empty.
	ErrMissingContactFields = errors.New("name, email, message zorunlu")
	// ErrMailerUnavailable is returned when no email provider is configured.
	ErrMailerUnavailable = errors.New("E-posta servisi yapılandırılmamış")
)

// DeliveryError reports that the email provider rejected or failed a send.
// Message is safe to show to the client; Err carries provider detail for logs.
type DeliveryError struct {
	Message string
	Err     error
}

func (e *DeliveryError) Error() string { return e.Message }

func (e *DeliveryError) Unwrap() error { return e.Err }

// ContactService relays contact form submissions by email. It keeps no state.
type ContactService struct {
	mailer    mailer.Mailer
	publisher EventPublisher
	to        string
	from      string
	validate  *validator.Validate
}

// NewContactService creates a ContactService. A nil mailer makes every valid
// submission fail with ErrMailerUnavailable; publisher may be nil.
func NewContactService(m mailer.Mailer, publisher EventPublisher, to, from string) *ContactService {
	return &ContactService{
		mailer:    m,
		publisher: publisher,
		to:        to,
		from:      from,
		validate:  validator.New(),
	}
}

// Available reports whether an email provider is configured.
func (s *ContactService) Available() bool {
	return s.mailer != nil
}

// Submit validates req and forwards it to the configured mailer. There is no
// automatic retry; the user may resubmit after a DeliveryError.
func (s *ContactService) Submit(ctx context.Context, req models.ContactRequest) error {
	req.Normalize()
	if err := s.validate.Struct(req); err != nil {
		return ErrMissingContactFields
	}

	if s.mailer == nil {
		return ErrMailerUnavailable
	}

	id, err := s.mailer.Send(ctx, buildContactMessage(req, s.to, s.from))
	if err != nil {
		log.Printf("Contact mail delivery failed: %v", err)
		return &DeliveryError{Message: deliveryMessage(err), Err: err}
	}

	log.Printf("Contact mail sent successfully (id: %s)", id)
	publishEvent(s.publisher, EventContactSubmitted, map[string]interface{}{
		"messageID":  id,
		"hasSubject": req.Subject != "",
	})
	return nil
}

func buildContactMessage(req models.ContactRequest, to, from string) mailer.Message {
	subject := "Web Sitesi Teklif Formu"
	if req.Subject != "" {
		subject = "Teklif: " + req.Subject
	}

	var body strings.Builder
	body.WriteString("Yeni teklif/iletişim formu:\n\n")
	fmt.Fprintf(&body, "İsim: %s\n", req.Name)
	fmt.Fprintf(&body, "E-posta: %s\n", req.Email)
	fmt.Fprintf(&body, "Telefon: %s\n", orDash(req.Phone))
	fmt.Fprintf(&body, "Konu: %s\n\n", orDash(req.Subject))
	fmt.Fprintf(&body, "Mesaj:\n%s\n", req.Message)

	return mailer.Message{
		From:    from,
		To:      to,
		ReplyTo: req.Email,
		Subject: subject,
		Text:    body.String(),
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// deliveryMessage returns the provider's message for the client.
func deliveryMessage(err error) string {
	var providerErr *mailer.ProviderError
	if errors.As(err, &providerErr) && strings.TrimSpace(providerErr.Message) != "" {
		return providerErr.Message
	}
	return DeliveryFailedMessage
}
