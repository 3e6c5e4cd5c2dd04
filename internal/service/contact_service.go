package service

import (
	"context"
	"fmt"
	"html"
	"strings"

	"coffeehouse/internal/mailer"
	"coffeehouse/internal/model"

	"github.com/rs/zerolog"
)

// contactService implements ContactService. Nothing is stored; the mail
// dispatch is the whole effect, so dispatch failures are fatal.
type contactService struct {
	mailer    mailer.Mailer
	from      string
	contactTo string
	logger    zerolog.Logger
}

// NewContactService creates a new contact service. contactTo is where form
// submissions are delivered.
func NewContactService(m mailer.Mailer, from, contactTo string, logger zerolog.Logger) ContactService {
	return &contactService{
		mailer:    m,
		from:      from,
		contactTo: contactTo,
		logger:    logger.With().Str("service", "contact").Logger(),
	}
}

// Submit sends the shop a notification and the customer an auto-reply.
func (s *contactService) Submit(ctx context.Context, req *model.ContactRequest) error {
	if req == nil {
		return model.NewDomainError(model.ErrCodeMissingField, "Contact request is required")
	}

	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Message) == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "Name, email, and message are required")
	}

	if err := s.mailer.Send(ctx, s.notificationMail(req)); err != nil {
		s.logger.Error().Err(err).Str("from", req.Email).Msg("contact notification failed")
		return model.ErrMailDispatch
	}

	if err := s.mailer.Send(ctx, s.autoReplyMail(req)); err != nil {
		s.logger.Error().Err(err).Str("to", req.Email).Msg("contact auto-reply failed")
		return model.ErrMailDispatch
	}

	s.logger.Info().Str("from", req.Email).Msg("contact message relayed")

	return nil
}

func (s *contactService) notificationMail(req *model.ContactRequest) mailer.Message {
	phone := req.Phone
	if phone == "" {
		phone = "Not provided"
	}

	body := fmt.Sprintf(`
        <h2>New Contact Form Submission</h2>
        <p><strong>Name:</strong> %s</p>
        <p><strong>Email:</strong> %s</p>
        <p><strong>Phone:</strong> %s</p>
        <p><strong>Message:</strong></p>
        <p>%s</p>
        <hr>
        <p><em>Sent from Coffee Shop website contact form</em></p>
      `,
		html.EscapeString(req.Name),
		html.EscapeString(req.Email),
		html.EscapeString(phone),
		html.EscapeString(req.Message),
	)

	return mailer.Message{
		From:     s.from,
		To:       s.contactTo,
		Subject:  fmt.Sprintf("New Contact Form Submission from %s", req.Name),
		HTMLBody: body,
	}
}

func (s *contactService) autoReplyMail(req *model.ContactRequest) mailer.Message {
	body := fmt.Sprintf(`
        <h2>Thank you for your message!</h2>
        <p>Dear %s,</p>
        <p>We have received your message and will get back to you within 24 hours.</p>
        <p>Your message:</p>
        <blockquote>%s</blockquote>
        <p>Best regards,<br>Coffee Shop Team</p>
      `,
		html.EscapeString(req.Name),
		html.EscapeString(req.Message),
	)

	return mailer.Message{
		From:     s.from,
		To:       req.Email,
		Subject:  "Thank you for contacting Coffee Shop",
		HTMLBody: body,
	}
}
