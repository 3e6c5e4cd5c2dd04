package mailer

import (
	"context"

	"github.com/rs/zerolog"
)

// Message is one outbound email. Bodies are HTML, matching what the site
// templates produce.
type Message struct {
	From     string
	To       string
	Subject  string
	HTMLBody string
}

// Mailer dispatches transactional email. Calls are fire-and-forget from the
// caller's point of view: no retries, failures are surfaced synchronously.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// nopMailer logs instead of sending. Used when no SMTP host is configured
// and in tests.
type nopMailer struct {
	logger zerolog.Logger
}

// NewNop creates a mailer that drops every message after logging it.
func NewNop(logger zerolog.Logger) Mailer {
	return &nopMailer{
		logger: logger.With().Str("component", "nop-mailer").Logger(),
	}
}

func (m *nopMailer) Send(ctx context.Context, msg Message) error {
	m.logger.Info().
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Msg("mail dispatch skipped (no SMTP configured)")
	return nil
}
