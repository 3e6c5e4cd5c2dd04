package mailer

import (
	"context"
	"fmt"

	"coffeehouse/internal/config"

	"github.com/rs/zerolog"
	gomail "gopkg.in/gomail.v2"
)

// smtpMailer implements Mailer over SMTP.
type smtpMailer struct {
	dialer *gomail.Dialer
	logger zerolog.Logger
}

// NewSMTP creates an SMTP-backed mailer from the given configuration.
func NewSMTP(cfg config.SMTPConfig, logger zerolog.Logger) Mailer {
	return &smtpMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		logger: logger.With().Str("component", "smtp-mailer").Logger(),
	}
}

// Send dials the SMTP server and delivers one message. The dial runs in a
// goroutine so a cancelled context unblocks the caller; the connection is
// abandoned to the SMTP library's own timeout in that case.
func (m *smtpMailer) Send(ctx context.Context, msg Message) error {
	gm := gomail.NewMessage()
	gm.SetHeader("From", msg.From)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/html", msg.HTMLBody)

	done := make(chan error, 1)
	go func() {
		done <- m.dialer.DialAndSend(gm)
	}()

	select {
	case err := <-done:
		if err != nil {
			m.logger.Error().
				Err(err).
				Str("to", msg.To).
				Str("subject", msg.Subject).
				Msg("failed to send mail")
			return fmt.Errorf("failed to send mail to %s: %w", msg.To, err)
		}
		m.logger.Debug().
			Str("to", msg.To).
			Str("subject", msg.Subject).
			Msg("mail sent")
		return nil
	case <-ctx.Done():
		m.logger.Warn().
			Str("to", msg.To).
			Msg("mail dispatch cancelled")
		return ctx.Err()
	}
}
