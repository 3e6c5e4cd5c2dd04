package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"coffeehouse/internal/mailer"
	"coffeehouse/internal/model"
	"coffeehouse/internal/repository"

	"github.com/rs/zerolog"
)

// newsletterService implements NewsletterService.
type newsletterService struct {
	repo   repository.NewsletterRepository
	mailer mailer.Mailer
	from   string
	info   model.StoreInfo
	logger zerolog.Logger
}

// NewNewsletterService creates a new newsletter service. The store info
// feeds the welcome mail footer.
func NewNewsletterService(
	repo repository.NewsletterRepository,
	m mailer.Mailer,
	from string,
	info model.StoreInfo,
	logger zerolog.Logger,
) NewsletterService {
	return &newsletterService{
		repo:   repo,
		mailer: m,
		from:   from,
		info:   info,
		logger: logger.With().Str("service", "newsletter").Logger(),
	}
}

// Subscribe records a subscription and then sends the welcome mail
// best-effort. A failed dispatch never contradicts the durable store
// mutation: the subscription stands and the failure is only logged.
func (s *newsletterService) Subscribe(ctx context.Context, email string) (*model.Subscription, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, model.ErrInvalidEmail
	}

	sub := &model.Subscription{Email: email}
	if err := s.repo.Create(ctx, sub); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			s.logger.Debug().Str("email", email).Msg("email already subscribed")
			return nil, model.ErrAlreadySubscribed
		}
		s.logger.Error().Err(err).Str("email", email).Msg("failed to create subscription")
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}

	if err := s.mailer.Send(ctx, s.welcomeMail(email)); err != nil {
		s.logger.Warn().
			Err(err).
			Str("email", email).
			Msg("welcome mail failed, subscription kept")
	}

	s.logger.Info().
		Int("subscription_id", sub.ID).
		Msg("newsletter subscription created")

	return sub, nil
}

func (s *newsletterService) welcomeMail(to string) mailer.Message {
	body := fmt.Sprintf(`
        <h2>Welcome to our Coffee Family!</h2>
        <p>Thank you for subscribing to our newsletter. You'll receive updates about:</p>
        <ul>
          <li>New coffee blends and seasonal specials</li>
          <li>Exclusive discounts and promotions</li>
          <li>Coffee brewing tips and recipes</li>
          <li>Store events and news</li>
        </ul>
        <p>Visit us at our coffee shop!</p>
        <p><strong>Hours:</strong><br>
        %s<br>
        %s</p>
        <p><strong>Phone:</strong> %s</p>
      `, s.info.Weekdays, s.info.Weekends, s.info.Phone)

	return mailer.Message{
		From:     s.from,
		To:       to,
		Subject:  "Welcome to Coffee Shop Newsletter!",
		HTMLBody: body,
	}
}
