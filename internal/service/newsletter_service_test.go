package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"coffeehouse/internal/mailer"
	"coffeehouse/internal/model"
	"coffeehouse/internal/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockNewsletterRepository is a mock implementation of NewsletterRepository.
type MockNewsletterRepository struct {
	mock.Mock
}

func (m *MockNewsletterRepository) Create(ctx context.Context, sub *model.Subscription) error {
	args := m.Called(ctx, sub)
	if args.Error(0) == nil {
		sub.ID = 1
		sub.SubscribedAt = time.Now().UTC()
	}
	return args.Error(0)
}

func (m *MockNewsletterRepository) List(ctx context.Context) ([]model.Subscription, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Subscription), args.Error(1)
}

// MockMailer is a mock implementation of mailer.Mailer.
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, msg mailer.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func storeInfo() model.StoreInfo {
	return model.StoreInfo{
		Weekdays: "Mon-Fri: 8am to 2pm",
		Weekends: "Sat-Sun: 11am to 4pm",
		Phone:    "(012) 6985 236 7512",
	}
}

func TestSubscribe_InvalidEmail(t *testing.T) {
	repo := new(MockNewsletterRepository)
	mm := new(MockMailer)
	svc := NewNewsletterService(repo, mm, "shop@example.com", storeInfo(), zerolog.Nop())

	for _, email := range []string{"", "   ", "not-an-email"} {
		_, err := svc.Subscribe(context.Background(), email)
		assert.ErrorIs(t, err, model.ErrInvalidEmail, "email %q", email)
	}

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mm.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestSubscribe_Duplicate(t *testing.T) {
	repo := new(MockNewsletterRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicate)
	mm := new(MockMailer)
	svc := NewNewsletterService(repo, mm, "shop@example.com", storeInfo(), zerolog.Nop())

	_, err := svc.Subscribe(context.Background(), "fan@example.com")
	assert.ErrorIs(t, err, model.ErrAlreadySubscribed)
	mm.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestSubscribe_SendsWelcomeMail(t *testing.T) {
	repo := new(MockNewsletterRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mm := new(MockMailer)
	mm.On("Send", mock.Anything, mock.MatchedBy(func(msg mailer.Message) bool {
		return msg.To == "fan@example.com" && msg.Subject == "Welcome to Coffee Shop Newsletter!"
	})).Return(nil)

	svc := NewNewsletterService(repo, mm, "shop@example.com", storeInfo(), zerolog.Nop())

	sub, err := svc.Subscribe(context.Background(), "fan@example.com")
	require.NoError(t, err)
	assert.Equal(t, 1, sub.ID)
	assert.Equal(t, "fan@example.com", sub.Email)
	mm.AssertExpectations(t)
}

func TestSubscribe_MailFailureIsNonFatal(t *testing.T) {
	repo := new(MockNewsletterRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mm := new(MockMailer)
	mm.On("Send", mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	svc := NewNewsletterService(repo, mm, "shop@example.com", storeInfo(), zerolog.Nop())

	// the subscription is durable, so the failed dispatch must not turn
	// the whole call into an error
	sub, err := svc.Subscribe(context.Background(), "fan@example.com")
	require.NoError(t, err)
	assert.Equal(t, "fan@example.com", sub.Email)
}

func TestSubscribe_TrimsEmail(t *testing.T) {
	repo := new(MockNewsletterRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(sub *model.Subscription) bool {
		return sub.Email == "fan@example.com"
	})).Return(nil)
	mm := new(MockMailer)
	mm.On("Send", mock.Anything, mock.Anything).Return(nil)

	svc := NewNewsletterService(repo, mm, "shop@example.com", storeInfo(), zerolog.Nop())

	_, err := svc.Subscribe(context.Background(), "  fan@example.com  ")
	require.NoError(t, err)
	repo.AssertExpectations(t)
}
