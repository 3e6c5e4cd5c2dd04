package storefront_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"coffeehouse/internal/catalog"
	"coffeehouse/internal/handler"
	"coffeehouse/internal/mailer"
	"coffeehouse/internal/model"
	"coffeehouse/internal/repository"
	"coffeehouse/internal/router"
	"coffeehouse/internal/service"
	"coffeehouse/internal/storefront"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAPIServer(t *testing.T, apiKey string) *httptest.Server {
	t.Helper()

	logger := zerolog.Nop()
	store := repository.NewMemoryStore()
	mail := mailer.NewNop(logger)
	info := catalog.DefaultStoreInfo()

	cfg := router.Config{
		Menu:       handler.NewMenuHandler(service.NewMenuService(catalog.Default(), info), logger),
		Order:      handler.NewOrderHandler(service.NewOrderService(repository.NewMemoryOrders(store), logger), logger),
		Review:     handler.NewReviewHandler(service.NewReviewService(repository.NewMemoryReviews(store), logger), logger),
		Newsletter: handler.NewNewsletterHandler(service.NewNewsletterService(repository.NewMemoryNewsletter(store), mail, "noreply@example.com", info, logger), logger),
		Contact:    handler.NewContactHandler(service.NewContactService(mail, "noreply@example.com", "owner@example.com", logger), logger),
		APIKey:     apiKey,
	}

	srv := httptest.NewServer(router.New(cfg, logger))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Menu(t *testing.T) {
	srv := newAPIServer(t, "")
	client, err := storefront.NewClient(srv.URL)
	require.NoError(t, err)

	items, err := client.Menu(context.Background())
	require.NoError(t, err)

	assert.Len(t, items, 9)
	assert.Equal(t, "Cappuccino", items[0].Name)
	assert.InDelta(t, 49.0, items[0].Price, 0.001)
}

func TestClient_StoreInfo(t *testing.T) {
	srv := newAPIServer(t, "")
	client, err := storefront.NewClient(srv.URL)
	require.NoError(t, err)

	info, err := client.StoreInfo(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, info.Weekdays)
	assert.NotEmpty(t, info.Phone)
}

func TestClient_CheckoutPlacesOrderAndClearsCart(t *testing.T) {
	srv := newAPIServer(t, "")
	client, err := storefront.NewClient(srv.URL)
	require.NoError(t, err)

	cart := storefront.NewCart()
	cart.AddLine(1, "Espresso", 49)
	cart.AddLine(1, "Espresso", 49)
	cart.AddLine(3, "Latte", 49)

	order, err := client.Checkout(context.Background(), cart, storefront.Customer{
		Name:  "Alice",
		Email: "alice@example.com",
		Notes: "extra hot",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, order.ID)
	assert.Equal(t, model.StatusPending, order.Status)
	assert.InDelta(t, 147.0, order.Total, 0.001)
	assert.Len(t, order.Items, 2)
	assert.True(t, cart.Empty())
}

func TestClient_CheckoutEmptyCart(t *testing.T) {
	// No server needed: the guard fires before any request is made.
	client, err := storefront.NewClient("http://127.0.0.1:0")
	require.NoError(t, err)

	_, err = client.Checkout(context.Background(), storefront.NewCart(), storefront.Customer{
		Name:  "Alice",
		Email: "alice@example.com",
	})

	assert.ErrorIs(t, err, storefront.ErrEmptyCart)
}

func TestClient_CheckoutMissingCustomer(t *testing.T) {
	client, err := storefront.NewClient("http://127.0.0.1:0")
	require.NoError(t, err)

	cart := storefront.NewCart()
	cart.AddLine(1, "Espresso", 49)

	_, err = client.Checkout(context.Background(), cart, storefront.Customer{Email: "alice@example.com"})
	assert.ErrorIs(t, err, storefront.ErrMissingCustomer)

	_, err = client.Checkout(context.Background(), cart, storefront.Customer{Name: "Alice"})
	assert.ErrorIs(t, err, storefront.ErrMissingCustomer)

	// Failed checkouts leave the cart alone.
	assert.Equal(t, 1, cart.Count())
}

func TestClient_CheckoutFailureKeepsCart(t *testing.T) {
	// A server that rejects everything.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success":false,"message":"Something went wrong!"}`))
	}))
	t.Cleanup(srv.Close)

	client, err := storefront.NewClient(srv.URL)
	require.NoError(t, err)

	cart := storefront.NewCart()
	cart.AddLine(2, "Cappuccino", 49)

	_, err = client.Checkout(context.Background(), cart, storefront.Customer{
		Name:  "Bob",
		Email: "bob@example.com",
	})

	var apiErr *storefront.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "Something went wrong!", apiErr.Message)
	assert.Equal(t, 1, cart.Count())
}

func TestClient_NewsletterDuplicate(t *testing.T) {
	srv := newAPIServer(t, "")
	client, err := storefront.NewClient(srv.URL)
	require.NoError(t, err)

	sub, err := client.SubscribeNewsletter(context.Background(), "fan@example.com")
	require.NoError(t, err)
	assert.Equal(t, 1, sub.ID)

	_, err = client.SubscribeNewsletter(context.Background(), "fan@example.com")
	var apiErr *storefront.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Email already subscribed to newsletter", apiErr.Message)
}

func TestClient_AdminOrderFlow(t *testing.T) {
	srv := newAPIServer(t, "secret-key")

	public, err := storefront.NewClient(srv.URL)
	require.NoError(t, err)
	admin, err := storefront.NewClient(srv.URL, storefront.WithAPIKey("secret-key"))
	require.NoError(t, err)

	cart := storefront.NewCart()
	cart.AddLine(1, "Espresso", 49)
	_, err = public.Checkout(context.Background(), cart, storefront.Customer{
		Name:  "Alice",
		Email: "alice@example.com",
	})
	require.NoError(t, err)

	// Listing without the key is rejected.
	_, err = public.Orders(context.Background())
	var apiErr *storefront.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)

	orders, err := admin.Orders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)

	updated, err := admin.UpdateOrderStatus(context.Background(), orders[0].ID, "ready")
	require.NoError(t, err)
	assert.Equal(t, "ready", updated.Status)
	require.NotNil(t, updated.UpdatedAt)
}

func TestClient_ReviewFlow(t *testing.T) {
	srv := newAPIServer(t, "")
	client, err := storefront.NewClient(srv.URL)
	require.NoError(t, err)

	review, err := client.SubmitReview(context.Background(), model.ReviewRequest{
		Name:    "Alice",
		Rating:  5,
		Comment: "Great espresso",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, review.ID)
	assert.False(t, review.Approved)

	// Unapproved reviews stay off the public list.
	reviews, err := client.Reviews(context.Background())
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestClient_Health(t *testing.T) {
	srv := newAPIServer(t, "")
	client, err := storefront.NewClient(srv.URL)
	require.NoError(t, err)

	assert.NoError(t, client.Health(context.Background()))
}
