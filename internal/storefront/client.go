package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"coffeehouse/internal/model"
)

var (
	// ErrEmptyCart is returned by Checkout when the cart has no lines.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrMissingCustomer is returned by Checkout when name or email is blank.
	ErrMissingCustomer = errors.New("customer name and email are required")
)

// Customer holds the checkout contact details.
type Customer struct {
	Name  string
	Email string
	Phone string
	Notes string
}

// Client is a typed HTTP client for the storefront API.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	apiKey  string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithAPIKey attaches an API key to every request, unlocking the admin
// order endpoints.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// NewClient creates a client for the storefront API at the given base URL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}

	c := &Client{
		baseURL: u,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// apiEnvelope mirrors the wire format every endpoint answers with.
type apiEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// APIError is returned when the server answers with a failure envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	u := c.baseURL.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	var env apiEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decoding response from %s: %w", path, err)
	}

	if !env.Success {
		return &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decoding payload from %s: %w", path, err)
		}
	}
	return nil
}

// Menu fetches the drinks menu.
func (c *Client) Menu(ctx context.Context) ([]model.MenuItem, error) {
	var items []model.MenuItem
	if err := c.do(ctx, http.MethodGet, "/api/menu", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// StoreInfo fetches the store hours and phone number.
func (c *Client) StoreInfo(ctx context.Context) (model.StoreInfo, error) {
	var info model.StoreInfo
	if err := c.do(ctx, http.MethodGet, "/api/store-info", nil, &info); err != nil {
		return model.StoreInfo{}, err
	}
	return info, nil
}

// SubscribeNewsletter signs the given address up for the newsletter.
func (c *Client) SubscribeNewsletter(ctx context.Context, email string) (model.Subscription, error) {
	var sub model.Subscription
	req := model.SubscribeRequest{Email: email}
	if err := c.do(ctx, http.MethodPost, "/api/newsletter", req, &sub); err != nil {
		return model.Subscription{}, err
	}
	return sub, nil
}

// SubmitContact sends a contact form message.
func (c *Client) SubmitContact(ctx context.Context, req model.ContactRequest) error {
	return c.do(ctx, http.MethodPost, "/api/contact", req, nil)
}

// PlaceOrder submits an order directly. Most callers want Checkout instead.
func (c *Client) PlaceOrder(ctx context.Context, req model.OrderRequest) (model.Order, error) {
	var order model.Order
	if err := c.do(ctx, http.MethodPost, "/api/order", req, &order); err != nil {
		return model.Order{}, err
	}
	return order, nil
}

// SubmitReview submits a customer review for moderation.
func (c *Client) SubmitReview(ctx context.Context, req model.ReviewRequest) (model.Review, error) {
	var review model.Review
	if err := c.do(ctx, http.MethodPost, "/api/reviews", req, &review); err != nil {
		return model.Review{}, err
	}
	return review, nil
}

// Reviews fetches the approved reviews.
func (c *Client) Reviews(ctx context.Context) ([]model.Review, error) {
	var reviews []model.Review
	if err := c.do(ctx, http.MethodGet, "/api/reviews", nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// Orders lists all orders. Requires an API key when the server has one
// configured.
func (c *Client) Orders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrderStatus sets the status of an order. Requires an API key when
// the server has one configured.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID int, status string) (model.Order, error) {
	var order model.Order
	req := model.StatusUpdateRequest{Status: status}
	path := fmt.Sprintf("/api/orders/%d", orderID)
	if err := c.do(ctx, http.MethodPut, path, req, &order); err != nil {
		return model.Order{}, err
	}
	return order, nil
}

// Health reports whether the server answers its health endpoint.
func (c *Client) Health(ctx context.Context) error {
	u := c.baseURL.JoinPath("/api/health")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling health endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, Message: "health check failed"}
	}
	return nil
}

// Checkout places an order from the cart contents and, on success, clears
// the cart. A failed request leaves the cart untouched so the customer can
// retry.
func (c *Client) Checkout(ctx context.Context, cart *Cart, customer Customer) (model.Order, error) {
	if cart.Empty() {
		return model.Order{}, ErrEmptyCart
	}
	if strings.TrimSpace(customer.Name) == "" || strings.TrimSpace(customer.Email) == "" {
		return model.Order{}, ErrMissingCustomer
	}

	order, err := c.PlaceOrder(ctx, model.OrderRequest{
		CustomerName: customer.Name,
		Email:        customer.Email,
		Phone:        customer.Phone,
		Items:        cart.Lines(),
		Total:        cart.Total(),
		Notes:        customer.Notes,
	})
	if err != nil {
		return model.Order{}, err
	}

	cart.Clear()
	return order, nil
}
