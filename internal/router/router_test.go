package router_test

import (
	"bytes"
	"encoding/json"
	"fmt"
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

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, apiKey string) *httptest.Server {
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

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()

	buf, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(buf))
	require.NoError(t, err)
	return resp
}

func decodeEnvelope(t *testing.T, resp *http.Response) model.APIResponse {
	t.Helper()
	defer resp.Body.Close()

	var env model.APIResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

func TestRouter_Menu(t *testing.T) {
	srv := newTestServer(t, "")

	resp, err := http.Get(srv.URL + "/api/menu")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	assert.True(t, env.Success)

	items, ok := env.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, items, 9)
}

func TestRouter_Health(t *testing.T) {
	srv := newTestServer(t, "")

	resp, err := http.Get(srv.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var health struct {
		Success   bool   `json:"success"`
		Message   string `json:"message"`
		Timestamp string `json:"timestamp"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.True(t, health.Success)
	assert.Equal(t, "Server is running", health.Message)
	assert.NotEmpty(t, health.Timestamp)
}

func TestRouter_UnknownEndpoint(t *testing.T) {
	srv := newTestServer(t, "")

	resp, err := http.Get(srv.URL + "/api/nope")
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	assert.False(t, env.Success)
	assert.Equal(t, "Endpoint not found", env.Message)
}

func TestRouter_OrderLifecycle(t *testing.T) {
	srv := newTestServer(t, "")

	// Orders get sequential ids starting at 1.
	for i := 1; i <= 3; i++ {
		resp := postJSON(t, srv.URL+"/api/order", map[string]any{
			"customerName": fmt.Sprintf("Customer %d", i),
			"email":        fmt.Sprintf("c%d@example.com", i),
			"items": []map[string]any{
				{"id": 1, "name": "Espresso", "price": 49, "quantity": 2},
			},
		})

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		env := decodeEnvelope(t, resp)
		assert.True(t, env.Success)
		assert.Equal(t, "Order placed successfully", env.Message)

		order, ok := env.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, float64(i), order["id"])
		assert.Equal(t, "pending", order["status"])
	}

	resp, err := http.Get(srv.URL + "/api/orders")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	orders, ok := env.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, orders, 3)

	// Update a status.
	req, err := http.NewRequest(http.MethodPut, srv.URL+"/api/orders/2", bytes.NewReader([]byte(`{"status":"ready"}`)))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	env = decodeEnvelope(t, resp)
	assert.Equal(t, "Order status updated", env.Message)

	// Unknown order id.
	req, err = http.NewRequest(http.MethodPut, srv.URL+"/api/orders/9999", bytes.NewReader([]byte(`{"status":"ready"}`)))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	env = decodeEnvelope(t, resp)
	assert.False(t, env.Success)
}

func TestRouter_OrderValidation(t *testing.T) {
	srv := newTestServer(t, "")

	resp := postJSON(t, srv.URL+"/api/order", map[string]any{
		"customerName": "No Items",
		"email":        "empty@example.com",
		"items":        []map[string]any{},
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	assert.False(t, env.Success)

	// The rejected order must not have consumed an id.
	resp = postJSON(t, srv.URL+"/api/order", map[string]any{
		"customerName": "First Real",
		"email":        "real@example.com",
		"items": []map[string]any{
			{"id": 2, "name": "Cappuccino", "price": 49, "quantity": 1},
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	env = decodeEnvelope(t, resp)
	order, ok := env.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), order["id"])
}

func TestRouter_ReviewsHiddenUntilApproved(t *testing.T) {
	srv := newTestServer(t, "")

	resp := postJSON(t, srv.URL+"/api/reviews", map[string]any{
		"name":    "Alice",
		"rating":  5,
		"comment": "Great espresso",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	assert.Equal(t, "Review submitted successfully", env.Message)

	resp, err := http.Get(srv.URL + "/api/reviews")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	env = decodeEnvelope(t, resp)
	reviews, ok := env.Data.([]interface{})
	require.True(t, ok)
	assert.Empty(t, reviews)
}

func TestRouter_NewsletterDuplicate(t *testing.T) {
	srv := newTestServer(t, "")

	resp := postJSON(t, srv.URL+"/api/newsletter", map[string]any{"email": "fan@example.com"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	assert.Equal(t, "Successfully subscribed to newsletter", env.Message)

	resp = postJSON(t, srv.URL+"/api/newsletter", map[string]any{"email": "fan@example.com"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	env = decodeEnvelope(t, resp)
	assert.False(t, env.Success)
	assert.Equal(t, "Email already subscribed to newsletter", env.Message)
}

func TestRouter_APIKeyGuardsAdminRoutes(t *testing.T) {
	srv := newTestServer(t, "secret-key")

	// Public routes stay open.
	resp, err := http.Get(srv.URL + "/api/menu")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Admin list rejects without the key.
	resp, err = http.Get(srv.URL + "/api/orders")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// And accepts with it.
	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/orders", nil)
	require.NoError(t, err)
	req.Header.Set("X-API-Key", "secret-key")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_CORSPreflight(t *testing.T) {
	srv := newTestServer(t, "")

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/order", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
