package router

import (
	"net/http"
	"strings"

	"coffeehouse/internal/handler"
	"coffeehouse/internal/middleware"

	"github.com/rs/zerolog"
)

// Config carries the handlers and options the router wires together.
type Config struct {
	Menu       *handler.MenuHandler
	Order      *handler.OrderHandler
	Review     *handler.ReviewHandler
	Newsletter *handler.NewsletterHandler
	Contact    *handler.ContactHandler
	APIKey     string // guards the admin order endpoints; empty leaves them open
	StaticDir  string // served at /, empty disables static files
}

// New creates a new HTTP router with all routes and middleware configured.
func New(cfg Config, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/menu", cfg.Menu.Menu)
	mux.HandleFunc("/api/store-info", cfg.Menu.StoreInfo)
	mux.HandleFunc("/api/health", cfg.Menu.Health)
	mux.HandleFunc("/api/newsletter", cfg.Newsletter.Subscribe)
	mux.HandleFunc("/api/contact", cfg.Contact.Submit)
	mux.HandleFunc("/api/order", cfg.Order.Create)

	// Review handler function: POST submits, GET lists approved.
	mux.HandleFunc("/api/reviews", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			cfg.Review.Create(w, r)
		case http.MethodGet:
			cfg.Review.ListApproved(w, r)
		default:
			notFound(w)
		}
	})

	// Admin order routes: GET /api/orders lists, PUT /api/orders/{id}
	// updates the status. Both sit behind the API key when one is set.
	adminOrders := func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet && (r.URL.Path == "/api/orders" || r.URL.Path == "/api/orders/") {
			cfg.Order.List(w, r)
			return
		}

		if r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/api/orders/") && r.URL.Path != "/api/orders/" {
			cfg.Order.UpdateStatus(w, r)
			return
		}

		notFound(w)
	}

	var admin http.Handler = http.HandlerFunc(adminOrders)
	if cfg.APIKey != "" {
		admin = middleware.APIKeyAuth(cfg.APIKey, logger)(admin)
	}
	mux.Handle("/api/orders", admin)
	mux.Handle("/api/orders/", admin)

	// Anything else under /api/ is an unknown endpoint.
	mux.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		notFound(w)
	})

	// Static site at the root, when configured.
	if cfg.StaticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(cfg.StaticDir)))
	} else {
		mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			notFound(w)
		})
	}

	// Recovery wraps everything; RequestID sits outside Logging so the
	// request id is in context when the access line is written.
	var h http.Handler = mux
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.RequestID(h)
	h = middleware.Recovery(logger)(h)

	return h
}

// notFound writes the failure envelope used for unmatched routes.
func notFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"success":false,"message":"Endpoint not found"}`))
}
