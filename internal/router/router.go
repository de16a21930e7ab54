package router

import (
	"net/http"
	"strings"

	"chronokart/internal/handler"
	"chronokart/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
// Storefront routes (catalogue reads, order creation, tracking, contact
// submission) are public; everything else requires the admin header.
func New(
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	contactHandler *handler.ContactHandler,
	adminKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()
	adminOnly := middleware.RequireAdmin(adminKey, logger)

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Product routes
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/products"), "/")

		if id == "" {
			switch r.Method {
			case http.MethodGet:
				productHandler.GetAll(w, r)
			case http.MethodPost:
				adminOnly(productHandler.Create)(w, r)
			default:
				http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}

		switch r.Method {
		case http.MethodGet:
			productHandler.GetByID(w, r, id)
		case http.MethodPut:
			adminOnly(func(w http.ResponseWriter, r *http.Request) {
				productHandler.Update(w, r, id)
			})(w, r)
		case http.MethodDelete:
			adminOnly(func(w http.ResponseWriter, r *http.Request) {
				productHandler.Delete(w, r, id)
			})(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}

	mux.HandleFunc("/api/products", productRouteHandler)
	mux.HandleFunc("/api/products/", productRouteHandler)

	// Order routes
	orderRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/orders"), "/")

		if rest == "" {
			switch r.Method {
			case http.MethodPost:
				orderHandler.Create(w, r)
			case http.MethodGet:
				adminOnly(orderHandler.List)(w, r)
			default:
				http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}

		// Customer-facing tracking: GET /api/orders/track/{id}
		if id, ok := strings.CutPrefix(rest, "track/"); ok {
			if r.Method != http.MethodGet {
				http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
				return
			}
			orderHandler.Track(w, r, id)
			return
		}

		// Admin sub-resources: /api/orders/{id}[/status|/notification]
		id, sub, _ := strings.Cut(rest, "/")
		switch {
		case sub == "status" && r.Method == http.MethodPut:
			adminOnly(func(w http.ResponseWriter, r *http.Request) {
				orderHandler.UpdateStatus(w, r, id)
			})(w, r)
		case sub == "notification" && r.Method == http.MethodGet:
			adminOnly(func(w http.ResponseWriter, r *http.Request) {
				orderHandler.Notification(w, r, id)
			})(w, r)
		case sub == "" && r.Method == http.MethodPut:
			adminOnly(func(w http.ResponseWriter, r *http.Request) {
				orderHandler.VerifyPayment(w, r, id)
			})(w, r)
		case sub == "" && r.Method == http.MethodGet:
			adminOnly(func(w http.ResponseWriter, r *http.Request) {
				orderHandler.GetByID(w, r, id)
			})(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}

	mux.HandleFunc("/api/orders", orderRouteHandler)
	mux.HandleFunc("/api/orders/", orderRouteHandler)

	// Contact routes
	contactRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			contactHandler.Submit(w, r)
		case http.MethodGet:
			adminOnly(contactHandler.List)(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}

	mux.HandleFunc("/api/contact", contactRouteHandler)
	mux.HandleFunc("/api/contact/", contactRouteHandler)

	// Apply middleware in order: Recovery -> Logging -> CORS
	var h http.Handler = mux
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
