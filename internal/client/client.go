// Package client is the storefront's consumer of the backend REST API. Calls
// are single-shot: a failed request surfaces immediately to the caller with
// no retry or backoff anywhere in the flow.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"chronokart/internal/model"
	"chronokart/internal/notification"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Client talks to the ChronoKart backend.
type Client struct {
	baseURL    string
	adminKey   string
	httpClient *http.Client
	logger     zerolog.Logger
}

// New creates an API client for the given base URL (e.g.
// "http://localhost:5000/api"). adminKey may be empty for purely public use.
func New(baseURL, adminKey string, logger zerolog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		adminKey:   adminKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger.With().Str("component", "api-client").Logger(),
	}
}

// Products fetches the catalogue.
func (c *Client) Products(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := c.do(ctx, http.MethodGet, "/products", false, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Product fetches a single product.
func (c *Client) Product(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	if err := c.do(ctx, http.MethodGet, "/products/"+id, false, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateOrder submits a checkout request.
func (c *Client) CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.Order, error) {
	var order model.Order
	if err := c.do(ctx, http.MethodPost, "/orders", false, req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// TrackOrder fetches an order through the public tracking endpoint.
func (c *Client) TrackOrder(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	var order model.Order
	if err := c.do(ctx, http.MethodGet, "/orders/track/"+id.String(), false, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Orders lists all orders (admin).
func (c *Client) Orders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := c.do(ctx, http.MethodGet, "/orders", true, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrderStatus transitions an order (admin).
func (c *Client) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status model.Status) (*model.Order, error) {
	var order model.Order
	req := model.StatusUpdateRequest{Status: string(status)}
	if err := c.do(ctx, http.MethodPut, "/orders/"+id.String()+"/status", true, req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// VerifyPayment records a payment verification (admin).
func (c *Client) VerifyPayment(ctx context.Context, id uuid.UUID, transactionID, notes string) (*model.Order, error) {
	var order model.Order
	req := model.PaymentVerificationRequest{
		PaymentStatus:     string(model.PaymentStatusVerified),
		TransactionID:     transactionID,
		VerificationNotes: notes,
	}
	if err := c.do(ctx, http.MethodPut, "/orders/"+id.String(), true, req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// NotificationDraft fetches a composed customer message for an order (admin).
func (c *Client) NotificationDraft(ctx context.Context, id uuid.UUID, tmpl notification.Template) (*notification.Draft, error) {
	var draft notification.Draft
	path := fmt.Sprintf("/orders/%s/notification?template=%s", id, tmpl)
	if err := c.do(ctx, http.MethodGet, path, true, nil, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

// SubmitContact submits a contact form message.
func (c *Client) SubmitContact(ctx context.Context, req *model.ContactRequest) (*model.ContactMessage, error) {
	var msg model.ContactMessage
	if err := c.do(ctx, http.MethodPost, "/contact", false, req, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// do performs one request. Transport failures come back as NETWORK_ERROR
// domain errors; API error bodies are surfaced with their own code.
func (c *Client) do(ctx context.Context, method, path string, admin bool, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if admin {
		req.Header.Set("x-admin-auth", c.adminKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return model.NewDomainError(model.ErrCodeNetwork, fmt.Sprintf("request failed: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr model.ErrorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error != "" {
			msg := apiErr.Message
			if msg == "" {
				msg = apiErr.Error
			}
			return model.NewDomainError(apiErr.Error, msg)
		}
		return model.NewDomainError(model.ErrCodeNetwork,
			fmt.Sprintf("unexpected status %d for %s %s", resp.StatusCode, method, path))
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
