package handler

import (
	"encoding/json"
	"net/http"

	"chronokart/internal/model"
	"chronokart/internal/notification"
	"chronokart/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// Create handles POST /api/orders requests.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	order, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err, "failed to create order", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

// List handles GET /api/orders requests (admin).
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve orders", h.logger)
		return
	}

	if orders == nil {
		orders = []model.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

// Track handles GET /api/orders/track/{id} requests. Customer tracking is
// read-only and unauthenticated.
func (h *OrderHandler) Track(w http.ResponseWriter, r *http.Request, orderIDStr string) {
	orderID, ok := h.parseOrderID(w, orderIDStr)
	if !ok {
		return
	}

	order, err := h.service.GetByID(r.Context(), orderID)
	if err != nil {
		writeDomainError(w, err, "failed to retrieve order", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// GetByID handles GET /api/orders/{id} requests (admin).
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request, orderIDStr string) {
	orderID, ok := h.parseOrderID(w, orderIDStr)
	if !ok {
		return
	}

	order, err := h.service.GetByID(r.Context(), orderID)
	if err != nil {
		writeDomainError(w, err, "failed to retrieve order", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// UpdateStatus handles PUT /api/orders/{id}/status requests (admin).
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request, orderIDStr string) {
	orderID, ok := h.parseOrderID(w, orderIDStr)
	if !ok {
		return
	}

	var req model.StatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	status, err := model.ParseStatus(req.Status)
	if err != nil {
		writeDomainError(w, err, "invalid status", h.logger)
		return
	}

	order, err := h.service.UpdateStatus(r.Context(), orderID, status)
	if err != nil {
		writeDomainError(w, err, "failed to update order status", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// VerifyPayment handles PUT /api/orders/{id} requests (admin). The only
// supported mutation is recording a payment verification.
func (h *OrderHandler) VerifyPayment(w http.ResponseWriter, r *http.Request, orderIDStr string) {
	orderID, ok := h.parseOrderID(w, orderIDStr)
	if !ok {
		return
	}

	var req model.PaymentVerificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if req.PaymentStatus != string(model.PaymentStatusVerified) {
		writeError(w, http.StatusBadRequest, "paymentStatus must be verified", h.logger)
		return
	}

	order, err := h.service.VerifyPayment(r.Context(), orderID, req.TransactionID, req.VerificationNotes)
	if err != nil {
		writeDomainError(w, err, "failed to verify payment", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// Notification handles GET /api/orders/{id}/notification?template= requests
// (admin). Returns a composed draft; dispatch stays manual.
func (h *OrderHandler) Notification(w http.ResponseWriter, r *http.Request, orderIDStr string) {
	orderID, ok := h.parseOrderID(w, orderIDStr)
	if !ok {
		return
	}

	tmpl, ok := notification.ParseTemplate(r.URL.Query().Get("template"))
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown notification template", h.logger)
		return
	}

	draft, err := h.service.NotificationDraft(r.Context(), orderID, tmpl)
	if err != nil {
		writeDomainError(w, err, "failed to compose notification", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, draft)
}

func (h *OrderHandler) parseOrderID(w http.ResponseWriter, orderIDStr string) (uuid.UUID, bool) {
	if orderIDStr == "" {
		writeError(w, http.StatusBadRequest, "order ID is required", h.logger)
		return uuid.Nil, false
	}

	orderID, err := uuid.Parse(orderIDStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order ID format", h.logger)
		return uuid.Nil, false
	}

	return orderID, true
}
