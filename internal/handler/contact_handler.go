package handler

import (
	"encoding/json"
	"net/http"

	"chronokart/internal/model"
	"chronokart/internal/service"

	"github.com/rs/zerolog"
)

// ContactHandler handles contact form HTTP requests.
type ContactHandler struct {
	service service.ContactService
	logger  zerolog.Logger
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(service service.ContactService, logger zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		logger:  logger.With().Str("handler", "contact").Logger(),
	}
}

// Submit handles POST /api/contact requests.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req model.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	msg, err := h.service.Submit(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err, "failed to submit contact message", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, msg)
}

// List handles GET /api/contact requests (admin).
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve contact messages", h.logger)
		return
	}

	if messages == nil {
		messages = []model.ContactMessage{}
	}
	writeJSON(w, http.StatusOK, messages)
}
