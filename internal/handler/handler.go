package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"chronokart/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Response is already committed; nothing useful left to do.
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: message})
}

// writeDomainError maps a service error to an HTTP status based on its
// domain-error code, falling back to 500 with a generic message for anything
// unexpected.
func writeDomainError(w http.ResponseWriter, err error, fallback string, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if !errors.As(err, &domainErr) {
		writeError(w, http.StatusInternalServerError, fallback, logger)
		return
	}

	status := http.StatusInternalServerError
	switch domainErr.Code {
	case model.ErrCodeOrderNotFound:
		status = http.StatusNotFound
	case model.ErrCodeTransitionNotAllowed:
		status = http.StatusConflict
	case model.ErrCodeProductNotFound,
		model.ErrCodeInvalidQuantity,
		model.ErrCodeQuantityLimit,
		model.ErrCodeEmptyOrder,
		model.ErrCodeInvalidStatus,
		model.ErrCodeInvalidPaymentOption,
		model.ErrCodeMissingField,
		model.ErrCodeValidation,
		model.ErrCodeInvalidJSON:
		status = http.StatusBadRequest
	}

	logger.Warn().
		Str("code", domainErr.Code).
		Str("error", domainErr.Message).
		Int("status", status).
		Msg("domain error")

	writeJSON(w, status, model.ErrorResponse{Error: domainErr.Code, Message: domainErr.Message})
}
