package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dripvault/storefront/internal/query"
	"github.com/dripvault/storefront/internal/repository"
	"github.com/dripvault/storefront/internal/service"
	"github.com/dripvault/storefront/internal/session"
	"github.com/rs/zerolog"
)

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}, logger zerolog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error().Err(err).Msg("failed to encode JSON response")
	}
}

// WriteError writes an error response in JSON format
func WriteError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	WriteJSON(w, status, map[string]string{"error": message}, logger)
}

// WriteServiceError maps domain errors to HTTP statuses. Anything unknown
// is logged and reported as a 500.
func WriteServiceError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var ve *validationError

	switch {
	case errors.As(err, &ve):
		WriteJSON(w, http.StatusBadRequest, map[string]any{
			"error":  ve.message,
			"fields": ve.fields,
		}, logger)
	case errors.Is(err, repository.ErrProductNotFound):
		WriteError(w, http.StatusNotFound, "Product not found", logger)
	case errors.Is(err, service.ErrInvalidProduct):
		WriteError(w, http.StatusBadRequest, "Invalid product", logger)
	case errors.Is(err, service.ErrEmptyCart):
		WriteError(w, http.StatusBadRequest, "Cart is empty", logger)
	case errors.Is(err, query.ErrInvalidCriteria):
		WriteError(w, http.StatusBadRequest, err.Error(), logger)
	case errors.Is(err, session.ErrNotFound):
		WriteError(w, http.StatusUnauthorized, "Session expired", logger)
	default:
		logger.Error().Err(err).Msg("request failed")
		WriteError(w, http.StatusInternalServerError, "Internal server error", logger)
	}
}
