package handlers

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// HealthHandler provides health check endpoint
type HealthHandler struct {
	logger       zerolog.Logger
	catalogSize  int
	sessionCount func() int
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(logger zerolog.Logger, catalogSize int, sessionCount func() int) *HealthHandler {
	return &HealthHandler{
		logger:       logger,
		catalogSize:  catalogSize,
		sessionCount: sessionCount,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Products  int       `json:"products"`
	Sessions  int       `json:"sessions"`
}

// ServeHTTP handles health check requests
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   Version,
		Products:  h.catalogSize,
	}
	if h.sessionCount != nil {
		response.Sessions = h.sessionCount()
	}

	WriteJSON(w, http.StatusOK, response, h.logger)
}
