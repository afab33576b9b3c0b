package handlers

import (
	"net/http"

	"github.com/dripvault/storefront/internal/middleware"
	"github.com/dripvault/storefront/internal/query"
	"github.com/dripvault/storefront/internal/service"
	"github.com/rs/zerolog"
)

// CriteriaRequest is the body of PUT /api/session/criteria.
type CriteriaRequest struct {
	Query    string `json:"query" validate:"max=200"`
	Category string `json:"category" validate:"max=64"`
	Size     string `json:"size" validate:"max=16"`
	Sort     string `json:"sort" validate:"omitempty,oneof=featured price_asc price_desc"`
}

// CriteriaResponse reports the session's criteria and whether any is active.
type CriteriaResponse struct {
	Criteria query.Criteria `json:"criteria"`
	Active   bool           `json:"active"`
}

// SessionHandler serves the session-held browse criteria
type SessionHandler struct {
	carts      *service.CartService
	products   *service.ProductService
	cookieName string
	log        zerolog.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(carts *service.CartService, products *service.ProductService, cookieName string, log zerolog.Logger) *SessionHandler {
	return &SessionHandler{
		carts:      carts,
		products:   products,
		cookieName: cookieName,
		log:        log,
	}
}

// End handles DELETE /api/session
// The cart and criteria are dropped and the session cookie is expired.
func (h *SessionHandler) End(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())
	h.carts.EndSession(sessionID)
	middleware.EndSession(w, h.cookieName)

	h.log.Debug().Str("session_id", sessionID).Msg("session ended")
	w.WriteHeader(http.StatusNoContent)
}

// GetCriteria handles GET /api/session/criteria
func (h *SessionHandler) GetCriteria(w http.ResponseWriter, r *http.Request) {
	c, err := h.carts.Criteria(middleware.SessionID(r.Context()))
	if err != nil {
		WriteServiceError(w, err, h.log)
		return
	}
	WriteJSON(w, http.StatusOK, CriteriaResponse{Criteria: c, Active: c.Active()}, h.log)
}

// PutCriteria handles PUT /api/session/criteria
func (h *SessionHandler) PutCriteria(w http.ResponseWriter, r *http.Request) {
	var req CriteriaRequest
	if err := decodeJSONBody(r, &req); err != nil {
		WriteServiceError(w, err, h.log)
		return
	}

	c, err := h.products.ParseCriteria(req.Query, req.Category, req.Size, req.Sort)
	if err != nil {
		WriteServiceError(w, err, h.log)
		return
	}

	c, err = h.carts.SetCriteria(middleware.SessionID(r.Context()), c)
	if err != nil {
		WriteServiceError(w, err, h.log)
		return
	}
	WriteJSON(w, http.StatusOK, CriteriaResponse{Criteria: c, Active: c.Active()}, h.log)
}

// ResetCriteria handles DELETE /api/session/criteria
func (h *SessionHandler) ResetCriteria(w http.ResponseWriter, r *http.Request) {
	c, err := h.carts.ResetCriteria(middleware.SessionID(r.Context()))
	if err != nil {
		WriteServiceError(w, err, h.log)
		return
	}
	WriteJSON(w, http.StatusOK, CriteriaResponse{Criteria: c, Active: c.Active()}, h.log)
}

// Browse handles GET /api/session/products
func (h *SessionHandler) Browse(w http.ResponseWriter, r *http.Request) {
	products, c, err := h.carts.Browse(r.Context(), middleware.SessionID(r.Context()))
	if err != nil {
		WriteServiceError(w, err, h.log)
		return
	}
	WriteJSON(w, http.StatusOK, listResponse(h.products.Views(products), c), h.log)
}
