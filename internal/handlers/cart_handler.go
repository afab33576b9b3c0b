package handlers

import (
	"net/http"

	"github.com/dripvault/storefront/internal/middleware"
	"github.com/dripvault/storefront/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// AddItemRequest is the body of POST /api/cart/items.
type AddItemRequest struct {
	ProductID string `json:"productId" validate:"required,max=64"`
}

// UpdateQuantityRequest is the body of PATCH /api/cart/items/{productId}.
// Values below 1 are accepted and clamped to 1; values above the cart's
// line cap are rejected.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required,max=999"`
}

// CartHandler handles cart and checkout HTTP requests for the caller's session
type CartHandler struct {
	carts    *service.CartService
	checkout *service.CheckoutService
	log      zerolog.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(carts *service.CartService, checkout *service.CheckoutService, log zerolog.Logger) *CartHandler {
	return &CartHandler{
		carts:    carts,
		checkout: checkout,
		log:      log,
	}
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	view, err := h.carts.Cart(middleware.SessionID(r.Context()))
	if err != nil {
		WriteServiceError(w, err, h.log)
		return
	}
	WriteJSON(w, http.StatusOK, view, h.log)
}

// AddItem handles POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := decodeJSONBody(r, &req); err != nil {
		WriteServiceError(w, err, h.log)
		return
	}

	sessionID := middleware.SessionID(r.Context())
	view, err := h.carts.AddItem(r.Context(), sessionID, req.ProductID)
	if err != nil {
		h.log.Warn().Err(err).Str("product_id", req.ProductID).Msg("failed to add item")
		WriteServiceError(w, err, h.log)
		return
	}

	h.log.Debug().Str("session_id", sessionID).Str("product_id", req.ProductID).Int("item_count", view.ItemCount).Msg("item added to cart")
	WriteJSON(w, http.StatusOK, view, h.log)
}

// UpdateQuantity handles PATCH /api/cart/items/{productId}
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req UpdateQuantityRequest
	if err := decodeJSONBody(r, &req); err != nil {
		WriteServiceError(w, err, h.log)
		return
	}

	view, err := h.carts.SetQuantity(middleware.SessionID(r.Context()), chi.URLParam(r, "productId"), *req.Quantity)
	if err != nil {
		WriteServiceError(w, err, h.log)
		return
	}
	WriteJSON(w, http.StatusOK, view, h.log)
}

// RemoveItem handles DELETE /api/cart/items/{productId}
// Removing a product that is not in the cart succeeds and changes nothing.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	view, err := h.carts.RemoveItem(middleware.SessionID(r.Context()), chi.URLParam(r, "productId"))
	if err != nil {
		WriteServiceError(w, err, h.log)
		return
	}
	WriteJSON(w, http.StatusOK, view, h.log)
}

// Checkout handles GET /api/cart/checkout
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())

	out, err := h.checkout.Checkout(sessionID)
	if err != nil {
		WriteServiceError(w, err, h.log)
		return
	}

	h.log.Info().Str("session_id", sessionID).Str("reference", out.Reference).Int("item_count", out.ItemCount).Msg("checkout link generated")
	WriteJSON(w, http.StatusOK, out, h.log)
}
