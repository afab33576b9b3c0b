package handlers

import (
	"net/http"

	"github.com/dripvault/storefront/internal/models"
	"github.com/dripvault/storefront/internal/query"
	"github.com/dripvault/storefront/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	service *service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

// ProductListResponse is a selected slice of the catalog.
type ProductListResponse struct {
	Products []models.ProductView `json:"products"`
	Count    int                  `json:"count"`
	Filtered bool                 `json:"filtered"`
	Criteria query.Criteria       `json:"criteria"`
}

// ListProducts handles GET /api/product
// Query parameters q, category, size and sort narrow and order the catalog;
// omitted parameters fall back to the defaults.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	criteria, err := h.service.ParseCriteria(params.Get("q"), params.Get("category"), params.Get("size"), params.Get("sort"))
	if err != nil {
		h.logger.Warn().Err(err).Msg("invalid product criteria")
		WriteServiceError(w, err, h.logger)
		return
	}

	products, err := h.service.ListProducts(r.Context(), criteria)
	if err != nil {
		WriteServiceError(w, err, h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, listResponse(h.service.Views(products), criteria), h.logger)
}

// GetProduct handles GET /api/product/{productId}
// - 200: successful operation
// - 400: Invalid ID supplied
// - 404: Product not found
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID, ok := h.productID(w, r)
	if !ok {
		return
	}

	product, err := h.service.GetProduct(r.Context(), productID)
	if err != nil {
		h.logger.Info().Str("product_id", productID).Err(err).Msg("product lookup failed")
		WriteServiceError(w, err, h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, h.service.View(*product), h.logger)
}

// Inquiry handles GET /api/product/{productId}/inquiry
func (h *ProductHandler) Inquiry(w http.ResponseWriter, r *http.Request) {
	productID, ok := h.productID(w, r)
	if !ok {
		return
	}

	inquiry, err := h.service.Inquiry(r.Context(), productID)
	if err != nil {
		WriteServiceError(w, err, h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, inquiry, h.logger)
}

// Filters handles GET /api/filters
func (h *ProductHandler) Filters(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.service.Filters(), h.logger)
}

func (h *ProductHandler) productID(w http.ResponseWriter, r *http.Request) (string, bool) {
	productID := chi.URLParam(r, "productId")
	if err := validate.Var(productID, "required,max=64,printascii"); err != nil {
		h.logger.Warn().Str("product_id", productID).Msg("invalid product ID format")
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.logger)
		return "", false
	}
	return productID, true
}

func listResponse(products []models.ProductView, c query.Criteria) ProductListResponse {
	return ProductListResponse{
		Products: products,
		Count:    len(products),
		Filtered: c.Active(),
		Criteria: c,
	}
}
