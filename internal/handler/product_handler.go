package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"inventory-ledger/internal/model"
	"inventory-ledger/internal/service"

	"github.com/rs/zerolog"
)

// maxBodyBytes caps request payloads.
const maxBodyBytes = 1 << 20

// ProductHandler handles product and inventory HTTP requests.
type ProductHandler struct {
	service service.InventoryService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.InventoryService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// Create handles POST /api/products requests.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.AddProductRequest
	if !h.decode(w, r, &req) {
		return
	}

	product, err := h.service.AddProduct(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

// List handles GET /api/products requests.
// With a category query parameter it returns only that category, and fails
// with 404 when the category has no products.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var (
		products []model.Product
		err      error
	)
	if query.Has("category") {
		products, err = h.service.GetByCategory(r.Context(), query.Get("category"))
	} else {
		products, err = h.service.GetAll(r.Context())
	}
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	product, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// UpdateStock handles PATCH /api/products/{id}/stock requests.
func (h *ProductHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	var req model.UpdateStockRequest
	if !h.decode(w, r, &req) {
		return
	}

	if req.Delta == nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeMissingField, "delta is required", h.logger)
		return
	}

	product, err := h.service.UpdateStock(r.Context(), id, *req.Delta)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// TotalValue handles GET /api/inventory/value requests.
func (h *ProductHandler) TotalValue(w http.ResponseWriter, r *http.Request) {
	total, err := h.service.TotalValue(r.Context())
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.TotalValueResponse{TotalValue: total})
}

// productID extracts the {id} path value.
func (h *ProductHandler) productID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.PathValue("id")
	if raw == "" {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidID, "product ID is required", h.logger)
		return 0, false
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidID, "invalid product id", h.logger)
		return 0, false
	}

	return id, true
}

// decode reads a JSON body into dst, writing a 400 on failure.
func (h *ProductHandler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.logger.Debug().Err(err).Msg("failed to decode request body")
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return false
	}
	return true
}
