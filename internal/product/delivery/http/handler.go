package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/tair/ims-admin/internal/product/usecase/command"
	"github.com/tair/ims-admin/internal/product/usecase/query"
	"github.com/tair/ims-admin/pkg/logger"
)

// ProductHandler handles HTTP requests for products
type ProductHandler struct {
	createHandler *command.CreateProductHandler
	updateHandler *command.UpdateProductHandler
	deleteHandler *command.DeleteProductHandler
	listHandler   *query.ListProductsHandler
}

// NewProductHandler creates a new product handler
func NewProductHandler(
	createHandler *command.CreateProductHandler,
	updateHandler *command.UpdateProductHandler,
	deleteHandler *command.DeleteProductHandler,
	listHandler *query.ListProductsHandler,
) *ProductHandler {
	return &ProductHandler{
		createHandler: createHandler,
		updateHandler: updateHandler,
		deleteHandler: deleteHandler,
		listHandler:   listHandler,
	}
}

// ProductRequest is the body of POST and PUT. Absent keys decode to nil.
type ProductRequest struct {
	Name              *string          `json:"name"`
	SKU               *string          `json:"sku"`
	Category          *string          `json:"category"`
	Quantity          *int             `json:"quantity"`
	Supplier          *string          `json:"supplier"`
	PurchasePrice     *decimal.Decimal `json:"purchase_price"`
	SalePrice         *decimal.Decimal `json:"sale_price"`
	Status            *string          `json:"status"`
	LowStockThreshold *int             `json:"low_stock_threshold"`
}

// ListProducts handles GET /api/products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	products, err := h.listHandler.Handle(r.Context(), query.ListProductsQuery{
		Search:   params.Get("search"),
		Category: params.Get("category"),
		Supplier: params.Get("supplier"),
		Status:   params.Get("status"),
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list products")
		respondError(w, http.StatusInternalServerError, "Failed to fetch products")
		return
	}

	respondJSON(w, http.StatusOK, products)
}

// CreateProduct handles POST /api/products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Failed to create product")
		return
	}

	product, err := h.createHandler.Handle(r.Context(), command.CreateProductCommand{
		Name:              deref(req.Name),
		SKU:               deref(req.SKU),
		Category:          deref(req.Category),
		Quantity:          req.Quantity,
		Supplier:          deref(req.Supplier),
		PurchasePrice:     req.PurchasePrice,
		SalePrice:         req.SalePrice,
		Status:            deref(req.Status),
		LowStockThreshold: req.LowStockThreshold,
	})
	if err != nil {
		logger.Warn(r.Context()).Err(err).Msg("Failed to create product")
		respondError(w, http.StatusBadRequest, "Failed to create product")
		return
	}

	respondJSON(w, http.StatusCreated, product)
}

// UpdateProduct handles PUT /api/products/{id}
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Failed to update product")
		return
	}

	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Failed to update product")
		return
	}

	product, err := h.updateHandler.Handle(r.Context(), command.UpdateProductCommand{
		ID:                id,
		Name:              req.Name,
		SKU:               req.SKU,
		Category:          req.Category,
		Quantity:          req.Quantity,
		Supplier:          req.Supplier,
		PurchasePrice:     req.PurchasePrice,
		SalePrice:         req.SalePrice,
		Status:            req.Status,
		LowStockThreshold: req.LowStockThreshold,
	})
	if err != nil {
		logger.Warn(r.Context()).Err(err).Uint("product_id", id).Msg("Failed to update product")
		respondError(w, http.StatusBadRequest, "Failed to update product")
		return
	}

	respondJSON(w, http.StatusOK, product)
}

// DeleteProduct handles DELETE /api/products/{id}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Failed to delete product")
		return
	}

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteProductCommand{ID: id}); err != nil {
		logger.Warn(r.Context()).Err(err).Uint("product_id", id).Msg("Failed to delete product")
		respondError(w, http.StatusBadRequest, "Failed to delete product")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RegisterRoutes registers all product routes on the /api subrouter
func (h *ProductHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/products", h.ListProducts).Methods("GET")
	router.HandleFunc("/products", h.CreateProduct).Methods("POST")
	router.HandleFunc("/products/{id}", h.UpdateProduct).Methods("PUT")
	router.HandleFunc("/products/{id}", h.DeleteProduct).Methods("DELETE")
}

func parseID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// respondError sends the static error body used by every endpoint
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
