package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/JoseAngelVirgenEslava/proyecto/internal/repository"
	"github.com/JoseAngelVirgenEslava/proyecto/internal/service"
	"github.com/go-chi/chi/v5"
)

// ProductHandler handles catalog-related HTTP requests
type ProductHandler struct {
	service         *service.CatalogService
	defaultPageSize int
	logger          *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *service.CatalogService, defaultPageSize int, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service:         service,
		defaultPageSize: defaultPageSize,
		logger:          logger,
	}
}

// ListProducts handles GET /api/product
// Query params: page (default 1), limit (default configured page size),
// category ("all" or absent = no filter), sortBy (absent = identity order).
// Responds 200 with {items, total, currentPage, limit}.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, ok := intParam(r, "page", 1)
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid page parameter", h.logger)
		return
	}
	limit, ok := intParam(r, "limit", h.defaultPageSize)
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid limit parameter", h.logger)
		return
	}

	q, err := repository.NewCatalogQuery(page, limit, r.URL.Query().Get("category"), r.URL.Query().Get("sortBy"))
	if err != nil {
		h.logger.Warn("invalid catalog query", "error", err)
		WriteError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	result, err := h.service.Query(ctx, q)
	if err != nil {
		h.logger.Error("failed to query products", "error", err)
		WriteErrorDetails(w, http.StatusInternalServerError, "Failed to fetch products", err.Error(), h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, result, h.logger)
}

// ListCategories handles GET /api/categories
// Returns the distinct category tags present in the catalog.
func (h *ProductHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		h.logger.Error("failed to list categories", "error", err)
		WriteErrorDetails(w, http.StatusInternalServerError, "Failed to fetch categories", err.Error(), h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, map[string][]string{"categories": categories}, h.logger)
}

// GetProduct handles GET /api/product/{productId}
// - 200: successful operation
// - 400: malformed product key
// - 404: product not found
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := chi.URLParam(r, "productId")

	if productID == "" {
		WriteError(w, http.StatusBadRequest, "Product ID is required", h.logger)
		return
	}

	if !repository.ValidProductID(productID) {
		h.logger.Warn("invalid product ID format", "productId", productID)
		WriteError(w, http.StatusBadRequest, "Invalid product ID supplied", h.logger)
		return
	}

	product, err := h.service.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			h.logger.Info("product not found", "productId", productID)
			WriteError(w, http.StatusNotFound, "Product not found", h.logger)
			return
		}

		h.logger.Error("failed to get product", "productId", productID, "error", err)
		WriteErrorDetails(w, http.StatusInternalServerError, "Failed to fetch product", err.Error(), h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, product, h.logger)
}

// SearchProduct handles GET /api/search?name=
// Returns {product: Product|null}; the match is case-insensitive.
func (h *ProductHandler) SearchProduct(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		WriteError(w, http.StatusBadRequest, "A name must be provided to search", h.logger)
		return
	}

	product, err := h.service.SearchByName(r.Context(), name)
	if err != nil {
		h.logger.Error("failed to search product", "name", name, "error", err)
		WriteErrorDetails(w, http.StatusInternalServerError, "Failed to search product", err.Error(), h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{"product": product}, h.logger)
}

// intParam reads an integer query parameter, falling back to def when absent.
// The second return is false when the value is present but not an integer.
func intParam(r *http.Request, key string, def int) (int, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return value, true
}
