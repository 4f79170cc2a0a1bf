package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/JoseAngelVirgenEslava/proyecto/internal/middleware"
	"github.com/JoseAngelVirgenEslava/proyecto/internal/models"
	"github.com/JoseAngelVirgenEslava/proyecto/internal/service"
)

// CheckoutHandler handles purchase submissions
type CheckoutHandler struct {
	checkout *service.CheckoutService
	logger   *slog.Logger
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkout *service.CheckoutService, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		logger:   logger,
	}
}

// Checkout handles POST /api/checkout
// Body: {"orderDetails": [{"productId": ..., "quantity": ...}, ...]}
// - 200: all lines applied, confirmation returned
// - 400: empty order, or {"errors": [...]} with one message per failing line
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode checkout request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	confirmation, lineErrors, err := h.checkout.Submit(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrEmptyOrder) {
			WriteError(w, http.StatusBadRequest, "There are no products in the order", h.logger)
			return
		}
		h.logger.Error("failed to process checkout", "error", err)
		WriteErrorDetails(w, http.StatusInternalServerError, "Failed to process the purchase", err.Error(), h.logger)
		return
	}

	if len(lineErrors) > 0 {
		messages := make([]string, 0, len(lineErrors))
		for _, le := range lineErrors {
			messages = append(messages, le.Message())
		}
		h.logger.Info("checkout rejected", "failed_lines", len(lineErrors))
		WriteJSON(w, http.StatusBadRequest, map[string][]string{"errors": messages}, h.logger)
		return
	}

	logAttrs := []any{"order_id", confirmation.OrderID, "items_count", len(req.OrderDetails)}
	if user, ok := middleware.CurrentUser(r.Context()); ok {
		logAttrs = append(logAttrs, "user_id", user.UserID)
	}
	h.logger.Info("checkout completed", logAttrs...)

	WriteJSON(w, http.StatusOK, confirmation, h.logger)
}
