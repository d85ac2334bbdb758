package handler

import (
	"net/http"

	"github.com/aclo-store/checkout-service/internal/entities"
	"github.com/aclo-store/checkout-service/pkg/utils"

	"github.com/go-chi/chi/v5"
)

// UpdateStatus moves an order along its lifecycle.
// @Summary      Update order status
// @Description  Applies an admin-driven status transition, validated against the transition table
// @Tags         admin
// @Param        order_id  path  string               true  "Order identifier"
// @Param        request   body  UpdateStatusRequest  true  "Target status"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ErrorResponse "Unknown status"
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      422  {object}  utils.ErrorResponse "Illegal transition"
// @Router       /admin/orders/{order_id}/status [patch]
func (h *HTTPHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	var req UpdateStatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	target := entities.OrderStatus(req.Status)
	if !target.Valid() {
		utils.WriteError(w, "unknown status: "+req.Status, http.StatusBadRequest)
		return
	}

	order, err := h.orders.UpdateStatus(ctx, orderID, target)
	if err != nil {
		h.writeDomainError(ctx, w, err)
		return
	}

	statusTransitions.WithLabelValues(string(target)).Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ResolveCancellation settles a buyer's cancellation request.
// @Summary      Resolve cancellation request
// @Description  Approving cancels the order; rejecting restores the status it held before the request
// @Tags         admin
// @Param        order_id  path  string                      true  "Order identifier"
// @Param        request   body  ResolveCancellationRequest  true  "approve or reject"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "No pending cancellation"
// @Router       /admin/orders/{order_id}/cancellation [post]
func (h *HTTPHandler) ResolveCancellation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	var req ResolveCancellationRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.ResolveCancellation(ctx, orderID, req.Action == "approve")
	if err != nil {
		h.writeDomainError(ctx, w, err)
		return
	}

	statusTransitions.WithLabelValues(string(order.Status)).Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// SetTracking sets the shipment tracking link.
// @Summary      Set tracking link
// @Tags         admin
// @Param        order_id  path  string           true  "Order identifier"
// @Param        request   body  TrackingRequest  true  "Tracking link"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /admin/orders/{order_id}/tracking [put]
func (h *HTTPHandler) SetTracking(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	var req TrackingRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.SetTracking(ctx, orderID, req.TrackingLink)
	if err != nil {
		h.writeDomainError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// DeleteOrder removes an order permanently.
// @Summary      Delete order
// @Tags         admin
// @Param        order_id  path  string  true  "Order identifier"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /admin/orders/{order_id} [delete]
func (h *HTTPHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	if err := h.orders.DeleteOrder(ctx, orderID); err != nil {
		h.writeDomainError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
