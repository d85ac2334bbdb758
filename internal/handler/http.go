package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/aclo-store/checkout-service/internal/entities"
	"github.com/aclo-store/checkout-service/internal/middleware"
	"github.com/aclo-store/checkout-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type CheckoutService interface {
	CreateCheckout(ctx context.Context, checkout entities.Checkout) (entities.Checkout, error)
	SubmitPaymentProof(ctx context.Context, checkoutID, proofImage, note, requesterID string) (entities.Order, error)
	HandlePaymentNotification(ctx context.Context, n entities.PaymentNotification) error
}

type OrderService interface {
	GetOrder(ctx context.Context, orderID string) (entities.Order, error)
	ListUserOrders(ctx context.Context, userID string) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, orderID string, target entities.OrderStatus) (entities.Order, error)
	RequestCancellation(ctx context.Context, orderID, userID, reason string) (entities.Order, error)
	ResolveCancellation(ctx context.Context, orderID string, approve bool) (entities.Order, error)
	SetTracking(ctx context.Context, orderID, link string) (entities.Order, error)
	DeleteOrder(ctx context.Context, orderID string) error
}

type Middleware = func(next http.Handler) http.Handler

type HTTPHandler struct {
	logger    *slog.Logger
	validate  *validator.Validate
	checkouts CheckoutService
	orders    OrderService
	auth      Middleware
	admin     Middleware
}

func NewHTTPHandler(logger *slog.Logger, checkouts CheckoutService, orders OrderService, auth, admin Middleware) *HTTPHandler {
	return &HTTPHandler{
		logger:    logger.With(slog.String("handler", "http")),
		validate:  validator.New(),
		checkouts: checkouts,
		orders:    orders,
		auth:      auth,
		admin:     admin,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Post("/payment/notification", h.PaymentNotification)

	r.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/checkout", h.CreateCheckout)
		r.Post("/checkout/{checkout_id}/payment-proof", h.SubmitPaymentProof)

		r.Get("/orders", h.ListMyOrders)
		r.Get("/orders/{order_id}", h.GetOrder)
		r.Post("/orders/{order_id}/cancel", h.RequestCancellation)
	})

	r.Group(func(r chi.Router) {
		r.Use(h.auth, h.admin)

		r.Patch("/admin/orders/{order_id}/status", h.UpdateStatus)
		r.Post("/admin/orders/{order_id}/cancellation", h.ResolveCancellation)
		r.Put("/admin/orders/{order_id}/tracking", h.SetTracking)
		r.Delete("/admin/orders/{order_id}", h.DeleteOrder)
	})
}

// CreateCheckout starts a checkout.
// @Summary      Create a checkout
// @Description  Validates the buyer's items against the catalog and creates a checkout
// @Tags         checkout
// @Param        request  body  CreateCheckoutRequest  true  "Checkout payload"
// @Success      201  {object}  Checkout
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      404  {object}  utils.ErrorResponse "Product or variant not found"
// @Failure      409  {object}  utils.ErrorResponse "Insufficient stock"
// @Router       /checkout [post]
func (h *HTTPHandler) CreateCheckout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateCheckoutRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	checkout, err := h.checkouts.CreateCheckout(ctx, CheckoutRequestToEntity(req, middleware.UserID(ctx)))
	if err != nil {
		h.writeDomainError(ctx, w, err)
		return
	}

	checkoutsCreated.Inc()
	utils.WriteJSON(w, CheckoutEntityToJSON(checkout), http.StatusCreated)
}

// SubmitPaymentProof attaches a transfer receipt and converts the checkout to an order.
// @Summary      Submit payment proof
// @Description  Uploads the transfer receipt, creates the order and clears the cart atomically
// @Tags         checkout
// @Param        checkout_id  path  string              true  "Checkout identifier"
// @Param        request      body  SubmitProofRequest  true  "Proof payload"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ErrorResponse "Missing proof image"
// @Failure      403  {object}  utils.ErrorResponse "Not the checkout owner"
// @Failure      404  {object}  utils.ErrorResponse "Checkout not found"
// @Failure      409  {object}  utils.ErrorResponse "Checkout already finalized"
// @Router       /checkout/{checkout_id}/payment-proof [post]
func (h *HTTPHandler) SubmitPaymentProof(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	checkoutID := chi.URLParam(r, "checkout_id")

	var req SubmitProofRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	order, err := h.checkouts.SubmitPaymentProof(ctx, checkoutID, req.ProofImage, req.Note, middleware.UserID(ctx))
	if err != nil {
		h.writeDomainError(ctx, w, err)
		return
	}

	ordersCreated.Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// GetOrder returns a single order.
// @Summary      Get order
// @Tags         orders
// @Param        order_id  path  string  true  "Human-facing order identifier"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /orders/{order_id} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	order, err := h.orders.GetOrder(ctx, orderID)
	if err != nil {
		h.writeDomainError(ctx, w, err)
		return
	}

	// Buyers only see their own orders; admins see everything.
	if order.UserID != middleware.UserID(ctx) && middleware.Role(ctx) != middleware.RoleAdmin {
		utils.WriteError(w, "forbidden", http.StatusForbidden)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ListMyOrders returns the authenticated buyer's orders.
// @Summary      List own orders
// @Tags         orders
// @Success      200  {array}  Order
// @Router       /orders [get]
func (h *HTTPHandler) ListMyOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orders, err := h.orders.ListUserOrders(ctx, middleware.UserID(ctx))
	if err != nil {
		h.writeDomainError(ctx, w, err)
		return
	}

	result := make([]Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderEntityToJSON(o))
	}
	utils.WriteJSON(w, result, http.StatusOK)
}

// RequestCancellation records a buyer's cancellation request.
// @Summary      Request order cancellation
// @Tags         orders
// @Param        order_id  path  string              true  "Order identifier"
// @Param        request   body  CancelOrderRequest  true  "Cancellation reason"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      422  {object}  utils.ErrorResponse "Order is no longer cancellable"
// @Router       /orders/{order_id}/cancel [post]
func (h *HTTPHandler) RequestCancellation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	var req CancelOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.RequestCancellation(ctx, orderID, middleware.UserID(ctx), req.Reason)
	if err != nil {
		h.writeDomainError(ctx, w, err)
		return
	}

	cancellationRequests.Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *HTTPHandler) writeDomainError(ctx context.Context, w http.ResponseWriter, err error) {
	var stockErr *entities.InsufficientStockError
	var transitionErr *entities.StatusTransitionError

	switch {
	case errors.Is(err, entities.ErrCheckoutNotFound),
		errors.Is(err, entities.ErrOrderNotFound),
		errors.Is(err, entities.ErrProductNotFound),
		errors.Is(err, entities.ErrVariantNotFound):
		utils.WriteError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, entities.ErrForbidden):
		utils.WriteError(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, entities.ErrEmptyCart),
		errors.Is(err, entities.ErrInvalidItem),
		errors.Is(err, entities.ErrMissingProof):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrCheckoutFinalized),
		errors.Is(err, entities.ErrNoCancelRequest):
		utils.WriteError(w, err.Error(), http.StatusConflict)
	case errors.As(err, &stockErr):
		utils.WriteError(w, stockErr.Error(), http.StatusConflict)
	case errors.As(err, &transitionErr):
		utils.WriteError(w, transitionErr.Error(), http.StatusUnprocessableEntity)
	default:
		h.logger.ErrorContext(ctx, "request failed", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

// PaymentNotification receives gateway callbacks.
// @Summary      Payment gateway webhook
// @Description  Verifies the notification signature and updates the checkout's payment status
// @Tags         payment
// @Param        request  body  PaymentNotification  true  "Gateway notification"
// @Success      200  {object}  utils.ErrorResponse
// @Failure      403  {object}  utils.ErrorResponse "Signature mismatch"
// @Router       /payment/notification [post]
func (h *HTTPHandler) PaymentNotification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	var req PaymentNotification
	if err := json.Unmarshal(raw, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	err = h.checkouts.HandlePaymentNotification(ctx, entities.PaymentNotification{
		CheckoutID:        req.OrderID,
		StatusCode:        req.StatusCode,
		GrossAmount:       req.GrossAmount,
		TransactionStatus: req.TransactionStatus,
		SignatureKey:      req.SignatureKey,
		Raw:               raw,
	})
	if errors.Is(err, entities.ErrBadSignature) {
		webhookRejected.Inc()
		utils.WriteError(w, "invalid signature", http.StatusForbidden)
		return
	}
	if err != nil {
		h.writeDomainError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, utils.ErrorResponse{Message: "ok"}, http.StatusOK)
}
