package handler_test

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aclo-store/checkout-service/internal/entities"
	"github.com/aclo-store/checkout-service/internal/handler"
	mocks "github.com/aclo-store/checkout-service/internal/handler/mocks"
	"github.com/aclo-store/checkout-service/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeAuth pins the authenticated user without real tokens.
func fakeAuth(userID, role string) handler.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(middleware.WithUser(r.Context(), userID, role)))
		})
	}
}

func newTestRouter(t *testing.T, userID, role string) (*mocks.MockCheckoutService, *mocks.MockOrderService, chi.Router) {
	checkouts := mocks.NewMockCheckoutService(t)
	orders := mocks.NewMockOrderService(t)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, checkouts, orders, fakeAuth(userID, role), middleware.AdminOnly)

	r := chi.NewRouter()
	h.Init(r)
	return checkouts, orders, r
}

func doJSON(r chi.Router, method, path, body string) *http.Response {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr.Result()
}

const validCheckoutBody = `{
	"items": [{"product_id": "prod-1", "product_variant_id": "var-1", "price": 150000, "options": {"size": "M"}, "quantity": 2}],
	"shipping_details": {"name": "Budi", "address": "Jl. Kenanga 1", "city": "Jakarta", "postal_code": "10110", "phone": "081234567890"},
	"payment_method": "bank_transfer",
	"total_price": 320000,
	"shipping_cost": 20000
}`

func TestHTTPHandler_CreateCheckout(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockCheckoutService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: validCheckoutBody,
			mockBehavior: func(svc *mocks.MockCheckoutService) {
				svc.EXPECT().
					CreateCheckout(mock.Anything, mock.Anything).
					Run(func(ctx context.Context, checkout entities.Checkout) {
						assert.Equal(t, "user-1", checkout.UserID)
						require.Len(t, checkout.Items, 1)
						assert.Equal(t, "var-1", checkout.Items[0].VariantID)
					}).
					Return(entities.Checkout{ID: "chk-1", UserID: "user-1"}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"id":"chk-1"`,
		},
		{
			name:         "missing payment method",
			body:         `{"items": [], "shipping_details": {"name": "a", "address": "b", "city": "c", "postal_code": "d", "phone": "e"}}`,
			mockBehavior: func(svc *mocks.MockCheckoutService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"PaymentMethod":"required"`,
		},
		{
			name: "empty cart",
			body: strings.Replace(validCheckoutBody, `"items": [{"product_id": "prod-1", "product_variant_id": "var-1", "price": 150000, "options": {"size": "M"}, "quantity": 2}]`, `"items": []`, 1),
			mockBehavior: func(svc *mocks.MockCheckoutService) {
				svc.EXPECT().
					CreateCheckout(mock.Anything, mock.Anything).
					Return(entities.Checkout{}, entities.ErrEmptyCart).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"cart is empty"`,
		},
		{
			name: "insufficient stock",
			body: validCheckoutBody,
			mockBehavior: func(svc *mocks.MockCheckoutService) {
				svc.EXPECT().
					CreateCheckout(mock.Anything, mock.Anything).
					Return(entities.Checkout{}, &entities.InsufficientStockError{SKU: "TEE-M", Requested: 2, Available: 1}).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `insufficient stock for TEE-M`,
		},
		{
			name:         "malformed body",
			body:         `{"items": `,
			mockBehavior: func(svc *mocks.MockCheckoutService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request body"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			checkouts, _, r := newTestRouter(t, "user-1", "")
			tc.mockBehavior(checkouts)

			res := doJSON(r, http.MethodPost, "/checkout", tc.body)
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}

func TestHTTPHandler_SubmitPaymentProof(t *testing.T) {
	validOrder := entities.Order{OrderID: "250830A1B2C3D4001", UserID: "user-1", Status: entities.StatusPending}

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockCheckoutService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"proof_image": "uploads/receipt.jpg"}`,
			mockBehavior: func(svc *mocks.MockCheckoutService) {
				svc.EXPECT().
					SubmitPaymentProof(mock.Anything, "chk-1", "uploads/receipt.jpg", "", "user-1").
					Return(validOrder, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"order_id":"250830A1B2C3D4001"`,
		},
		{
			name: "missing proof image",
			body: `{}`,
			mockBehavior: func(svc *mocks.MockCheckoutService) {
				svc.EXPECT().
					SubmitPaymentProof(mock.Anything, "chk-1", "", "", "user-1").
					Return(entities.Order{}, entities.ErrMissingProof).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"payment proof image is required"`,
		},
		{
			name: "not the owner",
			body: `{"proof_image": "uploads/receipt.jpg"}`,
			mockBehavior: func(svc *mocks.MockCheckoutService) {
				svc.EXPECT().
					SubmitPaymentProof(mock.Anything, "chk-1", "uploads/receipt.jpg", "", "user-1").
					Return(entities.Order{}, entities.ErrForbidden).Once()
			},
			wantStatus: http.StatusForbidden,
			wantBody:   `"forbidden"`,
		},
		{
			name: "already finalized",
			body: `{"proof_image": "uploads/receipt.jpg"}`,
			mockBehavior: func(svc *mocks.MockCheckoutService) {
				svc.EXPECT().
					SubmitPaymentProof(mock.Anything, "chk-1", "uploads/receipt.jpg", "", "user-1").
					Return(entities.Order{}, entities.ErrCheckoutFinalized).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"checkout is already finalized"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			checkouts, _, r := newTestRouter(t, "user-1", "")
			tc.mockBehavior(checkouts)

			res := doJSON(r, http.MethodPost, "/checkout/chk-1/payment-proof", tc.body)
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}

func TestHTTPHandler_GetOrder(t *testing.T) {
	order := entities.Order{OrderID: "250830A1B2C3D4001", UserID: "user-1", Status: entities.StatusPending}

	testCases := []struct {
		name         string
		userID       string
		role         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "owner sees the order",
			userID: "user-1",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrder(mock.Anything, order.OrderID).
					Return(order, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"order_id":"250830A1B2C3D4001"`,
		},
		{
			name:   "stranger is rejected",
			userID: "user-2",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrder(mock.Anything, order.OrderID).
					Return(order, nil).Once()
			},
			wantStatus: http.StatusForbidden,
			wantBody:   `"forbidden"`,
		},
		{
			name:   "admin sees everything",
			userID: "admin-1",
			role:   middleware.RoleAdmin,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrder(mock.Anything, order.OrderID).
					Return(order, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"order_id":"250830A1B2C3D4001"`,
		},
		{
			name:   "not found",
			userID: "user-1",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrder(mock.Anything, order.OrderID).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:   "internal error",
			userID: "user-1",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrder(mock.Anything, order.OrderID).
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, orders, r := newTestRouter(t, tc.userID, tc.role)
			tc.mockBehavior(orders)

			res := doJSON(r, http.MethodGet, "/orders/"+order.OrderID, "")
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}

func TestHTTPHandler_ListMyOrders(t *testing.T) {
	_, orders, r := newTestRouter(t, "user-1", "")
	orders.EXPECT().
		ListUserOrders(mock.Anything, "user-1").
		Return([]entities.Order{
			{OrderID: "250830A1B2C3D4001", UserID: "user-1", Status: entities.StatusPending},
			{OrderID: "250830E5F6G7H8002", UserID: "user-1", Status: entities.StatusShipping},
		}, nil).Once()

	res := doJSON(r, http.MethodGet, "/orders", "")
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)

	var got []map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
	require.Len(t, got, 2)
	assert.Equal(t, "250830A1B2C3D4001", got[0]["order_id"])
}

func TestHTTPHandler_RequestCancellation(t *testing.T) {
	orderID := "250830A1B2C3D4001"

	t.Run("success", func(t *testing.T) {
		_, orders, r := newTestRouter(t, "user-1", "")
		orders.EXPECT().
			RequestCancellation(mock.Anything, orderID, "user-1", "wrong size").
			Return(entities.Order{OrderID: orderID, UserID: "user-1", Status: entities.StatusCancelling}, nil).Once()

		res := doJSON(r, http.MethodPost, "/orders/"+orderID+"/cancel", `{"reason": "wrong size"}`)
		defer res.Body.Close()

		body, err := io.ReadAll(res.Body)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, string(body), `"status":"cancelling"`)
	})

	t.Run("reason is required", func(t *testing.T) {
		_, _, r := newTestRouter(t, "user-1", "")

		res := doJSON(r, http.MethodPost, "/orders/"+orderID+"/cancel", `{}`)
		defer res.Body.Close()

		body, err := io.ReadAll(res.Body)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Contains(t, string(body), `"Reason":"required"`)
	})

	t.Run("no longer cancellable", func(t *testing.T) {
		_, orders, r := newTestRouter(t, "user-1", "")
		orders.EXPECT().
			RequestCancellation(mock.Anything, orderID, "user-1", "too late").
			Return(entities.Order{}, &entities.StatusTransitionError{From: entities.StatusDelivered, To: entities.StatusCancelling}).Once()

		res := doJSON(r, http.MethodPost, "/orders/"+orderID+"/cancel", `{"reason": "too late"}`)
		defer res.Body.Close()

		assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)
	})
}

func TestHTTPHandler_UpdateStatus(t *testing.T) {
	orderID := "250830A1B2C3D4001"

	testCases := []struct {
		name         string
		role         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			role: middleware.RoleAdmin,
			body: `{"status": "processing"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					UpdateStatus(mock.Anything, orderID, entities.StatusProcessing).
					Return(entities.Order{OrderID: orderID, Status: entities.StatusProcessing}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"processing"`,
		},
		{
			name:         "unknown status",
			role:         middleware.RoleAdmin,
			body:         `{"status": "teleported"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"unknown status: teleported"`,
		},
		{
			name: "illegal transition",
			role: middleware.RoleAdmin,
			body: `{"status": "delivered"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					UpdateStatus(mock.Anything, orderID, entities.StatusDelivered).
					Return(entities.Order{}, &entities.StatusTransitionError{From: entities.StatusPending, To: entities.StatusDelivered}).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `illegal status transition pending -> delivered`,
		},
		{
			name:         "buyer cannot reach admin routes",
			role:         "",
			body:         `{"status": "processing"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusForbidden,
			wantBody:     `"admin access required"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, orders, r := newTestRouter(t, "admin-1", tc.role)
			tc.mockBehavior(orders)

			res := doJSON(r, http.MethodPatch, "/admin/orders/"+orderID+"/status", tc.body)
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}

func TestHTTPHandler_ResolveCancellation(t *testing.T) {
	orderID := "250830A1B2C3D4001"

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "approve",
			body: `{"action": "approve"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					ResolveCancellation(mock.Anything, orderID, true).
					Return(entities.Order{OrderID: orderID, Status: entities.StatusCancelled}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"cancelled"`,
		},
		{
			name: "reject restores the order",
			body: `{"action": "reject"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					ResolveCancellation(mock.Anything, orderID, false).
					Return(entities.Order{OrderID: orderID, Status: entities.StatusShipping}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"shipping"`,
		},
		{
			name:         "unknown action",
			body:         `{"action": "maybe"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Action":"oneof"`,
		},
		{
			name: "no pending request",
			body: `{"action": "approve"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					ResolveCancellation(mock.Anything, orderID, true).
					Return(entities.Order{}, entities.ErrNoCancelRequest).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"order has no cancellation request"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, orders, r := newTestRouter(t, "admin-1", middleware.RoleAdmin)
			tc.mockBehavior(orders)

			res := doJSON(r, http.MethodPost, "/admin/orders/"+orderID+"/cancellation", tc.body)
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}

func TestHTTPHandler_DeleteOrder(t *testing.T) {
	orderID := "250830A1B2C3D4001"

	_, orders, r := newTestRouter(t, "admin-1", middleware.RoleAdmin)
	orders.EXPECT().DeleteOrder(mock.Anything, orderID).Return(nil).Once()

	res := doJSON(r, http.MethodDelete, "/admin/orders/"+orderID, "")
	defer res.Body.Close()

	assert.Equal(t, http.StatusNoContent, res.StatusCode)
}

func paymentSignature(orderID, statusCode, grossAmount, serverKey string) string {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(sum[:])
}

func TestHTTPHandler_PaymentNotification(t *testing.T) {
	signature := paymentSignature("chk-1", "200", "340000.00", "server-key")

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockCheckoutService)
		wantStatus   int
	}{
		{
			name: "accepted",
			body: `{"order_id": "chk-1", "status_code": "200", "gross_amount": "340000.00", "transaction_status": "settlement", "signature_key": "` + signature + `"}`,
			mockBehavior: func(svc *mocks.MockCheckoutService) {
				svc.EXPECT().
					HandlePaymentNotification(mock.Anything, mock.Anything).
					Run(func(ctx context.Context, n entities.PaymentNotification) {
						assert.Equal(t, "chk-1", n.CheckoutID)
						assert.Equal(t, "settlement", n.TransactionStatus)
						assert.NotEmpty(t, n.Raw)
					}).
					Return(nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "signature mismatch",
			body: `{"order_id": "chk-1", "status_code": "200", "gross_amount": "340000.00", "transaction_status": "settlement", "signature_key": "bogus"}`,
			mockBehavior: func(svc *mocks.MockCheckoutService) {
				svc.EXPECT().
					HandlePaymentNotification(mock.Anything, mock.Anything).
					Return(entities.ErrBadSignature).Once()
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:         "order id is required",
			body:         `{"transaction_status": "settlement"}`,
			mockBehavior: func(svc *mocks.MockCheckoutService) {},
			wantStatus:   http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			checkouts, _, r := newTestRouter(t, "", "")
			tc.mockBehavior(checkouts)

			res := doJSON(r, http.MethodPost, "/payment/notification", tc.body)
			defer res.Body.Close()

			assert.Equal(t, tc.wantStatus, res.StatusCode)
		})
	}
}
