package service_test

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/aclo-store/checkout-service/internal/entities"
	"github.com/aclo-store/checkout-service/internal/service"
	mocks "github.com/aclo-store/checkout-service/internal/service/mocks"
	txMocks "github.com/aclo-store/checkout-service/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testServerKey = "server-key"

type checkoutDeps struct {
	tx        *txMocks.MockManager
	checkouts *mocks.MockCheckoutRepo
	orders    *mocks.MockOrderWriter
	catalog   *mocks.MockCatalogRepo
	carts     *mocks.MockCartRepo
	idgen     *mocks.MockIDGenerator
	events    *mocks.MockEventPublisher
}

func newCheckoutDeps(t *testing.T) *checkoutDeps {
	d := &checkoutDeps{
		tx:        txMocks.NewMockManager(t),
		checkouts: mocks.NewMockCheckoutRepo(t),
		orders:    mocks.NewMockOrderWriter(t),
		catalog:   mocks.NewMockCatalogRepo(t),
		carts:     mocks.NewMockCartRepo(t),
		idgen:     mocks.NewMockIDGenerator(t),
		events:    mocks.NewMockEventPublisher(t),
	}
	d.tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).Maybe()
	return d
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validItem() entities.LineItem {
	return entities.LineItem{
		ProductID: "prod-1",
		VariantID: "var-1",
		Name:      "Stellar Tee",
		Price:     150000,
		Options:   map[string]string{"size": "M"},
		Quantity:  2,
		Weight:    200,
	}
}

func checkoutInput(items ...entities.LineItem) entities.Checkout {
	return entities.Checkout{
		UserID: "user-1",
		Items:  items,
		Shipping: entities.ShippingDetails{
			Name:       "Budi",
			Address:    "Jl. Kenanga 1",
			City:       "Jakarta",
			PostalCode: "10110",
			Phone:      "081234567890",
		},
		PaymentMethod: "bank_transfer",
		TotalPrice:    320000,
		ShippingCost:  20000,
	}
}

func TestCheckoutService_CreateCheckout(t *testing.T) {
	type MockBehavior func(d *checkoutDeps)

	dbError := errors.New("db error")

	brokenItem := validItem()
	brokenItem.VariantID = ""
	zeroQuantity := validItem()
	zeroQuantity.Quantity = 0

	testCases := []struct {
		name         string
		checkout     entities.Checkout
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:     "OK",
			checkout: checkoutInput(validItem()),
			mockBehavior: func(d *checkoutDeps) {
				d.catalog.EXPECT().
					GetProduct(mock.Anything, "prod-1").
					Return(entities.Product{ID: "prod-1", Name: "Stellar Tee"}, nil).Once()
				d.catalog.EXPECT().
					GetVariant(mock.Anything, "var-1", "prod-1").
					Return(entities.ProductVariant{ID: "var-1", ProductID: "prod-1", SKU: "TEE-M", Price: 150000, Stock: 5}, nil).Once()
				d.checkouts.EXPECT().
					CreateCheckout(mock.Anything, mock.Anything).
					Return(nil).Once()
			},
		},
		{
			name:         "empty cart",
			checkout:     checkoutInput(),
			mockBehavior: func(d *checkoutDeps) {},
			wantErr:      entities.ErrEmptyCart,
		},
		{
			name:         "item missing variant",
			checkout:     checkoutInput(brokenItem),
			mockBehavior: func(d *checkoutDeps) {},
			wantErr:      entities.ErrInvalidItem,
		},
		{
			name:         "zero quantity",
			checkout:     checkoutInput(zeroQuantity),
			mockBehavior: func(d *checkoutDeps) {},
			wantErr:      entities.ErrInvalidItem,
		},
		{
			name:     "product not found",
			checkout: checkoutInput(validItem()),
			mockBehavior: func(d *checkoutDeps) {
				d.catalog.EXPECT().
					GetProduct(mock.Anything, "prod-1").
					Return(entities.Product{}, entities.ErrProductNotFound).Once()
			},
			wantErr: entities.ErrProductNotFound,
		},
		{
			name:     "variant not bound to product",
			checkout: checkoutInput(validItem()),
			mockBehavior: func(d *checkoutDeps) {
				d.catalog.EXPECT().
					GetProduct(mock.Anything, "prod-1").
					Return(entities.Product{ID: "prod-1"}, nil).Once()
				d.catalog.EXPECT().
					GetVariant(mock.Anything, "var-1", "prod-1").
					Return(entities.ProductVariant{}, entities.ErrVariantNotFound).Once()
			},
			wantErr: entities.ErrVariantNotFound,
		},
		{
			name:     "repo failure",
			checkout: checkoutInput(validItem()),
			mockBehavior: func(d *checkoutDeps) {
				d.catalog.EXPECT().
					GetProduct(mock.Anything, "prod-1").
					Return(entities.Product{ID: "prod-1"}, nil).Once()
				d.catalog.EXPECT().
					GetVariant(mock.Anything, "var-1", "prod-1").
					Return(entities.ProductVariant{ID: "var-1", ProductID: "prod-1", SKU: "TEE-M", Stock: 5}, nil).Once()
				d.checkouts.EXPECT().
					CreateCheckout(mock.Anything, mock.Anything).
					Return(dbError).Once()
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newCheckoutDeps(t)
			tc.mockBehavior(d)

			svc := service.NewCheckoutService(testLogger(), d.tx, d.checkouts, d.orders, d.catalog, d.carts, d.idgen, d.events, testServerKey)

			got, err := svc.CreateCheckout(context.Background(), tc.checkout)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, entities.ProofNone, got.Proof.Status)
			assert.False(t, got.IsPaid)
			assert.False(t, got.IsFinalized)
			assert.Equal(t, tc.checkout.Items, got.Items)
		})
	}
}

func TestCheckoutService_CreateCheckout_InsufficientStock(t *testing.T) {
	d := newCheckoutDeps(t)
	d.catalog.EXPECT().
		GetProduct(mock.Anything, "prod-1").
		Return(entities.Product{ID: "prod-1"}, nil).Once()
	d.catalog.EXPECT().
		GetVariant(mock.Anything, "var-1", "prod-1").
		Return(entities.ProductVariant{ID: "var-1", ProductID: "prod-1", SKU: "TEE-M", Stock: 2}, nil).Once()

	svc := service.NewCheckoutService(testLogger(), d.tx, d.checkouts, d.orders, d.catalog, d.carts, d.idgen, d.events, testServerKey)

	item := validItem()
	item.Quantity = 3
	_, err := svc.CreateCheckout(context.Background(), checkoutInput(item))

	var stockErr *entities.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "TEE-M", stockErr.SKU)
	assert.Equal(t, 3, stockErr.Requested)
	assert.Equal(t, 2, stockErr.Available)
}

func TestCheckoutService_SubmitPaymentProof(t *testing.T) {
	type MockBehavior func(d *checkoutDeps)

	dbError := errors.New("db error")
	const generatedID = "250830A1B2C3D4001"

	stored := entities.Checkout{
		ID:            "chk-1",
		UserID:        "user-1",
		Items:         []entities.LineItem{validItem()},
		PaymentMethod: "bank_transfer",
		TotalPrice:    320000,
		ShippingCost:  20000,
		Note:          "leave at the door",
		Proof:         entities.PaymentProof{Status: entities.ProofNone},
		CreatedAt:     time.Now(),
	}
	finalized := stored
	finalized.IsFinalized = true

	testCases := []struct {
		name         string
		proofImage   string
		note         string
		requester    string
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:       "OK",
			proofImage: "uploads/receipt.jpg",
			requester:  "user-1",
			mockBehavior: func(d *checkoutDeps) {
				d.checkouts.EXPECT().
					GetCheckoutByID(mock.Anything, "chk-1").
					Return(stored, nil).Once()
				d.checkouts.EXPECT().
					StampPaymentProof(mock.Anything, "chk-1", mock.Anything, "").
					Return(nil).Once()
				d.idgen.EXPECT().
					GenerateOrderID(mock.Anything).
					Return(generatedID, nil).Once()
				d.orders.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(nil).Once()
				d.checkouts.EXPECT().
					FinalizeCheckout(mock.Anything, "chk-1", mock.Anything).
					Return(nil).Once()
				d.carts.EXPECT().
					DeleteCartByUser(mock.Anything, "user-1").
					Return(nil).Once()
				d.events.EXPECT().
					OrderCreated(mock.Anything, mock.Anything).
					Return(nil).Once()
			},
		},
		{
			name:       "checkout not found",
			proofImage: "uploads/receipt.jpg",
			requester:  "user-1",
			mockBehavior: func(d *checkoutDeps) {
				d.checkouts.EXPECT().
					GetCheckoutByID(mock.Anything, "chk-1").
					Return(entities.Checkout{}, entities.ErrCheckoutNotFound).Once()
			},
			wantErr: entities.ErrCheckoutNotFound,
		},
		{
			name:       "not the owner",
			proofImage: "uploads/receipt.jpg",
			requester:  "someone-else",
			mockBehavior: func(d *checkoutDeps) {
				d.checkouts.EXPECT().
					GetCheckoutByID(mock.Anything, "chk-1").
					Return(stored, nil).Once()
			},
			wantErr: entities.ErrForbidden,
		},
		{
			name:       "missing proof image",
			proofImage: "",
			requester:  "user-1",
			mockBehavior: func(d *checkoutDeps) {
				d.checkouts.EXPECT().
					GetCheckoutByID(mock.Anything, "chk-1").
					Return(stored, nil).Once()
			},
			wantErr: entities.ErrMissingProof,
		},
		{
			name:       "already finalized",
			proofImage: "uploads/receipt.jpg",
			requester:  "user-1",
			mockBehavior: func(d *checkoutDeps) {
				d.checkouts.EXPECT().
					GetCheckoutByID(mock.Anything, "chk-1").
					Return(finalized, nil).Once()
			},
			wantErr: entities.ErrCheckoutFinalized,
		},
		{
			name:       "id generation fails",
			proofImage: "uploads/receipt.jpg",
			requester:  "user-1",
			mockBehavior: func(d *checkoutDeps) {
				d.checkouts.EXPECT().
					GetCheckoutByID(mock.Anything, "chk-1").
					Return(stored, nil).Once()
				d.checkouts.EXPECT().
					StampPaymentProof(mock.Anything, "chk-1", mock.Anything, "").
					Return(nil).Once()
				d.idgen.EXPECT().
					GenerateOrderID(mock.Anything).
					Return("", dbError).Once()
			},
			wantErr: dbError,
		},
		{
			// create order fails: finalize and cart clearing must not run,
			// so the rolled back checkout can be resubmitted
			name:       "create order fails",
			proofImage: "uploads/receipt.jpg",
			requester:  "user-1",
			mockBehavior: func(d *checkoutDeps) {
				d.checkouts.EXPECT().
					GetCheckoutByID(mock.Anything, "chk-1").
					Return(stored, nil).Once()
				d.checkouts.EXPECT().
					StampPaymentProof(mock.Anything, "chk-1", mock.Anything, "").
					Return(nil).Once()
				d.idgen.EXPECT().
					GenerateOrderID(mock.Anything).
					Return(generatedID, nil).Once()
				d.orders.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(dbError).Once()
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newCheckoutDeps(t)
			tc.mockBehavior(d)

			svc := service.NewCheckoutService(testLogger(), d.tx, d.checkouts, d.orders, d.catalog, d.carts, d.idgen, d.events, testServerKey)

			order, err := svc.SubmitPaymentProof(context.Background(), "chk-1", tc.proofImage, tc.note, tc.requester)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, generatedID, order.OrderID)
			assert.Equal(t, "chk-1", order.CheckoutID)
			assert.Equal(t, "user-1", order.UserID)
			assert.Equal(t, entities.StatusPending, order.Status)
			assert.Equal(t, entities.ProofPending, order.Proof.Status)
			assert.Equal(t, "uploads/receipt.jpg", order.Proof.Image)
			assert.Equal(t, stored.Items, order.Items)
			// empty note falls back to the checkout's note
			assert.Equal(t, "leave at the door", order.Note)
		})
	}
}

func gatewaySignature(checkoutID, statusCode, grossAmount string) string {
	sum := sha512.Sum512([]byte(checkoutID + statusCode + grossAmount + testServerKey))
	return hex.EncodeToString(sum[:])
}

func TestCheckoutService_HandlePaymentNotification(t *testing.T) {
	type MockBehavior func(d *checkoutDeps)

	dbError := errors.New("db error")

	notification := func(txStatus, signature string) entities.PaymentNotification {
		return entities.PaymentNotification{
			CheckoutID:        "chk-1",
			StatusCode:        "200",
			GrossAmount:       "340000.00",
			TransactionStatus: txStatus,
			SignatureKey:      signature,
			Raw:               []byte(`{"transaction_status":"` + txStatus + `"}`),
		}
	}

	testCases := []struct {
		name         string
		notification entities.PaymentNotification
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:         "settlement marks checkout paid",
			notification: notification("settlement", gatewaySignature("chk-1", "200", "340000.00")),
			mockBehavior: func(d *checkoutDeps) {
				d.checkouts.EXPECT().
					UpdatePaymentStatus(mock.Anything, "chk-1", mock.Anything).
					Run(func(ctx context.Context, id string, upd entities.PaymentUpdate) {
						assert.True(t, upd.IsPaid)
						assert.NotNil(t, upd.PaidAt)
						assert.Equal(t, "settlement", upd.PaymentStatus)
					}).
					Return(nil).Once()
			},
		},
		{
			name:         "pending leaves checkout unpaid",
			notification: notification("pending", gatewaySignature("chk-1", "200", "340000.00")),
			mockBehavior: func(d *checkoutDeps) {
				d.checkouts.EXPECT().
					UpdatePaymentStatus(mock.Anything, "chk-1", mock.Anything).
					Run(func(ctx context.Context, id string, upd entities.PaymentUpdate) {
						assert.False(t, upd.IsPaid)
						assert.Nil(t, upd.PaidAt)
						assert.Equal(t, "pending", upd.PaymentStatus)
					}).
					Return(nil).Once()
			},
		},
		{
			name:         "signature mismatch",
			notification: notification("settlement", "bogus"),
			mockBehavior: func(d *checkoutDeps) {},
			wantErr:      entities.ErrBadSignature,
		},
		{
			name:         "repo failure",
			notification: notification("settlement", gatewaySignature("chk-1", "200", "340000.00")),
			mockBehavior: func(d *checkoutDeps) {
				d.checkouts.EXPECT().
					UpdatePaymentStatus(mock.Anything, "chk-1", mock.Anything).
					Return(dbError).Once()
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newCheckoutDeps(t)
			tc.mockBehavior(d)

			svc := service.NewCheckoutService(testLogger(), d.tx, d.checkouts, d.orders, d.catalog, d.carts, d.idgen, d.events, testServerKey)

			err := svc.HandlePaymentNotification(context.Background(), tc.notification)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
