package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/aclo-store/checkout-service/internal/entities"
	"github.com/aclo-store/checkout-service/pkg/trm"

	"github.com/google/uuid"
)

type CheckoutRepo interface {
	CreateCheckout(ctx context.Context, c entities.Checkout) error
	GetCheckoutByID(ctx context.Context, id string) (entities.Checkout, error)
	StampPaymentProof(ctx context.Context, id string, proof entities.PaymentProof, note string) error
	FinalizeCheckout(ctx context.Context, id string, at time.Time) error
	UpdatePaymentStatus(ctx context.Context, id string, upd entities.PaymentUpdate) error
}

type OrderWriter interface {
	CreateOrder(ctx context.Context, o entities.Order) error
}

type CatalogRepo interface {
	GetProduct(ctx context.Context, id string) (entities.Product, error)
	GetVariant(ctx context.Context, id, productID string) (entities.ProductVariant, error)
}

type CartRepo interface {
	DeleteCartByUser(ctx context.Context, userID string) error
}

type IDGenerator interface {
	GenerateOrderID(ctx context.Context) (string, error)
}

type EventPublisher interface {
	OrderCreated(ctx context.Context, order entities.Order) error
	OrderStatusChanged(ctx context.Context, orderID string, from, to entities.OrderStatus) error
}

type checkoutService struct {
	logger    *slog.Logger
	txManager trm.Manager
	checkouts CheckoutRepo
	orders    OrderWriter
	catalog   CatalogRepo
	carts     CartRepo
	idgen     IDGenerator
	events    EventPublisher
	serverKey string
}

func NewCheckoutService(
	logger *slog.Logger,
	txManager trm.Manager,
	checkouts CheckoutRepo,
	orders OrderWriter,
	catalog CatalogRepo,
	carts CartRepo,
	idgen IDGenerator,
	events EventPublisher,
	serverKey string,
) *checkoutService {
	return &checkoutService{
		logger:    logger.With(slog.String("service", "checkout")),
		txManager: txManager,
		checkouts: checkouts,
		orders:    orders,
		catalog:   catalog,
		carts:     carts,
		idgen:     idgen,
		events:    events,
		serverKey: serverKey,
	}
}

// CreateCheckout validates the buyer's items against the catalog and
// persists a fresh checkout. The stock check is advisory only: nothing is
// reserved, because payment is a manual transfer with no upper bound on
// how long the buyer takes.
func (s *checkoutService) CreateCheckout(ctx context.Context, checkout entities.Checkout) (entities.Checkout, error) {
	if len(checkout.Items) == 0 {
		return entities.Checkout{}, entities.ErrEmptyCart
	}

	for _, item := range checkout.Items {
		if item.ProductID == "" || item.VariantID == "" || item.Quantity < 1 || len(item.Options) == 0 {
			return entities.Checkout{}, entities.ErrInvalidItem
		}

		if _, err := s.catalog.GetProduct(ctx, item.ProductID); err != nil {
			return entities.Checkout{}, err
		}

		variant, err := s.catalog.GetVariant(ctx, item.VariantID, item.ProductID)
		if err != nil {
			return entities.Checkout{}, err
		}

		if variant.Stock < item.Quantity {
			return entities.Checkout{}, &entities.InsufficientStockError{
				SKU:       variant.SKU,
				Requested: item.Quantity,
				Available: variant.Stock,
			}
		}
	}

	checkout.ID = uuid.NewString()
	checkout.Proof = entities.PaymentProof{Status: entities.ProofNone}
	checkout.IsPaid = false
	checkout.IsFinalized = false
	checkout.CreatedAt = time.Now()

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.checkouts.CreateCheckout(ctx, checkout)
	})
	if err != nil {
		return entities.Checkout{}, fmt.Errorf("failed to create checkout: %w", err)
	}

	s.logger.InfoContext(ctx, "checkout created",
		slog.String("checkout_id", checkout.ID), slog.String("user_id", checkout.UserID))
	return checkout, nil
}

// SubmitPaymentProof converts a checkout into an order. The five writes
// (stamp proof, create order, finalize checkout, clear cart) run in one
// transaction: a failure anywhere leaves no order behind, the checkout
// un-finalized and the cart untouched.
func (s *checkoutService) SubmitPaymentProof(ctx context.Context, checkoutID, proofImage, note, requesterID string) (entities.Order, error) {
	var order entities.Order

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		checkout, err := s.checkouts.GetCheckoutByID(ctx, checkoutID)
		if err != nil {
			return err
		}
		if checkout.UserID != requesterID {
			return entities.ErrForbidden
		}
		if proofImage == "" {
			return entities.ErrMissingProof
		}
		// Re-checked inside the transaction, so a retried submission can
		// never mint a second order for the same checkout.
		if checkout.IsFinalized {
			return entities.ErrCheckoutFinalized
		}

		now := time.Now()
		proof := entities.PaymentProof{
			Image:      proofImage,
			UploadedAt: now,
			Status:     entities.ProofPending,
		}
		if err := s.checkouts.StampPaymentProof(ctx, checkoutID, proof, note); err != nil {
			return err
		}

		orderID, err := s.idgen.GenerateOrderID(ctx)
		if err != nil {
			return err
		}

		if note == "" {
			note = checkout.Note
		}
		order = entities.Order{
			ID:             uuid.NewString(),
			OrderID:        orderID,
			UserID:         checkout.UserID,
			CheckoutID:     checkout.ID,
			Items:          checkout.Items,
			Shipping:       checkout.Shipping,
			PaymentMethod:  checkout.PaymentMethod,
			TotalPrice:     checkout.TotalPrice,
			ShippingCost:   checkout.ShippingCost,
			ShippingMethod: checkout.ShippingMethod,
			Courier:        checkout.Courier,
			Duration:       checkout.Duration,
			Note:           note,
			Proof:          proof,
			Status:         entities.StatusPending,
			CreatedAt:      now,
		}
		if err := s.orders.CreateOrder(ctx, order); err != nil {
			return err
		}

		if err := s.checkouts.FinalizeCheckout(ctx, checkoutID, now); err != nil {
			return err
		}

		return s.carts.DeleteCartByUser(ctx, checkout.UserID)
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.InfoContext(ctx, "order created",
		slog.String("order_id", order.OrderID), slog.String("checkout_id", checkoutID))

	if err := s.events.OrderCreated(ctx, order); err != nil {
		s.logger.WarnContext(ctx, "failed to publish order created event",
			slog.String("order_id", order.OrderID), slog.Any("error", err))
	}

	return order, nil
}

// HandlePaymentNotification applies a gateway callback to the checkout's
// payment bookkeeping. Nothing is written unless the signature matches;
// this path never creates an order.
func (s *checkoutService) HandlePaymentNotification(ctx context.Context, n entities.PaymentNotification) error {
	if !s.verifySignature(n) {
		s.logger.WarnContext(ctx, "payment notification rejected",
			slog.String("checkout_id", n.CheckoutID))
		return entities.ErrBadSignature
	}

	upd := entities.PaymentUpdate{
		PaymentStatus: n.TransactionStatus,
		Payload:       n.Raw,
	}
	if n.TransactionStatus == "settlement" || n.TransactionStatus == "capture" {
		now := time.Now()
		upd.IsPaid = true
		upd.PaidAt = &now
	}

	if err := s.checkouts.UpdatePaymentStatus(ctx, n.CheckoutID, upd); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "payment status updated",
		slog.String("checkout_id", n.CheckoutID), slog.String("status", n.TransactionStatus))
	return nil
}

func (s *checkoutService) verifySignature(n entities.PaymentNotification) bool {
	sum := sha512.Sum512([]byte(n.CheckoutID + n.StatusCode + n.GrossAmount + s.serverKey))
	expected := hex.EncodeToString(sum[:])
	return hmac.Equal([]byte(expected), []byte(n.SignatureKey))
}
