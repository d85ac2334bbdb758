package entities

import (
	"errors"
	"fmt"
)

var (
	ErrCheckoutNotFound  = errors.New("checkout not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrVariantNotFound   = errors.New("product variant not found")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidItem       = errors.New("invalid checkout item")
	ErrMissingProof      = errors.New("payment proof image is required")
	ErrCheckoutFinalized = errors.New("checkout is already finalized")
	ErrForbidden         = errors.New("forbidden")
	ErrNoCancelRequest   = errors.New("order has no cancellation request")
	ErrBadSignature      = errors.New("payment notification signature mismatch")
	ErrInvalidOrder      = errors.New("invalid order data")
)

// InsufficientStockError names the SKU that cannot be fulfilled and how
// much of it is actually available, so the buyer can adjust and retry.
type InsufficientStockError struct {
	SKU       string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: requested %d, available %d", e.SKU, e.Requested, e.Available)
}

// StatusTransitionError reports an attempt to move an order along an edge
// missing from the transition table.
type StatusTransitionError struct {
	From OrderStatus
	To   OrderStatus
}

func (e *StatusTransitionError) Error() string {
	return fmt.Sprintf("illegal status transition %s -> %s", e.From, e.To)
}
