package entities

import (
	"bytes"
	"encoding/gob"
	"time"
)

// CancelRequest is a buyer's pending cancellation. PriorStatus keeps the
// status the order held when the request was made, so a rejected request
// restores exactly that status instead of guessing.
type CancelRequest struct {
	Reason      string
	RequestedAt time.Time
	PriorStatus OrderStatus
}

// Order is the durable record minted from a finalized checkout. OrderID is
// the human-facing identifier; ID is the storage row id.
type Order struct {
	ID         string
	OrderID    string
	UserID     string
	CheckoutID string

	Items          []LineItem
	Shipping       ShippingDetails
	PaymentMethod  string
	TotalPrice     int
	ShippingCost   int
	ShippingMethod string
	Courier        string
	Duration       string
	Note           string

	Proof         PaymentProof
	CancelRequest *CancelRequest
	AdminNote     string

	IsPaid         bool
	PaidAt         *time.Time
	TrackingLink   string
	DeliveredAt    *time.Time
	GatewayPayload []byte

	Status    OrderStatus
	CreatedAt time.Time
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(o); err != nil {
		return ErrInvalidOrder
	}
	return nil
}
