package entities

import "time"

// LineItem is a single purchased position. Order items reuse the same
// shape because they are a verbatim point-in-time snapshot of the
// checkout's items: later catalog changes never affect them.
type LineItem struct {
	ProductID string
	VariantID string
	Name      string
	Image     string
	Price     int
	Options   map[string]string
	Quantity  int
	// Weight in grams, carried for the shipping label.
	Weight int
}

func (i LineItem) Subtotal() int {
	return i.Price * i.Quantity
}

type ShippingDetails struct {
	Name       string
	Address    string
	City       string
	PostalCode string
	Phone      string
}

// PaymentProof is the buyer-supplied transfer receipt awaiting admin review.
type PaymentProof struct {
	Image      string
	UploadedAt time.Time
	Status     ProofStatus
}

// Checkout is the mutable, pre-submission representation of a purchase.
// Once IsFinalized is set the only writes still allowed are the payment
// gateway's bookkeeping updates.
type Checkout struct {
	ID             string
	UserID         string
	Items          []LineItem
	Shipping       ShippingDetails
	PaymentMethod  string
	TotalPrice     int
	ShippingCost   int
	ShippingMethod string
	Courier        string
	Duration       string
	Note           string

	Proof PaymentProof

	IsPaid         bool
	PaymentStatus  string
	PaidAt         *time.Time
	GatewayPayload []byte

	IsFinalized bool
	FinalizedAt *time.Time

	CreatedAt time.Time
}

// PaymentUpdate is the narrow write the payment-gateway webhook is
// allowed to apply to a checkout.
type PaymentUpdate struct {
	IsPaid        bool
	PaymentStatus string
	PaidAt        *time.Time
	Payload       []byte
}
