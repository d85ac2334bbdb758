package handler

import (
	"time"

	"github.com/aclo-store/checkout-service/internal/entities"
)

// CheckoutItem is a single position in a checkout request or response
type CheckoutItem struct {
	ProductID string            `json:"product_id" validate:"required"`
	VariantID string            `json:"product_variant_id" validate:"required"`
	Name      string            `json:"name,omitempty"`
	Image     string            `json:"image,omitempty"`
	Price     int               `json:"price" validate:"gte=0"`
	Options   map[string]string `json:"options"`
	Quantity  int               `json:"quantity" validate:"gte=1"`
	Weight    int               `json:"weight,omitempty"`
}

// ShippingDetails is the buyer's shipping destination
type ShippingDetails struct {
	Name       string `json:"name" validate:"required"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
}

// CreateCheckoutRequest starts a checkout from the buyer's cart contents
type CreateCheckoutRequest struct {
	Items           []CheckoutItem  `json:"items"`
	ShippingDetails ShippingDetails `json:"shipping_details" validate:"required"`
	PaymentMethod   string          `json:"payment_method" validate:"required"`
	TotalPrice      int             `json:"total_price" validate:"gte=0"`
	ShippingCost    int             `json:"shipping_cost" validate:"gte=0"`
	ShippingMethod  string          `json:"shipping_method,omitempty"`
	Courier         string          `json:"courier,omitempty"`
	Duration        string          `json:"duration,omitempty"`
	Note            string          `json:"note,omitempty"`
}

// SubmitProofRequest attaches a transfer receipt to a checkout
type SubmitProofRequest struct {
	ProofImage string `json:"proof_image"`
	Note       string `json:"note,omitempty"`
}

// PaymentNotification is the gateway callback payload
type PaymentNotification struct {
	OrderID           string `json:"order_id" validate:"required"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	TransactionStatus string `json:"transaction_status"`
	SignatureKey      string `json:"signature_key"`
}

// UpdateStatusRequest moves an order to a new lifecycle status
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// CancelOrderRequest is a buyer's cancellation request
type CancelOrderRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// ResolveCancellationRequest settles a pending cancellation
type ResolveCancellationRequest struct {
	Action string `json:"action" validate:"required,oneof=approve reject"`
}

// TrackingRequest sets the shipment tracking link on an order
type TrackingRequest struct {
	TrackingLink string `json:"tracking_link" validate:"required"`
}

// PaymentProof is the review state of an uploaded transfer receipt
type PaymentProof struct {
	Image      string `json:"image,omitempty"`
	UploadedAt int64  `json:"uploaded_at,omitempty"`
	Status     string `json:"status"`
}

// CancelRequest is a pending cancellation on an order
type CancelRequest struct {
	Reason      string `json:"reason"`
	RequestedAt int64  `json:"requested_at"`
}

// Checkout represents a buyer's in-progress purchase
type Checkout struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	Items           []CheckoutItem  `json:"items"`
	ShippingDetails ShippingDetails `json:"shipping_details"`
	PaymentMethod   string          `json:"payment_method"`
	TotalPrice      int             `json:"total_price"`
	ShippingCost    int             `json:"shipping_cost"`
	ShippingMethod  string          `json:"shipping_method,omitempty"`
	Courier         string          `json:"courier,omitempty"`
	Duration        string          `json:"duration,omitempty"`
	Note            string          `json:"note,omitempty"`
	Proof           PaymentProof    `json:"payment_proof"`
	IsPaid          bool            `json:"is_paid"`
	PaymentStatus   string          `json:"payment_status,omitempty"`
	IsFinalized     bool            `json:"is_finalized"`
	FinalizedAt     *time.Time      `json:"finalized_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// Order represents a submitted order
type Order struct {
	OrderID         string          `json:"order_id"`
	UserID          string          `json:"user_id"`
	CheckoutID      string          `json:"checkout_id"`
	Items           []CheckoutItem  `json:"order_items"`
	ShippingDetails ShippingDetails `json:"shipping_details"`
	PaymentMethod   string          `json:"payment_method"`
	TotalPrice      int             `json:"total_price"`
	ShippingCost    int             `json:"shipping_cost"`
	ShippingMethod  string          `json:"shipping_method,omitempty"`
	Courier         string          `json:"courier,omitempty"`
	Duration        string          `json:"duration,omitempty"`
	Note            string          `json:"note,omitempty"`
	AdminNote       string          `json:"admin_note,omitempty"`
	Proof           PaymentProof    `json:"payment_proof"`
	CancelRequest   *CancelRequest  `json:"cancel_request,omitempty"`
	IsPaid          bool            `json:"is_paid"`
	PaidAt          *time.Time      `json:"paid_at,omitempty"`
	TrackingLink    string          `json:"tracking_link,omitempty"`
	DeliveredAt     *time.Time      `json:"delivered_at,omitempty"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}

func ItemJSONToEntity(i CheckoutItem) entities.LineItem {
	return entities.LineItem{
		ProductID: i.ProductID,
		VariantID: i.VariantID,
		Name:      i.Name,
		Image:     i.Image,
		Price:     i.Price,
		Options:   i.Options,
		Quantity:  i.Quantity,
		Weight:    i.Weight,
	}
}

func ItemEntityToJSON(i entities.LineItem) CheckoutItem {
	return CheckoutItem{
		ProductID: i.ProductID,
		VariantID: i.VariantID,
		Name:      i.Name,
		Image:     i.Image,
		Price:     i.Price,
		Options:   i.Options,
		Quantity:  i.Quantity,
		Weight:    i.Weight,
	}
}

func ShippingJSONToEntity(s ShippingDetails) entities.ShippingDetails {
	return entities.ShippingDetails{
		Name:       s.Name,
		Address:    s.Address,
		City:       s.City,
		PostalCode: s.PostalCode,
		Phone:      s.Phone,
	}
}

func ShippingEntityToJSON(s entities.ShippingDetails) ShippingDetails {
	return ShippingDetails{
		Name:       s.Name,
		Address:    s.Address,
		City:       s.City,
		PostalCode: s.PostalCode,
		Phone:      s.Phone,
	}
}

func ProofEntityToJSON(p entities.PaymentProof) PaymentProof {
	proof := PaymentProof{
		Image:  p.Image,
		Status: string(p.Status),
	}
	if !p.UploadedAt.IsZero() {
		proof.UploadedAt = p.UploadedAt.Unix()
	}
	return proof
}

func CheckoutRequestToEntity(req CreateCheckoutRequest, userID string) entities.Checkout {
	items := make([]entities.LineItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, ItemJSONToEntity(it))
	}

	return entities.Checkout{
		UserID:         userID,
		Items:          items,
		Shipping:       ShippingJSONToEntity(req.ShippingDetails),
		PaymentMethod:  req.PaymentMethod,
		TotalPrice:     req.TotalPrice,
		ShippingCost:   req.ShippingCost,
		ShippingMethod: req.ShippingMethod,
		Courier:        req.Courier,
		Duration:       req.Duration,
		Note:           req.Note,
	}
}

func CheckoutEntityToJSON(c entities.Checkout) Checkout {
	items := make([]CheckoutItem, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, ItemEntityToJSON(it))
	}

	return Checkout{
		ID:              c.ID,
		UserID:          c.UserID,
		Items:           items,
		ShippingDetails: ShippingEntityToJSON(c.Shipping),
		PaymentMethod:   c.PaymentMethod,
		TotalPrice:      c.TotalPrice,
		ShippingCost:    c.ShippingCost,
		ShippingMethod:  c.ShippingMethod,
		Courier:         c.Courier,
		Duration:        c.Duration,
		Note:            c.Note,
		Proof:           ProofEntityToJSON(c.Proof),
		IsPaid:          c.IsPaid,
		PaymentStatus:   c.PaymentStatus,
		IsFinalized:     c.IsFinalized,
		FinalizedAt:     c.FinalizedAt,
		CreatedAt:       c.CreatedAt,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]CheckoutItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, ItemEntityToJSON(it))
	}

	order := Order{
		OrderID:         o.OrderID,
		UserID:          o.UserID,
		CheckoutID:      o.CheckoutID,
		Items:           items,
		ShippingDetails: ShippingEntityToJSON(o.Shipping),
		PaymentMethod:   o.PaymentMethod,
		TotalPrice:      o.TotalPrice,
		ShippingCost:    o.ShippingCost,
		ShippingMethod:  o.ShippingMethod,
		Courier:         o.Courier,
		Duration:        o.Duration,
		Note:            o.Note,
		AdminNote:       o.AdminNote,
		Proof:           ProofEntityToJSON(o.Proof),
		IsPaid:          o.IsPaid,
		PaidAt:          o.PaidAt,
		TrackingLink:    o.TrackingLink,
		DeliveredAt:     o.DeliveredAt,
		Status:          string(o.Status),
		CreatedAt:       o.CreatedAt,
	}

	if o.CancelRequest != nil {
		order.CancelRequest = &CancelRequest{
			Reason:      o.CancelRequest.Reason,
			RequestedAt: o.CancelRequest.RequestedAt.Unix(),
		}
	}

	return order
}
