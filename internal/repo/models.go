package repo

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aclo-store/checkout-service/internal/entities"
)

// OptionsMap stores a line item's selected options (color, size, ...) as
// a JSONB column.
type OptionsMap map[string]string

func (m OptionsMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

func (m *OptionsMap) Scan(src any) error {
	if src == nil {
		*m = nil
		return nil
	}
	data, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("unsupported options column type %T", src)
	}
	return json.Unmarshal(data, m)
}

type Checkout struct {
	ID             string         `db:"id"`
	UserID         string         `db:"user_id"`
	ShipName       string         `db:"ship_name"`
	ShipAddress    string         `db:"ship_address"`
	ShipCity       string         `db:"ship_city"`
	ShipPostalCode string         `db:"ship_postal_code"`
	ShipPhone      string         `db:"ship_phone"`
	PaymentMethod  string         `db:"payment_method"`
	TotalPrice     int            `db:"total_price"`
	ShippingCost   int            `db:"shipping_cost"`
	ShippingMethod sql.NullString `db:"shipping_method"`
	Courier        sql.NullString `db:"courier"`
	Duration       sql.NullString `db:"duration"`
	Note           sql.NullString `db:"note"`

	ProofImage      sql.NullString `db:"proof_image"`
	ProofUploadedAt sql.NullTime   `db:"proof_uploaded_at"`
	ProofStatus     string         `db:"proof_status"`

	IsPaid         bool           `db:"is_paid"`
	PaymentStatus  sql.NullString `db:"payment_status"`
	PaidAt         sql.NullTime   `db:"paid_at"`
	GatewayPayload []byte         `db:"gateway_payload"`

	IsFinalized bool         `db:"is_finalized"`
	FinalizedAt sql.NullTime `db:"finalized_at"`

	CreatedAt time.Time `db:"created_at"`
}

type Order struct {
	ID         string `db:"id"`
	OrderID    string `db:"order_id"`
	UserID     string `db:"user_id"`
	CheckoutID string `db:"checkout_id"`

	ShipName       string         `db:"ship_name"`
	ShipAddress    string         `db:"ship_address"`
	ShipCity       string         `db:"ship_city"`
	ShipPostalCode string         `db:"ship_postal_code"`
	ShipPhone      string         `db:"ship_phone"`
	PaymentMethod  string         `db:"payment_method"`
	TotalPrice     int            `db:"total_price"`
	ShippingCost   int            `db:"shipping_cost"`
	ShippingMethod sql.NullString `db:"shipping_method"`
	Courier        sql.NullString `db:"courier"`
	Duration       sql.NullString `db:"duration"`
	Note           sql.NullString `db:"note"`
	AdminNote      sql.NullString `db:"admin_note"`

	ProofImage      sql.NullString `db:"proof_image"`
	ProofUploadedAt sql.NullTime   `db:"proof_uploaded_at"`
	ProofStatus     string         `db:"proof_status"`

	CancelReason      sql.NullString `db:"cancel_reason"`
	CancelRequestedAt sql.NullTime   `db:"cancel_requested_at"`
	CancelPriorStatus sql.NullString `db:"cancel_prior_status"`

	IsPaid         bool           `db:"is_paid"`
	PaidAt         sql.NullTime   `db:"paid_at"`
	TrackingLink   sql.NullString `db:"tracking_link"`
	DeliveredAt    sql.NullTime   `db:"delivered_at"`
	GatewayPayload []byte         `db:"gateway_payload"`

	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

// Item maps both checkout_items and order_items; the two tables share a
// shape because order items are a frozen copy of the checkout's.
type Item struct {
	ParentID  string         `db:"parent_id"`
	Position  int            `db:"position"`
	ProductID string         `db:"product_id"`
	VariantID string         `db:"variant_id"`
	Name      string         `db:"name"`
	Image     sql.NullString `db:"image"`
	Price     int            `db:"price"`
	Options   OptionsMap     `db:"options"`
	Quantity  int            `db:"quantity"`
	Weight    int            `db:"weight"`
}

type ProductVariant struct {
	ID        string `db:"id"`
	ProductID string `db:"product_id"`
	SKU       string `db:"sku"`
	Price     int    `db:"price"`
	Stock     int    `db:"stock"`
	Weight    int    `db:"weight"`
}

func itemToEntity(i Item) entities.LineItem {
	return entities.LineItem{
		ProductID: i.ProductID,
		VariantID: i.VariantID,
		Name:      i.Name,
		Image:     nullStringToString(i.Image),
		Price:     i.Price,
		Options:   i.Options,
		Quantity:  i.Quantity,
		Weight:    i.Weight,
	}
}

func itemsToEntities(items []Item) []entities.LineItem {
	if len(items) == 0 {
		return nil
	}
	result := make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		result = append(result, itemToEntity(it))
	}
	return result
}

func checkoutToEntity(c Checkout, items []Item) entities.Checkout {
	return entities.Checkout{
		ID:     c.ID,
		UserID: c.UserID,
		Items:  itemsToEntities(items),
		Shipping: entities.ShippingDetails{
			Name:       c.ShipName,
			Address:    c.ShipAddress,
			City:       c.ShipCity,
			PostalCode: c.ShipPostalCode,
			Phone:      c.ShipPhone,
		},
		PaymentMethod:  c.PaymentMethod,
		TotalPrice:     c.TotalPrice,
		ShippingCost:   c.ShippingCost,
		ShippingMethod: nullStringToString(c.ShippingMethod),
		Courier:        nullStringToString(c.Courier),
		Duration:       nullStringToString(c.Duration),
		Note:           nullStringToString(c.Note),
		Proof: entities.PaymentProof{
			Image:      nullStringToString(c.ProofImage),
			UploadedAt: c.ProofUploadedAt.Time,
			Status:     entities.ProofStatus(c.ProofStatus),
		},
		IsPaid:         c.IsPaid,
		PaymentStatus:  nullStringToString(c.PaymentStatus),
		PaidAt:         nullTimeToPtr(c.PaidAt),
		GatewayPayload: c.GatewayPayload,
		IsFinalized:    c.IsFinalized,
		FinalizedAt:    nullTimeToPtr(c.FinalizedAt),
		CreatedAt:      c.CreatedAt,
	}
}

func orderToEntity(o Order, items []Item) entities.Order {
	order := entities.Order{
		ID:         o.ID,
		OrderID:    o.OrderID,
		UserID:     o.UserID,
		CheckoutID: o.CheckoutID,
		Items:      itemsToEntities(items),
		Shipping: entities.ShippingDetails{
			Name:       o.ShipName,
			Address:    o.ShipAddress,
			City:       o.ShipCity,
			PostalCode: o.ShipPostalCode,
			Phone:      o.ShipPhone,
		},
		PaymentMethod:  o.PaymentMethod,
		TotalPrice:     o.TotalPrice,
		ShippingCost:   o.ShippingCost,
		ShippingMethod: nullStringToString(o.ShippingMethod),
		Courier:        nullStringToString(o.Courier),
		Duration:       nullStringToString(o.Duration),
		Note:           nullStringToString(o.Note),
		AdminNote:      nullStringToString(o.AdminNote),
		Proof: entities.PaymentProof{
			Image:      nullStringToString(o.ProofImage),
			UploadedAt: o.ProofUploadedAt.Time,
			Status:     entities.ProofStatus(o.ProofStatus),
		},
		IsPaid:         o.IsPaid,
		PaidAt:         nullTimeToPtr(o.PaidAt),
		TrackingLink:   nullStringToString(o.TrackingLink),
		DeliveredAt:    nullTimeToPtr(o.DeliveredAt),
		GatewayPayload: o.GatewayPayload,
		Status:         entities.OrderStatus(o.Status),
		CreatedAt:      o.CreatedAt,
	}

	if o.CancelRequestedAt.Valid {
		order.CancelRequest = &entities.CancelRequest{
			Reason:      nullStringToString(o.CancelReason),
			RequestedAt: o.CancelRequestedAt.Time,
			PriorStatus: entities.OrderStatus(nullStringToString(o.CancelPriorStatus)),
		}
	}

	return order
}

func variantToEntity(v ProductVariant) entities.ProductVariant {
	return entities.ProductVariant{
		ID:        v.ID,
		ProductID: v.ProductID,
		SKU:       v.SKU,
		Price:     v.Price,
		Stock:     v.Stock,
		Weight:    v.Weight,
	}
}
