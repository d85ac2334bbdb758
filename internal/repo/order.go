package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aclo-store/checkout-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var orderColumns = []string{
	"id", "order_id", "user_id", "checkout_id",
	"ship_name", "ship_address", "ship_city", "ship_postal_code", "ship_phone",
	"payment_method", "total_price", "shipping_cost", "shipping_method", "courier", "duration",
	"note", "admin_note",
	"proof_image", "proof_uploaded_at", "proof_status",
	"cancel_reason", "cancel_requested_at", "cancel_prior_status",
	"is_paid", "paid_at", "tracking_link", "delivered_at", "gateway_payload",
	"status", "created_at",
}

func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.Order) error {
	var cancelReason, cancelPrior sql.NullString
	var cancelAt sql.NullTime
	if o.CancelRequest != nil {
		cancelReason = nullString(o.CancelRequest.Reason)
		cancelAt = sql.NullTime{Time: o.CancelRequest.RequestedAt, Valid: true}
		cancelPrior = nullString(string(o.CancelRequest.PriorStatus))
	}

	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.ID, o.OrderID, o.UserID, o.CheckoutID,
			o.Shipping.Name, o.Shipping.Address, o.Shipping.City, o.Shipping.PostalCode, o.Shipping.Phone,
			o.PaymentMethod, o.TotalPrice, o.ShippingCost,
			nullString(o.ShippingMethod), nullString(o.Courier), nullString(o.Duration),
			nullString(o.Note), nullString(o.AdminNote),
			nullString(o.Proof.Image), o.Proof.UploadedAt, string(o.Proof.Status),
			cancelReason, cancelAt, cancelPrior,
			o.IsPaid, nullTime(o.PaidAt), nullString(o.TrackingLink), nullTime(o.DeliveredAt), o.GatewayPayload,
			string(o.Status), o.CreatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}

	return r.insertItems(ctx, "order_items", o.ID, o.Items)
}

func (r *postgresRepo) GetOrderByOrderID(ctx context.Context, orderID string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.selectItems(ctx, "order_items", order.ID)
	if err != nil {
		return entities.Order{}, err
	}

	return orderToEntity(order, items), nil
}

func (r *postgresRepo) ListOrdersByUser(ctx context.Context, userID string) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}

	// One batched items query for the whole page.
	query, args = r.qb.Select("parent_id", "position", "product_id", "variant_id", "name",
		"image", "price", "options", "quantity", "weight").
		From("order_items").
		Where(sq.Eq{"parent_id": ids}).
		OrderBy("parent_id", "position").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order_items: %w", err)
	}
	itemsMap := make(map[string][]Item, len(ids))
	for _, it := range items {
		itemsMap[it.ParentID] = append(itemsMap[it.ParentID], it)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, orderToEntity(o, itemsMap[o.ID]))
	}
	return result, nil
}

// UpdateOrderStatus replaces status and, for deliveries, the delivery
// timestamp. No other order field is touched by a status change.
func (r *postgresRepo) UpdateOrderStatus(ctx context.Context, orderID string, status entities.OrderStatus, deliveredAt *time.Time) error {
	builder := r.qb.Update("orders").
		Set("status", string(status)).
		Where(sq.Eq{"order_id": orderID})
	if deliveredAt != nil {
		builder = builder.Set("delivered_at", *deliveredAt)
	}
	query, args := builder.MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	return requireRow(res, entities.ErrOrderNotFound)
}

func (r *postgresRepo) SaveCancelRequest(ctx context.Context, orderID string, req entities.CancelRequest) error {
	query, args := r.qb.Update("orders").
		Set("cancel_reason", nullString(req.Reason)).
		Set("cancel_requested_at", req.RequestedAt).
		Set("cancel_prior_status", string(req.PriorStatus)).
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save cancel request: %w", err)
	}
	return requireRow(res, entities.ErrOrderNotFound)
}

func (r *postgresRepo) SetTrackingLink(ctx context.Context, orderID, link string) error {
	query, args := r.qb.Update("orders").
		Set("tracking_link", link).
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to set tracking link: %w", err)
	}
	return requireRow(res, entities.ErrOrderNotFound)
}

// DeleteOrder is a hard delete; order_items go with it via FK cascade.
func (r *postgresRepo) DeleteOrder(ctx context.Context, orderID string) error {
	query, args := r.qb.Delete("orders").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return requireRow(res, entities.ErrOrderNotFound)
}
