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

var checkoutColumns = []string{
	"id", "user_id", "ship_name", "ship_address", "ship_city", "ship_postal_code", "ship_phone",
	"payment_method", "total_price", "shipping_cost", "shipping_method", "courier", "duration", "note",
	"proof_image", "proof_uploaded_at", "proof_status",
	"is_paid", "payment_status", "paid_at", "gateway_payload",
	"is_finalized", "finalized_at", "created_at",
}

func (r *postgresRepo) CreateCheckout(ctx context.Context, c entities.Checkout) error {
	query, args := r.qb.Insert("checkouts").
		Columns(checkoutColumns...).
		Values(
			c.ID, c.UserID, c.Shipping.Name, c.Shipping.Address, c.Shipping.City,
			c.Shipping.PostalCode, c.Shipping.Phone,
			c.PaymentMethod, c.TotalPrice, c.ShippingCost,
			nullString(c.ShippingMethod), nullString(c.Courier), nullString(c.Duration), nullString(c.Note),
			nullString(c.Proof.Image), nullTime(nil), string(c.Proof.Status),
			c.IsPaid, nullString(c.PaymentStatus), nullTime(c.PaidAt), c.GatewayPayload,
			c.IsFinalized, nullTime(c.FinalizedAt), c.CreatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save checkout: %w", err)
	}

	return r.insertItems(ctx, "checkout_items", c.ID, c.Items)
}

func (r *postgresRepo) GetCheckoutByID(ctx context.Context, id string) (entities.Checkout, error) {
	query, args := r.qb.Select(checkoutColumns...).
		From("checkouts").
		Where(sq.Eq{"id": id}).
		MustSql()

	var checkout Checkout
	err := r.getContext(ctx, &checkout, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Checkout{}, entities.ErrCheckoutNotFound
	}
	if err != nil {
		return entities.Checkout{}, fmt.Errorf("failed to get checkout: %w", err)
	}

	items, err := r.selectItems(ctx, "checkout_items", id)
	if err != nil {
		return entities.Checkout{}, err
	}

	return checkoutToEntity(checkout, items), nil
}

// StampPaymentProof records the uploaded proof and the buyer's note on
// the checkout; the matching order row carries its own frozen copy.
func (r *postgresRepo) StampPaymentProof(ctx context.Context, id string, proof entities.PaymentProof, note string) error {
	builder := r.qb.Update("checkouts").
		Set("proof_image", proof.Image).
		Set("proof_uploaded_at", proof.UploadedAt).
		Set("proof_status", string(proof.Status)).
		Where(sq.Eq{"id": id})
	if note != "" {
		builder = builder.Set("note", note)
	}
	query, args := builder.MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to stamp payment proof: %w", err)
	}
	return requireRow(res, entities.ErrCheckoutNotFound)
}

func (r *postgresRepo) FinalizeCheckout(ctx context.Context, id string, at time.Time) error {
	query, args := r.qb.Update("checkouts").
		Set("is_finalized", true).
		Set("finalized_at", at).
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to finalize checkout: %w", err)
	}
	return requireRow(res, entities.ErrCheckoutNotFound)
}

// UpdatePaymentStatus is the gateway-webhook write path. It touches only
// the payment bookkeeping fields and is allowed on finalized checkouts.
func (r *postgresRepo) UpdatePaymentStatus(ctx context.Context, id string, upd entities.PaymentUpdate) error {
	query, args := r.qb.Update("checkouts").
		Set("is_paid", upd.IsPaid).
		Set("payment_status", nullString(upd.PaymentStatus)).
		Set("paid_at", nullTime(upd.PaidAt)).
		Set("gateway_payload", upd.Payload).
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}
	return requireRow(res, entities.ErrCheckoutNotFound)
}

func (r *postgresRepo) insertItems(ctx context.Context, table, parentID string, items []entities.LineItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert(table).
		Columns("parent_id", "position", "product_id", "variant_id", "name",
			"image", "price", "options", "quantity", "weight")

	for i, it := range items {
		q = q.Values(
			parentID, i, it.ProductID, it.VariantID, it.Name,
			nullString(it.Image), it.Price, OptionsMap(it.Options), it.Quantity, it.Weight,
		)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save %s: %w", table, err)
	}
	return nil
}

func (r *postgresRepo) selectItems(ctx context.Context, table, parentID string) ([]Item, error) {
	query, args := r.qb.Select("parent_id", "position", "product_id", "variant_id", "name",
		"image", "price", "options", "quantity", "weight").
		From(table).
		Where(sq.Eq{"parent_id": parentID}).
		OrderBy("position").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select %s: %w", table, err)
	}
	return items, nil
}

func requireRow(res sql.Result, missing error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return missing
	}
	return nil
}
