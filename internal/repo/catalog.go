package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aclo-store/checkout-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) GetProduct(ctx context.Context, id string) (entities.Product, error) {
	query, args := r.qb.Select("id", "name").
		From("products").
		Where(sq.Eq{"id": id}).
		MustSql()

	var product struct {
		ID   string `db:"id"`
		Name string `db:"name"`
	}
	err := r.getContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return entities.Product{ID: product.ID, Name: product.Name}, nil
}

// GetVariant looks the variant up under its product, so a variant id
// paired with the wrong product resolves to not-found.
func (r *postgresRepo) GetVariant(ctx context.Context, id, productID string) (entities.ProductVariant, error) {
	query, args := r.qb.Select("id", "product_id", "sku", "price", "stock", "weight").
		From("product_variants").
		Where(sq.Eq{"id": id, "product_id": productID}).
		MustSql()

	var variant ProductVariant
	err := r.getContext(ctx, &variant, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.ProductVariant{}, entities.ErrVariantNotFound
	}
	if err != nil {
		return entities.ProductVariant{}, fmt.Errorf("failed to get variant: %w", err)
	}
	return variantToEntity(variant), nil
}
