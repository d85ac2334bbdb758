package repo

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// DeleteCartByUser clears the buyer's active cart; cart_items cascade.
// Deleting a cart that does not exist is not an error.
func (r *postgresRepo) DeleteCartByUser(ctx context.Context, userID string) error {
	query, args := r.qb.Delete("carts").
		Where(sq.Eq{"user_id": userID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}
