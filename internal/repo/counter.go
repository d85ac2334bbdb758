package repo

import (
	"context"
	"fmt"
)

// IncrementOrderSeq bumps the per-day order counter and returns the
// post-increment value. The upsert-increment is a single statement so
// two concurrent order creations can never observe the same sequence
// number; a read-then-write pair would.
func (r *postgresRepo) IncrementOrderSeq(ctx context.Context, dateKey string) (int, error) {
	const query = `
		INSERT INTO order_counters (date_key, seq) VALUES ($1, 1)
		ON CONFLICT (date_key) DO UPDATE SET seq = order_counters.seq + 1
		RETURNING seq`

	var seq int
	if err := r.getContext(ctx, &seq, query, dateKey); err != nil {
		return 0, fmt.Errorf("failed to increment order counter: %w", err)
	}
	return seq, nil
}
