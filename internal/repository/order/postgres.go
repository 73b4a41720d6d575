package order

import (
	"context"

	"tireshop/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) CompleteCheckout(ctx context.Context, in CompleteCheckoutInput) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var o domain.Order
	var amountCents int64
	if err := tx.QueryRow(ctx, `
INSERT INTO orders (payment_intent_id, user_id, status, amount_cents, currency)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (payment_intent_id) DO UPDATE SET
    status = EXCLUDED.status,
    amount_cents = EXCLUDED.amount_cents,
    currency = EXCLUDED.currency
RETURNING payment_intent_id, user_id, status, amount_cents, currency, created_at
`, in.PaymentIntentID, in.UserID, domain.OrderStatusCompleted, in.AmountCents, in.Currency).Scan(
		&o.PaymentIntentID,
		&o.UserID,
		&o.Status,
		&amountCents,
		&o.Currency,
		&o.CreatedAt,
	); err != nil {
		return nil, err
	}
	o.Amount = float64(amountCents) / 100

	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, in.UserID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, `
SELECT payment_intent_id, user_id, status, amount_cents, currency, created_at
FROM orders
WHERE user_id = $1
ORDER BY created_at DESC
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		var amountCents int64
		if err := rows.Scan(
			&o.PaymentIntentID,
			&o.UserID,
			&o.Status,
			&amountCents,
			&o.Currency,
			&o.CreatedAt,
		); err != nil {
			return nil, err
		}
		o.Amount = float64(amountCents) / 100
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
