package cart

import (
	"context"
	"errors"

	"tireshop/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

const itemColumns = `id::text, user_id, product_id::text, name, price_cents, quantity, season, size, tire_type, created_at`

func (r *postgresRepo) AddItem(ctx context.Context, userID string, product domain.Product, quantity int) (*domain.CartItem, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var itemID string
	var existingQty int
	err = tx.QueryRow(ctx, `
SELECT id::text, quantity
FROM cart_items
WHERE user_id = $1 AND product_id = $2
`, userID, product.ID).Scan(&itemID, &existingQty)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	if err == nil {
		if _, err := tx.Exec(ctx, `
UPDATE cart_items
SET quantity = $1
WHERE id = $2
`, existingQty+quantity, itemID); err != nil {
			return nil, err
		}
	} else {
		itemID = uuid.NewString()
		if _, err := tx.Exec(ctx, `
INSERT INTO cart_items (id, user_id, product_id, name, price_cents, quantity, season, size, tire_type)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`, itemID, userID, product.ID, product.Name, product.PriceCents, quantity, product.Season, product.Size, product.Type); err != nil {
			return nil, err
		}
	}

	item, err := fetchItem(ctx, tx, userID, itemID)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return item, nil
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.CartItem, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+itemColumns+`
FROM cart_items
WHERE user_id = $1
ORDER BY created_at ASC
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		var item domain.CartItem
		if err := scanItem(rows, &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *postgresRepo) DeleteItem(ctx context.Context, userID, itemID string) error {
	cmd, err := r.pool.Exec(ctx, `
DELETE FROM cart_items
WHERE user_id = $1 AND id = $2
`, userID, itemID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Clear(ctx context.Context, userID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID)
	return err
}

func fetchItem(ctx context.Context, tx pgx.Tx, userID, itemID string) (*domain.CartItem, error) {
	var item domain.CartItem
	row := tx.QueryRow(ctx, `
SELECT `+itemColumns+`
FROM cart_items
WHERE user_id = $1 AND id = $2
`, userID, itemID)
	if err := scanItem(row, &item); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func scanItem(row pgx.Row, item *domain.CartItem) error {
	return row.Scan(
		&item.ID,
		&item.UserID,
		&item.ProductID,
		&item.Name,
		&item.PriceCents,
		&item.Quantity,
		&item.Season,
		&item.Size,
		&item.Type,
		&item.CreatedAt,
	)
}
