package favorite

import (
	"context"

	"tireshop/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Add(ctx context.Context, userID, productID string) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO favorites (user_id, product_id)
VALUES ($1, $2)
ON CONFLICT (user_id, product_id) DO NOTHING
`, userID, productID)
	return err
}

func (r *postgresRepo) Remove(ctx context.Context, userID, productID string) error {
	cmd, err := r.pool.Exec(ctx, `
DELETE FROM favorites
WHERE user_id = $1 AND product_id = $2
`, userID, productID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, `
SELECT p.id::text, p.sku, p.name, p.description, p.season, p.size, p.tire_type, p.price_cents, p.currency, p.image_url, p.created_at
FROM favorites f
JOIN products p ON p.id = f.product_id
WHERE f.user_id = $1
ORDER BY f.created_at DESC
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(
			&p.ID,
			&p.SKU,
			&p.Name,
			&p.Description,
			&p.Season,
			&p.Size,
			&p.Type,
			&p.PriceCents,
			&p.Currency,
			&p.ImageURL,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
