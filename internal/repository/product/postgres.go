package product

import (
	"context"
	"errors"
	"fmt"
	"strings"

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

const productColumns = `id::text, sku, name, description, season, size, tire_type, price_cents, currency, image_url, created_at`

func (r *postgresRepo) List(ctx context.Context, f Filter) ([]domain.Product, error) {
	var (
		conds []string
		args  []interface{}
	)
	add := func(cond string, arg interface{}) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.Season != "" {
		add("season = $%d", f.Season)
	}
	if f.Size != "" {
		add("size = $%d", f.Size)
	}
	if f.Type != "" {
		add("tire_type = $%d", f.Type)
	}
	if q := strings.TrimSpace(f.Query); q != "" {
		add("name ILIKE '%%' || $%d || '%%'", q)
	}

	query := `SELECT ` + productColumns + ` FROM products`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY name ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (sku, name, description, season, size, tire_type, price_cents, currency, image_url)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (sku) DO UPDATE SET
    name = EXCLUDED.name,
    description = EXCLUDED.description,
    season = EXCLUDED.season,
    size = EXCLUDED.size,
    tire_type = EXCLUDED.tire_type,
    price_cents = EXCLUDED.price_cents,
    currency = EXCLUDED.currency,
    image_url = EXCLUDED.image_url
RETURNING ` + productColumns
	row := r.pool.QueryRow(ctx, q,
		p.SKU, p.Name, p.Description, p.Season, p.Size, p.Type, p.PriceCents, p.Currency, p.ImageURL)
	return scanProduct(row)
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	if err := row.Scan(
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
	return &p, nil
}
