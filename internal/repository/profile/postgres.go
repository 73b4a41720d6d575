package profile

import (
	"context"
	"errors"

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

func (r *postgresRepo) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	var p domain.Profile
	err := r.pool.QueryRow(ctx, `
SELECT user_id, name, phone, email, address, updated_at
FROM profiles
WHERE user_id = $1
`, userID).Scan(&p.UserID, &p.Name, &p.Phone, &p.Email, &p.Address, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, in domain.Profile) (*domain.Profile, error) {
	var p domain.Profile
	err := r.pool.QueryRow(ctx, `
INSERT INTO profiles (user_id, name, phone, email, address, updated_at)
VALUES ($1, $2, $3, $4, $5, now())
ON CONFLICT (user_id) DO UPDATE SET
    name = EXCLUDED.name,
    phone = EXCLUDED.phone,
    email = EXCLUDED.email,
    address = EXCLUDED.address,
    updated_at = now()
RETURNING user_id, name, phone, email, address, updated_at
`, in.UserID, in.Name, in.Phone, in.Email, in.Address).Scan(
		&p.UserID, &p.Name, &p.Phone, &p.Email, &p.Address, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
