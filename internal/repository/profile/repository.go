package profile

import (
	"context"

	"tireshop/internal/domain"
)

type Repository interface {
	Get(ctx context.Context, userID string) (*domain.Profile, error)
	Upsert(ctx context.Context, p domain.Profile) (*domain.Profile, error)
}
