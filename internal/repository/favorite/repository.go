package favorite

import (
	"context"

	"tireshop/internal/domain"
)

type Repository interface {
	Add(ctx context.Context, userID, productID string) error
	Remove(ctx context.Context, userID, productID string) error
	ListByUser(ctx context.Context, userID string) ([]domain.Product, error)
}
