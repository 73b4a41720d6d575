package cart

import (
	"context"

	"tireshop/internal/domain"
)

type Repository interface {
	// AddItem inserts a cart line for the product or, when one already
	// exists for this user and product, increments its quantity.
	AddItem(ctx context.Context, userID string, product domain.Product, quantity int) (*domain.CartItem, error)
	ListByUser(ctx context.Context, userID string) ([]domain.CartItem, error)
	DeleteItem(ctx context.Context, userID, itemID string) error
	Clear(ctx context.Context, userID string) error
}
