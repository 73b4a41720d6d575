package product

import (
	"context"

	"tireshop/internal/domain"
)

// Filter narrows the catalog listing. Empty fields match everything.
type Filter struct {
	Season string
	Size   string
	Type   string
	Query  string
}

type Repository interface {
	List(ctx context.Context, f Filter) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Upsert(ctx context.Context, p domain.Product) (*domain.Product, error)
}
