package cart

import (
	"context"
	"errors"
	"fmt"

	"tireshop/internal/domain"
)

type Service struct {
	repo        cartRepo
	productRepo productRepo
}

type cartRepo interface {
	AddItem(ctx context.Context, userID string, product domain.Product, quantity int) (*domain.CartItem, error)
	ListByUser(ctx context.Context, userID string) ([]domain.CartItem, error)
	DeleteItem(ctx context.Context, userID, itemID string) error
	Clear(ctx context.Context, userID string) error
}

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

func New(repo cartRepo, productRepo productRepo) *Service {
	return &Service{repo: repo, productRepo: productRepo}
}

// Summary is a user's cart with the totals the storefront shows next to the
// checkout button. TotalCents drives the amount sent to intent creation.
type Summary struct {
	Items      []domain.CartItem `json:"items"`
	TotalCount int               `json:"totalCount"`
	TotalCents int64             `json:"totalCents"`
}

func (s *Service) Add(ctx context.Context, userID, productID string, quantity int) (*domain.CartItem, error) {
	if quantity <= 0 {
		return nil, errors.New("quantity must be positive")
	}
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("product %s: %w", productID, domain.ErrNotFound)
		}
		return nil, err
	}
	return s.repo.AddItem(ctx, userID, *product, quantity)
}

func (s *Service) Get(ctx context.Context, userID string) (*Summary, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary := &Summary{Items: items}
	if summary.Items == nil {
		summary.Items = []domain.CartItem{}
	}
	for _, item := range items {
		summary.TotalCount += item.Quantity
		summary.TotalCents += item.PriceCents * int64(item.Quantity)
	}
	return summary, nil
}

func (s *Service) Remove(ctx context.Context, userID, itemID string) error {
	return s.repo.DeleteItem(ctx, userID, itemID)
}

func (s *Service) Clear(ctx context.Context, userID string) error {
	return s.repo.Clear(ctx, userID)
}
