package catalog

import (
	"context"

	"tireshop/internal/domain"
	productrepo "tireshop/internal/repository/product"
)

type Service struct {
	repo productRepo
}

type productRepo interface {
	List(ctx context.Context, f productrepo.Filter) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

func New(repo productRepo) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, f productrepo.Filter) ([]domain.Product, error) {
	products, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}
