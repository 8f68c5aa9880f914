package productservice

import (
	"context"
	"errors"

	"github.com/atompoint/storefront/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	List(ctx context.Context, onlyAvailable bool) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

var (
	ErrProductNotFound = errors.New("product not found")
	ErrProductExists   = errors.New("product ID already exists")
)

// ListAvailable returns the catalog entries users may purchase.
func (s *Service) ListAvailable(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.List(ctx, true)
	if err != nil {
		zap.L().Error("failed to list products", zap.Error(err))
		return nil, err
	}
	return products, nil
}

func (s *Service) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get product", zap.Error(err))
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *Service) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	existing, err := s.repo.FindByID(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrProductExists
	}
	product.Available = true
	if err := s.repo.Create(ctx, product); err != nil {
		zap.L().Error("failed to create product", zap.Error(err))
		return nil, err
	}
	return product, nil
}

func (s *Service) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	updated, err := s.repo.Update(ctx, product)
	if err != nil {
		zap.L().Error("failed to update product", zap.Error(err))
		return nil, err
	}
	if updated == nil {
		return nil, ErrProductNotFound
	}
	return updated, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		zap.L().Error("failed to delete product", zap.Error(err))
		return err
	}
	return nil
}
