package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"petstore/internal/apperr"
	"petstore/internal/models"
	"petstore/internal/store"
)

type ProductService struct {
	products store.ProductStore
	logger   zerolog.Logger
}

func NewProductService(products store.ProductStore, logger zerolog.Logger) *ProductService {
	return &ProductService{
		products: products,
		logger:   logger,
	}
}

func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, in models.ProductInput) (*models.Product, error) {
	product, err := s.products.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.logger.Info().Str("product_id", product.ID).Msg("Product created")
	return product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id string, in models.ProductInput) (*models.Product, error) {
	product, err := s.products.Update(ctx, id, in)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.products.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("delete product: %w", err)
	}

	s.logger.Info().Str("product_id", product.ID).Msg("Product deleted")
	return product, nil
}
