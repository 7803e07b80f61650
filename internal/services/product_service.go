package services

import (
	"context"
	"errors"

	"storefront/internal/money"
	"storefront/internal/repositories"
	"storefront/internal/services/dto"
	"storefront/pkg/apperrors"

	"gorm.io/gorm"
)

type ProductService interface {
	ListProducts(ctx context.Context, db *gorm.DB, req *dto.ListProductsRequest) ([]*dto.ProductResponse, error)
	GetProduct(ctx context.Context, db *gorm.DB, id string) (*dto.ProductResponse, error)
}

type productService struct {
	productRepo repositories.ProductRepository
	currency    money.Currency
}

func NewProductService(productRepo repositories.ProductRepository, currency money.Currency) ProductService {
	return &productService{
		productRepo: productRepo,
		currency:    currency,
	}
}

// ListProducts - все товары, кроме товара с id == req.Filter (если фильтр задан).
// Это исключение по равенству, а не поиск по подстроке.
func (s *productService) ListProducts(ctx context.Context, db *gorm.DB, req *dto.ListProductsRequest) ([]*dto.ProductResponse, error) {
	var filter string
	if req != nil {
		filter = req.Filter
	}

	products, err := s.productRepo.FindAll(db.WithContext(ctx), filter)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	resp := make([]*dto.ProductResponse, 0, len(products))
	for i := range products {
		resp = append(resp, dto.NewProductResponse(&products[i], s.currency))
	}
	return resp, nil
}

func (s *productService) GetProduct(ctx context.Context, db *gorm.DB, id string) (*dto.ProductResponse, error) {
	product, err := s.productRepo.FindByID(db.WithContext(ctx), id)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return nil, apperrors.NotFound("product").WithError(err)
		}
		return nil, apperrors.DatabaseError(err)
	}
	return dto.NewProductResponse(product, s.currency), nil
}
