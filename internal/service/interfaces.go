package service

import (
	"context"

	"github.com/sandeepkv93/promo-catalog-service/internal/domain"
)

//go:generate mockgen -destination=gomock/catalog_service_mock.go -package=gomock . ProductService,PromotionService

type ProductService interface {
	List(ctx context.Context) ([]domain.ProductListing, error)
	FindByName(ctx context.Context, name string) (*domain.ProductListing, error)
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	DeleteByID(ctx context.Context, id uint) error
}

type PromotionService interface {
	List(ctx context.Context) ([]domain.PromotionWithProducts, error)
	FindByName(ctx context.Context, name string) (*domain.PromotionWithProducts, error)
	Create(ctx context.Context, input CreatePromotionInput) (*domain.PromotionWithProducts, error)
	DeleteByID(ctx context.Context, id uint) error
}
