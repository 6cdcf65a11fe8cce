package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/sandeepkv93/promo-catalog-service/internal/domain"
	"github.com/sandeepkv93/promo-catalog-service/internal/observability"
	"github.com/sandeepkv93/promo-catalog-service/internal/repository"
)

const (
	MsgProductFieldsRequired   = "Nome, valor, categoria e ID da promoção do produto são obrigatórios"
	MsgProductNegativePrice    = "O valor do produto não pode ser negativo"
	MsgProductSearchNameAbsent = "Nome do produto não fornecido"
	MsgProductIDAbsent         = "ID do produto não fornecido"
)

// CreateProductInput fields are pointers so that an absent field can be told
// apart from a zero value.
type CreateProductInput struct {
	Name        *string
	Price       *float64
	Category    *string
	PromotionID *uint
}

type ProductServiceImpl struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) *ProductServiceImpl {
	return &ProductServiceImpl{repo: repo}
}

func (s *ProductServiceImpl) List(ctx context.Context) (items []domain.ProductListing, err error) {
	start := time.Now()
	defer func() { observability.RecordCatalogOperation(ctx, "product", "list", outcomeOf(err, nil), time.Since(start)) }()

	return s.repo.List(ctx)
}

func (s *ProductServiceImpl) FindByName(ctx context.Context, name string) (product *domain.ProductListing, err error) {
	start := time.Now()
	defer func() {
		observability.RecordCatalogOperation(ctx, "product", "find_by_name", outcomeOf(err, repository.ErrProductNotFound), time.Since(start))
	}()

	if _, ok := trimmed(&name); !ok {
		return nil, invalid("nome", MsgProductSearchNameAbsent)
	}
	return s.repo.FindByName(ctx, name)
}

func (s *ProductServiceImpl) Create(ctx context.Context, input CreateProductInput) (product *domain.Product, err error) {
	start := time.Now()
	ctx, span := observability.StartSpan(ctx, "product.create")
	defer func() {
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		observability.RecordCatalogOperation(ctx, "product", "create", outcomeOf(err, nil), time.Since(start))
	}()

	name, okName := trimmed(input.Name)
	category, okCategory := trimmed(input.Category)
	if !okName || !okCategory || input.Price == nil || input.PromotionID == nil {
		return nil, invalid("", MsgProductFieldsRequired)
	}
	if *input.Price < 0 {
		return nil, invalid("valor", MsgProductNegativePrice)
	}

	price := *input.Price
	promotionID := *input.PromotionID
	product = &domain.Product{Name: name, Price: &price, Category: &category, PromotionID: &promotionID}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int64("catalog.product_id", int64(product.ID)))
	return product, nil
}

func (s *ProductServiceImpl) DeleteByID(ctx context.Context, id uint) (err error) {
	start := time.Now()
	defer func() {
		observability.RecordCatalogOperation(ctx, "product", "delete", outcomeOf(err, repository.ErrProductNotFound), time.Since(start))
	}()

	if id == 0 {
		return invalid("produto_id", MsgProductIDAbsent)
	}
	return s.repo.DeleteByID(ctx, id)
}
