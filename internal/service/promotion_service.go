package service

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/sandeepkv93/promo-catalog-service/internal/domain"
	"github.com/sandeepkv93/promo-catalog-service/internal/observability"
	"github.com/sandeepkv93/promo-catalog-service/internal/repository"
)

const (
	MsgPromotionSearchNameAbsent = "Nome da promoção não fornecido"
	MsgPromotionIDAbsent         = "ID da promoção não fornecido"
)

type NestedProductInput struct {
	Name *string
}

type CreatePromotionInput struct {
	Name      *string
	Publisher *string
	URL       *string
	Products  []NestedProductInput
}

func requiredFieldMessage(field string) string {
	return fmt.Sprintf("O campo '%s' é obrigatório", field)
}

type PromotionServiceImpl struct {
	repo repository.PromotionRepository
}

func NewPromotionService(repo repository.PromotionRepository) *PromotionServiceImpl {
	return &PromotionServiceImpl{repo: repo}
}

func (s *PromotionServiceImpl) List(ctx context.Context) (items []domain.PromotionWithProducts, err error) {
	start := time.Now()
	defer func() { observability.RecordCatalogOperation(ctx, "promotion", "list", outcomeOf(err, nil), time.Since(start)) }()

	return s.repo.List(ctx)
}

func (s *PromotionServiceImpl) FindByName(ctx context.Context, name string) (promotion *domain.PromotionWithProducts, err error) {
	start := time.Now()
	defer func() {
		observability.RecordCatalogOperation(ctx, "promotion", "find_by_name", outcomeOf(err, repository.ErrPromotionNotFound), time.Since(start))
	}()

	if _, ok := trimmed(&name); !ok {
		return nil, invalid("nome", MsgPromotionSearchNameAbsent)
	}
	return s.repo.FindByName(ctx, name)
}

// Create validates every field, including each nested product name, before
// anything is written.
func (s *PromotionServiceImpl) Create(ctx context.Context, input CreatePromotionInput) (promotion *domain.PromotionWithProducts, err error) {
	start := time.Now()
	ctx, span := observability.StartSpan(ctx, "promotion.create", attribute.Int("catalog.nested_products", len(input.Products)))
	defer func() {
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		observability.RecordCatalogOperation(ctx, "promotion", "create", outcomeOf(err, nil), time.Since(start))
	}()

	fields := []struct {
		key   string
		value *string
	}{
		{"nome", input.Name},
		{"divulgador", input.Publisher},
		{"url", input.URL},
	}
	values := make([]string, len(fields))
	for i, f := range fields {
		v, ok := trimmed(f.value)
		if !ok {
			return nil, invalid(f.key, requiredFieldMessage(f.key))
		}
		values[i] = v
	}

	products := make([]domain.Product, 0, len(input.Products))
	for _, p := range input.Products {
		name, ok := trimmed(p.Name)
		if !ok {
			return nil, invalid("produtos.nome", requiredFieldMessage("produtos.nome"))
		}
		products = append(products, domain.Product{Name: name})
	}

	promotion = &domain.PromotionWithProducts{
		Promotion: domain.Promotion{Name: values[0], Publisher: values[1], URL: values[2]},
		Products:  products,
	}
	if err := s.repo.Create(ctx, promotion); err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int64("catalog.promotion_id", int64(promotion.ID)))
	return promotion, nil
}

func (s *PromotionServiceImpl) DeleteByID(ctx context.Context, id uint) (err error) {
	start := time.Now()
	defer func() {
		observability.RecordCatalogOperation(ctx, "promotion", "delete", outcomeOf(err, repository.ErrPromotionNotFound), time.Since(start))
	}()

	if id == 0 {
		return invalid("id", MsgPromotionIDAbsent)
	}
	return s.repo.DeleteByID(ctx, id)
}
