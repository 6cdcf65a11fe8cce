package service

import (
	"context"
	"errors"
	"testing"

	"github.com/sandeepkv93/promo-catalog-service/internal/domain"
	"github.com/sandeepkv93/promo-catalog-service/internal/repository"
	repogomock "github.com/sandeepkv93/promo-catalog-service/internal/repository/gomock"
	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T { return &v }

func validProductInput() CreateProductInput {
	return CreateProductInput{
		Name:        ptr("  Mouse "),
		Price:       ptr(49.9),
		Category:    ptr("Informática"),
		PromotionID: ptr(uint(1)),
	}
}

func TestProductServiceCreateTrimsAndDelegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repogomock.NewMockProductRepository(ctrl)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *domain.Product) error {
		if p.Name != "Mouse" || *p.Category != "Informática" || *p.Price != 49.9 || *p.PromotionID != 1 {
			t.Fatalf("unexpected product passed to repo: %+v", p)
		}
		p.ID = 42
		return nil
	})
	svc := NewProductService(repo)

	p, err := svc.Create(t.Context(), validProductInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.ID != 42 {
		t.Fatalf("expected assigned id, got %d", p.ID)
	}
}

func TestProductServiceCreateAcceptsZeroPrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repogomock.NewMockProductRepository(ctrl)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	svc := NewProductService(repo)

	in := validProductInput()
	in.Price = ptr(0.0)
	if _, err := svc.Create(t.Context(), in); err != nil {
		t.Fatalf("expected zero price to be accepted, got %v", err)
	}
}

func TestProductServiceCreateValidation(t *testing.T) {
	cases := map[string]func(*CreateProductInput){
		"missing name":      func(in *CreateProductInput) { in.Name = nil },
		"blank name":        func(in *CreateProductInput) { in.Name = ptr("   ") },
		"missing category":  func(in *CreateProductInput) { in.Category = nil },
		"blank category":    func(in *CreateProductInput) { in.Category = ptr("") },
		"missing price":     func(in *CreateProductInput) { in.Price = nil },
		"missing promotion": func(in *CreateProductInput) { in.PromotionID = nil },
		"negative price":    func(in *CreateProductInput) { in.Price = ptr(-1.0) },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := repogomock.NewMockProductRepository(ctrl)
			svc := NewProductService(repo)

			in := validProductInput()
			mutate(&in)
			_, err := svc.Create(t.Context(), in)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestProductServiceCreatePropagatesConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repogomock.NewMockProductRepository(ctrl)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(repository.ErrPromotionReferenceMissing)
	svc := NewProductService(repo)

	if _, err := svc.Create(t.Context(), validProductInput()); !errors.Is(err, repository.ErrPromotionReferenceMissing) {
		t.Fatalf("expected ErrPromotionReferenceMissing, got %v", err)
	}
}

func TestProductServiceFindByName(t *testing.T) {
	t.Run("blank name is rejected without a query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewProductService(repogomock.NewMockProductRepository(ctrl))
		_, err := svc.FindByName(t.Context(), " ")
		if !IsValidationError(err) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("not found passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repogomock.NewMockProductRepository(ctrl)
		repo.EXPECT().FindByName(gomock.Any(), "Mouse").Return(nil, repository.ErrProductNotFound)
		svc := NewProductService(repo)
		if _, err := svc.FindByName(t.Context(), "Mouse"); !errors.Is(err, repository.ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})
}

func TestProductServiceListAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repogomock.NewMockProductRepository(ctrl)
	repo.EXPECT().List(gomock.Any()).Return([]domain.ProductListing{{Product: domain.Product{ID: 1, Name: "Mouse"}}}, nil)
	repo.EXPECT().DeleteByID(gomock.Any(), uint(1)).Return(nil)
	svc := NewProductService(repo)

	items, err := svc.List(t.Context())
	if err != nil || len(items) != 1 {
		t.Fatalf("List: items=%v err=%v", items, err)
	}
	if err := svc.DeleteByID(t.Context(), 1); err != nil {
		t.Fatalf("DeleteByID: %v", err)
	}
	if err := svc.DeleteByID(t.Context(), 0); !IsValidationError(err) {
		t.Fatalf("expected ValidationError for zero id, got %v", err)
	}
}
