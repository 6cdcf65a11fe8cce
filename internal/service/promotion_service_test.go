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

func validPromotionInput() CreatePromotionInput {
	return CreatePromotionInput{
		Name:      ptr("Black Friday"),
		Publisher: ptr("LojaX"),
		URL:       ptr("http://x"),
		Products:  []NestedProductInput{{Name: ptr("Mouse")}, {Name: ptr("Teclado")}},
	}
}

func TestPromotionServiceCreateBuildsNestedProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repogomock.NewMockPromotionRepository(ctrl)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *domain.PromotionWithProducts) error {
		if p.Name != "Black Friday" || p.Publisher != "LojaX" || p.URL != "http://x" {
			t.Fatalf("unexpected promotion: %+v", p.Promotion)
		}
		if len(p.Products) != 2 || p.Products[0].Name != "Mouse" || p.Products[1].Name != "Teclado" {
			t.Fatalf("unexpected nested products: %+v", p.Products)
		}
		for _, np := range p.Products {
			if np.Price != nil || np.Category != nil {
				t.Fatalf("nested product should carry only a name: %+v", np)
			}
		}
		p.ID = 7
		return nil
	})
	svc := NewPromotionService(repo)

	created, err := svc.Create(t.Context(), validPromotionInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID != 7 {
		t.Fatalf("expected id 7, got %d", created.ID)
	}
}

func TestPromotionServiceCreateWithoutProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repogomock.NewMockPromotionRepository(ctrl)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	svc := NewPromotionService(repo)

	in := validPromotionInput()
	in.Products = nil
	if _, err := svc.Create(t.Context(), in); err != nil {
		t.Fatalf("Create: %v", err)
	}
}

func TestPromotionServiceCreateValidationNamesField(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreatePromotionInput)
		field  string
	}{
		{"missing nome", func(in *CreatePromotionInput) { in.Name = nil }, "nome"},
		{"blank divulgador", func(in *CreatePromotionInput) { in.Publisher = ptr(" ") }, "divulgador"},
		{"missing url", func(in *CreatePromotionInput) { in.URL = nil }, "url"},
		{"blank nested name", func(in *CreatePromotionInput) { in.Products[1].Name = ptr("") }, "produtos.nome"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := NewPromotionService(repogomock.NewMockPromotionRepository(ctrl))

			in := validPromotionInput()
			tc.mutate(&in)
			_, err := svc.Create(t.Context(), in)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, ve.Field)
			}
			if want := "O campo '" + tc.field + "' é obrigatório"; ve.Message != want {
				t.Fatalf("expected message %q, got %q", want, ve.Message)
			}
		})
	}
}

func TestPromotionServiceFindAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repogomock.NewMockPromotionRepository(ctrl)
	repo.EXPECT().FindByName(gomock.Any(), "Natal").Return(nil, repository.ErrPromotionNotFound)
	repo.EXPECT().DeleteByID(gomock.Any(), uint(3)).Return(repository.ErrPromotionNotFound)
	repo.EXPECT().List(gomock.Any()).Return([]domain.PromotionWithProducts{}, nil)
	svc := NewPromotionService(repo)

	if _, err := svc.FindByName(t.Context(), "Natal"); !errors.Is(err, repository.ErrPromotionNotFound) {
		t.Fatalf("expected ErrPromotionNotFound, got %v", err)
	}
	if _, err := svc.FindByName(t.Context(), ""); !IsValidationError(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if err := svc.DeleteByID(t.Context(), 3); !errors.Is(err, repository.ErrPromotionNotFound) {
		t.Fatalf("expected ErrPromotionNotFound, got %v", err)
	}
	if err := svc.DeleteByID(t.Context(), 0); !IsValidationError(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	items, err := svc.List(t.Context())
	if err != nil || len(items) != 0 {
		t.Fatalf("List: items=%v err=%v", items, err)
	}
}
