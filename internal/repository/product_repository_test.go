package repository

import (
	"errors"
	"testing"

	"github.com/sandeepkv93/promo-catalog-service/internal/domain"
)

func TestProductRepositoryCreateListAndFind(t *testing.T) {
	db := newRepositoryDBForTest(t)
	products := NewProductRepository(db)
	promotions := NewPromotionRepository(db)
	ctx := t.Context()

	promo := mustCreatePromotion(t, promotions, "Black Friday")

	linked := &domain.Product{Name: "Mouse", Price: ptr(49.9), Category: ptr("Informática"), PromotionID: ptr(promo.ID)}
	if err := products.Create(ctx, linked); err != nil {
		t.Fatalf("create linked product: %v", err)
	}
	loose := &domain.Product{Name: "Cabo", Price: ptr(0.0), Category: ptr("Acessórios")}
	if err := products.Create(ctx, loose); err != nil {
		t.Fatalf("create unlinked product: %v", err)
	}
	if linked.ID == 0 || loose.ID == 0 || linked.ID == loose.ID {
		t.Fatalf("expected distinct assigned ids, got %d and %d", linked.ID, loose.ID)
	}

	list, err := products.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 products, got %d", len(list))
	}
	if list[0].ID != linked.ID || list[0].PromotionURL == nil || *list[0].PromotionURL != promo.URL {
		t.Fatalf("expected first listing joined with promotion url, got %+v", list[0])
	}
	if list[1].PromotionURL != nil {
		t.Fatalf("expected no promotion url for unlinked product, got %q", *list[1].PromotionURL)
	}

	found, err := products.FindByName(ctx, "Mouse")
	if err != nil {
		t.Fatalf("find by name: %v", err)
	}
	if found.ID != linked.ID || *found.Price != 49.9 || *found.Category != "Informática" {
		t.Fatalf("unexpected found product: %+v", found)
	}
	assertNoConnectionsInUse(t, db)
}

func TestProductRepositoryListEmpty(t *testing.T) {
	db := newRepositoryDBForTest(t)
	list, err := NewProductRepository(db).List(t.Context())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", list)
	}
}

func TestProductRepositoryFindByNameIsExactAndFirstByInsertion(t *testing.T) {
	db := newRepositoryDBForTest(t)
	repo := NewProductRepository(db)
	ctx := t.Context()

	first := &domain.Product{Name: "Mouse", Price: ptr(1.0), Category: ptr("a")}
	second := &domain.Product{Name: "Mouse", Price: ptr(2.0), Category: ptr("b")}
	for _, p := range []*domain.Product{first, second} {
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	got, err := repo.FindByName(ctx, "Mouse")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.ID != first.ID {
		t.Fatalf("expected oldest duplicate id=%d, got %d", first.ID, got.ID)
	}

	for _, miss := range []string{"mouse", "MOUSE", "Mous", "Mouse "} {
		if _, err := repo.FindByName(ctx, miss); !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound for %q, got %v", miss, err)
		}
	}
}

func TestProductRepositoryCreateRejectsUnknownPromotion(t *testing.T) {
	db := newRepositoryDBForTest(t)
	repo := NewProductRepository(db)
	ctx := t.Context()

	err := repo.Create(ctx, &domain.Product{Name: "Mouse", Price: ptr(1.0), Category: ptr("a"), PromotionID: ptr(uint(404))})
	if !errors.Is(err, ErrPromotionReferenceMissing) {
		t.Fatalf("expected ErrPromotionReferenceMissing, got %v", err)
	}
	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected no rows after rejected create, got %d", len(list))
	}
	assertNoConnectionsInUse(t, db)
}

func TestProductRepositoryDeleteByID(t *testing.T) {
	db := newRepositoryDBForTest(t)
	repo := NewProductRepository(db)
	ctx := t.Context()

	p := &domain.Product{Name: "Mouse", Price: ptr(1.0), Category: ptr("a")}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.DeleteByID(ctx, p.ID+100); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected store unchanged after missed delete, got %d rows", len(list))
	}

	if err := repo.DeleteByID(ctx, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.FindByName(ctx, "Mouse"); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
	assertNoConnectionsInUse(t, db)
}
