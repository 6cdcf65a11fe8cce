package repository

import (
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sandeepkv93/promo-catalog-service/internal/database"
	"github.com/sandeepkv93/promo-catalog-service/internal/domain"
)

func newRepositoryDBForTest(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := database.SQLiteDSN(filepath.Join(t.TempDir(), "catalog.db"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func assertNoConnectionsInUse(t *testing.T, db *gorm.DB) {
	t.Helper()
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	if inUse := sqlDB.Stats().InUse; inUse != 0 {
		t.Fatalf("expected all connections released, %d still in use", inUse)
	}
}

func mustCreatePromotion(t *testing.T, repo PromotionRepository, name string, productNames ...string) *domain.PromotionWithProducts {
	t.Helper()
	p := &domain.PromotionWithProducts{
		Promotion: domain.Promotion{Name: name, Publisher: "LojaX", URL: "http://x/" + name},
	}
	for _, n := range productNames {
		p.Products = append(p.Products, domain.Product{Name: n})
	}
	if err := repo.Create(t.Context(), p); err != nil {
		t.Fatalf("create promotion %q: %v", name, err)
	}
	return p
}

func ptr[T any](v T) *T { return &v }
