package database

import (
	"context"
	"time"

	"github.com/sandeepkv93/promo-catalog-service/internal/domain"
	"github.com/sandeepkv93/promo-catalog-service/internal/observability"

	"gorm.io/gorm"
)

// CatalogTables names the tables Migrate manages, parent first.
func CatalogTables() []string {
	return []string{domain.Promotion{}.TableName(), domain.Product{}.TableName()}
}

// productTable is the produto schema as migrated: the Promotion field only
// exists so AutoMigrate declares the ON DELETE SET NULL foreign key.
type productTable struct {
	domain.Product
	Promotion *domain.Promotion `gorm:"foreignKey:PromotionID;references:ID;constraint:OnDelete:SET NULL"`
}

func (productTable) TableName() string { return domain.Product{}.TableName() }

// Migrate creates the promocao and produto tables and the
// produto.promocao_id foreign key when they do not exist yet.
func Migrate(db *gorm.DB) error {
	start := time.Now()
	defer func() {
		observability.RecordDatabaseStartupDuration(context.Background(), "migrate", time.Since(start))
	}()

	if err := db.AutoMigrate(&domain.Promotion{}, &productTable{}); err != nil {
		observability.RecordDatabaseStartupEvent(context.Background(), "migrate", "error")
		return err
	}
	observability.RecordDatabaseStartupEvent(context.Background(), "migrate", "success")
	return nil
}
