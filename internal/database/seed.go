package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sandeepkv93/promo-catalog-service/internal/domain"
	"github.com/sandeepkv93/promo-catalog-service/internal/observability"

	"gorm.io/gorm"
)

type SeedPromotion struct {
	Name      string
	Publisher string
	URL       string
	Products  []SeedProduct
}

type SeedProduct struct {
	Name     string
	Price    float64
	Category string
}

// DemoCatalog is the data applied by the seed tool.
var DemoCatalog = []SeedPromotion{
	{
		Name:      "Black Friday",
		Publisher: "LojaX",
		URL:       "https://lojax.example.com/black-friday",
		Products: []SeedProduct{
			{Name: "Mouse", Price: 49.9, Category: "Informática"},
			{Name: "Teclado", Price: 129.0, Category: "Informática"},
		},
	},
	{
		Name:      "Semana do Consumidor",
		Publisher: "MercadoY",
		URL:       "https://mercadoy.example.com/consumidor",
		Products: []SeedProduct{
			{Name: "Cafeteira", Price: 199.9, Category: "Eletroportáteis"},
		},
	},
}

type SeedReport struct {
	CreatedPromotions int  `json:"created_promotions"`
	CreatedProducts   int  `json:"created_products"`
	Noop              bool `json:"noop"`
}

// Seed inserts each promotion in catalog, with its products, unless a
// promotion with the same name is already stored. Each promotion is written
// in its own transaction.
func Seed(ctx context.Context, db *gorm.DB, catalog []SeedPromotion) (*SeedReport, error) {
	start := time.Now()
	defer func() {
		observability.RecordDatabaseStartupDuration(ctx, "seed", time.Since(start))
	}()

	report := &SeedReport{}
	for _, sp := range catalog {
		err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var existing domain.Promotion
			err := tx.Where("nome = ?", sp.Name).Order("pk_promocao").First(&existing).Error
			if err == nil {
				return nil
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			promo := domain.Promotion{Name: sp.Name, Publisher: sp.Publisher, URL: sp.URL}
			if err := tx.Create(&promo).Error; err != nil {
				return fmt.Errorf("create promotion %q: %w", sp.Name, err)
			}
			report.CreatedPromotions++
			for _, p := range sp.Products {
				price := p.Price
				category := p.Category
				product := domain.Product{Name: p.Name, Price: &price, Category: &category, PromotionID: &promo.ID}
				if err := tx.Create(&product).Error; err != nil {
					return fmt.Errorf("create product %q: %w", p.Name, err)
				}
				report.CreatedProducts++
			}
			return nil
		})
		if err != nil {
			observability.RecordDatabaseStartupEvent(ctx, "seed", "error")
			return nil, err
		}
	}

	report.Noop = report.CreatedPromotions == 0
	observability.RecordDatabaseStartupEvent(ctx, "seed", "success")
	return report, nil
}
