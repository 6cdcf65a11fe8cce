package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/sandeepkv93/promo-catalog-service/internal/domain"
)

//go:generate mockgen -destination=gomock/catalog_repository_mock.go -package=gomock . ProductRepository,PromotionRepository

const productListingColumns = "produto.pk_produto, produto.nome, produto.valor, produto.categoria, produto.promocao_id, promocao.url AS url_promocao"

type ProductRepository interface {
	List(ctx context.Context) ([]domain.ProductListing, error)
	FindByName(ctx context.Context, name string) (*domain.ProductListing, error)
	Create(ctx context.Context, product *domain.Product) error
	DeleteByID(ctx context.Context, id uint) error
}

type GormProductRepository struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &GormProductRepository{db: db}
}

func listingQuery(conn *gorm.DB) *gorm.DB {
	return conn.Table("produto").
		Select(productListingColumns).
		Joins("LEFT JOIN promocao ON promocao.pk_promocao = produto.promocao_id")
}

func (r *GormProductRepository) List(ctx context.Context) (out []domain.ProductListing, err error) {
	defer func() { recordOutcome(ctx, "product", "list", err) }()

	out = []domain.ProductListing{}
	err = withConn(ctx, r.db, func(conn *gorm.DB) error {
		return listingQuery(conn).Order("produto.pk_produto").Scan(&out).Error
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FindByName returns the oldest product whose name matches exactly.
func (r *GormProductRepository) FindByName(ctx context.Context, name string) (out *domain.ProductListing, err error) {
	defer func() { recordOutcome(ctx, "product", "find_by_name", err, ErrProductNotFound) }()

	var rows []domain.ProductListing
	err = withConn(ctx, r.db, func(conn *gorm.DB) error {
		return listingQuery(conn).
			Where("produto.nome = ?", name).
			Order("produto.pk_produto").
			Limit(1).
			Scan(&rows).Error
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrProductNotFound
	}
	return &rows[0], nil
}

// Create inserts product and assigns its id. A promotion id that does not
// resolve to a stored promotion yields ErrPromotionReferenceMissing.
func (r *GormProductRepository) Create(ctx context.Context, product *domain.Product) (err error) {
	defer func() { recordOutcome(ctx, "product", "create", err) }()

	return withConn(ctx, r.db, func(conn *gorm.DB) error {
		return conn.Transaction(func(tx *gorm.DB) error {
			if product.PromotionID != nil {
				if err := ensurePromotionExists(tx, *product.PromotionID); err != nil {
					return err
				}
			}
			if err := tx.Create(product).Error; err != nil {
				if errors.Is(err, gorm.ErrForeignKeyViolated) {
					return ErrPromotionReferenceMissing
				}
				return err
			}
			return nil
		})
	})
}

func (r *GormProductRepository) DeleteByID(ctx context.Context, id uint) (err error) {
	defer func() { recordOutcome(ctx, "product", "delete_by_id", err, ErrProductNotFound) }()

	return withConn(ctx, r.db, func(conn *gorm.DB) error {
		res := conn.Delete(&domain.Product{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrProductNotFound
		}
		return nil
	})
}

func ensurePromotionExists(tx *gorm.DB, id uint) error {
	var count int64
	if err := tx.Model(&domain.Promotion{}).Where("pk_promocao = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrPromotionReferenceMissing
	}
	return nil
}
