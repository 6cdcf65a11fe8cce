package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/sandeepkv93/promo-catalog-service/internal/domain"
)

type PromotionRepository interface {
	List(ctx context.Context) ([]domain.PromotionWithProducts, error)
	FindByName(ctx context.Context, name string) (*domain.PromotionWithProducts, error)
	Create(ctx context.Context, promotion *domain.PromotionWithProducts) error
	DeleteByID(ctx context.Context, id uint) error
}

type GormPromotionRepository struct{ db *gorm.DB }

func NewPromotionRepository(db *gorm.DB) PromotionRepository {
	return &GormPromotionRepository{db: db}
}

func (r *GormPromotionRepository) List(ctx context.Context) (out []domain.PromotionWithProducts, err error) {
	defer func() { recordOutcome(ctx, "promotion", "list", err) }()

	err = withConn(ctx, r.db, func(conn *gorm.DB) error {
		var promotions []domain.Promotion
		if err := conn.Order("pk_promocao").Find(&promotions).Error; err != nil {
			return err
		}
		withProducts, err := attachProducts(conn, promotions)
		if err != nil {
			return err
		}
		out = withProducts
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FindByName returns the oldest promotion whose name matches exactly,
// together with its products.
func (r *GormPromotionRepository) FindByName(ctx context.Context, name string) (out *domain.PromotionWithProducts, err error) {
	defer func() { recordOutcome(ctx, "promotion", "find_by_name", err, ErrPromotionNotFound) }()

	err = withConn(ctx, r.db, func(conn *gorm.DB) error {
		var promotion domain.Promotion
		if err := conn.Where("nome = ?", name).Order("pk_promocao").First(&promotion).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPromotionNotFound
			}
			return err
		}
		withProducts, err := attachProducts(conn, []domain.Promotion{promotion})
		if err != nil {
			return err
		}
		out = &withProducts[0]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Create stores the promotion and then its products, all linked to the new
// promotion id, in one transaction. Ids are written back into promotion.
func (r *GormPromotionRepository) Create(ctx context.Context, promotion *domain.PromotionWithProducts) (err error) {
	defer func() { recordOutcome(ctx, "promotion", "create", err) }()

	return withConn(ctx, r.db, func(conn *gorm.DB) error {
		return conn.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&promotion.Promotion).Error; err != nil {
				return err
			}
			if len(promotion.Products) == 0 {
				return nil
			}
			for i := range promotion.Products {
				id := promotion.Promotion.ID
				promotion.Products[i].PromotionID = &id
			}
			return tx.Create(&promotion.Products).Error
		})
	})
}

// DeleteByID removes the promotion. Products that referenced it are kept with
// promocao_id set to NULL.
func (r *GormPromotionRepository) DeleteByID(ctx context.Context, id uint) (err error) {
	defer func() { recordOutcome(ctx, "promotion", "delete_by_id", err, ErrPromotionNotFound) }()

	return withConn(ctx, r.db, func(conn *gorm.DB) error {
		return conn.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&domain.Product{}).
				Where("promocao_id = ?", id).
				Update("promocao_id", nil).Error; err != nil {
				return err
			}
			res := tx.Delete(&domain.Promotion{}, id)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrPromotionNotFound
			}
			return nil
		})
	})
}

func attachProducts(conn *gorm.DB, promotions []domain.Promotion) ([]domain.PromotionWithProducts, error) {
	out := make([]domain.PromotionWithProducts, 0, len(promotions))
	if len(promotions) == 0 {
		return out, nil
	}
	ids := make([]uint, 0, len(promotions))
	for _, p := range promotions {
		ids = append(ids, p.ID)
	}

	var products []domain.Product
	if err := conn.Where("promocao_id IN ?", ids).Order("pk_produto").Find(&products).Error; err != nil {
		return nil, err
	}
	byPromotion := make(map[uint][]domain.Product, len(promotions))
	for _, p := range products {
		byPromotion[*p.PromotionID] = append(byPromotion[*p.PromotionID], p)
	}
	for _, p := range promotions {
		items := byPromotion[p.ID]
		if items == nil {
			items = []domain.Product{}
		}
		out = append(out, domain.PromotionWithProducts{Promotion: p, Products: items})
	}
	return out, nil
}
