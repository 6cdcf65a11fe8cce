package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/sandeepkv93/promo-catalog-service/internal/observability"
)

var (
	ErrProductNotFound           = errors.New("product not found")
	ErrPromotionNotFound         = errors.New("promotion not found")
	ErrPromotionReferenceMissing = errors.New("referenced promotion does not exist")
)

// withConn runs fn on a single pooled connection and hands it back to the
// pool before returning, whatever fn does. conn is a NewDB session, so each
// chained query on it starts from an empty statement.
func withConn(ctx context.Context, db *gorm.DB, fn func(conn *gorm.DB) error) error {
	return db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		return fn(conn.Session(&gorm.Session{NewDB: true}))
	})
}

func recordOutcome(ctx context.Context, repo, op string, err error, notFound ...error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
		for _, nf := range notFound {
			if errors.Is(err, nf) {
				outcome = "not_found"
				break
			}
		}
		if errors.Is(err, ErrPromotionReferenceMissing) {
			outcome = "conflict"
		}
	}
	observability.RecordRepositoryOperation(ctx, repo, op, outcome)
}
