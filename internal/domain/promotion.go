package domain

import "time"

type Promotion struct {
	ID          uint      `gorm:"column:pk_promocao;primaryKey"`
	Name        string    `gorm:"column:nome;size:140;not null;index"`
	PublishedAt time.Time `gorm:"column:data_publicacao;autoCreateTime;not null"`
	Publisher   string    `gorm:"column:divulgador;size:100;not null"`
	URL         string    `gorm:"column:url;size:200;not null"`
}

func (Promotion) TableName() string { return "promocao" }

// PromotionWithProducts is the read-side view of a promotion and the products
// referencing it, ordered by product id.
type PromotionWithProducts struct {
	Promotion
	Products []Product
}
