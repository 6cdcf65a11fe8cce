package domain

type Product struct {
	ID          uint     `gorm:"column:pk_produto;primaryKey"`
	Name        string   `gorm:"column:nome;size:140;not null;index"`
	Price       *float64 `gorm:"column:valor"`
	Category    *string  `gorm:"column:categoria;size:100"`
	PromotionID *uint    `gorm:"column:promocao_id;index"`
}

func (Product) TableName() string { return "produto" }

// ProductListing is a product joined with the URL of its promotion, if any.
type ProductListing struct {
	Product
	PromotionURL *string `gorm:"column:url_promocao"`
}
