// Package presenter maps catalog records to the JSON shapes served by the
// HTTP API. Every function here is pure.
package presenter

import (
	"strconv"
	"strings"

	"github.com/sandeepkv93/promo-catalog-service/internal/domain"
)

const PublishedAtLayout = "2006-01-02 15:04:05"

type ProductView struct {
	ID           uint     `json:"id"`
	Name         string   `json:"nome"`
	Price        *float64 `json:"valor"`
	Category     *string  `json:"categoria"`
	PromotionID  *uint    `json:"promocao_id"`
	PromotionURL *string  `json:"url_promocao,omitempty"`
}

type ProductSearchView struct {
	ID           uint     `json:"id_produto"`
	Name         string   `json:"nome"`
	Category     *string  `json:"categoria"`
	Price        *float64 `json:"valor"`
	PromotionURL *string  `json:"url_promocao"`
}

type ProductShortView struct {
	ID          uint    `json:"pk_produto"`
	Name        string  `json:"nome"`
	Price       *string `json:"valor"`
	Category    *string `json:"categoria"`
	PromotionID *uint   `json:"promocao_id"`
}

type PromotionView struct {
	ID          uint               `json:"pk_promocao"`
	Name        string             `json:"nome"`
	PublishedAt string             `json:"data_publicacao"`
	Publisher   string             `json:"divulgador"`
	URL         string             `json:"url"`
	Products    []ProductShortView `json:"produtos"`
}

func Product(p domain.Product) ProductView {
	return ProductView{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Category:    p.Category,
		PromotionID: p.PromotionID,
	}
}

// ProductListing adds url_promocao only when the product is linked to a
// stored promotion.
func ProductListing(l domain.ProductListing) ProductView {
	v := Product(l.Product)
	if l.PromotionID != nil && l.PromotionURL != nil {
		v.PromotionURL = l.PromotionURL
	}
	return v
}

func ProductListings(items []domain.ProductListing) []ProductView {
	out := make([]ProductView, 0, len(items))
	for _, l := range items {
		out = append(out, ProductListing(l))
	}
	return out
}

func ProductSearch(l domain.ProductListing) ProductSearchView {
	return ProductSearchView{
		ID:           l.ID,
		Name:         l.Name,
		Category:     l.Category,
		Price:        l.Price,
		PromotionURL: l.PromotionURL,
	}
}

func ProductShort(p domain.Product) ProductShortView {
	var price *string
	if p.Price != nil {
		s := FormatPrice(*p.Price)
		price = &s
	}
	return ProductShortView{
		ID:          p.ID,
		Name:        p.Name,
		Price:       price,
		Category:    p.Category,
		PromotionID: p.PromotionID,
	}
}

func Promotion(pw domain.PromotionWithProducts) PromotionView {
	products := make([]ProductShortView, 0, len(pw.Products))
	for _, p := range pw.Products {
		products = append(products, ProductShort(p))
	}
	return PromotionView{
		ID:          pw.ID,
		Name:        pw.Name,
		PublishedAt: pw.PublishedAt.Format(PublishedAtLayout),
		Publisher:   pw.Publisher,
		URL:         pw.URL,
		Products:    products,
	}
}

func Promotions(items []domain.PromotionWithProducts) []PromotionView {
	out := make([]PromotionView, 0, len(items))
	for _, pw := range items {
		out = append(out, Promotion(pw))
	}
	return out
}

// FormatPrice renders a price in shortest decimal form, keeping one decimal
// place for integral values: 10 -> "10.0", 49.9 -> "49.9".
func FormatPrice(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") && !strings.Contains(s, "Inf") && !strings.Contains(s, "NaN") {
		s += ".0"
	}
	return s
}
