package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Product mueble o artículo de decoración del catálogo.
type Product struct {
	ID          string
	Name        string
	Slug        string
	Description string
	Price       decimal.Decimal
	SalePrice   *decimal.Decimal // precio de oferta; nil si no aplica
	InStock     bool
	Featured    bool
	Images      []string
	Dimensions  json.RawMessage // {"width":..,"height":..,"depth":..,"unit":"cm"}
	Materials   []string
	Colors      []string
	CategoryIDs []string // relación muchos-a-muchos (product_categories)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EffectivePrice precio de venta vigente: oferta si existe, si no precio de lista.
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.SalePrice != nil && p.SalePrice.IsPositive() {
		return *p.SalePrice
	}
	return p.Price
}
