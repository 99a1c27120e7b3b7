package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un repuesto del catálogo. El stock se maneja por sede en Stock;
// no existe cantidad a nivel de producto.
type Product struct {
	ID            string
	Code          string // código único del repuesto
	Name          string
	Description   string
	CategoryID    string
	SubcategoryID string // vacío si no aplica
	BrandID       string
	CostPrice     decimal.Decimal // costo, >= 0
	SalePrice     decimal.Decimal // precio de venta, >= 0
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Margin devuelve el margen (venta - costo) / costo. Cero si el costo es cero.
func (p *Product) Margin() decimal.Decimal {
	if p.CostPrice.IsZero() {
		return decimal.Zero
	}
	return p.SalePrice.Sub(p.CostPrice).Div(p.CostPrice)
}
