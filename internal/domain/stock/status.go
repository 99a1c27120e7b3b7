// Package stock contiene las reglas de clasificación de existencias.
// Es la única fuente de verdad del estado de stock: dashboard, listados de
// productos, pantalla de ventas y pantalla de stock deben usar Classify.
package stock

import "github.com/shopspring/decimal"

// Estados de stock por producto+sede (y para el total entre sedes).
const (
	StatusSinStock  = "SIN_STOCK"  // cantidad == 0
	StatusStockBajo = "STOCK_BAJO" // 0 < cantidad <= mínimo
	StatusEnStock   = "EN_STOCK"   // cantidad > mínimo
)

// Classify clasifica una cantidad frente a su mínimo.
// El límite bajo es inclusivo: cantidad == mínimo es STOCK_BAJO.
func Classify(quantity, minimum decimal.Decimal) string {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return StatusSinStock
	}
	if quantity.LessThanOrEqual(minimum) {
		return StatusStockBajo
	}
	return StatusEnStock
}
