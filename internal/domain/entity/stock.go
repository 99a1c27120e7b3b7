package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock representa la existencia de un producto en una sede.
// Quantity solo cambia vía movimientos de kardex (compra recibida, ajuste, retiro, traslado).
type Stock struct {
	ProductID string
	SedeID    string
	Quantity  decimal.Decimal // >= 0 siempre
	Minimum   decimal.Decimal // stock mínimo para alerta de reposición
	Location  string          // ubicación física dentro de la sede (estante, pasillo)
	UpdatedAt time.Time
}
