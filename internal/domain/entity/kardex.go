package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de kardex.
const (
	MovementTypeENTRADA       = "ENTRADA"       // entrada por compra recibida
	MovementTypeSALIDA        = "SALIDA"        // salida por venta/retiro
	MovementTypeAJUSTE        = "AJUSTE"        // ajuste manual con motivo
	MovementTypeTRANSFERENCIA = "TRANSFERENCIA" // traslado entre sedes
)

// Motivos de retiro/salida.
const (
	WithdrawalReasonVENTA      = "VENTA"
	WithdrawalReasonGARANTIA   = "GARANTIA"
	WithdrawalReasonMUESTRA    = "MUESTRA"
	WithdrawalReasonTRASLADO   = "TRASLADO"
	WithdrawalReasonDEVOLUCION = "DEVOLUCION"
	WithdrawalReasonOTRO       = "OTRO" // exige nota obligatoria
)

// KardexMovement es un registro inmutable del kardex: toda mutación de Stock queda
// auditada aquí. Nunca se edita ni se borra.
// Invariante: StockAfter = StockBefore + Quantity (Quantity con signo según el tipo).
type KardexMovement struct {
	ID          string
	ProductID   string
	SedeID      string
	Type        string
	Quantity    decimal.Decimal // positiva en entradas, negativa en salidas
	UnitCost    decimal.Decimal
	StockBefore decimal.Decimal
	StockAfter  decimal.Decimal
	Reference   string // documento de origen: id de compra, retiro, traslado
	Reason      string // motivo (obligatorio en AJUSTE y en retiros OTRO)
	Date        time.Time
	CreatedAt   time.Time
	CreatedBy   string // UserID que originó el movimiento
}

// ValidWithdrawalReason indica si el motivo de retiro es uno de los conocidos.
func ValidWithdrawalReason(reason string) bool {
	switch reason {
	case WithdrawalReasonVENTA, WithdrawalReasonGARANTIA, WithdrawalReasonMUESTRA,
		WithdrawalReasonTRASLADO, WithdrawalReasonDEVOLUCION, WithdrawalReasonOTRO:
		return true
	}
	return false
}
