package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// KardexQueryRequest query params para GET /api/kardex.
type KardexQueryRequest struct {
	ProductID string `query:"producto_id"`
	SedeID    string `query:"sede_id"`
	Type      string `query:"tipo"`
	From      string `query:"desde"` // formato 2006-01-02
	To        string `query:"hasta"`
	Limit     int    `query:"limit"`
	Offset    int    `query:"offset"`
}

// KardexMovementDTO movimiento del kardex tal como se expone.
type KardexMovementDTO struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	SedeID      string          `json:"sede_id"`
	Type        string          `json:"type"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	StockBefore decimal.Decimal `json:"stock_before"`
	StockAfter  decimal.Decimal `json:"stock_after"`
	Reference   string          `json:"reference,omitempty"`
	Reason      string          `json:"reason,omitempty"`
	Date        time.Time       `json:"date"`
	CreatedBy   string          `json:"created_by,omitempty"`
}

// KardexTypeSummary agregado por tipo de movimiento sobre el filtro actual.
type KardexTypeSummary struct {
	Type     string          `json:"type"`
	Count    int             `json:"count"`
	Quantity decimal.Decimal `json:"quantity"` // suma con signo
	Value    decimal.Decimal `json:"value"`    // suma de cantidad × costo unitario
}

// KardexResponse respuesta de GET /api/kardex: movimientos más resumen por tipo.
type KardexResponse struct {
	Movements []KardexMovementDTO `json:"movements"`
	Summary   []KardexTypeSummary `json:"summary"`
}
