package dto

import "github.com/shopspring/decimal"

// AdjustStockRequest body para POST /api/stock/ajuste.
// Quantity lleva signo: positiva suma, negativa resta. Reason es obligatorio.
type AdjustStockRequest struct {
	ProductID string          `json:"product_id"`
	SedeID    string          `json:"sede_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Reason    string          `json:"reason"`
}

// TransferStockRequest body para POST /api/stock/transferencia.
type TransferStockRequest struct {
	ProductID  string          `json:"product_id"`
	FromSedeID string          `json:"from_sede_id"`
	ToSedeID   string          `json:"to_sede_id"`
	Quantity   decimal.Decimal `json:"quantity"`
}

// SetMinimumRequest body para PUT /api/stock/minimo.
type SetMinimumRequest struct {
	ProductID string          `json:"product_id"`
	SedeID    string          `json:"sede_id"`
	Minimum   decimal.Decimal `json:"minimum"`
	Location  string          `json:"location,omitempty"`
}

// StockResponse fila de stock con estado clasificado.
type StockResponse struct {
	ProductID string          `json:"product_id"`
	SedeID    string          `json:"sede_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Minimum   decimal.Decimal `json:"minimum"`
	Location  string          `json:"location,omitempty"`
	Status    string          `json:"status"`
}

// WithdrawalLineRequest línea de un retiro.
type WithdrawalLineRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// WithdrawalRequest body para POST /api/retiros. Un retiro agrupa salidas de una
// sola sede en un solo evento (venta, garantía, muestra, etc.).
// Note es obligatoria cuando Reason es OTRO.
type WithdrawalRequest struct {
	SedeID string                  `json:"sede_id"`
	Lines  []WithdrawalLineRequest `json:"lines"`
	Reason string                  `json:"reason"`
	Note   string                  `json:"note,omitempty"`
}
