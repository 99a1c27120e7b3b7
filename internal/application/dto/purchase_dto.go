package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseLineRequest línea de compra entrante.
type PurchaseLineRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
}

// CreatePurchaseRequest body para POST /api/compras. La compra nace PENDIENTE
// y registrarla no afecta stock.
type CreatePurchaseRequest struct {
	SupplierID    string                `json:"supplier_id"`
	SedeID        string                `json:"sede_id"`
	InvoiceNumber string                `json:"invoice_number,omitempty"`
	Notes         string                `json:"notes,omitempty"`
	Lines         []PurchaseLineRequest `json:"lines"`
}

// ChangePurchaseStatusRequest body para PUT /api/compras/:id/estado.
type ChangePurchaseStatusRequest struct {
	Status string `json:"status"` // PENDIENTE, RECIBIDA, COMPLETADA
}

// PurchaseInvoiceRequest body para PUT /api/compras/:id/factura.
type PurchaseInvoiceRequest struct {
	InvoiceNumber string `json:"invoice_number"`
	InvoiceFile   string `json:"invoice_file,omitempty"`
}

// PurchaseLineResponse línea de compra expuesta.
type PurchaseLineResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// PurchaseResponse representación de una compra.
type PurchaseResponse struct {
	ID            string                 `json:"id"`
	SupplierID    string                 `json:"supplier_id"`
	SedeID        string                 `json:"sede_id"`
	Status        string                 `json:"status"`
	InvoiceNumber string                 `json:"invoice_number,omitempty"`
	InvoiceFile   string                 `json:"invoice_file,omitempty"`
	Notes         string                 `json:"notes,omitempty"`
	Lines         []PurchaseLineResponse `json:"lines"`
	Total         decimal.Decimal        `json:"total"`
	CreatedAt     time.Time              `json:"created_at"`
}
