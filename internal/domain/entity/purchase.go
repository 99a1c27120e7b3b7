package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una compra.
const (
	PurchaseStatusPENDIENTE  = "PENDIENTE"  // registrada, sin efecto en stock
	PurchaseStatusRECIBIDA   = "RECIBIDA"   // mercancía ingresada al stock
	PurchaseStatusCOMPLETADA = "COMPLETADA" // cierre administrativo
)

// Purchase representa una orden de compra a un proveedor para una sede.
// Registrarla NUNCA afecta stock; el stock entra únicamente al pasar a RECIBIDA.
type Purchase struct {
	ID            string
	SupplierID    string
	SedeID        string
	Status        string
	InvoiceNumber string
	InvoiceFile   string // referencia al archivo adjunto, vacío si no hay
	Notes         string
	Lines         []PurchaseLine
	CreatedAt     time.Time
	UpdatedAt     time.Time
	CreatedBy     string
}

// PurchaseLine es una línea de compra: producto, cantidad y costo unitario.
type PurchaseLine struct {
	ID         string
	PurchaseID string
	ProductID  string
	Quantity   decimal.Decimal // > 0
	UnitCost   decimal.Decimal // >= 0
}

// Total devuelve la suma de cantidad × costo unitario de todas las líneas.
func (p *Purchase) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range p.Lines {
		total = total.Add(l.Quantity.Mul(l.UnitCost))
	}
	return total
}
