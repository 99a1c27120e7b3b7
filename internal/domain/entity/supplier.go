package entity

import "time"

// Supplier representa un proveedor de repuestos.
type Supplier struct {
	ID        string
	TaxID     string // NIT/RUC
	Name      string // razón social
	Contact   string
	Phone     string
	Email     string
	Address   string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
