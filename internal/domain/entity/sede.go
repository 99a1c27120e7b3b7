package entity

import "time"

// Sede representa una sucursal física. Es la clave de partición de Stock y Compras.
type Sede struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
