package entity

import "time"

// Category representa una categoría de repuestos. ParentID vacío si es raíz;
// las subcategorías son categorías con ParentID.
type Category struct {
	ID        string
	ParentID  string
	Name      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Brand representa una marca de repuestos.
type Brand struct {
	ID        string
	Name      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
