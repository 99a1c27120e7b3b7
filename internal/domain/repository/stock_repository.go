package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jdrosales/autopartes-api/internal/domain/entity"
)

// StockRepository define el puerto para consultar/actualizar stock por sede+producto.
// Usado dentro de transacciones para garantizar consistencia.
type StockRepository interface {
	Get(productID, sedeID string) (*entity.Stock, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(productID, sedeID string) (*entity.Stock, error)
	Upsert(stock *entity.Stock) error
	// SetMinimum actualiza stock mínimo y ubicación sin tocar la cantidad.
	SetMinimum(productID, sedeID string, minimum decimal.Decimal, location string) error
	ListByProduct(productID string) ([]*entity.Stock, error)
	ListBySede(sedeID string, limit, offset int) ([]*entity.Stock, error)
	// ListLow devuelve filas con 0 < cantidad <= mínimo. SedeID vacío = todas las sedes.
	ListLow(sedeID string) ([]*entity.Stock, error)
	// ListZero devuelve filas con cantidad == 0. SedeID vacío = todas las sedes.
	ListZero(sedeID string) ([]*entity.Stock, error)
}
