package repository

import (
	"time"

	"github.com/jdrosales/autopartes-api/internal/domain/entity"
)

// KardexFilter filtros de consulta del kardex. Campos vacíos/nil no filtran.
type KardexFilter struct {
	ProductID string
	SedeID    string
	Type      string
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

// KardexRepository define el puerto de persistencia del kardex.
// Solo append y lectura: los movimientos nunca se editan ni se borran.
type KardexRepository interface {
	Create(movement *entity.KardexMovement) error
	// List devuelve movimientos en orden cronológico ascendente.
	List(filter KardexFilter) ([]*entity.KardexMovement, error)
}
