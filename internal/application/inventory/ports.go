package inventory

import (
	"context"

	"github.com/jdrosales/autopartes-api/internal/application/dto"
	"github.com/jdrosales/autopartes-api/internal/domain/entity"
	"github.com/jdrosales/autopartes-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza atomicidad: o se aplican stock y kardex juntos, o nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		kardexRepo repository.KardexRepository,
		stockRepo repository.StockRepository,
	) error) error
}

// KardexPDFGenerator genera el documento PDF de un extracto de kardex.
// El resultado es un binario opaco que el cliente descarga tal cual.
type KardexPDFGenerator interface {
	GenerateKardexPDF(ctx context.Context, movements []*entity.KardexMovement, summary []dto.KardexTypeSummary) ([]byte, error)
}
