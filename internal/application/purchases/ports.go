package purchases

import (
	"context"

	"github.com/jdrosales/autopartes-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Una transición de estado aplica compra, stock y kardex de forma
// atómica: o todo, o nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		purchaseRepo repository.PurchaseRepository,
		kardexRepo repository.KardexRepository,
		stockRepo repository.StockRepository,
	) error) error
}
