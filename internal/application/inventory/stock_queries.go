package inventory

import (
	"context"

	"github.com/jdrosales/autopartes-api/internal/application/dto"
	"github.com/jdrosales/autopartes-api/internal/domain"
	"github.com/jdrosales/autopartes-api/internal/domain/entity"
	"github.com/jdrosales/autopartes-api/internal/domain/repository"
	"github.com/jdrosales/autopartes-api/internal/domain/stock"
)

// StockQueryUseCase consultas de stock por sede y mantenimiento de mínimos.
// Las lecturas van directo al pool; nunca mutan cantidades.
type StockQueryUseCase struct {
	stockRepo repository.StockRepository
}

// NewStockQueryUseCase construye el caso de uso.
func NewStockQueryUseCase(stockRepo repository.StockRepository) *StockQueryUseCase {
	return &StockQueryUseCase{stockRepo: stockRepo}
}

// ListBySede lista el stock de una sede con su estado clasificado.
func (uc *StockQueryUseCase) ListBySede(ctx context.Context, sedeID string, limit, offset int) ([]dto.StockResponse, error) {
	if sedeID == "" {
		return nil, domain.ErrInvalidInput
	}
	rows, err := uc.stockRepo.ListBySede(sedeID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toStockResponses(rows), nil
}

// ListLow lista las filas con 0 < cantidad <= mínimo. SedeID vacío = todas las sedes.
func (uc *StockQueryUseCase) ListLow(ctx context.Context, sedeID string) ([]dto.StockResponse, error) {
	rows, err := uc.stockRepo.ListLow(sedeID)
	if err != nil {
		return nil, err
	}
	return toStockResponses(rows), nil
}

// ListZero lista las filas agotadas. SedeID vacío = todas las sedes.
func (uc *StockQueryUseCase) ListZero(ctx context.Context, sedeID string) ([]dto.StockResponse, error) {
	rows, err := uc.stockRepo.ListZero(sedeID)
	if err != nil {
		return nil, err
	}
	return toStockResponses(rows), nil
}

// SetMinimum fija stock mínimo y ubicación de un producto en una sede.
func (uc *StockQueryUseCase) SetMinimum(ctx context.Context, in dto.SetMinimumRequest) error {
	if in.ProductID == "" || in.SedeID == "" || in.Minimum.IsNegative() {
		return domain.ErrInvalidInput
	}
	return uc.stockRepo.SetMinimum(in.ProductID, in.SedeID, in.Minimum, in.Location)
}

func toStockResponses(rows []*entity.Stock) []dto.StockResponse {
	out := make([]dto.StockResponse, 0, len(rows))
	for _, s := range rows {
		out = append(out, dto.StockResponse{
			ProductID: s.ProductID,
			SedeID:    s.SedeID,
			Quantity:  s.Quantity,
			Minimum:   s.Minimum,
			Location:  s.Location,
			Status:    stock.Classify(s.Quantity, s.Minimum),
		})
	}
	return out
}
