package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jdrosales/autopartes-api/internal/application/dto"
	"github.com/jdrosales/autopartes-api/internal/domain"
	"github.com/jdrosales/autopartes-api/internal/domain/entity"
	"github.com/jdrosales/autopartes-api/internal/domain/repository"
)

// StockUseCase ejecuta los comandos que mutan stock fuera del ciclo de compras:
// ajustes manuales, retiros (venta, garantía, muestra...) y traslados entre sedes.
// Toda mutación corre en transacción con bloqueo de fila (SELECT FOR UPDATE) y
// deja su movimiento de kardex; el stock nunca cambia sin movimiento.
type StockUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	sedeRepo    repository.SedeRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(txRunner TxRunner, productRepo repository.ProductRepository, sedeRepo repository.SedeRepository) *StockUseCase {
	return &StockUseCase{txRunner: txRunner, productRepo: productRepo, sedeRepo: sedeRepo}
}

// Adjust registra un ajuste manual: delta con signo distinto de cero y motivo
// obligatorio. La cantidad resultante nunca puede quedar negativa.
func (uc *StockUseCase) Adjust(ctx context.Context, userID string, in dto.AdjustStockRequest) error {
	if in.ProductID == "" || in.SedeID == "" {
		return domain.ErrInvalidInput
	}
	if in.Quantity.IsZero() {
		return domain.ErrInvalidInput
	}
	if strings.TrimSpace(in.Reason) == "" {
		return domain.ErrInvalidInput
	}
	product, err := uc.lookupProductAndSede(in.ProductID, in.SedeID)
	if err != nil {
		return err
	}

	now := time.Now()
	return uc.txRunner.Run(ctx, func(kardexRepo repository.KardexRepository, stockRepo repository.StockRepository) error {
		stock, err := stockRepo.GetForUpdate(in.ProductID, in.SedeID)
		if err != nil {
			return err
		}
		newQty := stock.Quantity.Add(in.Quantity)
		if newQty.IsNegative() {
			return domain.ErrInsufficientStock
		}
		mov := &entity.KardexMovement{
			ID:          uuid.New().String(),
			ProductID:   in.ProductID,
			SedeID:      in.SedeID,
			Type:        entity.MovementTypeAJUSTE,
			Quantity:    in.Quantity,
			UnitCost:    product.CostPrice,
			StockBefore: stock.Quantity,
			StockAfter:  newQty,
			Reason:      strings.TrimSpace(in.Reason),
			Date:        now,
			CreatedAt:   now,
			CreatedBy:   userID,
		}
		stock.Quantity = newQty
		stock.UpdatedAt = now
		if err := stockRepo.Upsert(stock); err != nil {
			return err
		}
		return kardexRepo.Create(mov)
	})
}

// Withdraw registra un retiro de una sede: una o más líneas con un motivo común.
// Si alguna línea excede el stock disponible, no se aplica nada.
func (uc *StockUseCase) Withdraw(ctx context.Context, userID string, in dto.WithdrawalRequest) error {
	if in.SedeID == "" || len(in.Lines) == 0 {
		return domain.ErrInvalidInput
	}
	if !entity.ValidWithdrawalReason(in.Reason) {
		return domain.ErrInvalidInput
	}
	if in.Reason == entity.WithdrawalReasonOTRO && strings.TrimSpace(in.Note) == "" {
		return domain.ErrInvalidInput
	}
	for _, line := range in.Lines {
		if line.ProductID == "" || !line.Quantity.GreaterThan(decimal.Zero) {
			return domain.ErrInvalidInput
		}
	}
	sede, err := uc.sedeRepo.GetByID(in.SedeID)
	if err != nil {
		return err
	}
	if sede == nil {
		return domain.ErrNotFound
	}
	products := make(map[string]*entity.Product, len(in.Lines))
	for _, line := range in.Lines {
		product, err := uc.productRepo.GetByID(line.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		products[line.ProductID] = product
	}

	reason := in.Reason
	if note := strings.TrimSpace(in.Note); note != "" {
		reason = in.Reason + ": " + note
	}
	now := time.Now()
	withdrawalID := uuid.New().String()

	return uc.txRunner.Run(ctx, func(kardexRepo repository.KardexRepository, stockRepo repository.StockRepository) error {
		for _, line := range in.Lines {
			stock, err := stockRepo.GetForUpdate(line.ProductID, in.SedeID)
			if err != nil {
				return err
			}
			if stock.Quantity.LessThan(line.Quantity) {
				return domain.ErrInsufficientStock
			}
			newQty := stock.Quantity.Sub(line.Quantity)
			mov := &entity.KardexMovement{
				ID:          uuid.New().String(),
				ProductID:   line.ProductID,
				SedeID:      in.SedeID,
				Type:        entity.MovementTypeSALIDA,
				Quantity:    line.Quantity.Neg(),
				UnitCost:    products[line.ProductID].CostPrice,
				StockBefore: stock.Quantity,
				StockAfter:  newQty,
				Reference:   withdrawalID,
				Reason:      reason,
				Date:        now,
				CreatedAt:   now,
				CreatedBy:   userID,
			}
			stock.Quantity = newQty
			stock.UpdatedAt = now
			if err := stockRepo.Upsert(stock); err != nil {
				return err
			}
			if err := kardexRepo.Create(mov); err != nil {
				return err
			}
		}
		return nil
	})
}

// Transfer traslada cantidad de un producto entre dos sedes: resta en origen,
// suma en destino y deja dos movimientos TRANSFERENCIA en la misma transacción.
func (uc *StockUseCase) Transfer(ctx context.Context, userID string, in dto.TransferStockRequest) error {
	if in.ProductID == "" || in.FromSedeID == "" || in.ToSedeID == "" {
		return domain.ErrInvalidInput
	}
	if in.FromSedeID == in.ToSedeID || !in.Quantity.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	fromSede, err := uc.sedeRepo.GetByID(in.FromSedeID)
	if err != nil {
		return err
	}
	toSede, err := uc.sedeRepo.GetByID(in.ToSedeID)
	if err != nil {
		return err
	}
	if fromSede == nil || toSede == nil {
		return domain.ErrNotFound
	}

	now := time.Now()
	transferID := uuid.New().String()

	return uc.txRunner.Run(ctx, func(kardexRepo repository.KardexRepository, stockRepo repository.StockRepository) error {
		// Las filas se bloquean en orden de sede, no de sentido: dos traslados
		// concurrentes en sentidos opuestos no pueden quedar en deadlock.
		first, second := in.FromSedeID, in.ToSedeID
		if second < first {
			first, second = second, first
		}
		locked := make(map[string]*entity.Stock, 2)
		for _, sedeID := range []string{first, second} {
			s, err := stockRepo.GetForUpdate(in.ProductID, sedeID)
			if err != nil {
				return err
			}
			locked[sedeID] = s
		}
		origin, dest := locked[in.FromSedeID], locked[in.ToSedeID]
		if origin.Quantity.LessThan(in.Quantity) {
			return domain.ErrInsufficientStock
		}

		outMov := &entity.KardexMovement{
			ID:          uuid.New().String(),
			ProductID:   in.ProductID,
			SedeID:      in.FromSedeID,
			Type:        entity.MovementTypeTRANSFERENCIA,
			Quantity:    in.Quantity.Neg(),
			UnitCost:    product.CostPrice,
			StockBefore: origin.Quantity,
			StockAfter:  origin.Quantity.Sub(in.Quantity),
			Reference:   transferID,
			Reason:      "traslado a sede " + toSede.Name,
			Date:        now,
			CreatedAt:   now,
			CreatedBy:   userID,
		}
		inMov := &entity.KardexMovement{
			ID:          uuid.New().String(),
			ProductID:   in.ProductID,
			SedeID:      in.ToSedeID,
			Type:        entity.MovementTypeTRANSFERENCIA,
			Quantity:    in.Quantity,
			UnitCost:    product.CostPrice,
			StockBefore: dest.Quantity,
			StockAfter:  dest.Quantity.Add(in.Quantity),
			Reference:   transferID,
			Reason:      "traslado desde sede " + fromSede.Name,
			Date:        now,
			CreatedAt:   now,
			CreatedBy:   userID,
		}

		origin.Quantity = outMov.StockAfter
		origin.UpdatedAt = now
		dest.Quantity = inMov.StockAfter
		dest.UpdatedAt = now
		if err := stockRepo.Upsert(origin); err != nil {
			return err
		}
		if err := stockRepo.Upsert(dest); err != nil {
			return err
		}
		if err := kardexRepo.Create(outMov); err != nil {
			return err
		}
		return kardexRepo.Create(inMov)
	})
}

func (uc *StockUseCase) lookupProductAndSede(productID, sedeID string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	sede, err := uc.sedeRepo.GetByID(sedeID)
	if err != nil {
		return nil, err
	}
	if sede == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}
