package purchases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jdrosales/autopartes-api/internal/application/dto"
	"github.com/jdrosales/autopartes-api/internal/domain"
	"github.com/jdrosales/autopartes-api/internal/domain/entity"
	"github.com/jdrosales/autopartes-api/internal/domain/purchase"
	"github.com/jdrosales/autopartes-api/internal/domain/repository"
)

// PurchaseUseCase ciclo de vida de compras: registro (neutral en stock),
// transiciones de estado con sus efectos de inventario, factura y eliminación.
type PurchaseUseCase struct {
	txRunner     TxRunner
	purchaseRepo repository.PurchaseRepository
	supplierRepo repository.SupplierRepository
	sedeRepo     repository.SedeRepository
	productRepo  repository.ProductRepository
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(
	txRunner TxRunner,
	purchaseRepo repository.PurchaseRepository,
	supplierRepo repository.SupplierRepository,
	sedeRepo repository.SedeRepository,
	productRepo repository.ProductRepository,
) *PurchaseUseCase {
	return &PurchaseUseCase{
		txRunner:     txRunner,
		purchaseRepo: purchaseRepo,
		supplierRepo: supplierRepo,
		sedeRepo:     sedeRepo,
		productRepo:  productRepo,
	}
}

// Create registra una compra en PENDIENTE. No toca stock ni kardex: la mercancía
// entra al inventario únicamente cuando la compra pasa a RECIBIDA.
func (uc *PurchaseUseCase) Create(ctx context.Context, userID string, in dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	if in.SupplierID == "" || in.SedeID == "" || len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, line := range in.Lines {
		if line.ProductID == "" || !line.Quantity.GreaterThan(decimal.Zero) || line.UnitCost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	sede, err := uc.sedeRepo.GetByID(in.SedeID)
	if err != nil {
		return nil, err
	}
	if sede == nil {
		return nil, domain.ErrNotFound
	}
	for _, line := range in.Lines {
		product, err := uc.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	p := &entity.Purchase{
		ID:            uuid.New().String(),
		SupplierID:    in.SupplierID,
		SedeID:        in.SedeID,
		Status:        entity.PurchaseStatusPENDIENTE,
		InvoiceNumber: in.InvoiceNumber,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
		CreatedBy:     userID,
	}
	for _, line := range in.Lines {
		p.Lines = append(p.Lines, entity.PurchaseLine{
			ID:         uuid.New().String(),
			PurchaseID: p.ID,
			ProductID:  line.ProductID,
			Quantity:   line.Quantity,
			UnitCost:   line.UnitCost,
		})
	}
	if err := uc.purchaseRepo.Create(p); err != nil {
		return nil, err
	}
	return ToPurchaseResponse(p), nil
}

// ChangeStatus aplica una transición del ciclo de vida con sus efectos de stock:
//
//   - PENDIENTE→RECIBIDA: suma cada línea al stock de la sede y deja un
//     movimiento ENTRADA por línea. Única arista que infla inventario.
//   - RECIBIDA→COMPLETADA y COMPLETADA→RECIBIDA: administrativas, sin stock.
//   - reapertura a PENDIENTE desde RECIBIDA/COMPLETADA: revierte el stock con un
//     movimiento AJUSTE negativo por línea; si alguna línea no alcanza, la
//     transición completa falla con ErrInsufficientStock.
//
// Todo corre en una transacción con la fila de la compra bloqueada.
func (uc *PurchaseUseCase) ChangeStatus(ctx context.Context, userID, purchaseID, newStatus string) error {
	if purchaseID == "" || !purchase.ValidStatus(newStatus) {
		return domain.ErrInvalidInput
	}
	now := time.Now()

	return uc.txRunner.Run(ctx, func(
		purchaseRepo repository.PurchaseRepository,
		kardexRepo repository.KardexRepository,
		stockRepo repository.StockRepository,
	) error {
		p, err := purchaseRepo.GetByIDForUpdate(purchaseID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		if !purchase.CanTransition(p.Status, newStatus) {
			return domain.ErrInvalidTransition
		}

		switch {
		case purchase.AppliesStock(p.Status, newStatus):
			if err := uc.applyLines(kardexRepo, stockRepo, p, userID, now); err != nil {
				return err
			}
		case purchase.ReversesStock(p.Status, newStatus):
			if err := uc.reverseLines(kardexRepo, stockRepo, p, userID, now); err != nil {
				return err
			}
		}
		return purchaseRepo.UpdateStatus(p.ID, newStatus)
	})
}

// applyLines suma cada línea al stock y deja un movimiento ENTRADA por línea.
func (uc *PurchaseUseCase) applyLines(
	kardexRepo repository.KardexRepository,
	stockRepo repository.StockRepository,
	p *entity.Purchase,
	userID string,
	now time.Time,
) error {
	for _, line := range p.Lines {
		stock, err := stockRepo.GetForUpdate(line.ProductID, p.SedeID)
		if err != nil {
			return err
		}
		newQty := stock.Quantity.Add(line.Quantity)
		mov := &entity.KardexMovement{
			ID:          uuid.New().String(),
			ProductID:   line.ProductID,
			SedeID:      p.SedeID,
			Type:        entity.MovementTypeENTRADA,
			Quantity:    line.Quantity,
			UnitCost:    line.UnitCost,
			StockBefore: stock.Quantity,
			StockAfter:  newQty,
			Reference:   p.ID,
			Reason:      "compra recibida",
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
}

// reverseLines revierte el stock ya aplicado de una compra reabierta con un
// AJUSTE negativo por línea. Si alguna línea dejaría stock negativo, no se
// revierte nada (la tx hace rollback).
func (uc *PurchaseUseCase) reverseLines(
	kardexRepo repository.KardexRepository,
	stockRepo repository.StockRepository,
	p *entity.Purchase,
	userID string,
	now time.Time,
) error {
	for _, line := range p.Lines {
		stock, err := stockRepo.GetForUpdate(line.ProductID, p.SedeID)
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
			SedeID:      p.SedeID,
			Type:        entity.MovementTypeAJUSTE,
			Quantity:    line.Quantity.Neg(),
			UnitCost:    line.UnitCost,
			StockBefore: stock.Quantity,
			StockAfter:  newQty,
			Reference:   p.ID,
			Reason:      "reapertura de compra",
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
}

// Delete elimina una compra. Solo permitido en PENDIENTE; el chequeo y el
// borrado corren en la misma transacción con la fila bloqueada, para que una
// recepción concurrente no pueda colarse entre ambos.
func (uc *PurchaseUseCase) Delete(ctx context.Context, purchaseID string) error {
	return uc.txRunner.Run(ctx, func(
		purchaseRepo repository.PurchaseRepository,
		_ repository.KardexRepository,
		_ repository.StockRepository,
	) error {
		p, err := purchaseRepo.GetByIDForUpdate(purchaseID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		if !purchase.CanDelete(p.Status) {
			return domain.ErrPurchaseNotPending
		}
		return purchaseRepo.Delete(purchaseID)
	})
}

// GetByID devuelve una compra con sus líneas, o nil si no existe.
func (uc *PurchaseUseCase) GetByID(ctx context.Context, purchaseID string) (*dto.PurchaseResponse, error) {
	p, err := uc.purchaseRepo.GetByID(purchaseID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return ToPurchaseResponse(p), nil
}

// List lista compras por sede y/o estado.
func (uc *PurchaseUseCase) List(ctx context.Context, sedeID, status string, limit, offset int) ([]*dto.PurchaseResponse, error) {
	if status != "" && !purchase.ValidStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.purchaseRepo.List(sedeID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PurchaseResponse, 0, len(list))
	for _, p := range list {
		out = append(out, ToPurchaseResponse(p))
	}
	return out, nil
}

// SetInvoice adjunta número y archivo de factura a la compra.
func (uc *PurchaseUseCase) SetInvoice(ctx context.Context, purchaseID string, in dto.PurchaseInvoiceRequest) error {
	if in.InvoiceNumber == "" {
		return domain.ErrInvalidInput
	}
	p, err := uc.purchaseRepo.GetByID(purchaseID)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.purchaseRepo.UpdateInvoice(purchaseID, in.InvoiceNumber, in.InvoiceFile)
}

// ToPurchaseResponse mapea la entidad al DTO de respuesta.
func ToPurchaseResponse(p *entity.Purchase) *dto.PurchaseResponse {
	out := &dto.PurchaseResponse{
		ID:            p.ID,
		SupplierID:    p.SupplierID,
		SedeID:        p.SedeID,
		Status:        p.Status,
		InvoiceNumber: p.InvoiceNumber,
		InvoiceFile:   p.InvoiceFile,
		Notes:         p.Notes,
		Total:         p.Total(),
		CreatedAt:     p.CreatedAt,
	}
	for _, l := range p.Lines {
		out.Lines = append(out.Lines, dto.PurchaseLineResponse{
			ID:        l.ID,
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitCost:  l.UnitCost,
			Subtotal:  l.Quantity.Mul(l.UnitCost),
		})
	}
	return out
}
