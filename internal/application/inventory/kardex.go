package inventory

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jdrosales/autopartes-api/internal/application/dto"
	"github.com/jdrosales/autopartes-api/internal/domain"
	"github.com/jdrosales/autopartes-api/internal/domain/entity"
	"github.com/jdrosales/autopartes-api/internal/domain/repository"
)

// summaryOrder orden fijo de los tipos en el resumen.
var summaryOrder = []string{
	entity.MovementTypeENTRADA,
	entity.MovementTypeSALIDA,
	entity.MovementTypeAJUSTE,
	entity.MovementTypeTRANSFERENCIA,
}

// KardexUseCase consultas y exportación del kardex. Solo lectura: los movimientos
// se crean como efecto de compras, ajustes, retiros y traslados, nunca aquí.
type KardexUseCase struct {
	kardexRepo repository.KardexRepository
	pdfGen     KardexPDFGenerator
}

// NewKardexUseCase construye el caso de uso.
func NewKardexUseCase(kardexRepo repository.KardexRepository, pdfGen KardexPDFGenerator) *KardexUseCase {
	return &KardexUseCase{kardexRepo: kardexRepo, pdfGen: pdfGen}
}

// Query devuelve los movimientos filtrados más el resumen por tipo sobre ese filtro.
func (uc *KardexUseCase) Query(ctx context.Context, in dto.KardexQueryRequest) (*dto.KardexResponse, error) {
	filter, err := buildFilter(in)
	if err != nil {
		return nil, err
	}
	movements, err := uc.kardexRepo.List(filter)
	if err != nil {
		return nil, err
	}
	out := &dto.KardexResponse{
		Movements: make([]dto.KardexMovementDTO, 0, len(movements)),
		Summary:   Summarize(movements),
	}
	for _, m := range movements {
		out.Movements = append(out.Movements, toMovementDTO(m))
	}
	return out, nil
}

// ExportCSV genera el extracto filtrado como CSV descargable.
func (uc *KardexUseCase) ExportCSV(ctx context.Context, in dto.KardexQueryRequest) ([]byte, error) {
	filter, err := buildFilter(in)
	if err != nil {
		return nil, err
	}
	filter.Limit = 0 // exportar todo el rango filtrado
	movements, err := uc.kardexRepo.List(filter)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	header := []string{"fecha", "tipo", "producto", "sede", "cantidad", "costo_unitario", "stock_anterior", "stock_nuevo", "referencia", "motivo", "usuario"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("export csv: %w", err)
	}
	for _, m := range movements {
		record := []string{
			m.Date.Format("2006-01-02 15:04:05"),
			m.Type,
			m.ProductID,
			m.SedeID,
			m.Quantity.String(),
			m.UnitCost.String(),
			m.StockBefore.String(),
			m.StockAfter.String(),
			m.Reference,
			m.Reason,
			m.CreatedBy,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("export csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("export csv: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportPDF genera el extracto filtrado como PDF descargable.
func (uc *KardexUseCase) ExportPDF(ctx context.Context, in dto.KardexQueryRequest) ([]byte, error) {
	filter, err := buildFilter(in)
	if err != nil {
		return nil, err
	}
	filter.Limit = 0
	movements, err := uc.kardexRepo.List(filter)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateKardexPDF(ctx, movements, Summarize(movements))
}

// Summarize agrega los movimientos por tipo: conteo, suma de cantidad (con signo)
// y suma de cantidad × costo unitario. Solo incluye tipos presentes.
func Summarize(movements []*entity.KardexMovement) []dto.KardexTypeSummary {
	byType := make(map[string]*dto.KardexTypeSummary)
	for _, m := range movements {
		s, ok := byType[m.Type]
		if !ok {
			s = &dto.KardexTypeSummary{Type: m.Type, Quantity: decimal.Zero, Value: decimal.Zero}
			byType[m.Type] = s
		}
		s.Count++
		s.Quantity = s.Quantity.Add(m.Quantity)
		s.Value = s.Value.Add(m.Quantity.Mul(m.UnitCost))
	}
	out := make([]dto.KardexTypeSummary, 0, len(byType))
	for _, t := range summaryOrder {
		if s, ok := byType[t]; ok {
			out = append(out, *s)
		}
	}
	return out
}

func buildFilter(in dto.KardexQueryRequest) (repository.KardexFilter, error) {
	filter := repository.KardexFilter{
		ProductID: in.ProductID,
		SedeID:    in.SedeID,
		Type:      in.Type,
		Limit:     in.Limit,
		Offset:    in.Offset,
	}
	if in.Type != "" {
		switch in.Type {
		case entity.MovementTypeENTRADA, entity.MovementTypeSALIDA, entity.MovementTypeAJUSTE, entity.MovementTypeTRANSFERENCIA:
		default:
			return filter, domain.ErrInvalidInput
		}
	}
	if in.From != "" {
		from, err := time.Parse("2006-01-02", in.From)
		if err != nil {
			return filter, domain.ErrInvalidInput
		}
		filter.From = &from
	}
	if in.To != "" {
		to, err := time.Parse("2006-01-02", in.To)
		if err != nil {
			return filter, domain.ErrInvalidInput
		}
		// rango inclusivo hasta el final del día
		to = to.Add(24*time.Hour - time.Nanosecond)
		filter.To = &to
	}
	return filter, nil
}

func toMovementDTO(m *entity.KardexMovement) dto.KardexMovementDTO {
	return dto.KardexMovementDTO{
		ID:          m.ID,
		ProductID:   m.ProductID,
		SedeID:      m.SedeID,
		Type:        m.Type,
		Quantity:    m.Quantity,
		UnitCost:    m.UnitCost,
		StockBefore: m.StockBefore,
		StockAfter:  m.StockAfter,
		Reference:   m.Reference,
		Reason:      m.Reason,
		Date:        m.Date,
		CreatedBy:   m.CreatedBy,
	}
}
