package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdrosales/autopartes-api/internal/application/dto"
	"github.com/jdrosales/autopartes-api/internal/application/inventory"
	"github.com/jdrosales/autopartes-api/internal/domain"
	"github.com/jdrosales/autopartes-api/internal/domain/entity"
	"github.com/jdrosales/autopartes-api/internal/domain/repository"
)

func mov(typ string, qty, cost int64) *entity.KardexMovement {
	return &entity.KardexMovement{
		Type:     typ,
		Quantity: decimal.NewFromInt(qty),
		UnitCost: decimal.NewFromInt(cost),
	}
}

// El resumen agrupa por tipo: conteo, suma de cantidad con signo y valor.
func TestSummarize_AgrupaPorTipo(t *testing.T) {
	movements := []*entity.KardexMovement{
		mov(entity.MovementTypeENTRADA, 10, 5),
		mov(entity.MovementTypeENTRADA, 4, 6),
		mov(entity.MovementTypeSALIDA, -3, 5),
		mov(entity.MovementTypeAJUSTE, -1, 5),
	}
	summary := inventory.Summarize(movements)
	require.Len(t, summary, 3)

	entrada := summary[0]
	assert.Equal(t, entity.MovementTypeENTRADA, entrada.Type)
	assert.Equal(t, 2, entrada.Count)
	assert.True(t, entrada.Quantity.Equal(decimal.NewFromInt(14)))
	assert.True(t, entrada.Value.Equal(decimal.NewFromInt(74)), "10×5 + 4×6")

	salida := summary[1]
	assert.Equal(t, entity.MovementTypeSALIDA, salida.Type)
	assert.True(t, salida.Quantity.Equal(decimal.NewFromInt(-3)))
	assert.True(t, salida.Value.Equal(decimal.NewFromInt(-15)))

	ajuste := summary[2]
	assert.Equal(t, entity.MovementTypeAJUSTE, ajuste.Type)
	assert.True(t, ajuste.Quantity.Equal(decimal.NewFromInt(-1)))
}

func TestSummarize_Vacio(t *testing.T) {
	assert.Empty(t, inventory.Summarize(nil))
}

// Ley de replay: aplicar en orden la cantidad con signo de cada movimiento sobre
// el stock inicial reproduce exactamente el stock final, y cada movimiento
// encadena StockBefore con el StockAfter del anterior.
func TestReplay_ReproduceStockFinal(t *testing.T) {
	uc, stockRepo, kardexRepo := newStockFixture()
	stockRepo.seed(prodP1, sedeB1, 20, 5)
	ctx := context.Background()

	require.NoError(t, uc.Adjust(ctx, testUserID, dto.AdjustStockRequest{
		ProductID: prodP1, SedeID: sedeB1, Quantity: d(5), Reason: "conteo",
	}))
	require.NoError(t, uc.Withdraw(ctx, testUserID, dto.WithdrawalRequest{
		SedeID: sedeB1,
		Lines:  []dto.WithdrawalLineRequest{{ProductID: prodP1, Quantity: d(8)}},
		Reason: entity.WithdrawalReasonVENTA,
	}))
	require.NoError(t, uc.Transfer(ctx, testUserID, dto.TransferStockRequest{
		ProductID: prodP1, FromSedeID: sedeB1, ToSedeID: sedeB2, Quantity: d(2),
	}))
	require.NoError(t, uc.Adjust(ctx, testUserID, dto.AdjustStockRequest{
		ProductID: prodP1, SedeID: sedeB1, Quantity: d(-3), Reason: "merma",
	}))

	movements, err := kardexRepo.List(repository.KardexFilter{ProductID: prodP1, SedeID: sedeB1})
	require.NoError(t, err)
	require.Len(t, movements, 4)

	replayed := d(20)
	prev := d(20)
	for _, m := range movements {
		assert.True(t, m.StockBefore.Equal(prev), "StockBefore debe encadenar con el StockAfter anterior")
		assert.True(t, m.StockAfter.Equal(m.StockBefore.Add(m.Quantity)), "StockAfter = StockBefore + cantidad")
		replayed = replayed.Add(m.Quantity)
		prev = m.StockAfter
	}
	assert.True(t, replayed.Equal(stockRepo.qty(prodP1, sedeB1)), "el replay debe reproducir el stock actual")
	assert.True(t, replayed.Equal(d(12)), "20 +5 -8 -2 -3")
}

// Query filtra por tipo y parsea fechas; fechas malformadas → ValidationError.
func TestKardexQuery_FiltrosYFechas(t *testing.T) {
	kardexRepo := &memKardexRepo{}
	kuc := inventory.NewKardexUseCase(kardexRepo, nil)
	ctx := context.Background()

	kardexRepo.movements = []*entity.KardexMovement{
		mov(entity.MovementTypeENTRADA, 10, 5),
		mov(entity.MovementTypeSALIDA, -2, 5),
	}

	out, err := kuc.Query(ctx, dto.KardexQueryRequest{Type: entity.MovementTypeENTRADA})
	require.NoError(t, err)
	require.Len(t, out.Movements, 1)
	require.Len(t, out.Summary, 1)
	assert.Equal(t, entity.MovementTypeENTRADA, out.Summary[0].Type)

	_, err = kuc.Query(ctx, dto.KardexQueryRequest{Type: "VENTAS"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = kuc.Query(ctx, dto.KardexQueryRequest{From: "01/02/2026"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = kuc.Query(ctx, dto.KardexQueryRequest{From: "2026-02-01", To: "2026-02-28"})
	assert.NoError(t, err)
}

// El CSV exporta cabecera + una fila por movimiento.
func TestKardexExportCSV(t *testing.T) {
	kardexRepo := &memKardexRepo{}
	kuc := inventory.NewKardexUseCase(kardexRepo, nil)

	kardexRepo.movements = []*entity.KardexMovement{
		mov(entity.MovementTypeENTRADA, 10, 5),
		mov(entity.MovementTypeSALIDA, -2, 5),
	}
	raw, err := kuc.ExportCSV(context.Background(), dto.KardexQueryRequest{})
	require.NoError(t, err)

	lines := 0
	for _, b := range raw {
		if b == '\n' {
			lines++
		}
	}
	assert.Equal(t, 3, lines, "cabecera + 2 movimientos")
}
