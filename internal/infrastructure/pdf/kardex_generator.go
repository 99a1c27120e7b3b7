package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jdrosales/autopartes-api/internal/application/dto"
	"github.com/jdrosales/autopartes-api/internal/application/inventory"
	"github.com/jdrosales/autopartes-api/internal/domain/entity"
)

// KardexGenerator implementa inventory.KardexPDFGenerator usando Maroto v2.
type KardexGenerator struct{}

// NewKardexGenerator construye el generador.
func NewKardexGenerator() *KardexGenerator { return &KardexGenerator{} }

var _ inventory.KardexPDFGenerator = (*KardexGenerator)(nil)

// GenerateKardexPDF genera el extracto de kardex y devuelve sus bytes.
func (g *KardexGenerator) GenerateKardexPDF(_ context.Context, movements []*entity.KardexMovement, summary []dto.KardexTypeSummary) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Kardex", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kardexHeaderRow())
	for _, mov := range movements {
		m.AddRows(kardexMovementRow(mov))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, s := range summary {
		m.AddRows(summaryRow(s))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar kardex: %w", err)
	}
	return doc.GetBytes(), nil
}

func titleRow() core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("Extracto de Kardex", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
	)
}

// kardexHeaderRow: Fecha | Tipo | Cant | Costo | Antes | Después | Referencia.
func kardexHeaderRow() core.Row {
	header := func(size int, label string) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary,
		}))
	}
	return row.New(6).Add(
		header(2, "Fecha"),
		header(2, "Tipo"),
		header(1, "Cant"),
		header(1, "Costo"),
		header(1, "Antes"),
		header(1, "Después"),
		header(4, "Referencia / Motivo"),
	)
}

func kardexMovementRow(mov *entity.KardexMovement) core.Row {
	cell := func(size int, value string, a align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 7, Align: a}))
	}
	ref := mov.Reference
	if mov.Reason != "" {
		if ref != "" {
			ref += " · "
		}
		ref += mov.Reason
	}
	return row.New(5).Add(
		cell(2, mov.Date.Format("02/01/2006 15:04"), align.Left),
		cell(2, mov.Type, align.Left),
		cell(1, mov.Quantity.String(), align.Right),
		cell(1, mov.UnitCost.StringFixed(2), align.Right),
		cell(1, mov.StockBefore.String(), align.Right),
		cell(1, mov.StockAfter.String(), align.Right),
		cell(4, truncate(ref, 60), align.Left),
	)
}

func summaryRow(s dto.KardexTypeSummary) core.Row {
	return row.New(5).Add(
		col.New(2).Add(text.New(s.Type, props.Text{Size: 8, Style: fontstyle.Bold})),
		col.New(2).Add(text.New(fmt.Sprintf("%d movs", s.Count), props.Text{Size: 8, Align: align.Right})),
		col.New(2).Add(text.New(s.Quantity.String(), props.Text{Size: 8, Align: align.Right})),
		col.New(2).Add(text.New(s.Value.StringFixed(2), props.Text{Size: 8, Align: align.Right})),
	)
}
