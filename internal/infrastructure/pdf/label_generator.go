// Package pdf implementa la generación de documentos con Maroto v2:
// etiquetas de productos con código de barras Code-128 y extractos de kardex.
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/barcode"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jdrosales/autopartes-api/internal/application/labels"
)

const labelsPerRow = 3

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// LabelGenerator implementa labels.LabelPDFGenerator usando Maroto v2.
// Imprime etiquetas en cuadrícula de 3 columnas sobre A4.
type LabelGenerator struct{}

// NewLabelGenerator construye el generador.
func NewLabelGenerator() *LabelGenerator { return &LabelGenerator{} }

var _ labels.LabelPDFGenerator = (*LabelGenerator)(nil)

// GenerateLabels genera el PDF de etiquetas y devuelve sus bytes.
func (g *LabelGenerator) GenerateLabels(_ context.Context, items []labels.LabelItem) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(8).WithBottomMargin(8).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Etiquetas de productos", true).
		Build()

	m := maroto.New(cfg)

	for start := 0; start < len(items); start += labelsPerRow {
		end := start + labelsPerRow
		if end > len(items) {
			end = len(items)
		}
		m.AddRows(labelRow(items[start:end]))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar etiquetas: %w", err)
	}
	return doc.GetBytes(), nil
}

// labelRow: hasta 3 etiquetas por fila, cada una con barcode + nombre + precio.
func labelRow(items []labels.LabelItem) core.Row {
	r := row.New(30)
	for _, item := range items {
		r.Add(col.New(4).Add(
			code.NewBar(item.Code, props.Barcode{
				Type: barcode.Code128, Center: true, Percent: 90, Top: 2,
			}),
			text.New(item.Code, props.Text{
				Size: 7, Top: 16, Align: align.Center, Color: colorGray,
			}),
			text.New(truncate(item.Name, 38), props.Text{
				Size: 8, Top: 20, Align: align.Center,
			}),
			text.New(item.Price, props.Text{
				Size: 10, Top: 24, Align: align.Center, Style: fontstyle.Bold, Color: colorPrimary,
			}),
		))
	}
	return r
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
