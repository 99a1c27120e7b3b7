package labels

import "context"

// LabelItem es un rótulo a imprimir: el código se representa como barcode
// Code-128 y debajo van nombre y precio.
type LabelItem struct {
	Code  string
	Name  string
	Price string
}

// LabelPDFGenerator genera el PDF de etiquetas con códigos de barras.
type LabelPDFGenerator interface {
	GenerateLabels(ctx context.Context, items []LabelItem) ([]byte, error)
}
