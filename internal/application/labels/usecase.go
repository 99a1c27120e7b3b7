package labels

import (
	"context"

	"github.com/jdrosales/autopartes-api/internal/application/dto"
	"github.com/jdrosales/autopartes-api/internal/domain"
	"github.com/jdrosales/autopartes-api/internal/domain/entity"
	"github.com/jdrosales/autopartes-api/internal/domain/repository"
)

// maxLabelsPerRequest limita el total de etiquetas de una hoja.
const maxLabelsPerRequest = 500

// LabelUseCase arma las etiquetas de productos y delega el PDF al generador.
type LabelUseCase struct {
	productRepo  repository.ProductRepository
	purchaseRepo repository.PurchaseRepository
	generator    LabelPDFGenerator
}

// NewLabelUseCase construye el caso de uso.
func NewLabelUseCase(productRepo repository.ProductRepository, purchaseRepo repository.PurchaseRepository, generator LabelPDFGenerator) *LabelUseCase {
	return &LabelUseCase{productRepo: productRepo, purchaseRepo: purchaseRepo, generator: generator}
}

// Generate genera el PDF de etiquetas. Acepta una lista de productos o una
// compra (una etiqueta por unidad no aplica: PerProduct repite cada producto).
func (uc *LabelUseCase) Generate(ctx context.Context, in dto.LabelsRequest) ([]byte, error) {
	perProduct := in.PerProduct
	if perProduct <= 0 {
		perProduct = 1
	}

	productIDs := in.ProductIDs
	if in.PurchaseID != "" {
		if len(productIDs) > 0 {
			return nil, domain.ErrInvalidInput
		}
		purchase, err := uc.purchaseRepo.GetByID(in.PurchaseID)
		if err != nil {
			return nil, err
		}
		if purchase == nil {
			return nil, domain.ErrNotFound
		}
		for _, line := range purchase.Lines {
			productIDs = append(productIDs, line.ProductID)
		}
	}
	if len(productIDs) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if len(productIDs)*perProduct > maxLabelsPerRequest {
		return nil, domain.ErrInvalidInput
	}

	items := make([]LabelItem, 0, len(productIDs)*perProduct)
	for _, id := range productIDs {
		product, err := uc.productRepo.GetByID(id)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		item := toLabelItem(product)
		for i := 0; i < perProduct; i++ {
			items = append(items, item)
		}
	}
	return uc.generator.GenerateLabels(ctx, items)
}

func toLabelItem(p *entity.Product) LabelItem {
	return LabelItem{
		Code:  p.Code,
		Name:  p.Name,
		Price: "$" + p.SalePrice.StringFixed(2),
	}
}
