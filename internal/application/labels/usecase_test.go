package labels

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdrosales/autopartes-api/internal/application/dto"
	"github.com/jdrosales/autopartes-api/internal/domain"
	"github.com/jdrosales/autopartes-api/internal/domain/entity"
	"github.com/jdrosales/autopartes-api/internal/domain/repository"
)

type memProductRepo struct {
	products map[string]*entity.Product
}

func (r *memProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *memProductRepo) GetByCode(code string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Code == code {
			return p, nil
		}
	}
	return nil, nil
}
func (r *memProductRepo) Update(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *memProductRepo) List(_ repository.ProductFilter, _, _ int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *memProductRepo) Delete(id string) error { delete(r.products, id); return nil }

type memPurchaseRepo struct {
	purchases map[string]*entity.Purchase
}

func (r *memPurchaseRepo) Create(p *entity.Purchase) error { r.purchases[p.ID] = p; return nil }
func (r *memPurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	return r.purchases[id], nil
}
func (r *memPurchaseRepo) GetByIDForUpdate(id string) (*entity.Purchase, error) {
	return r.purchases[id], nil
}
func (r *memPurchaseRepo) List(_, _ string, _, _ int) ([]*entity.Purchase, error) { return nil, nil }
func (r *memPurchaseRepo) UpdateStatus(id, status string) error {
	r.purchases[id].Status = status
	return nil
}
func (r *memPurchaseRepo) UpdateInvoice(id, number, file string) error { return nil }
func (r *memPurchaseRepo) Update(p *entity.Purchase) error             { r.purchases[p.ID] = p; return nil }
func (r *memPurchaseRepo) Delete(id string) error                      { delete(r.purchases, id); return nil }

type captureGenerator struct {
	items []LabelItem
}

func (g *captureGenerator) GenerateLabels(_ context.Context, items []LabelItem) ([]byte, error) {
	g.items = items
	return []byte("%PDF-"), nil
}

func newLabelFixture() (*LabelUseCase, *memProductRepo, *memPurchaseRepo, *captureGenerator) {
	productRepo := &memProductRepo{products: map[string]*entity.Product{}}
	purchaseRepo := &memPurchaseRepo{purchases: map[string]*entity.Purchase{}}
	gen := &captureGenerator{}
	return NewLabelUseCase(productRepo, purchaseRepo, gen), productRepo, purchaseRepo, gen
}

func seedProduct(r *memProductRepo, id, code, name, price string) {
	r.products[id] = &entity.Product{
		ID:        id,
		Code:      code,
		Name:      name,
		SalePrice: decimal.RequireFromString(price),
		Active:    true,
	}
}

func TestGenerate_PorProductos(t *testing.T) {
	uc, productRepo, _, gen := newLabelFixture()
	seedProduct(productRepo, "p1", "FIL-001", "Filtro de aceite", "25.50")
	seedProduct(productRepo, "p2", "BUJ-004", "Bujía iridium", "48")

	out, err := uc.Generate(context.Background(), dto.LabelsRequest{
		ProductIDs: []string{"p1", "p2"},
		PerProduct: 2,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	require.Len(t, gen.items, 4)
	assert.Equal(t, "FIL-001", gen.items[0].Code)
	assert.Equal(t, "FIL-001", gen.items[1].Code)
	assert.Equal(t, "$25.50", gen.items[0].Price)
	assert.Equal(t, "BUJ-004", gen.items[2].Code)
	assert.Equal(t, "$48.00", gen.items[2].Price)
}

func TestGenerate_PorCompra(t *testing.T) {
	uc, productRepo, purchaseRepo, gen := newLabelFixture()
	seedProduct(productRepo, "p1", "FIL-001", "Filtro de aceite", "25.50")
	seedProduct(productRepo, "p2", "BUJ-004", "Bujía iridium", "48")
	purchaseRepo.purchases["c1"] = &entity.Purchase{
		ID:     "c1",
		Status: entity.PurchaseStatusRECIBIDA,
		Lines: []entity.PurchaseLine{
			{ID: "l1", PurchaseID: "c1", ProductID: "p1", Quantity: decimal.NewFromInt(10)},
			{ID: "l2", PurchaseID: "c1", ProductID: "p2", Quantity: decimal.NewFromInt(4)},
		},
	}

	_, err := uc.Generate(context.Background(), dto.LabelsRequest{PurchaseID: "c1"})
	require.NoError(t, err)
	require.Len(t, gen.items, 2)
	assert.Equal(t, "Filtro de aceite", gen.items[0].Name)
	assert.Equal(t, "Bujía iridium", gen.items[1].Name)
}

func TestGenerate_Validaciones(t *testing.T) {
	uc, productRepo, purchaseRepo, _ := newLabelFixture()
	seedProduct(productRepo, "p1", "FIL-001", "Filtro de aceite", "25.50")
	purchaseRepo.purchases["c1"] = &entity.Purchase{
		ID:    "c1",
		Lines: []entity.PurchaseLine{{ProductID: "p1"}},
	}

	_, err := uc.Generate(context.Background(), dto.LabelsRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Generate(context.Background(), dto.LabelsRequest{ProductIDs: []string{"p1"}, PurchaseID: "c1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Generate(context.Background(), dto.LabelsRequest{ProductIDs: []string{"nope"}})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Generate(context.Background(), dto.LabelsRequest{PurchaseID: "nope"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El tope de la hoja aplica al total expandido, no solo a la repetición por producto.
func TestGenerate_TopeDeEtiquetas(t *testing.T) {
	uc, productRepo, _, gen := newLabelFixture()
	seedProduct(productRepo, "p1", "FIL-001", "Filtro de aceite", "25.50")
	seedProduct(productRepo, "p2", "BUJ-004", "Bujía iridium", "48")
	seedProduct(productRepo, "p3", "PAS-010", "Pastillas de freno", "120")

	_, err := uc.Generate(context.Background(), dto.LabelsRequest{
		ProductIDs: []string{"p1", "p2", "p3"},
		PerProduct: 200,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Generate(context.Background(), dto.LabelsRequest{
		ProductIDs: []string{"p1"},
		PerProduct: 500,
	})
	require.NoError(t, err)
	assert.Len(t, gen.items, 500)
}
