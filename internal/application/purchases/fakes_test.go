package purchases_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jdrosales/autopartes-api/internal/application/purchases"
	"github.com/jdrosales/autopartes-api/internal/domain/entity"
	"github.com/jdrosales/autopartes-api/internal/domain/repository"
)

// Fakes en memoria. El TxRunner restaura un snapshot si el callback falla,
// emulando el rollback de la transacción real.

func stockKey(productID, sedeID string) string { return productID + "|" + sedeID }

type memStockRepo struct {
	rows map[string]*entity.Stock
}

func newMemStockRepo() *memStockRepo { return &memStockRepo{rows: make(map[string]*entity.Stock)} }

func (r *memStockRepo) seed(productID, sedeID string, qty int64) {
	r.rows[stockKey(productID, sedeID)] = &entity.Stock{
		ProductID: productID, SedeID: sedeID, Quantity: decimal.NewFromInt(qty), UpdatedAt: time.Now(),
	}
}

func (r *memStockRepo) Get(productID, sedeID string) (*entity.Stock, error) {
	if s, ok := r.rows[stockKey(productID, sedeID)]; ok {
		cp := *s
		return &cp, nil
	}
	return &entity.Stock{ProductID: productID, SedeID: sedeID, Quantity: decimal.Zero}, nil
}

func (r *memStockRepo) GetForUpdate(productID, sedeID string) (*entity.Stock, error) {
	return r.Get(productID, sedeID)
}

func (r *memStockRepo) Upsert(s *entity.Stock) error {
	cp := *s
	r.rows[stockKey(s.ProductID, s.SedeID)] = &cp
	return nil
}

func (r *memStockRepo) SetMinimum(productID, sedeID string, minimum decimal.Decimal, location string) error {
	return nil
}
func (r *memStockRepo) ListByProduct(string) ([]*entity.Stock, error)      { return nil, nil }
func (r *memStockRepo) ListBySede(string, int, int) ([]*entity.Stock, error) { return nil, nil }
func (r *memStockRepo) ListLow(string) ([]*entity.Stock, error)            { return nil, nil }
func (r *memStockRepo) ListZero(string) ([]*entity.Stock, error)           { return nil, nil }

func (r *memStockRepo) qty(productID, sedeID string) decimal.Decimal {
	s, _ := r.Get(productID, sedeID)
	return s.Quantity
}

func (r *memStockRepo) snapshot() map[string]*entity.Stock {
	snap := make(map[string]*entity.Stock, len(r.rows))
	for k, v := range r.rows {
		cp := *v
		snap[k] = &cp
	}
	return snap
}

type memKardexRepo struct {
	movements []*entity.KardexMovement
}

func (r *memKardexRepo) Create(m *entity.KardexMovement) error {
	cp := *m
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *memKardexRepo) List(filter repository.KardexFilter) ([]*entity.KardexMovement, error) {
	var out []*entity.KardexMovement
	for _, m := range r.movements {
		if filter.ProductID != "" && m.ProductID != filter.ProductID {
			continue
		}
		if filter.SedeID != "" && m.SedeID != filter.SedeID {
			continue
		}
		if filter.Type != "" && m.Type != filter.Type {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

type memPurchaseRepo struct {
	purchases map[string]*entity.Purchase
}

func newMemPurchaseRepo() *memPurchaseRepo {
	return &memPurchaseRepo{purchases: make(map[string]*entity.Purchase)}
}

func (r *memPurchaseRepo) Create(p *entity.Purchase) error {
	cp := *p
	r.purchases[p.ID] = &cp
	return nil
}

func (r *memPurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	if p, ok := r.purchases[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *memPurchaseRepo) GetByIDForUpdate(id string) (*entity.Purchase, error) {
	return r.GetByID(id)
}

func (r *memPurchaseRepo) List(sedeID, status string, limit, offset int) ([]*entity.Purchase, error) {
	var out []*entity.Purchase
	for _, p := range r.purchases {
		if sedeID != "" && p.SedeID != sedeID {
			continue
		}
		if status != "" && p.Status != status {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memPurchaseRepo) UpdateStatus(id, status string) error {
	if p, ok := r.purchases[id]; ok {
		p.Status = status
		p.UpdatedAt = time.Now()
	}
	return nil
}

func (r *memPurchaseRepo) UpdateInvoice(id, invoiceNumber, invoiceFile string) error {
	if p, ok := r.purchases[id]; ok {
		p.InvoiceNumber = invoiceNumber
		p.InvoiceFile = invoiceFile
	}
	return nil
}

func (r *memPurchaseRepo) Update(p *entity.Purchase) error {
	cp := *p
	r.purchases[p.ID] = &cp
	return nil
}

func (r *memPurchaseRepo) Delete(id string) error {
	delete(r.purchases, id)
	return nil
}

func (r *memPurchaseRepo) snapshot() map[string]*entity.Purchase {
	snap := make(map[string]*entity.Purchase, len(r.purchases))
	for k, v := range r.purchases {
		cp := *v
		snap[k] = &cp
	}
	return snap
}

type memTxRunner struct {
	purchases *memPurchaseRepo
	kardex    *memKardexRepo
	stock     *memStockRepo
}

func (tr *memTxRunner) Run(ctx context.Context, fn func(
	repository.PurchaseRepository,
	repository.KardexRepository,
	repository.StockRepository,
) error) error {
	purchaseSnap := tr.purchases.snapshot()
	stockSnap := tr.stock.snapshot()
	kardexLen := len(tr.kardex.movements)

	if err := fn(tr.purchases, tr.kardex, tr.stock); err != nil {
		tr.purchases.purchases = purchaseSnap
		tr.stock.rows = stockSnap
		tr.kardex.movements = tr.kardex.movements[:kardexLen]
		return err
	}
	return nil
}

// staleReadPurchaseRepo sirve en GetByID una copia vieja de la compra, como la
// vería una lectura sin bloqueo mientras otra sesión la está recibiendo.
type staleReadPurchaseRepo struct {
	*memPurchaseRepo
	stale *entity.Purchase
}

func (r *staleReadPurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	if r.stale != nil && r.stale.ID == id {
		cp := *r.stale
		return &cp, nil
	}
	return r.memPurchaseRepo.GetByID(id)
}

type memSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

func newMemSupplierRepo(ids ...string) *memSupplierRepo {
	r := &memSupplierRepo{suppliers: make(map[string]*entity.Supplier)}
	for _, id := range ids {
		r.suppliers[id] = &entity.Supplier{ID: id, Name: "Proveedor " + id, Active: true}
	}
	return r
}

func (r *memSupplierRepo) Create(s *entity.Supplier) error { r.suppliers[s.ID] = s; return nil }
func (r *memSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	if s, ok := r.suppliers[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}
func (r *memSupplierRepo) GetByTaxID(string) (*entity.Supplier, error) { return nil, nil }
func (r *memSupplierRepo) List(bool, int, int) ([]*entity.Supplier, error) {
	return nil, nil
}
func (r *memSupplierRepo) Update(s *entity.Supplier) error { r.suppliers[s.ID] = s; return nil }

type memSedeRepo struct {
	sedes map[string]*entity.Sede
}

func newMemSedeRepo(ids ...string) *memSedeRepo {
	r := &memSedeRepo{sedes: make(map[string]*entity.Sede)}
	for _, id := range ids {
		r.sedes[id] = &entity.Sede{ID: id, Name: "Sede " + id, Active: true}
	}
	return r
}

func (r *memSedeRepo) Create(s *entity.Sede) error { r.sedes[s.ID] = s; return nil }
func (r *memSedeRepo) GetByID(id string) (*entity.Sede, error) {
	if s, ok := r.sedes[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}
func (r *memSedeRepo) List(bool) ([]*entity.Sede, error) { return nil, nil }
func (r *memSedeRepo) Update(s *entity.Sede) error       { r.sedes[s.ID] = s; return nil }

type memProductRepo struct {
	products map[string]*entity.Product
}

func newMemProductRepo(ids ...string) *memProductRepo {
	r := &memProductRepo{products: make(map[string]*entity.Product)}
	for _, id := range ids {
		r.products[id] = &entity.Product{ID: id, Code: "COD-" + id, Name: "Producto " + id, Active: true}
	}
	return r
}

func (r *memProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	if p, ok := r.products[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}
func (r *memProductRepo) GetByCode(string) (*entity.Product, error) { return nil, nil }
func (r *memProductRepo) Update(p *entity.Product) error            { r.products[p.ID] = p; return nil }
func (r *memProductRepo) List(repository.ProductFilter, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *memProductRepo) Delete(id string) error { delete(r.products, id); return nil }

var (
	_ repository.StockRepository    = (*memStockRepo)(nil)
	_ repository.KardexRepository   = (*memKardexRepo)(nil)
	_ repository.PurchaseRepository = (*memPurchaseRepo)(nil)
	_ repository.SupplierRepository = (*memSupplierRepo)(nil)
	_ repository.SedeRepository     = (*memSedeRepo)(nil)
	_ repository.ProductRepository  = (*memProductRepo)(nil)
	_ purchases.TxRunner            = (*memTxRunner)(nil)
)
