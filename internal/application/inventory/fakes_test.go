package inventory_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jdrosales/autopartes-api/internal/application/inventory"
	"github.com/jdrosales/autopartes-api/internal/domain/entity"
	"github.com/jdrosales/autopartes-api/internal/domain/repository"
)

// Fakes en memoria para los tests de casos de uso. El TxRunner toma un snapshot
// antes de ejecutar el callback y lo restaura si falla, emulando el rollback.

type memStockRepo struct {
	rows map[string]*entity.Stock // productID|sedeID
}

func newMemStockRepo() *memStockRepo {
	return &memStockRepo{rows: make(map[string]*entity.Stock)}
}

func stockKey(productID, sedeID string) string { return productID + "|" + sedeID }

func (r *memStockRepo) seed(productID, sedeID string, qty, min int64) {
	r.rows[stockKey(productID, sedeID)] = &entity.Stock{
		ProductID: productID,
		SedeID:    sedeID,
		Quantity:  decimal.NewFromInt(qty),
		Minimum:   decimal.NewFromInt(min),
		UpdatedAt: time.Now(),
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

func (r *memStockRepo) Upsert(stock *entity.Stock) error {
	cp := *stock
	r.rows[stockKey(stock.ProductID, stock.SedeID)] = &cp
	return nil
}

func (r *memStockRepo) SetMinimum(productID, sedeID string, minimum decimal.Decimal, location string) error {
	s, _ := r.Get(productID, sedeID)
	s.Minimum = minimum
	s.Location = location
	return r.Upsert(s)
}

func (r *memStockRepo) ListByProduct(productID string) ([]*entity.Stock, error) {
	var out []*entity.Stock
	for _, s := range r.rows {
		if s.ProductID == productID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memStockRepo) ListBySede(sedeID string, limit, offset int) ([]*entity.Stock, error) {
	var out []*entity.Stock
	for _, s := range r.rows {
		if s.SedeID == sedeID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memStockRepo) ListLow(sedeID string) ([]*entity.Stock, error) {
	var out []*entity.Stock
	for _, s := range r.rows {
		if sedeID != "" && s.SedeID != sedeID {
			continue
		}
		if s.Quantity.IsPositive() && s.Quantity.LessThanOrEqual(s.Minimum) {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memStockRepo) ListZero(sedeID string) ([]*entity.Stock, error) {
	var out []*entity.Stock
	for _, s := range r.rows {
		if sedeID != "" && s.SedeID != sedeID {
			continue
		}
		if s.Quantity.IsZero() {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memStockRepo) qty(productID, sedeID string) decimal.Decimal {
	s, _ := r.Get(productID, sedeID)
	return s.Quantity
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
		if filter.From != nil && m.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && m.Date.After(*filter.To) {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

type memTxRunner struct {
	kardex *memKardexRepo
	stock  *memStockRepo
}

func (tr *memTxRunner) Run(ctx context.Context, fn func(repository.KardexRepository, repository.StockRepository) error) error {
	stockSnap := make(map[string]*entity.Stock, len(tr.stock.rows))
	for k, v := range tr.stock.rows {
		cp := *v
		stockSnap[k] = &cp
	}
	kardexLen := len(tr.kardex.movements)

	if err := fn(tr.kardex, tr.stock); err != nil {
		tr.stock.rows = stockSnap
		tr.kardex.movements = tr.kardex.movements[:kardexLen]
		return err
	}
	return nil
}

type memProductRepo struct {
	products map[string]*entity.Product
}

func newMemProductRepo(ids ...string) *memProductRepo {
	r := &memProductRepo{products: make(map[string]*entity.Product)}
	for _, id := range ids {
		r.products[id] = &entity.Product{
			ID:        id,
			Code:      "COD-" + id,
			Name:      "Producto " + id,
			CostPrice: decimal.NewFromInt(5),
			SalePrice: decimal.NewFromInt(8),
			Active:    true,
		}
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
func (r *memProductRepo) GetByCode(code string) (*entity.Product, error) { return nil, nil }
func (r *memProductRepo) Update(p *entity.Product) error                 { r.products[p.ID] = p; return nil }
func (r *memProductRepo) List(filter repository.ProductFilter, limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *memProductRepo) Delete(id string) error { delete(r.products, id); return nil }

type memSedeRepo struct {
	sedes map[string]*entity.Sede
	err   error
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
	if r.err != nil {
		return nil, r.err
	}
	if s, ok := r.sedes[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}
func (r *memSedeRepo) List(onlyActive bool) ([]*entity.Sede, error) { return nil, nil }
func (r *memSedeRepo) Update(s *entity.Sede) error                  { r.sedes[s.ID] = s; return nil }

// Interfaces satisfechas por los fakes.
var (
	_ repository.StockRepository   = (*memStockRepo)(nil)
	_ repository.KardexRepository  = (*memKardexRepo)(nil)
	_ repository.ProductRepository = (*memProductRepo)(nil)
	_ repository.SedeRepository    = (*memSedeRepo)(nil)
	_ inventory.TxRunner           = (*memTxRunner)(nil)
)
