package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jdrosales/autopartes-api/internal/domain/entity"
	"github.com/jdrosales/autopartes-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el stock actual de un producto en una sede. Sin fila: cantidad cero.
func (r *StockRepo) Get(productID, sedeID string) (*entity.Stock, error) {
	query := `
		SELECT product_id, sede_id, quantity, minimum, location, updated_at
		FROM stock WHERE product_id = $1 AND sede_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, productID, sedeID), productID, sedeID, "get stock")
}

// GetForUpdate obtiene el stock y bloquea la fila (SELECT FOR UPDATE).
func (r *StockRepo) GetForUpdate(productID, sedeID string) (*entity.Stock, error) {
	query := `
		SELECT product_id, sede_id, quantity, minimum, location, updated_at
		FROM stock WHERE product_id = $1 AND sede_id = $2
		FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, productID, sedeID), productID, sedeID, "get stock for update")
}

// Upsert inserta o actualiza la cantidad en stock (por producto y sede).
func (r *StockRepo) Upsert(stock *entity.Stock) error {
	query := `
		INSERT INTO stock (product_id, sede_id, quantity, minimum, location, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (product_id, sede_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		stock.ProductID, stock.SedeID, stock.Quantity, stock.Minimum, stock.Location)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// SetMinimum actualiza mínimo y ubicación sin tocar la cantidad.
func (r *StockRepo) SetMinimum(productID, sedeID string, minimum decimal.Decimal, location string) error {
	query := `
		INSERT INTO stock (product_id, sede_id, quantity, minimum, location, updated_at)
		VALUES ($1, $2, 0, $3, $4, now())
		ON CONFLICT (product_id, sede_id)
		DO UPDATE SET minimum = EXCLUDED.minimum, location = EXCLUDED.location, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, productID, sedeID, minimum, location)
	if err != nil {
		return fmt.Errorf("set minimum: %w", err)
	}
	return nil
}

// ListByProduct lista el stock de un producto en todas las sedes.
func (r *StockRepo) ListByProduct(productID string) ([]*entity.Stock, error) {
	query := `
		SELECT product_id, sede_id, quantity, minimum, location, updated_at
		FROM stock WHERE product_id = $1 ORDER BY sede_id`
	return r.list(query, "list stock by product", productID)
}

// ListBySede lista el stock de una sede con paginación.
func (r *StockRepo) ListBySede(sedeID string, limit, offset int) ([]*entity.Stock, error) {
	query := `
		SELECT product_id, sede_id, quantity, minimum, location, updated_at
		FROM stock WHERE sede_id = $1 ORDER BY product_id LIMIT $2 OFFSET $3`
	return r.list(query, "list stock by sede", sedeID, limit, offset)
}

// ListLow devuelve filas con 0 < cantidad <= mínimo. SedeID vacío = todas las sedes.
func (r *StockRepo) ListLow(sedeID string) ([]*entity.Stock, error) {
	query := `
		SELECT product_id, sede_id, quantity, minimum, location, updated_at
		FROM stock
		WHERE quantity > 0 AND quantity <= minimum AND ($1 = '' OR sede_id::text = $1)
		ORDER BY sede_id, product_id`
	return r.list(query, "list low stock", sedeID)
}

// ListZero devuelve filas con cantidad cero. SedeID vacío = todas las sedes.
func (r *StockRepo) ListZero(sedeID string) ([]*entity.Stock, error) {
	query := `
		SELECT product_id, sede_id, quantity, minimum, location, updated_at
		FROM stock
		WHERE quantity = 0 AND ($1 = '' OR sede_id::text = $1)
		ORDER BY sede_id, product_id`
	return r.list(query, "list zero stock", sedeID)
}

func (r *StockRepo) scanOne(row pgx.Row, productID, sedeID, op string) (*entity.Stock, error) {
	var s entity.Stock
	err := row.Scan(&s.ProductID, &s.SedeID, &s.Quantity, &s.Minimum, &s.Location, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{ProductID: productID, SedeID: sedeID, Quantity: decimal.Zero, Minimum: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}

func (r *StockRepo) list(query, op string, args ...any) ([]*entity.Stock, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.Stock
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.ProductID, &s.SedeID, &s.Quantity, &s.Minimum, &s.Location, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
