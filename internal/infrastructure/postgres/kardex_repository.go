package postgres

import (
	"context"
	"fmt"

	"github.com/jdrosales/autopartes-api/internal/domain/entity"
	"github.com/jdrosales/autopartes-api/internal/domain/repository"
)

var _ repository.KardexRepository = (*KardexRepo)(nil)

// KardexRepo implementación de KardexRepository sobre PostgreSQL. Solo inserta y lee:
// los movimientos nunca se actualizan ni se borran.
type KardexRepo struct {
	q Querier
}

// NewKardexRepository construye el adaptador del kardex. Pasar pool o tx (Querier).
func NewKardexRepository(q Querier) *KardexRepo {
	return &KardexRepo{q: q}
}

// Create registra un movimiento de kardex.
func (r *KardexRepo) Create(m *entity.KardexMovement) error {
	query := `
		INSERT INTO kardex_movements (id, product_id, sede_id, type, quantity, unit_cost, stock_before, stock_after, reference, reason, date, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NULLIF($13, '')::uuid)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ProductID, m.SedeID, m.Type, m.Quantity, m.UnitCost,
		m.StockBefore, m.StockAfter, m.Reference, m.Reason, m.Date, m.CreatedAt, m.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert kardex movement: %w", err)
	}
	return nil
}

// List consulta movimientos con filtros opcionales, en orden cronológico ascendente.
func (r *KardexRepo) List(filter repository.KardexFilter) ([]*entity.KardexMovement, error) {
	query := `
		SELECT id, product_id, sede_id, type, quantity, unit_cost, stock_before, stock_after, reference, reason, date, created_at, COALESCE(created_by::text, '')
		FROM kardex_movements WHERE 1=1`
	args := []any{}
	n := 0
	if filter.ProductID != "" {
		n++
		query += fmt.Sprintf(" AND product_id = $%d", n)
		args = append(args, filter.ProductID)
	}
	if filter.SedeID != "" {
		n++
		query += fmt.Sprintf(" AND sede_id = $%d", n)
		args = append(args, filter.SedeID)
	}
	if filter.Type != "" {
		n++
		query += fmt.Sprintf(" AND type = $%d", n)
		args = append(args, filter.Type)
	}
	if filter.From != nil {
		n++
		query += fmt.Sprintf(" AND date >= $%d", n)
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		n++
		query += fmt.Sprintf(" AND date <= $%d", n)
		args = append(args, *filter.To)
	}
	query += " ORDER BY date, created_at"
	if filter.Limit > 0 {
		n++
		query += fmt.Sprintf(" LIMIT $%d", n)
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		n++
		query += fmt.Sprintf(" OFFSET $%d", n)
		args = append(args, filter.Offset)
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list kardex: %w", err)
	}
	defer rows.Close()
	var list []*entity.KardexMovement
	for rows.Next() {
		var m entity.KardexMovement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.SedeID, &m.Type, &m.Quantity, &m.UnitCost,
			&m.StockBefore, &m.StockAfter, &m.Reference, &m.Reason, &m.Date, &m.CreatedAt, &m.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan kardex movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
