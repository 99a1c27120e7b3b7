package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jdrosales/autopartes-api/internal/domain/entity"
	"github.com/jdrosales/autopartes-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación de PurchaseRepository sobre PostgreSQL (usable con pool o tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador de compras. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste la compra con sus líneas.
func (r *PurchaseRepo) Create(p *entity.Purchase) error {
	ctx := context.Background()
	query := `
		INSERT INTO purchases (id, supplier_id, sede_id, status, invoice_number, invoice_file, notes, created_at, updated_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, '')::uuid)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.SupplierID, p.SedeID, p.Status, p.InvoiceNumber, p.InvoiceFile,
		p.Notes, p.CreatedAt, p.UpdatedAt, p.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	for _, l := range p.Lines {
		_, err := r.q.Exec(ctx,
			`INSERT INTO purchase_lines (id, purchase_id, product_id, quantity, unit_cost)
			 VALUES ($1, $2, $3, $4, $5)`,
			l.ID, l.PurchaseID, l.ProductID, l.Quantity, l.UnitCost,
		)
		if err != nil {
			return fmt.Errorf("insert purchase line: %w", err)
		}
	}
	return nil
}

// GetByID devuelve la compra con líneas cargadas, o nil si no existe.
func (r *PurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	return r.get(id, false)
}

// GetByIDForUpdate bloquea la fila de la compra (SELECT FOR UPDATE) para
// serializar transiciones de estado concurrentes.
func (r *PurchaseRepo) GetByIDForUpdate(id string) (*entity.Purchase, error) {
	return r.get(id, true)
}

func (r *PurchaseRepo) get(id string, forUpdate bool) (*entity.Purchase, error) {
	query := `
		SELECT id, supplier_id, sede_id, status, invoice_number, invoice_file, notes, created_at, updated_at, COALESCE(created_by::text, '')
		FROM purchases WHERE id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var p entity.Purchase
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.SupplierID, &p.SedeID, &p.Status, &p.InvoiceNumber, &p.InvoiceFile,
		&p.Notes, &p.CreatedAt, &p.UpdatedAt, &p.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	lines, err := r.loadLines(p.ID)
	if err != nil {
		return nil, err
	}
	p.Lines = lines
	return &p, nil
}

// List lista compras con filtros opcionales de sede y estado, más recientes primero.
func (r *PurchaseRepo) List(sedeID, status string, limit, offset int) ([]*entity.Purchase, error) {
	query := `
		SELECT id, supplier_id, sede_id, status, invoice_number, invoice_file, notes, created_at, updated_at, COALESCE(created_by::text, '')
		FROM purchases
		WHERE ($1 = '' OR sede_id::text = $1) AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, sedeID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	var list []*entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(&p.ID, &p.SupplierID, &p.SedeID, &p.Status, &p.InvoiceNumber,
			&p.InvoiceFile, &p.Notes, &p.CreatedAt, &p.UpdatedAt, &p.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, p := range list {
		lines, err := r.loadLines(p.ID)
		if err != nil {
			return nil, err
		}
		p.Lines = lines
	}
	return list, nil
}

// UpdateStatus cambia el estado de la compra.
func (r *PurchaseRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE purchases SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update purchase status: %w", err)
	}
	return nil
}

// UpdateInvoice registra número y archivo de factura.
func (r *PurchaseRepo) UpdateInvoice(id, invoiceNumber, invoiceFile string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE purchases SET invoice_number = $2, invoice_file = $3, updated_at = now() WHERE id = $1`,
		id, invoiceNumber, invoiceFile)
	if err != nil {
		return fmt.Errorf("update purchase invoice: %w", err)
	}
	return nil
}

// Update actualiza cabecera y reemplaza líneas.
func (r *PurchaseRepo) Update(p *entity.Purchase) error {
	ctx := context.Background()
	_, err := r.q.Exec(ctx,
		`UPDATE purchases SET supplier_id = $2, sede_id = $3, status = $4, invoice_number = $5,
			invoice_file = $6, notes = $7, updated_at = $8 WHERE id = $1`,
		p.ID, p.SupplierID, p.SedeID, p.Status, p.InvoiceNumber, p.InvoiceFile, p.Notes, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update purchase: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM purchase_lines WHERE purchase_id = $1`, p.ID); err != nil {
		return fmt.Errorf("delete purchase lines: %w", err)
	}
	for _, l := range p.Lines {
		_, err := r.q.Exec(ctx,
			`INSERT INTO purchase_lines (id, purchase_id, product_id, quantity, unit_cost)
			 VALUES ($1, $2, $3, $4, $5)`,
			l.ID, l.PurchaseID, l.ProductID, l.Quantity, l.UnitCost,
		)
		if err != nil {
			return fmt.Errorf("insert purchase line: %w", err)
		}
	}
	return nil
}

// Delete elimina la compra; las líneas caen por cascade.
func (r *PurchaseRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM purchases WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete purchase: %w", err)
	}
	return nil
}

func (r *PurchaseRepo) loadLines(purchaseID string) ([]entity.PurchaseLine, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, purchase_id, product_id, quantity, unit_cost
		 FROM purchase_lines WHERE purchase_id = $1 ORDER BY id`, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("list purchase lines: %w", err)
	}
	defer rows.Close()
	var lines []entity.PurchaseLine
	for rows.Next() {
		var l entity.PurchaseLine
		if err := rows.Scan(&l.ID, &l.PurchaseID, &l.ProductID, &l.Quantity, &l.UnitCost); err != nil {
			return nil, fmt.Errorf("scan purchase line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}
