package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jdrosales/autopartes-api/internal/domain"
	"github.com/jdrosales/autopartes-api/internal/domain/entity"
	"github.com/jdrosales/autopartes-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

const supplierColumns = `id, tax_id, name, contact, phone, email, address, active, created_at, updated_at`

// SupplierRepo implementación de SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de proveedores.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un proveedor nuevo. NIT duplicado devuelve ErrDuplicate.
func (r *SupplierRepo) Create(s *entity.Supplier) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO suppliers (id, tax_id, name, contact, phone, email, address, active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		s.ID, s.TaxID, s.Name, s.Contact, s.Phone, s.Email, s.Address, s.Active, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID. Devuelve nil si no existe.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return r.scanOne(r.q.QueryRow(context.Background(),
		`SELECT `+supplierColumns+` FROM suppliers WHERE id = $1`, id))
}

// GetByTaxID obtiene un proveedor por su NIT.
func (r *SupplierRepo) GetByTaxID(taxID string) (*entity.Supplier, error) {
	return r.scanOne(r.q.QueryRow(context.Background(),
		`SELECT `+supplierColumns+` FROM suppliers WHERE tax_id = $1`, taxID))
}

// List lista proveedores con paginación, opcionalmente solo activos.
func (r *SupplierRepo) List(onlyActive bool, limit, offset int) ([]*entity.Supplier, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+supplierColumns+` FROM suppliers
		 WHERE ($1 = FALSE OR active = TRUE) ORDER BY name LIMIT $2 OFFSET $3`,
		onlyActive, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.TaxID, &s.Name, &s.Contact, &s.Phone, &s.Email,
			&s.Address, &s.Active, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza un proveedor existente.
func (r *SupplierRepo) Update(s *entity.Supplier) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE suppliers SET name = $2, contact = $3, phone = $4, email = $5, address = $6, active = $7, updated_at = $8
		 WHERE id = $1`,
		s.ID, s.Name, s.Contact, s.Phone, s.Email, s.Address, s.Active, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

func (r *SupplierRepo) scanOne(row pgx.Row) (*entity.Supplier, error) {
	var s entity.Supplier
	err := row.Scan(&s.ID, &s.TaxID, &s.Name, &s.Contact, &s.Phone, &s.Email,
		&s.Address, &s.Active, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}
