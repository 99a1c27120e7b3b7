package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jdrosales/autopartes-api/internal/domain/entity"
	"github.com/jdrosales/autopartes-api/internal/domain/repository"
)

var _ repository.SedeRepository = (*SedeRepo)(nil)

// SedeRepo implementación de SedeRepository sobre PostgreSQL.
type SedeRepo struct {
	q Querier
}

// NewSedeRepository construye el adaptador de sedes.
func NewSedeRepository(q Querier) *SedeRepo {
	return &SedeRepo{q: q}
}

// Create persiste una sede nueva.
func (r *SedeRepo) Create(s *entity.Sede) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO sedes (id, name, address, phone, active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.Name, s.Address, s.Phone, s.Active, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sede: %w", err)
	}
	return nil
}

// GetByID obtiene una sede por ID. Devuelve nil si no existe.
func (r *SedeRepo) GetByID(id string) (*entity.Sede, error) {
	var s entity.Sede
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, address, phone, active, created_at, updated_at FROM sedes WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.Address, &s.Phone, &s.Active, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sede: %w", err)
	}
	return &s, nil
}

// List lista las sedes, opcionalmente solo las activas.
func (r *SedeRepo) List(onlyActive bool) ([]*entity.Sede, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, address, phone, active, created_at, updated_at
		 FROM sedes WHERE ($1 = FALSE OR active = TRUE) ORDER BY name`, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("list sedes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sede
	for rows.Next() {
		var s entity.Sede
		if err := rows.Scan(&s.ID, &s.Name, &s.Address, &s.Phone, &s.Active, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan sede: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza una sede existente.
func (r *SedeRepo) Update(s *entity.Sede) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE sedes SET name = $2, address = $3, phone = $4, active = $5, updated_at = $6 WHERE id = $1`,
		s.ID, s.Name, s.Address, s.Phone, s.Active, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sede: %w", err)
	}
	return nil
}
