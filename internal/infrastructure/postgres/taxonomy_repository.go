package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jdrosales/autopartes-api/internal/domain/entity"
	"github.com/jdrosales/autopartes-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)
var _ repository.BrandRepository = (*BrandRepo)(nil)

// CategoryRepo implementación de CategoryRepository sobre PostgreSQL.
// Las subcategorías son categorías con parent_id.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de categorías.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una categoría nueva.
func (r *CategoryRepo) Create(c *entity.Category) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO categories (id, parent_id, name, active, created_at, updated_at)
		 VALUES ($1, NULLIF($2, '')::uuid, $3, $4, $5, $6)`,
		c.ID, c.ParentID, c.Name, c.Active, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID. Devuelve nil si no existe.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	var c entity.Category
	err := r.q.QueryRow(context.Background(),
		`SELECT id, COALESCE(parent_id::text, ''), name, active, created_at, updated_at
		 FROM categories WHERE id = $1`, id).
		Scan(&c.ID, &c.ParentID, &c.Name, &c.Active, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// List con parentID vacío devuelve las raíces; con parentID, sus hijas.
func (r *CategoryRepo) List(parentID string) ([]*entity.Category, error) {
	var query string
	var args []any
	if parentID == "" {
		query = `SELECT id, COALESCE(parent_id::text, ''), name, active, created_at, updated_at
			 FROM categories WHERE parent_id IS NULL ORDER BY name`
	} else {
		query = `SELECT id, COALESCE(parent_id::text, ''), name, active, created_at, updated_at
			 FROM categories WHERE parent_id = $1 ORDER BY name`
		args = append(args, parentID)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.ParentID, &c.Name, &c.Active, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza una categoría existente.
func (r *CategoryRepo) Update(c *entity.Category) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE categories SET name = $2, active = $3, updated_at = $4 WHERE id = $1`,
		c.ID, c.Name, c.Active, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// BrandRepo implementación de BrandRepository sobre PostgreSQL.
type BrandRepo struct {
	q Querier
}

// NewBrandRepository construye el adaptador de marcas.
func NewBrandRepository(q Querier) *BrandRepo {
	return &BrandRepo{q: q}
}

// Create persiste una marca nueva.
func (r *BrandRepo) Create(b *entity.Brand) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO brands (id, name, active, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		b.ID, b.Name, b.Active, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert brand: %w", err)
	}
	return nil
}

// GetByID obtiene una marca por ID. Devuelve nil si no existe.
func (r *BrandRepo) GetByID(id string) (*entity.Brand, error) {
	var b entity.Brand
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, active, created_at, updated_at FROM brands WHERE id = $1`, id).
		Scan(&b.ID, &b.Name, &b.Active, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get brand: %w", err)
	}
	return &b, nil
}

// List lista las marcas.
func (r *BrandRepo) List() ([]*entity.Brand, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, active, created_at, updated_at FROM brands ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	defer rows.Close()
	var list []*entity.Brand
	for rows.Next() {
		var b entity.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.Active, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan brand: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Update actualiza una marca existente.
func (r *BrandRepo) Update(b *entity.Brand) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE brands SET name = $2, active = $3, updated_at = $4 WHERE id = $1`,
		b.ID, b.Name, b.Active, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update brand: %w", err)
	}
	return nil
}
