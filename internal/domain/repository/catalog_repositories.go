package repository

import "github.com/jdrosales/autopartes-api/internal/domain/entity"

// SedeRepository define el puerto de persistencia para Sede.
type SedeRepository interface {
	Create(sede *entity.Sede) error
	GetByID(id string) (*entity.Sede, error)
	List(onlyActive bool) ([]*entity.Sede, error)
	Update(sede *entity.Sede) error
}

// SupplierRepository define el puerto de persistencia para Supplier.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	GetByTaxID(taxID string) (*entity.Supplier, error)
	List(onlyActive bool, limit, offset int) ([]*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
}

// CategoryRepository define el puerto de persistencia para Category.
// Las subcategorías son categorías con ParentID.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	// List con parentID vacío devuelve las raíces; con parentID, sus hijas.
	List(parentID string) ([]*entity.Category, error)
	Update(category *entity.Category) error
}

// BrandRepository define el puerto de persistencia para Brand.
type BrandRepository interface {
	Create(brand *entity.Brand) error
	GetByID(id string) (*entity.Brand, error)
	List() ([]*entity.Brand, error)
	Update(brand *entity.Brand) error
}
