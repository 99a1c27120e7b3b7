package repository

import "github.com/jdrosales/autopartes-api/internal/domain/entity"

// ProductFilter filtros de listado de productos.
type ProductFilter struct {
	CategoryID string
	BrandID    string
	Query      string // busca en código y nombre
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCode(code string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(filter ProductFilter, limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
