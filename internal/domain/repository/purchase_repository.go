package repository

import "github.com/jdrosales/autopartes-api/internal/domain/entity"

// PurchaseRepository define el puerto de persistencia para Purchase y sus líneas.
type PurchaseRepository interface {
	// Create persiste la compra con sus líneas.
	Create(purchase *entity.Purchase) error
	// GetByID devuelve la compra con líneas cargadas, o nil si no existe.
	GetByID(id string) (*entity.Purchase, error)
	// GetByIDForUpdate bloquea la fila de la compra (SELECT FOR UPDATE) para
	// serializar transiciones de estado concurrentes.
	GetByIDForUpdate(id string) (*entity.Purchase, error)
	List(sedeID, status string, limit, offset int) ([]*entity.Purchase, error)
	UpdateStatus(id, status string) error
	UpdateInvoice(id, invoiceNumber, invoiceFile string) error
	Update(purchase *entity.Purchase) error
	Delete(id string) error
}
