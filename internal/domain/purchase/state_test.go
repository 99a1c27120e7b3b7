package purchase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jdrosales/autopartes-api/internal/domain/entity"
	"github.com/jdrosales/autopartes-api/internal/domain/purchase"
)

// Flujo normal: PENDIENTE→RECIBIDA→COMPLETADA.
func TestCanTransition_FlujoNormal(t *testing.T) {
	assert.True(t, purchase.CanTransition(entity.PurchaseStatusPENDIENTE, entity.PurchaseStatusRECIBIDA))
	assert.True(t, purchase.CanTransition(entity.PurchaseStatusRECIBIDA, entity.PurchaseStatusCOMPLETADA))
}

// No se puede saltar de PENDIENTE a COMPLETADA sin recibir la mercancía.
func TestCanTransition_SinSaltarRecepcion(t *testing.T) {
	assert.False(t, purchase.CanTransition(entity.PurchaseStatusPENDIENTE, entity.PurchaseStatusCOMPLETADA))
}

// Reaperturas permitidas: RECIBIDA→PENDIENTE, COMPLETADA→PENDIENTE, COMPLETADA→RECIBIDA.
func TestCanTransition_Reaperturas(t *testing.T) {
	assert.True(t, purchase.CanTransition(entity.PurchaseStatusRECIBIDA, entity.PurchaseStatusPENDIENTE))
	assert.True(t, purchase.CanTransition(entity.PurchaseStatusCOMPLETADA, entity.PurchaseStatusPENDIENTE))
	assert.True(t, purchase.CanTransition(entity.PurchaseStatusCOMPLETADA, entity.PurchaseStatusRECIBIDA))
}

// Transición al mismo estado o con estados desconocidos → ilegal.
func TestCanTransition_MismoEstadoYDesconocidos(t *testing.T) {
	assert.False(t, purchase.CanTransition(entity.PurchaseStatusPENDIENTE, entity.PurchaseStatusPENDIENTE))
	assert.False(t, purchase.CanTransition("ANULADA", entity.PurchaseStatusRECIBIDA))
	assert.False(t, purchase.CanTransition(entity.PurchaseStatusPENDIENTE, "ANULADA"))
}

// El stock está aplicado en RECIBIDA y COMPLETADA, nunca en PENDIENTE.
func TestStockApplied(t *testing.T) {
	assert.False(t, purchase.StockApplied(entity.PurchaseStatusPENDIENTE))
	assert.True(t, purchase.StockApplied(entity.PurchaseStatusRECIBIDA))
	assert.True(t, purchase.StockApplied(entity.PurchaseStatusCOMPLETADA))
}

// Única arista que suma stock: PENDIENTE→RECIBIDA. El cierre no vuelve a sumar.
func TestAppliesStock_UnicaArista(t *testing.T) {
	assert.True(t, purchase.AppliesStock(entity.PurchaseStatusPENDIENTE, entity.PurchaseStatusRECIBIDA))
	assert.False(t, purchase.AppliesStock(entity.PurchaseStatusRECIBIDA, entity.PurchaseStatusCOMPLETADA))
	assert.False(t, purchase.AppliesStock(entity.PurchaseStatusCOMPLETADA, entity.PurchaseStatusRECIBIDA))
}

// Reabrir a PENDIENTE desde un estado con stock aplicado exige revertir.
func TestReversesStock_Reapertura(t *testing.T) {
	assert.True(t, purchase.ReversesStock(entity.PurchaseStatusRECIBIDA, entity.PurchaseStatusPENDIENTE))
	assert.True(t, purchase.ReversesStock(entity.PurchaseStatusCOMPLETADA, entity.PurchaseStatusPENDIENTE))
	assert.False(t, purchase.ReversesStock(entity.PurchaseStatusCOMPLETADA, entity.PurchaseStatusRECIBIDA))
}

// Solo se elimina una compra PENDIENTE.
func TestCanDelete_SoloPendiente(t *testing.T) {
	assert.True(t, purchase.CanDelete(entity.PurchaseStatusPENDIENTE))
	assert.False(t, purchase.CanDelete(entity.PurchaseStatusRECIBIDA))
	assert.False(t, purchase.CanDelete(entity.PurchaseStatusCOMPLETADA))
}

func TestValidStatus(t *testing.T) {
	assert.True(t, purchase.ValidStatus("PENDIENTE"))
	assert.True(t, purchase.ValidStatus("RECIBIDA"))
	assert.True(t, purchase.ValidStatus("COMPLETADA"))
	assert.False(t, purchase.ValidStatus("recibida"))
	assert.False(t, purchase.ValidStatus(""))
}
