// Package purchase define la máquina de estados del ciclo de vida de una compra.
//
//	PENDIENTE ──► RECIBIDA ──► COMPLETADA
//	    ▲            │ ▲            │
//	    └────────────┘ └────────────┘
//	                 (reapertura)
//
// La única arista que infla stock es PENDIENTE→RECIBIDA. Una reapertura a
// PENDIENTE desde un estado con stock aplicado exige revertir ese stock con
// movimientos de compensación, de lo contrario re-recibir duplicaría entradas.
package purchase

import "github.com/jdrosales/autopartes-api/internal/domain/entity"

// legal contiene las aristas permitidas del grafo de estados.
var legal = map[string]map[string]bool{
	entity.PurchaseStatusPENDIENTE: {
		entity.PurchaseStatusRECIBIDA: true,
	},
	entity.PurchaseStatusRECIBIDA: {
		entity.PurchaseStatusCOMPLETADA: true,
		entity.PurchaseStatusPENDIENTE:  true, // reapertura, con compensación
	},
	entity.PurchaseStatusCOMPLETADA: {
		entity.PurchaseStatusRECIBIDA:  true, // reapertura administrativa
		entity.PurchaseStatusPENDIENTE: true, // reapertura, con compensación
	},
}

// ValidStatus indica si s es un estado conocido.
func ValidStatus(s string) bool {
	switch s {
	case entity.PurchaseStatusPENDIENTE, entity.PurchaseStatusRECIBIDA, entity.PurchaseStatusCOMPLETADA:
		return true
	}
	return false
}

// CanTransition indica si la arista from→to es legal. Una transición al mismo
// estado no es una transición.
func CanTransition(from, to string) bool {
	if from == to {
		return false
	}
	return legal[from][to]
}

// StockApplied indica si en el estado dado la mercancía de la compra ya está
// sumada al stock de la sede.
func StockApplied(status string) bool {
	return status == entity.PurchaseStatusRECIBIDA || status == entity.PurchaseStatusCOMPLETADA
}

// AppliesStock indica si la transición from→to debe sumar el stock de las líneas.
func AppliesStock(from, to string) bool {
	return !StockApplied(from) && StockApplied(to)
}

// ReversesStock indica si la transición from→to debe revertir el stock ya aplicado.
func ReversesStock(from, to string) bool {
	return StockApplied(from) && !StockApplied(to)
}

// CanDelete indica si la compra puede eliminarse: solo en PENDIENTE.
func CanDelete(status string) bool {
	return status == entity.PurchaseStatusPENDIENTE
}
