package dto

// LabelsRequest body para POST /api/etiquetas. Se indica una lista de productos
// o una compra (sus líneas), más la cantidad de etiquetas por producto.
type LabelsRequest struct {
	ProductIDs []string `json:"product_ids,omitempty"`
	PurchaseID string   `json:"purchase_id,omitempty"`
	PerProduct int      `json:"per_product,omitempty"` // etiquetas por producto, default 1
}
