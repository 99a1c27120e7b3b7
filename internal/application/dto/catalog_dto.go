package dto

// CreateSedeRequest body para POST /api/sedes.
type CreateSedeRequest struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// UpdateSedeRequest body para PUT /api/sedes/:id. Campos nil no se modifican.
type UpdateSedeRequest struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Active  *bool   `json:"active,omitempty"`
}

// SedeResponse representación de una sede.
type SedeResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Active  bool   `json:"active"`
}

// CreateSupplierRequest body para POST /api/proveedores.
type CreateSupplierRequest struct {
	TaxID   string `json:"tax_id"`
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// UpdateSupplierRequest body para PUT /api/proveedores/:id.
type UpdateSupplierRequest struct {
	Name    *string `json:"name,omitempty"`
	Contact *string `json:"contact,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
	Address *string `json:"address,omitempty"`
	Active  *bool   `json:"active,omitempty"`
}

// SupplierResponse representación de un proveedor.
type SupplierResponse struct {
	ID      string `json:"id"`
	TaxID   string `json:"tax_id"`
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
	Active  bool   `json:"active"`
}

// CreateCategoryRequest body para POST /api/categorias. ParentID no vacío crea una subcategoría.
type CreateCategoryRequest struct {
	Name     string `json:"name"`
	ParentID string `json:"parent_id,omitempty"`
}

// CategoryResponse representación de una categoría.
type CategoryResponse struct {
	ID       string `json:"id"`
	ParentID string `json:"parent_id,omitempty"`
	Name     string `json:"name"`
	Active   bool   `json:"active"`
}

// UpdateCategoryRequest body para PUT /api/categorias/:id. Campos nil no se modifican.
type UpdateCategoryRequest struct {
	Name   *string `json:"name,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

// CreateBrandRequest body para POST /api/marcas.
type CreateBrandRequest struct {
	Name string `json:"name"`
}

// UpdateBrandRequest body para PUT /api/marcas/:id. Campos nil no se modifican.
type UpdateBrandRequest struct {
	Name   *string `json:"name,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

// BrandResponse representación de una marca.
type BrandResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}
