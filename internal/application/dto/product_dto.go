package dto

import "github.com/shopspring/decimal"

// CreateProductRequest body para POST /api/productos.
type CreateProductRequest struct {
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	CategoryID    string          `json:"category_id"`
	SubcategoryID string          `json:"subcategory_id,omitempty"`
	BrandID       string          `json:"brand_id"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
}

// UpdateProductRequest body para PUT /api/productos/:id. Campos nil no se modifican.
type UpdateProductRequest struct {
	Name          *string          `json:"name,omitempty"`
	Description   *string          `json:"description,omitempty"`
	CategoryID    *string          `json:"category_id,omitempty"`
	SubcategoryID *string          `json:"subcategory_id,omitempty"`
	BrandID       *string          `json:"brand_id,omitempty"`
	CostPrice     *decimal.Decimal `json:"cost_price,omitempty"`
	SalePrice     *decimal.Decimal `json:"sale_price,omitempty"`
	Active        *bool            `json:"active,omitempty"`
}

// ProductStockDTO existencia de un producto en una sede, con estado clasificado.
type ProductStockDTO struct {
	SedeID   string          `json:"sede_id"`
	Quantity decimal.Decimal `json:"quantity"`
	Minimum  decimal.Decimal `json:"minimum"`
	Location string          `json:"location,omitempty"`
	Status   string          `json:"status"` // SIN_STOCK, STOCK_BAJO, EN_STOCK
}

// ProductResponse representación de un producto con su stock por sede.
type ProductResponse struct {
	ID            string            `json:"id"`
	Code          string            `json:"code"`
	Name          string            `json:"name"`
	Description   string            `json:"description,omitempty"`
	CategoryID    string            `json:"category_id"`
	SubcategoryID string            `json:"subcategory_id,omitempty"`
	BrandID       string            `json:"brand_id"`
	CostPrice     decimal.Decimal   `json:"cost_price"`
	SalePrice     decimal.Decimal   `json:"sale_price"`
	Margin        decimal.Decimal   `json:"margin"`
	Active        bool              `json:"active"`
	Stocks        []ProductStockDTO `json:"stocks,omitempty"`
	StockTotal    decimal.Decimal   `json:"stock_total"`
	StockStatus   string            `json:"stock_status"` // clasificación del total
}
