package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jdrosales/autopartes-api/internal/application/dto"
	"github.com/jdrosales/autopartes-api/internal/domain"
	"github.com/jdrosales/autopartes-api/internal/domain/entity"
	"github.com/jdrosales/autopartes-api/internal/domain/repository"
	"github.com/jdrosales/autopartes-api/internal/domain/stock"
)

// ProductUseCase CRUD de productos. Las cantidades se manejan vía kardex;
// aquí solo se embebe el stock por sede en las respuestas, ya clasificado.
type ProductUseCase struct {
	repo      repository.ProductRepository
	stockRepo repository.StockRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, stockRepo repository.StockRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, stockRepo: stockRepo}
}

// Create crea un producto. El código debe ser único; precios no negativos.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Code == "" || in.Name == "" || in.CategoryID == "" || in.BrandID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.CostPrice.IsNegative() || in.SalePrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByCode(in.Code)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Code:          in.Code,
		Name:          in.Name,
		Description:   in.Description,
		CategoryID:    in.CategoryID,
		SubcategoryID: in.SubcategoryID,
		BrandID:       in.BrandID,
		CostPrice:     in.CostPrice,
		SalePrice:     in.SalePrice,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return uc.toResponse(product)
}

// GetByID obtiene un producto con su stock por sede, o ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(product)
}

// Update actualiza un producto. Campos nil no se modifican; no toca cantidades.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.SubcategoryID != nil {
		product.SubcategoryID = *in.SubcategoryID
	}
	if in.BrandID != nil {
		product.BrandID = *in.BrandID
	}
	if in.CostPrice != nil {
		if in.CostPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.CostPrice = *in.CostPrice
	}
	if in.SalePrice != nil {
		if in.SalePrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.SalePrice = *in.SalePrice
	}
	if in.Active != nil {
		product.Active = *in.Active
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return uc.toResponse(product)
}

// List lista productos filtrados, cada uno con su stock por sede.
func (uc *ProductUseCase) List(ctx context.Context, filter repository.ProductFilter, limit, offset int) ([]*dto.ProductResponse, error) {
	products, err := uc.repo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		resp, err := uc.toResponse(p)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

// Delete elimina un producto del catálogo.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// toResponse arma la respuesta con stock por sede, total y estado clasificado.
// El estado usa la misma regla de umbrales en todas las pantallas.
func (uc *ProductUseCase) toResponse(p *entity.Product) (*dto.ProductResponse, error) {
	rows, err := uc.stockRepo.ListByProduct(p.ID)
	if err != nil {
		return nil, err
	}
	out := &dto.ProductResponse{
		ID:            p.ID,
		Code:          p.Code,
		Name:          p.Name,
		Description:   p.Description,
		CategoryID:    p.CategoryID,
		SubcategoryID: p.SubcategoryID,
		BrandID:       p.BrandID,
		CostPrice:     p.CostPrice,
		SalePrice:     p.SalePrice,
		Margin:        p.Margin(),
		Active:        p.Active,
		StockTotal:    decimal.Zero,
	}
	totalMin := decimal.Zero
	for _, s := range rows {
		out.Stocks = append(out.Stocks, dto.ProductStockDTO{
			SedeID:   s.SedeID,
			Quantity: s.Quantity,
			Minimum:  s.Minimum,
			Location: s.Location,
			Status:   stock.Classify(s.Quantity, s.Minimum),
		})
		out.StockTotal = out.StockTotal.Add(s.Quantity)
		totalMin = totalMin.Add(s.Minimum)
	}
	out.StockStatus = stock.Classify(out.StockTotal, totalMin)
	return out, nil
}
