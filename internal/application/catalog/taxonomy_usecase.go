package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jdrosales/autopartes-api/internal/application/dto"
	"github.com/jdrosales/autopartes-api/internal/domain"
	"github.com/jdrosales/autopartes-api/internal/domain/entity"
	"github.com/jdrosales/autopartes-api/internal/domain/repository"
)

// TaxonomyUseCase categorías (con subcategorías) y marcas.
type TaxonomyUseCase struct {
	categoryRepo repository.CategoryRepository
	brandRepo    repository.BrandRepository
}

// NewTaxonomyUseCase construye el caso de uso.
func NewTaxonomyUseCase(categoryRepo repository.CategoryRepository, brandRepo repository.BrandRepository) *TaxonomyUseCase {
	return &TaxonomyUseCase{categoryRepo: categoryRepo, brandRepo: brandRepo}
}

// CreateCategory crea una categoría; con ParentID crea una subcategoría y el
// padre debe existir.
func (uc *TaxonomyUseCase) CreateCategory(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.ParentID != "" {
		parent, err := uc.categoryRepo.GetByID(in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	category := &entity.Category{
		ID:        uuid.New().String(),
		ParentID:  in.ParentID,
		Name:      in.Name,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// ListCategories lista raíces (parentID vacío) o subcategorías de un padre.
func (uc *TaxonomyUseCase) ListCategories(ctx context.Context, parentID string) ([]*dto.CategoryResponse, error) {
	categories, err := uc.categoryRepo.List(parentID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, toCategoryResponse(c))
	}
	return out, nil
}

// UpdateCategory actualiza una categoría. Campos nil no se modifican.
func (uc *TaxonomyUseCase) UpdateCategory(ctx context.Context, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		category.Name = *in.Name
	}
	if in.Active != nil {
		category.Active = *in.Active
	}
	category.UpdatedAt = time.Now()
	if err := uc.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// CreateBrand crea una marca.
func (uc *TaxonomyUseCase) CreateBrand(ctx context.Context, in dto.CreateBrandRequest) (*dto.BrandResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	brand := &entity.Brand{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.brandRepo.Create(brand); err != nil {
		return nil, err
	}
	return toBrandResponse(brand), nil
}

// UpdateBrand actualiza una marca. Campos nil no se modifican.
func (uc *TaxonomyUseCase) UpdateBrand(ctx context.Context, id string, in dto.UpdateBrandRequest) (*dto.BrandResponse, error) {
	brand, err := uc.brandRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		brand.Name = *in.Name
	}
	if in.Active != nil {
		brand.Active = *in.Active
	}
	brand.UpdatedAt = time.Now()
	if err := uc.brandRepo.Update(brand); err != nil {
		return nil, err
	}
	return toBrandResponse(brand), nil
}

// ListBrands lista las marcas.
func (uc *TaxonomyUseCase) ListBrands(ctx context.Context) ([]*dto.BrandResponse, error) {
	brands, err := uc.brandRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.BrandResponse, 0, len(brands))
	for _, b := range brands {
		out = append(out, toBrandResponse(b))
	}
	return out, nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{ID: c.ID, ParentID: c.ParentID, Name: c.Name, Active: c.Active}
}

func toBrandResponse(b *entity.Brand) *dto.BrandResponse {
	return &dto.BrandResponse{ID: b.ID, Name: b.Name, Active: b.Active}
}
