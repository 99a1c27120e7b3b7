package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jdrosales/autopartes-api/internal/application/catalog"
	"github.com/jdrosales/autopartes-api/internal/application/dto"
)

// TaxonomyHandler maneja categorías (con subcategorías) y marcas.
type TaxonomyHandler struct {
	uc *catalog.TaxonomyUseCase
}

// NewTaxonomyHandler construye el handler.
func NewTaxonomyHandler(uc *catalog.TaxonomyUseCase) *TaxonomyHandler {
	return &TaxonomyHandler{uc: uc}
}

// CreateCategory godoc
// @Summary      Crear categoría o subcategoría
// @Tags         categorias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "name; parent_id para subcategoría"
// @Success      201   {object}  dto.CategoryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/categorias [post]
func (h *TaxonomyHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateCategory(c.Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListCategories godoc
// @Summary      Listar categorías
// @Tags         categorias
// @Security     Bearer
// @Produce      json
// @Param        parent_id  query  string  false  "ID del padre; vacío lista las raíces"
// @Success      200  {array}  dto.CategoryResponse
// @Router       /api/categorias [get]
func (h *TaxonomyHandler) ListCategories(c *fiber.Ctx) error {
	out, err := h.uc.ListCategories(c.Context(), c.Query("parent_id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// UpdateCategory godoc
// @Summary      Actualizar categoría
// @Tags         categorias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la categoría"
// @Param        body  body  dto.UpdateCategoryRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.CategoryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/categorias/{id} [put]
func (h *TaxonomyHandler) UpdateCategory(c *fiber.Ctx) error {
	var in dto.UpdateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateCategory(c.Context(), c.Params("id"), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// CreateBrand godoc
// @Summary      Crear marca
// @Tags         marcas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBrandRequest  true  "name"
// @Success      201   {object}  dto.BrandResponse
// @Router       /api/marcas [post]
func (h *TaxonomyHandler) CreateBrand(c *fiber.Ctx) error {
	var in dto.CreateBrandRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateBrand(c.Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateBrand godoc
// @Summary      Actualizar marca
// @Tags         marcas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la marca"
// @Param        body  body  dto.UpdateBrandRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.BrandResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/marcas/{id} [put]
func (h *TaxonomyHandler) UpdateBrand(c *fiber.Ctx) error {
	var in dto.UpdateBrandRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateBrand(c.Context(), c.Params("id"), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// ListBrands godoc
// @Summary      Listar marcas
// @Tags         marcas
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.BrandResponse
// @Router       /api/marcas [get]
func (h *TaxonomyHandler) ListBrands(c *fiber.Ctx) error {
	out, err := h.uc.ListBrands(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}
