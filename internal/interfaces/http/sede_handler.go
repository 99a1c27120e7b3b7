package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jdrosales/autopartes-api/internal/application/catalog"
	"github.com/jdrosales/autopartes-api/internal/application/dto"
)

// SedeHandler maneja el CRUD de sedes.
type SedeHandler struct {
	uc *catalog.SedeUseCase
}

// NewSedeHandler construye el handler.
func NewSedeHandler(uc *catalog.SedeUseCase) *SedeHandler {
	return &SedeHandler{uc: uc}
}

// Create godoc
// @Summary      Crear sede
// @Tags         sedes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSedeRequest  true  "name, address, phone"
// @Success      201   {object}  dto.SedeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sedes [post]
func (h *SedeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSedeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar sedes
// @Tags         sedes
// @Security     Bearer
// @Produce      json
// @Param        activas  query  bool  false  "Solo sedes activas"
// @Success      200  {array}  dto.SedeResponse
// @Router       /api/sedes [get]
func (h *SedeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.QueryBool("activas"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener sede
// @Tags         sedes
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la sede"
// @Success      200  {object}  dto.SedeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sedes/{id} [get]
func (h *SedeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar sede
// @Tags         sedes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID de la sede"
// @Param        body  body  dto.UpdateSedeRequest  true  "campos a modificar"
// @Success      200   {object}  dto.SedeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sedes/{id} [put]
func (h *SedeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSedeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}
