package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jdrosales/autopartes-api/internal/application/dto"
	"github.com/jdrosales/autopartes-api/internal/application/inventory"
)

// StockHandler maneja consultas de stock, ajustes, traslados y mínimos.
type StockHandler struct {
	queries *inventory.StockQueryUseCase
	stockUC *inventory.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(queries *inventory.StockQueryUseCase, stockUC *inventory.StockUseCase) *StockHandler {
	return &StockHandler{queries: queries, stockUC: stockUC}
}

// List godoc
// @Summary      Stock de una sede
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        sede_id  query  string  true  "Sede a consultar"
// @Param        limit    query  int     false "Límite (default 20)"
// @Param        offset   query  int     false "Offset"
// @Success      200  {array}  dto.StockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return invalidBody(c)
	}
	page.DefaultPage()
	out, err := h.queries.ListBySede(c.Context(), c.Query("sede_id"), page.Limit, page.Offset)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// ListLow godoc
// @Summary      Productos con stock bajo (0 < cantidad <= mínimo)
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        sede_id  query  string  false  "Sede; vacío = todas"
// @Success      200  {array}  dto.StockResponse
// @Router       /api/stock/bajo [get]
func (h *StockHandler) ListLow(c *fiber.Ctx) error {
	out, err := h.queries.ListLow(c.Context(), c.Query("sede_id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// ListZero godoc
// @Summary      Productos agotados
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        sede_id  query  string  false  "Sede; vacío = todas"
// @Success      200  {array}  dto.StockResponse
// @Router       /api/stock/agotado [get]
func (h *StockHandler) ListZero(c *fiber.Ctx) error {
	out, err := h.queries.ListZero(c.Context(), c.Query("sede_id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Adjust godoc
// @Summary      Ajuste manual de stock
// @Description  Delta con signo y motivo obligatorio. La cantidad resultante nunca queda negativa.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "product_id, sede_id, quantity (con signo), reason"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/ajuste [post]
func (h *StockHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.stockUC.Adjust(c.Context(), GetUserID(c), in); err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "ajuste registrado"})
}

// Transfer godoc
// @Summary      Traslado de stock entre sedes
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferStockRequest  true  "product_id, from_sede_id, to_sede_id, quantity"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/transferencia [post]
func (h *StockHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferStockRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.stockUC.Transfer(c.Context(), GetUserID(c), in); err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "traslado registrado"})
}

// SetMinimum godoc
// @Summary      Fijar stock mínimo y ubicación
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetMinimumRequest  true  "product_id, sede_id, minimum, location"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock/minimo [put]
func (h *StockHandler) SetMinimum(c *fiber.Ctx) error {
	var in dto.SetMinimumRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.queries.SetMinimum(c.Context(), in); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "mínimo actualizado"})
}
