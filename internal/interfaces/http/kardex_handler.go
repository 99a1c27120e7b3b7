package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jdrosales/autopartes-api/internal/application/dto"
	"github.com/jdrosales/autopartes-api/internal/application/inventory"
)

// KardexHandler maneja las consultas y exportaciones del kardex.
type KardexHandler struct {
	uc *inventory.KardexUseCase
}

// NewKardexHandler construye el handler.
func NewKardexHandler(uc *inventory.KardexUseCase) *KardexHandler {
	return &KardexHandler{uc: uc}
}

// Query godoc
// @Summary      Consultar kardex
// @Description  Movimientos filtrados por producto, sede, tipo y rango de fechas, con resumen por tipo.
// @Tags         kardex
// @Security     Bearer
// @Produce      json
// @Param        producto_id  query  string  false  "Filtrar por producto"
// @Param        sede_id      query  string  false  "Filtrar por sede"
// @Param        tipo         query  string  false  "ENTRADA, SALIDA, AJUSTE o TRANSFERENCIA"
// @Param        desde        query  string  false  "Fecha inicial (2006-01-02)"
// @Param        hasta        query  string  false  "Fecha final inclusive (2006-01-02)"
// @Param        limit        query  int     false  "Límite"
// @Param        offset       query  int     false  "Offset"
// @Success      200  {object}  dto.KardexResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/kardex [get]
func (h *KardexHandler) Query(c *fiber.Ctx) error {
	var in dto.KardexQueryRequest
	if err := c.QueryParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Query(c.Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// ExportCSV godoc
// @Summary      Exportar kardex a CSV
// @Tags         kardex
// @Security     Bearer
// @Produce      text/csv
// @Param        producto_id  query  string  false  "Filtrar por producto"
// @Param        sede_id      query  string  false  "Filtrar por sede"
// @Param        tipo         query  string  false  "Tipo de movimiento"
// @Param        desde        query  string  false  "Fecha inicial (2006-01-02)"
// @Param        hasta        query  string  false  "Fecha final inclusive (2006-01-02)"
// @Success      200  {string}  string  "archivo CSV"
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/kardex/export.csv [get]
func (h *KardexHandler) ExportCSV(c *fiber.Ctx) error {
	var in dto.KardexQueryRequest
	if err := c.QueryParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.ExportCSV(c.Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="kardex.csv"`)
	return c.Send(out)
}

// ExportPDF godoc
// @Summary      Exportar kardex a PDF
// @Tags         kardex
// @Security     Bearer
// @Produce      application/pdf
// @Param        producto_id  query  string  false  "Filtrar por producto"
// @Param        sede_id      query  string  false  "Filtrar por sede"
// @Param        tipo         query  string  false  "Tipo de movimiento"
// @Param        desde        query  string  false  "Fecha inicial (2006-01-02)"
// @Param        hasta        query  string  false  "Fecha final inclusive (2006-01-02)"
// @Success      200  {string}  string  "archivo PDF"
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/kardex/export.pdf [get]
func (h *KardexHandler) ExportPDF(c *fiber.Ctx) error {
	var in dto.KardexQueryRequest
	if err := c.QueryParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.ExportPDF(c.Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="kardex.pdf"`)
	return c.Send(out)
}
