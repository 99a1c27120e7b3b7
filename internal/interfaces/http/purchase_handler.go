package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jdrosales/autopartes-api/internal/application/dto"
	"github.com/jdrosales/autopartes-api/internal/application/purchases"
)

// PurchaseHandler maneja el ciclo de vida de compras.
type PurchaseHandler struct {
	uc *purchases.PurchaseUseCase
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(uc *purchases.PurchaseUseCase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar compra (nace PENDIENTE, no afecta stock)
// @Tags         compras
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePurchaseRequest  true  "supplier_id, sede_id, lines"
// @Success      201   {object}  dto.PurchaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/compras [post]
func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar compras
// @Tags         compras
// @Security     Bearer
// @Produce      json
// @Param        sede_id  query  string  false  "Filtrar por sede"
// @Param        estado   query  string  false  "PENDIENTE, RECIBIDA o COMPLETADA"
// @Param        limit    query  int     false  "Límite (default 20)"
// @Param        offset   query  int     false  "Offset"
// @Success      200  {array}  dto.PurchaseResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/compras [get]
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return invalidBody(c)
	}
	page.DefaultPage()
	out, err := h.uc.List(c.Context(), c.Query("sede_id"), c.Query("estado"), page.Limit, page.Offset)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener compra con líneas
// @Tags         compras
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la compra"
// @Success      200  {object}  dto.PurchaseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/compras/{id} [get]
func (h *PurchaseHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "compra no encontrada"})
	}
	return c.JSON(out)
}

// ChangeStatus godoc
// @Summary      Cambiar estado de la compra
// @Description  PENDIENTE→RECIBIDA ingresa la mercancía al stock (única vía de entrada).
//
//	RECIBIDA→COMPLETADA cierra sin tocar stock. Reabrir a PENDIENTE revierte
//	con ajustes compensatorios; falla si el stock ya fue consumido.
//
// @Tags         compras
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                           true  "ID de la compra"
// @Param        body  body  dto.ChangePurchaseStatusRequest  true  "status destino"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/compras/{id}/estado [put]
func (h *PurchaseHandler) ChangeStatus(c *fiber.Ctx) error {
	var in dto.ChangePurchaseStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.ChangeStatus(c.Context(), GetUserID(c), c.Params("id"), in.Status); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "estado actualizado"})
}

// SetInvoice godoc
// @Summary      Adjuntar factura a la compra
// @Tags         compras
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID de la compra"
// @Param        body  body  dto.PurchaseInvoiceRequest true  "invoice_number, invoice_file"
// @Success      200   {object}  map[string]string
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/compras/{id}/factura [put]
func (h *PurchaseHandler) SetInvoice(c *fiber.Ctx) error {
	var in dto.PurchaseInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.SetInvoice(c.Context(), c.Params("id"), in); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "factura registrada"})
}

// Delete godoc
// @Summary      Eliminar compra (solo PENDIENTE)
// @Tags         compras
// @Security     Bearer
// @Param        id  path  string  true  "ID de la compra"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/compras/{id} [delete]
func (h *PurchaseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
