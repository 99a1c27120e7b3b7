package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jdrosales/autopartes-api/internal/application/dto"
	"github.com/jdrosales/autopartes-api/internal/application/labels"
)

// LabelHandler genera etiquetas de productos con código de barras.
type LabelHandler struct {
	uc *labels.LabelUseCase
}

// NewLabelHandler construye el handler.
func NewLabelHandler(uc *labels.LabelUseCase) *LabelHandler {
	return &LabelHandler{uc: uc}
}

// Generate godoc
// @Summary      Generar etiquetas en PDF
// @Description  Recibe una lista de productos o una compra (sus líneas) y devuelve un PDF
//
//	con etiquetas Code-128 listas para imprimir.
//
// @Tags         etiquetas
// @Security     Bearer
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.LabelsRequest  true  "product_ids o purchase_id, per_product"
// @Success      200   {string}  string  "archivo PDF"
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/etiquetas [post]
func (h *LabelHandler) Generate(c *fiber.Ctx) error {
	var in dto.LabelsRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Generate(c.Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="etiquetas.pdf"`)
	return c.Send(out)
}
