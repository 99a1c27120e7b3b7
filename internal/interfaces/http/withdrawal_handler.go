package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jdrosales/autopartes-api/internal/application/dto"
	"github.com/jdrosales/autopartes-api/internal/application/inventory"
)

// WithdrawalHandler maneja los retiros de inventario.
type WithdrawalHandler struct {
	uc *inventory.StockUseCase
}

// NewWithdrawalHandler construye el handler.
func NewWithdrawalHandler(uc *inventory.StockUseCase) *WithdrawalHandler {
	return &WithdrawalHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar retiro
// @Description  Una o más líneas con un motivo común (VENTA, GARANTIA, MUESTRA, TRASLADO,
//
//	DEVOLUCION, OTRO). Con OTRO la nota es obligatoria. Si alguna línea excede
//	el stock disponible, no se aplica nada.
//
// @Tags         retiros
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WithdrawalRequest  true  "sede_id, lines, reason, note"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/retiros [post]
func (h *WithdrawalHandler) Create(c *fiber.Ctx) error {
	var in dto.WithdrawalRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.Withdraw(c.Context(), GetUserID(c), in); err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "retiro registrado"})
}
