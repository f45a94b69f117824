package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stockledger-api/internal/application/dto"
	"github.com/jhoicas/stockledger-api/internal/application/inventory"
	"github.com/jhoicas/stockledger-api/internal/application/usecase"
	"github.com/jhoicas/stockledger-api/internal/domain/entity"
	"github.com/jhoicas/stockledger-api/internal/domain/repository"
)

// MovementHandler maneja las peticiones HTTP de movimientos de inventario.
// El POST pasa por el motor transaccional; el GET es consulta pura del ledger.
type MovementHandler struct {
	apply *inventory.ApplyMovementUseCase
	query *usecase.MovementQueryUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(apply *inventory.ApplyMovementUseCase, query *usecase.MovementQueryUseCase) *MovementHandler {
	return &MovementHandler{apply: apply, query: query}
}

// Apply godoc
// @Summary      Registrar movimiento de inventario
// @Description  Aplica un movimiento (Adjusted In/Out, Purchase, Sale) de forma
//               atómica: entrada del ledger y saldo del item se confirman juntos.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ApplyMovementRequest  true  "sku, quantity (magnitud), type, remarks"
// @Success      201   {object}  dto.ApplyMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *MovementHandler) Apply(c *fiber.Ctx) error {
	var in dto.ApplyMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.apply.Apply(c.Context(), inventory.MovementInput{
		SKU:      in.SKU,
		Quantity: in.Quantity,
		Kind:     in.Type,
		Remarks:  in.Remarks,
	})
	if err != nil {
		return respondError(c, err)
	}
	mov := result.Movement
	return c.Status(fiber.StatusCreated).JSON(dto.ApplyMovementResponse{
		Movement: dto.MovementResponse{
			ID:        mov.ID,
			SKU:       mov.SKU,
			ItemName:  mov.ItemName,
			Quantity:  mov.Quantity,
			Type:      string(mov.Kind),
			Remarks:   mov.Remarks,
			Timestamp: mov.Timestamp,
		},
		NewBalance: result.NewBalance,
	})
}

// List godoc
// @Summary      Consultar el ledger de movimientos
// @Tags         transactions
// @Produce      json
// @Param        sku   query  string  false  "Filtrar por SKU"
// @Param        type  query  string  false  "Adjusted In | Adjusted Out | Purchase | Sale"
// @Param        from  query  string  false  "Fecha inicial (RFC3339)"
// @Param        to    query  string  false  "Fecha final (RFC3339)"
// @Success      200   {object}  dto.MovementListResponse
// @Router       /api/transactions [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	filter := repository.MovementFilter{
		SKU:  c.Query("sku"),
		Kind: entity.Kind(c.Query("type")),
	}
	if from, ok := parseTimeQuery(c, "from"); ok {
		filter.From = from
	}
	if to, ok := parseTimeQuery(c, "to"); ok {
		filter.To = to
	}
	out, err := h.query.Query(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// parseTimeQuery lee un parámetro de fecha RFC3339 o YYYY-MM-DD.
// Devuelve ok=false si el parámetro está vacío o es inválido.
func parseTimeQuery(c *fiber.Ctx, key string) (*time.Time, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, false
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, true
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t, true
	}
	return nil, false
}
