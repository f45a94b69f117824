package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stockledger-api/internal/application/dto"
	"github.com/jhoicas/stockledger-api/internal/application/usecase"
	"github.com/jhoicas/stockledger-api/internal/domain/repository"
)

// ItemHandler maneja las peticiones HTTP del registro de SKUs.
type ItemHandler struct {
	uc *usecase.ItemUseCase
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar SKU
// @Tags         skus
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterItemRequest  true  "Datos del SKU"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/skus [post]
func (h *ItemHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Register(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Find godoc
// @Summary      Obtener SKU por código
// @Tags         skus
// @Produce      json
// @Param        sku  path  string  true  "Código del SKU"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/skus/{sku} [get]
func (h *ItemHandler) Find(c *fiber.Ctx) error {
	sku := c.Params("sku")
	if sku == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_SKU", Message: "sku es requerido"})
	}
	out, err := h.uc.Find(c.Context(), sku)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar SKUs
// @Tags         skus
// @Produce      json
// @Param        sku        query  string  false  "Filtrar por código"
// @Param        warehouse  query  string  false  "Filtrar por bodega"
// @Param        item_name  query  string  false  "Filtrar por nombre (parcial)"
// @Param        uom        query  string  false  "Filtrar por unidad de medida"
// @Param        status     query  string  false  "Active | Inactive"
// @Success      200  {object}  dto.ItemListResponse
// @Router       /api/skus [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	filter := repository.ItemFilter{
		SKU:       c.Query("sku"),
		Warehouse: c.Query("warehouse"),
		ItemName:  c.Query("item_name"),
		UOM:       c.Query("uom"),
		Status:    c.Query("status"),
	}
	out, err := h.uc.List(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar SKU (campos de presentación)
// @Tags         skus
// @Accept       json
// @Produce      json
// @Param        sku   path  string  true  "Código del SKU"
// @Param        body  body  dto.UpdateItemRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/skus/{sku} [put]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	sku := c.Params("sku")
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), sku, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetStatus godoc
// @Summary      Activar o desactivar un SKU
// @Description  Baja lógica: los items con movimientos nunca se borran físicamente.
// @Tags         skus
// @Accept       json
// @Produce      json
// @Param        sku   path  string  true  "Código del SKU"
// @Param        body  body  dto.SetItemStatusRequest  true  "Active | Inactive"
// @Success      200   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/skus/{sku}/status [patch]
func (h *ItemHandler) SetStatus(c *fiber.Ctx) error {
	sku := c.Params("sku")
	var in dto.SetItemStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetStatus(c.Context(), sku, in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
