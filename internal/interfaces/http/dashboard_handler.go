package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stockledger-api/internal/application/analytics"
	"github.com/jhoicas/stockledger-api/internal/application/dto"
)

// DashboardHandler maneja las peticiones HTTP de las vistas derivadas
// (dashboard y reportes). Todas son de solo lectura.
type DashboardHandler struct {
	uc *analytics.AggregatorUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.AggregatorUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen del dashboard
// @Description  Contadores, valorización y conjuntos de stock bajo / sobre stock.
// @Tags         dashboard
// @Produce      json
// @Param        from  query  string  false  "Fecha inicial del conteo de movimientos (RFC3339)"
// @Param        to    query  string  false  "Fecha final (RFC3339)"
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	from, _ := parseTimeQuery(c, "from")
	to, _ := parseTimeQuery(c, "to")
	out, err := h.uc.DashboardSummary(c.Context(), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ByType godoc
// @Summary      Movimientos agrupados por tipo
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}  dto.KindCountDTO
// @Router       /api/dashboard/transactions-by-type [get]
func (h *DashboardHandler) ByType(c *fiber.Ctx) error {
	out, err := h.uc.MovementsByKind(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Growth godoc
// @Summary      Serie de crecimiento de inventario
// @Description  Variación neta por mes calendario; los meses sin actividad van con cero.
// @Tags         dashboard
// @Produce      json
// @Param        from  query  string  true  "Fecha inicial (RFC3339 o YYYY-MM-DD)"
// @Param        to    query  string  true  "Fecha final"
// @Success      200  {array}  dto.GrowthPointDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/dashboard/growth [get]
func (h *DashboardHandler) Growth(c *fiber.Ctx) error {
	from, okFrom := parseTimeQuery(c, "from")
	to, okTo := parseTimeQuery(c, "to")
	if !okFrom || !okTo {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from y to son requeridos"})
	}
	out, err := h.uc.GrowthSeries(c.Context(), *from, *to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
