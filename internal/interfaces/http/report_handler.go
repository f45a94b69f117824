package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stockledger-api/internal/application/analytics"
	"github.com/jhoicas/stockledger-api/internal/application/dto"
)

// ReportHandler maneja los reportes operativos (antigüedad, despachos, devoluciones).
type ReportHandler struct {
	uc *analytics.AggregatorUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *analytics.AggregatorUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// StockAging godoc
// @Summary      Reporte de antigüedad de stock
// @Tags         reports
// @Produce      json
// @Success      200  {array}  dto.StockAgingRowDTO
// @Router       /api/reports/stock-aging [get]
func (h *ReportHandler) StockAging(c *fiber.Ctx) error {
	out, err := h.uc.StockAging(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SalesDispatch godoc
// @Summary      Reporte de despachos (movimientos Sale)
// @Tags         reports
// @Produce      json
// @Param        sku        query  string  false  "Filtrar por SKU"
// @Param        item_name  query  string  false  "Filtrar por nombre (parcial)"
// @Param        from       query  string  false  "Fecha inicial"
// @Param        to         query  string  false  "Fecha final"
// @Success      200  {array}  dto.DispatchRowDTO
// @Router       /api/reports/sales-dispatch [get]
func (h *ReportHandler) SalesDispatch(c *fiber.Ctx) error {
	out, err := h.uc.SalesDispatchReport(c.Context(), reportFilterFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SalesReturn godoc
// @Summary      Reporte de devoluciones (movimientos Adjusted In)
// @Tags         reports
// @Produce      json
// @Param        sku        query  string  false  "Filtrar por SKU"
// @Param        item_name  query  string  false  "Filtrar por nombre (parcial)"
// @Param        from       query  string  false  "Fecha inicial"
// @Param        to         query  string  false  "Fecha final"
// @Success      200  {array}  dto.ReturnRowDTO
// @Router       /api/reports/sales-return [get]
func (h *ReportHandler) SalesReturn(c *fiber.Ctx) error {
	out, err := h.uc.SalesReturnReport(c.Context(), reportFilterFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func reportFilterFromQuery(c *fiber.Ctx) dto.ReportFilter {
	filter := dto.ReportFilter{
		SKU:      c.Query("sku"),
		ItemName: c.Query("item_name"),
	}
	if from, ok := parseTimeQuery(c, "from"); ok {
		filter.From = from
	}
	if to, ok := parseTimeQuery(c, "to"); ok {
		filter.To = to
	}
	return filter
}
