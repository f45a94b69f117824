package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockledger-api/internal/application/analytics"
	"github.com/jhoicas/stockledger-api/internal/application/dto"
	"github.com/jhoicas/stockledger-api/internal/application/inventory"
	"github.com/jhoicas/stockledger-api/internal/application/usecase"
	"github.com/jhoicas/stockledger-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/stockledger-api/internal/interfaces/http"
)

// buildTestApp levanta la API completa sobre el driver en memoria.
func buildTestApp() *fiber.App {
	store := memory.NewStore()
	itemRepo := memory.NewItemRepository(store)
	movRepo := memory.NewMovementRepository(store)
	supplierRepo := memory.NewSupplierRepository(store)
	warehouseRepo := memory.NewWarehouseRepository(store)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ItemUC:        usecase.NewItemUseCase(itemRepo),
		SupplierUC:    usecase.NewSupplierUseCase(supplierRepo),
		WarehouseUC:   usecase.NewWarehouseUseCase(warehouseRepo),
		MovementQuery: usecase.NewMovementQueryUseCase(movRepo),
		ApplyMovement: inventory.NewApplyMovementUseCase(memory.NewTxRunner(store), itemRepo),
		Aggregator:    analytics.NewAggregatorUseCase(itemRepo, movRepo, supplierRepo, warehouseRepo),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload any) *http.Response {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func registerSKU(t *testing.T, app *fiber.App, sku string, opening int64) {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/skus", dto.RegisterItemRequest{
		SKU: sku, ItemName: "Item " + sku, UOM: "unit", MaxLvl: 1000, OpeningStock: opening,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
}

func TestPostTransaction_Confirma(t *testing.T) {
	app := buildTestApp()
	registerSKU(t, app, "SKU-001", 50)

	resp := doJSON(t, app, http.MethodPost, "/api/transactions", dto.ApplyMovementRequest{
		SKU: "SKU-001", Quantity: 20, Type: "Sale", Remarks: "pedido 42",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	out := decodeBody[dto.ApplyMovementResponse](t, resp)
	assert.Equal(t, int64(30), out.NewBalance)
	assert.Equal(t, "Sale", out.Movement.Type)
	assert.Equal(t, int64(20), out.Movement.Quantity)
	assert.NotEmpty(t, out.Movement.ID)
}

func TestPostTransaction_StockInsuficiente(t *testing.T) {
	app := buildTestApp()
	registerSKU(t, app, "SKU-001", 50)

	// Primera venta deja 30; la segunda pide 40 y debe rechazarse.
	resp := doJSON(t, app, http.MethodPost, "/api/transactions", dto.ApplyMovementRequest{
		SKU: "SKU-001", Quantity: 20, Type: "Sale",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/transactions", dto.ApplyMovementRequest{
		SKU: "SKU-001", Quantity: 40, Type: "Sale",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	out := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INSUFFICIENT_STOCK", out.Code)

	// El ledger solo tiene la venta confirmada.
	resp = doJSON(t, app, http.MethodGet, "/api/transactions?sku=SKU-001", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeBody[dto.MovementListResponse](t, resp)
	assert.Equal(t, 1, list.Total)
}

func TestPostTransaction_SKUInexistente(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/transactions", dto.ApplyMovementRequest{
		SKU: "SKU-404", Quantity: 1, Type: "Purchase",
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	out := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "NOT_FOUND", out.Code)
}

func TestPostTransaction_TipoInvalido(t *testing.T) {
	app := buildTestApp()
	registerSKU(t, app, "SKU-001", 10)

	resp := doJSON(t, app, http.MethodPost, "/api/transactions", dto.ApplyMovementRequest{
		SKU: "SKU-001", Quantity: 1, Type: "Transfer",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	out := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", out.Code)
}

func TestPostSKU_Duplicado(t *testing.T) {
	app := buildTestApp()
	registerSKU(t, app, "SKU-001", 10)

	resp := doJSON(t, app, http.MethodPost, "/api/skus", dto.RegisterItemRequest{
		SKU: "SKU-001", ItemName: "Otro", UOM: "unit",
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	out := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "DUPLICATE", out.Code)
}

func TestGetDashboardSummary(t *testing.T) {
	app := buildTestApp()
	registerSKU(t, app, "SKU-001", 10)
	registerSKU(t, app, "SKU-002", 5)

	resp := doJSON(t, app, http.MethodGet, "/api/dashboard/summary", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeBody[dto.DashboardSummaryDTO](t, resp)
	assert.Equal(t, 2, out.TotalSKUs)
	assert.Equal(t, 0, out.TotalTransactions)
}

func TestGetGrowth_SinRango(t *testing.T) {
	app := buildTestApp()
	resp := doJSON(t, app, http.MethodGet, "/api/dashboard/growth", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	out := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", out.Code)
}
