package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockledger-api/internal/application/analytics"
	"github.com/jhoicas/stockledger-api/internal/application/dto"
	"github.com/jhoicas/stockledger-api/internal/domain/entity"
	"github.com/jhoicas/stockledger-api/internal/infrastructure/memory"
)

type fixture struct {
	uc    *analytics.AggregatorUseCase
	store *memory.Store
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	uc := analytics.NewAggregatorUseCase(
		memory.NewItemRepository(store),
		memory.NewMovementRepository(store),
		memory.NewSupplierRepository(store),
		memory.NewWarehouseRepository(store),
	)
	return &fixture{uc: uc, store: store}
}

func (f *fixture) addItem(t *testing.T, sku string, stock, minLvl, maxLvl int64, price int64) {
	t.Helper()
	now := time.Now()
	err := memory.NewItemRepository(f.store).Create(context.Background(), &entity.Item{
		ID:           uuid.New().String(),
		SKU:          sku,
		ItemName:     "Item " + sku,
		UOM:          "unit",
		MinLvl:       minLvl,
		MaxLvl:       maxLvl,
		OpeningStock: stock,
		CurrentStock: stock,
		Price:        decimal.NewFromInt(price),
		Status:       entity.ItemStatusActive,
		AddedOn:      now,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	require.NoError(t, err)
}

func (f *fixture) addMovement(t *testing.T, sku string, qty int64, kind entity.Kind, ts time.Time) {
	t.Helper()
	err := memory.NewMovementRepository(f.store).Append(context.Background(), &entity.Movement{
		ID:        uuid.New().String(),
		SKU:       sku,
		ItemName:  "Item " + sku,
		Quantity:  qty,
		Kind:      kind,
		Timestamp: ts,
		CreatedAt: ts,
	})
	require.NoError(t, err)
}

func TestDashboardSummary(t *testing.T) {
	f := newFixture(t)
	// SKU-A: saldo 10, min 20 -> stock bajo. SKU-B: saldo 50, max 30 -> sobre stock.
	f.addItem(t, "SKU-A", 10, 20, 100, 3)
	f.addItem(t, "SKU-B", 50, 5, 30, 2)
	now := time.Now()
	f.addMovement(t, "SKU-A", 5, entity.KindPurchase, now)
	f.addMovement(t, "SKU-B", 2, entity.KindSale, now)
	f.addMovement(t, "SKU-B", 1, entity.KindSale, now)

	require.NoError(t, memory.NewSupplierRepository(f.store).Create(context.Background(), &entity.Supplier{
		ID: uuid.New().String(), VendorName: "ACME", GSTNo: "GST-1", EmailID: "acme@example.com",
	}))
	require.NoError(t, memory.NewWarehouseRepository(f.store).Create(context.Background(), &entity.Warehouse{
		ID: uuid.New().String(), Name: "Central",
	}))

	out, err := f.uc.DashboardSummary(context.Background(), nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, out.TotalSKUs)
	assert.Equal(t, 3, out.TotalTransactions)
	assert.Equal(t, 1, out.TotalSuppliers)
	assert.Equal(t, 1, out.TotalWarehouses)
	// 10×3 + 50×2 = 130
	assert.True(t, out.InventoryValuation.Equal(decimal.NewFromInt(130)),
		"valorización esperada 130, obtenida %s", out.InventoryValuation)

	require.Len(t, out.LowStock, 1)
	assert.Equal(t, "SKU-A", out.LowStock[0].SKU)
	assert.Equal(t, int64(20), out.LowStock[0].Level)
	require.Len(t, out.OverStock, 1)
	assert.Equal(t, "SKU-B", out.OverStock[0].SKU)
}

func TestDashboardSummary_RangoDeFechas(t *testing.T) {
	f := newFixture(t)
	f.addItem(t, "SKU-A", 10, 0, 100, 1)
	f.addMovement(t, "SKU-A", 1, entity.KindPurchase, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC))
	f.addMovement(t, "SKU-A", 1, entity.KindPurchase, time.Date(2026, 5, 15, 0, 0, 0, 0, time.UTC))

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	out, err := f.uc.DashboardSummary(context.Background(), &from, &to)
	require.NoError(t, err)
	assert.Equal(t, 1, out.TotalTransactions, "solo cuenta movimientos dentro del rango")
}

// Las lecturas del agregador son puras: dos llamadas sin escrituras
// intermedias devuelven exactamente lo mismo.
func TestDashboardSummary_Idempotente(t *testing.T) {
	f := newFixture(t)
	f.addItem(t, "SKU-A", 10, 2, 100, 7)
	f.addMovement(t, "SKU-A", 3, entity.KindSale, time.Now())

	first, err := f.uc.DashboardSummary(context.Background(), nil, nil)
	require.NoError(t, err)
	second, err := f.uc.DashboardSummary(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestMovementsByKind_IncluyeTiposSinActividad(t *testing.T) {
	f := newFixture(t)
	f.addItem(t, "SKU-A", 10, 0, 100, 1)
	now := time.Now()
	f.addMovement(t, "SKU-A", 1, entity.KindSale, now)
	f.addMovement(t, "SKU-A", 2, entity.KindSale, now)

	out, err := f.uc.MovementsByKind(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 4, "los cuatro tipos aparecen siempre")

	byType := map[string]int{}
	for _, kc := range out {
		byType[kc.Type] = kc.Count
	}
	assert.Equal(t, 2, byType["Sale"])
	assert.Equal(t, 0, byType["Purchase"])
	assert.Equal(t, 0, byType["Adjusted In"])
	assert.Equal(t, 0, byType["Adjusted Out"])
}

func TestGrowthSeries_MesesSinActividadEnCero(t *testing.T) {
	f := newFixture(t)
	f.addItem(t, "SKU-A", 100, 0, 1000, 1)
	// Enero: +10 -3 = +7. Febrero: nada. Marzo: -5.
	f.addMovement(t, "SKU-A", 10, entity.KindPurchase, time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC))
	f.addMovement(t, "SKU-A", 3, entity.KindSale, time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC))
	f.addMovement(t, "SKU-A", 5, entity.KindAdjustedOut, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC))

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	out, err := f.uc.GrowthSeries(context.Background(), from, to)
	require.NoError(t, err)

	want := []dto.GrowthPointDTO{
		{Month: "2026-01", Value: 7},
		{Month: "2026-02", Value: 0},
		{Month: "2026-03", Value: -5},
	}
	assert.Equal(t, want, out)
}

func TestGrowthSeries_RangoInvertido(t *testing.T) {
	f := newFixture(t)
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := f.uc.GrowthSeries(context.Background(), from, to)
	assert.Error(t, err)
}

func TestStockAging(t *testing.T) {
	f := newFixture(t)
	f.addItem(t, "SKU-A", 10, 0, 100, 1)
	f.addItem(t, "SKU-B", 10, 0, 100, 1)
	old := time.Now().AddDate(0, 0, -10)
	recent := time.Now().AddDate(0, 0, -2)
	f.addMovement(t, "SKU-A", 1, entity.KindPurchase, old)
	f.addMovement(t, "SKU-A", 1, entity.KindSale, recent)

	out, err := f.uc.StockAging(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)

	// Ordenado por sku.
	assert.Equal(t, "SKU-A", out[0].SKU)
	assert.Equal(t, "SKU-B", out[1].SKU)

	require.NotNil(t, out[0].LastTransactionOn, "SKU-A tiene movimientos")
	assert.WithinDuration(t, recent, *out[0].LastTransactionOn, time.Second,
		"el último movimiento es el más reciente, no el primero")
	require.NotNil(t, out[0].DaysSinceLastTransaction)
	assert.Equal(t, 2, *out[0].DaysSinceLastTransaction)
	assert.Equal(t, 2, out[0].TotalTransactions)

	assert.Nil(t, out[1].LastTransactionOn, "SKU-B nunca tuvo movimientos")
	assert.Nil(t, out[1].DaysSinceLastTransaction)
	assert.Equal(t, 0, out[1].TotalTransactions)
}

func TestSalesDispatchReport(t *testing.T) {
	f := newFixture(t)
	f.addItem(t, "SKU-A", 42, 0, 100, 1)
	now := time.Now()
	f.addMovement(t, "SKU-A", 5, entity.KindSale, now)
	f.addMovement(t, "SKU-A", 3, entity.KindPurchase, now)

	out, err := f.uc.SalesDispatchReport(context.Background(), dto.ReportFilter{})
	require.NoError(t, err)
	require.Len(t, out, 1, "solo movimientos Sale")
	assert.Equal(t, int64(5), out[0].Quantity)
	assert.Equal(t, int64(42), out[0].RemainingQuantity, "cantidad restante = saldo actual del item")
}

func TestSalesDispatchReport_FiltroPorNombre(t *testing.T) {
	f := newFixture(t)
	f.addItem(t, "SKU-A", 10, 0, 100, 1)
	f.addItem(t, "SKU-B", 10, 0, 100, 1)
	now := time.Now()
	f.addMovement(t, "SKU-A", 1, entity.KindSale, now)
	f.addMovement(t, "SKU-B", 1, entity.KindSale, now)

	out, err := f.uc.SalesDispatchReport(context.Background(), dto.ReportFilter{ItemName: "item sku-a"})
	require.NoError(t, err)
	require.Len(t, out, 1, "el filtro de nombre es parcial e insensible a mayúsculas")
	assert.Equal(t, "SKU-A", out[0].SKU)
}

func TestSalesReturnReport(t *testing.T) {
	f := newFixture(t)
	f.addItem(t, "SKU-A", 10, 0, 100, 1)
	now := time.Now()
	f.addMovement(t, "SKU-A", 4, entity.KindAdjustedIn, now)
	f.addMovement(t, "SKU-A", 9, entity.KindSale, now)

	out, err := f.uc.SalesReturnReport(context.Background(), dto.ReportFilter{})
	require.NoError(t, err)
	require.Len(t, out, 1, "solo movimientos Adjusted In")
	assert.Equal(t, int64(4), out[0].Quantity)
}
