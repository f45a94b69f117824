// Package analytics contiene las vistas derivadas de solo lectura sobre
// el registro de SKUs y el ledger de movimientos: resumen del dashboard,
// conteos por tipo, serie de crecimiento y reportes de antigüedad,
// despachos y devoluciones. Nunca muta el registro ni el ledger.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/stockledger-api/internal/application/dto"
	"github.com/jhoicas/stockledger-api/internal/domain/entity"
	"github.com/jhoicas/stockledger-api/internal/domain/repository"
)

// AggregatorUseCase deriva reportes a partir de snapshots del registro y
// del ledger. Recalcula en cada llamada; no mantiene estado incremental.
type AggregatorUseCase struct {
	itemRepo      repository.ItemRepository
	movRepo       repository.MovementRepository
	supplierRepo  repository.SupplierRepository
	warehouseRepo repository.WarehouseRepository
}

// NewAggregatorUseCase construye el caso de uso.
func NewAggregatorUseCase(
	itemRepo repository.ItemRepository,
	movRepo repository.MovementRepository,
	supplierRepo repository.SupplierRepository,
	warehouseRepo repository.WarehouseRepository,
) *AggregatorUseCase {
	return &AggregatorUseCase{
		itemRepo:      itemRepo,
		movRepo:       movRepo,
		supplierRepo:  supplierRepo,
		warehouseRepo: warehouseRepo,
	}
}

// DashboardSummary construye el resumen del dashboard: contadores,
// valorización Σ(saldo × precio) sobre todos los items (activos e
// inactivos) y los conjuntos de stock bajo / sobre stock.
// TotalTransactions cuenta los movimientos dentro de [from, to].
func (uc *AggregatorUseCase) DashboardSummary(ctx context.Context, from, to *time.Time) (*dto.DashboardSummaryDTO, error) {
	// Consultas independientes en paralelo, como hace el dashboard
	// financiero: items, movimientos del rango, proveedores y bodegas.
	type itemsResult struct {
		items []*entity.Item
		err   error
	}
	type movsResult struct {
		movs []*entity.Movement
		err  error
	}
	type countResult struct {
		n   int
		err error
	}

	itemsCh := make(chan itemsResult, 1)
	movsCh := make(chan movsResult, 1)
	suppliersCh := make(chan countResult, 1)
	warehousesCh := make(chan countResult, 1)

	go func() {
		items, err := uc.itemRepo.List(ctx, repository.ItemFilter{})
		itemsCh <- itemsResult{items, err}
	}()
	go func() {
		movs, err := uc.movRepo.Query(ctx, repository.MovementFilter{From: from, To: to})
		movsCh <- movsResult{movs, err}
	}()
	go func() {
		n, err := uc.supplierRepo.Count(ctx)
		suppliersCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.warehouseRepo.Count(ctx)
		warehousesCh <- countResult{n, err}
	}()

	items := <-itemsCh
	movs := <-movsCh
	suppliers := <-suppliersCh
	warehouses := <-warehousesCh

	if items.err != nil {
		return nil, fmt.Errorf("dashboard: items: %w", items.err)
	}
	if movs.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos: %w", movs.err)
	}
	if suppliers.err != nil {
		return nil, fmt.Errorf("dashboard: proveedores: %w", suppliers.err)
	}
	if warehouses.err != nil {
		return nil, fmt.Errorf("dashboard: bodegas: %w", warehouses.err)
	}

	valuation := decimal.Zero
	lowStock := []dto.StockAlertDTO{}
	overStock := []dto.StockAlertDTO{}
	for _, it := range items.items {
		valuation = valuation.Add(it.Price.Mul(decimal.NewFromInt(it.CurrentStock)))
		if it.CurrentStock < it.MinLvl {
			lowStock = append(lowStock, dto.StockAlertDTO{
				ItemName: it.ItemName, SKU: it.SKU, Level: it.MinLvl, CurrentStock: it.CurrentStock,
			})
		}
		if it.CurrentStock > it.MaxLvl {
			overStock = append(overStock, dto.StockAlertDTO{
				ItemName: it.ItemName, SKU: it.SKU, Level: it.MaxLvl, CurrentStock: it.CurrentStock,
			})
		}
	}

	return &dto.DashboardSummaryDTO{
		TotalSKUs:          len(items.items),
		TotalTransactions:  len(movs.movs),
		TotalSuppliers:     suppliers.n,
		TotalWarehouses:    warehouses.n,
		InventoryValuation: valuation.Round(2),
		LowStock:           lowStock,
		OverStock:          overStock,
	}, nil
}

// MovementsByKind cuenta movimientos agrupados por tipo. Los cuatro
// tipos aparecen siempre, con cero si no hay actividad.
func (uc *AggregatorUseCase) MovementsByKind(ctx context.Context) ([]dto.KindCountDTO, error) {
	movs, err := uc.movRepo.Query(ctx, repository.MovementFilter{})
	if err != nil {
		return nil, fmt.Errorf("movimientos por tipo: %w", err)
	}
	counts := map[entity.Kind]int{}
	for _, m := range movs {
		counts[m.Kind]++
	}
	kinds := []entity.Kind{entity.KindAdjustedIn, entity.KindAdjustedOut, entity.KindPurchase, entity.KindSale}
	out := make([]dto.KindCountDTO, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, dto.KindCountDTO{Type: string(k), Count: counts[k]})
	}
	return out, nil
}

// GrowthSeries devuelve la variación neta (cantidad con signo) por mes
// calendario dentro de [from, to], en orden cronológico. Los meses sin
// actividad aparecen con valor cero.
func (uc *AggregatorUseCase) GrowthSeries(ctx context.Context, from, to time.Time) ([]dto.GrowthPointDTO, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("growth: rango invertido")
	}
	movs, err := uc.movRepo.Query(ctx, repository.MovementFilter{From: &from, To: &to, Order: repository.OrderAsc})
	if err != nil {
		return nil, fmt.Errorf("growth: %w", err)
	}

	net := map[string]int64{}
	for _, m := range movs {
		net[m.Timestamp.Format("2006-01")] += m.SignedQuantity()
	}

	var series []dto.GrowthPointDTO
	cursor := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, from.Location())
	end := time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, to.Location())
	for !cursor.After(end) {
		key := cursor.Format("2006-01")
		series = append(series, dto.GrowthPointDTO{Month: key, Value: net[key]})
		cursor = cursor.AddDate(0, 1, 0)
	}
	return series, nil
}

// StockAging devuelve, por item, los días desde su registro y desde su
// último movimiento, más el total de movimientos. Función pura de los
// snapshots de registro y ledger al momento de la llamada.
func (uc *AggregatorUseCase) StockAging(ctx context.Context) ([]dto.StockAgingRowDTO, error) {
	items, err := uc.itemRepo.List(ctx, repository.ItemFilter{})
	if err != nil {
		return nil, fmt.Errorf("aging: items: %w", err)
	}
	movs, err := uc.movRepo.Query(ctx, repository.MovementFilter{})
	if err != nil {
		return nil, fmt.Errorf("aging: movimientos: %w", err)
	}

	type agg struct {
		last  time.Time
		count int
	}
	bySKU := map[string]*agg{}
	for _, m := range movs {
		a := bySKU[m.SKU]
		if a == nil {
			a = &agg{}
			bySKU[m.SKU] = a
		}
		a.count++
		if m.Timestamp.After(a.last) {
			a.last = m.Timestamp
		}
	}

	now := time.Now()
	rows := make([]dto.StockAgingRowDTO, 0, len(items))
	for _, it := range items {
		row := dto.StockAgingRowDTO{
			ID:             it.ID,
			ItemName:       it.ItemName,
			SKU:            it.SKU,
			AddedOn:        it.AddedOn,
			DaysSinceAdded: daysBetween(it.AddedOn, now),
		}
		if a := bySKU[it.SKU]; a != nil {
			last := a.last
			days := daysBetween(last, now)
			row.LastTransactionOn = &last
			row.DaysSinceLastTransaction = &days
			row.TotalTransactions = a.count
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].SKU < rows[j].SKU })
	return rows, nil
}

// SalesDispatchReport lista los movimientos Sale (despachos) con el
// saldo actual del item como cantidad restante.
func (uc *AggregatorUseCase) SalesDispatchReport(ctx context.Context, filter dto.ReportFilter) ([]dto.DispatchRowDTO, error) {
	movs, err := uc.movRepo.Query(ctx, repository.MovementFilter{
		SKU: filter.SKU, Kind: entity.KindSale, From: filter.From, To: filter.To,
	})
	if err != nil {
		return nil, fmt.Errorf("despachos: %w", err)
	}
	balances, err := uc.balancesBySKU(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.DispatchRowDTO, 0, len(movs))
	for _, m := range movs {
		if !matchItemName(m.ItemName, filter.ItemName) {
			continue
		}
		rows = append(rows, dto.DispatchRowDTO{
			MovementID:        m.ID,
			Timestamp:         m.Timestamp,
			ItemName:          m.ItemName,
			SKU:               m.SKU,
			Quantity:          m.Quantity,
			RemainingQuantity: balances[m.SKU],
			Remarks:           m.Remarks,
		})
	}
	return rows, nil
}

// SalesReturnReport lista los movimientos Adjusted In (devoluciones).
func (uc *AggregatorUseCase) SalesReturnReport(ctx context.Context, filter dto.ReportFilter) ([]dto.ReturnRowDTO, error) {
	movs, err := uc.movRepo.Query(ctx, repository.MovementFilter{
		SKU: filter.SKU, Kind: entity.KindAdjustedIn, From: filter.From, To: filter.To,
	})
	if err != nil {
		return nil, fmt.Errorf("devoluciones: %w", err)
	}
	rows := make([]dto.ReturnRowDTO, 0, len(movs))
	for _, m := range movs {
		if !matchItemName(m.ItemName, filter.ItemName) {
			continue
		}
		rows = append(rows, dto.ReturnRowDTO{
			MovementID: m.ID,
			Timestamp:  m.Timestamp,
			ItemName:   m.ItemName,
			SKU:        m.SKU,
			Quantity:   m.Quantity,
			Remarks:    m.Remarks,
		})
	}
	return rows, nil
}

func (uc *AggregatorUseCase) balancesBySKU(ctx context.Context) (map[string]int64, error) {
	items, err := uc.itemRepo.List(ctx, repository.ItemFilter{})
	if err != nil {
		return nil, fmt.Errorf("saldos: %w", err)
	}
	out := make(map[string]int64, len(items))
	for _, it := range items {
		out[it.SKU] = it.CurrentStock
	}
	return out, nil
}

func matchItemName(name, filter string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(filter))
}

func daysBetween(from, to time.Time) int {
	d := to.Sub(from)
	if d < 0 {
		return 0
	}
	return int(d.Hours() / 24)
}
