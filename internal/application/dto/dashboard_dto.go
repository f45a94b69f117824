package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Contadores globales, valorización del inventario y los conjuntos
// de stock bajo / sobre stock calculados sobre el registro de SKUs.
type DashboardSummaryDTO struct {
	TotalSKUs         int `json:"total_skus"`
	TotalTransactions int `json:"total_transactions"` // movimientos en el rango consultado
	TotalSuppliers    int `json:"total_suppliers"`
	TotalWarehouses   int `json:"total_warehouses"`

	// Valorización: Σ(saldo actual × precio) sobre todos los items.
	InventoryValuation decimal.Decimal `json:"inventory_valuation"`

	LowStock  []StockAlertDTO `json:"low_stock"`  // saldo < nivel mínimo
	OverStock []StockAlertDTO `json:"over_stock"` // saldo > nivel máximo
}

// StockAlertDTO un item fuera de sus niveles configurados.
// Level es MinLvl para stock bajo y MaxLvl para sobre stock.
type StockAlertDTO struct {
	ItemName     string `json:"item_name"`
	SKU          string `json:"sku"`
	Level        int64  `json:"level"`
	CurrentStock int64  `json:"current_stock"`
}

// KindCountDTO conteo de movimientos para un tipo.
type KindCountDTO struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// GrowthPointDTO variación neta de inventario de un mes calendario.
type GrowthPointDTO struct {
	Month string `json:"month"` // formato YYYY-MM
	Value int64  `json:"value"` // suma de cantidades con signo
}
