package dto

import "time"

// StockAgingRowDTO fila del reporte de antigüedad de stock.
type StockAgingRowDTO struct {
	ID                       string     `json:"id"`
	ItemName                 string     `json:"item_name"`
	SKU                      string     `json:"sku"`
	AddedOn                  time.Time  `json:"added_on"`
	DaysSinceAdded           int        `json:"days_since_added"`
	LastTransactionOn        *time.Time `json:"last_transaction_on"` // nil si nunca tuvo movimientos
	DaysSinceLastTransaction *int       `json:"days_since_last_transaction"`
	TotalTransactions        int        `json:"total_transactions"`
}

// DispatchRowDTO fila del reporte de despachos (movimientos Sale).
type DispatchRowDTO struct {
	MovementID        string    `json:"movement_id"`
	Timestamp         time.Time `json:"timestamp"`
	ItemName          string    `json:"item_name"`
	SKU               string    `json:"sku"`
	Quantity          int64     `json:"quantity"`
	RemainingQuantity int64     `json:"remaining_quantity"` // saldo actual del item
	Remarks           string    `json:"remarks"`
}

// ReturnRowDTO fila del reporte de devoluciones (movimientos Adjusted In).
type ReturnRowDTO struct {
	MovementID string    `json:"movement_id"`
	Timestamp  time.Time `json:"timestamp"`
	ItemName   string    `json:"item_name"`
	SKU        string    `json:"sku"`
	Quantity   int64     `json:"quantity"`
	Remarks    string    `json:"remarks"`
}

// ReportFilter rango y filtros comunes de los reportes de movimientos.
type ReportFilter struct {
	SKU      string
	ItemName string
	From     *time.Time
	To       *time.Time
}
