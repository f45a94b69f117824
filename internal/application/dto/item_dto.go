package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterItemRequest entrada para registrar un SKU.
type RegisterItemRequest struct {
	SKU          string          `json:"sku" validate:"required,min=1,max=100"`
	ItemName     string          `json:"item_name" validate:"required,min=1,max=200"`
	UOM          string          `json:"uom" validate:"required"`
	MinLvl       int64           `json:"min_lvl"`
	MaxLvl       int64           `json:"max_lvl"`
	ReorderQty   int64           `json:"reorder_qty"`
	Warehouse    string          `json:"warehouse"`
	Location     string          `json:"location"`
	OpeningStock int64           `json:"opening_stock"`
	Price        decimal.Decimal `json:"price"`
	Vendors      []string        `json:"vendors"`
}

// UpdateItemRequest campos de presentación actualizables de un SKU.
// El saldo (OpeningStock/CurrentStock) nunca se actualiza por aquí;
// eso es exclusivo del motor de movimientos.
type UpdateItemRequest struct {
	ItemName   *string          `json:"item_name"`
	UOM        *string          `json:"uom"`
	MinLvl     *int64           `json:"min_lvl"`
	MaxLvl     *int64           `json:"max_lvl"`
	ReorderQty *int64           `json:"reorder_qty"`
	Warehouse  *string          `json:"warehouse"`
	Location   *string          `json:"location"`
	Price      *decimal.Decimal `json:"price"`
	Vendors    []string         `json:"vendors"`
}

// SetItemStatusRequest entrada para activar/desactivar un SKU.
type SetItemStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Active Inactive"`
}

// ItemResponse salida de un SKU.
type ItemResponse struct {
	ID           string          `json:"id"`
	SKU          string          `json:"sku"`
	ItemName     string          `json:"item_name"`
	UOM          string          `json:"uom"`
	MinLvl       int64           `json:"min_lvl"`
	MaxLvl       int64           `json:"max_lvl"`
	ReorderQty   int64           `json:"reorder_qty"`
	Warehouse    string          `json:"warehouse"`
	Location     string          `json:"location"`
	OpeningStock int64           `json:"opening_stock"`
	CurrentStock int64           `json:"current_stock"`
	Price        decimal.Decimal `json:"price"`
	Vendors      []string        `json:"vendors"`
	Status       string          `json:"status"`
	AddedOn      time.Time       `json:"added_on"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ItemListResponse listado de SKUs.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Total int            `json:"total"`
}
