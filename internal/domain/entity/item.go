package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un Item (SKU).
const (
	ItemStatusActive   = "Active"
	ItemStatusInactive = "Inactive"
)

// Item representa un SKU del inventario con su saldo actual.
// CurrentStock solo lo modifica el motor de movimientos (ApplyMovement);
// OpeningStock es la foto inicial al registrar y nunca cambia.
type Item struct {
	ID           string
	SKU          string // código único
	ItemName     string
	UOM          string // unidad de medida
	MinLvl       int64
	MaxLvl       int64
	ReorderQty   int64
	Warehouse    string
	Location     string
	OpeningStock int64
	CurrentStock int64 // invariante: >= 0
	Price        decimal.Decimal
	Vendors      []string // hasta 5 proveedores asociados
	Status       string   // Active | Inactive
	AddedOn      time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsActive indica si el item está visible para operación normal.
// Los movimientos se aceptan igual en ambos estados.
func (i *Item) IsActive() bool {
	return i.Status == ItemStatusActive
}
