package dto

import "time"

// ApplyMovementRequest entrada para registrar un movimiento de inventario.
// Quantity es la magnitud (siempre positiva); el efecto lo determina Type.
type ApplyMovementRequest struct {
	SKU      string `json:"sku" validate:"required"`
	Quantity int64  `json:"quantity" validate:"required,gt=0"`
	Type     string `json:"type" validate:"required"` // Adjusted In | Adjusted Out | Purchase | Sale
	Remarks  string `json:"remarks"`
}

// MovementResponse salida de un movimiento confirmado.
type MovementResponse struct {
	ID        string    `json:"id"`
	SKU       string    `json:"sku"`
	ItemName  string    `json:"item_name"`
	Quantity  int64     `json:"quantity"`
	Type      string    `json:"type"`
	Remarks   string    `json:"remarks"`
	Timestamp time.Time `json:"timestamp"`
}

// ApplyMovementResponse movimiento confirmado más el saldo resultante.
type ApplyMovementResponse struct {
	Movement   MovementResponse `json:"movement"`
	NewBalance int64            `json:"new_balance"`
}

// MovementListResponse listado de movimientos del ledger.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total"`
}
