package entity

import (
	"time"

	"github.com/jhoicas/stockledger-api/internal/domain"
)

// Kind es el tipo de movimiento de inventario (enumeración cerrada).
type Kind string

// Tipos de movimiento. El signo determina el efecto sobre el saldo.
const (
	KindAdjustedIn  Kind = "Adjusted In"
	KindAdjustedOut Kind = "Adjusted Out"
	KindPurchase    Kind = "Purchase"
	KindSale        Kind = "Sale"
)

// signByKind tabla explícita de signos: entradas +1, salidas -1.
var signByKind = map[Kind]int64{
	KindAdjustedIn:  +1,
	KindPurchase:    +1,
	KindAdjustedOut: -1,
	KindSale:        -1,
}

// ParseKind valida un tipo de movimiento recibido como texto.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := signByKind[k]; !ok {
		return "", domain.ErrInvalidInput
	}
	return k, nil
}

// Sign devuelve +1 para movimientos que aumentan saldo y -1 para los que lo reducen.
func (k Kind) Sign() int64 {
	return signByKind[k]
}

// Increases indica si el movimiento aumenta el saldo.
func (k Kind) Increases() bool {
	return signByKind[k] > 0
}

// Movement es una entrada del libro de movimientos (ledger).
// Inmutable una vez confirmada: las correcciones son movimientos nuevos
// de signo contrario, nunca ediciones.
type Movement struct {
	ID        string
	SKU       string
	ItemName  string // denormalizado para listados
	Quantity  int64  // magnitud siempre positiva; el signo lo da Kind
	Kind      Kind
	Remarks   string
	Timestamp time.Time
	CreatedAt time.Time
}

// SignedQuantity devuelve el efecto neto del movimiento sobre el saldo.
func (m *Movement) SignedQuantity() int64 {
	return m.Kind.Sign() * m.Quantity
}
