package repository

import (
	"context"
	"time"

	"github.com/jhoicas/stockledger-api/internal/domain/entity"
)

// Orden de los resultados de una consulta de movimientos.
const (
	OrderDesc = "desc" // display: más reciente primero
	OrderAsc  = "asc"  // reconstrucción de saldos: cronológico
)

// MovementFilter filtro para consultar el ledger.
type MovementFilter struct {
	SKU   string
	Kind  entity.Kind
	From  *time.Time
	To    *time.Time
	Order string // OrderDesc por defecto
}

// MovementRepository define el puerto del ledger: append-only.
// No existen operaciones de actualización ni borrado; las correcciones
// son movimientos nuevos de signo contrario.
type MovementRepository interface {
	// Append asigna ID (y Timestamp si viene en cero) y persiste el movimiento.
	Append(ctx context.Context, movement *entity.Movement) error
	Query(ctx context.Context, filter MovementFilter) ([]*entity.Movement, error)
	Count(ctx context.Context) (int, error)
}
