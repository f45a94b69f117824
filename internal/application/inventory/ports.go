package inventory

import (
	"context"

	"github.com/jhoicas/stockledger-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una unidad atómica de trabajo,
// pasando repositorios atados a esa transacción. El parámetro sku indica
// la sección crítica: dos ejecuciones sobre el mismo sku se serializan y
// sobre skus distintos no se bloquean entre sí.
//
// La implementación PostgreSQL delega la serialización en el bloqueo de
// fila (SELECT FOR UPDATE) e ignora el sku; la implementación en memoria
// usa un mutex por sku con escrituras en búfer que se aplican al confirmar.
type TxRunner interface {
	RunForItem(ctx context.Context, sku string, fn func(
		itemRepo repository.ItemRepository,
		movRepo repository.MovementRepository,
	) error) error
}
