package memory

import (
	"context"

	"github.com/jhoicas/stockledger-api/internal/application/inventory"
	"github.com/jhoicas/stockledger-api/internal/domain"
	"github.com/jhoicas/stockledger-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner unidad atómica de trabajo en memoria. Toma el mutex del sku
// (sección crítica por item) y acumula las escrituras en un buffer que
// se aplica completo bajo el lock del store, o se descarta si fn falla.
// Así el ledger y el saldo se confirman juntos o ninguno.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner sobre el store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// RunForItem serializa por sku, ejecuta fn con repos transaccionales y
// confirma el buffer. Si el contexto venció antes del commit devuelve
// ErrConflict: nada se aplicó y es seguro reintentar.
func (r *TxRunner) RunForItem(ctx context.Context, sku string, fn func(
	itemRepo repository.ItemRepository,
	movRepo repository.MovementRepository,
) error) error {
	lock := r.store.lockFor(sku)
	lock.Lock()
	defer lock.Unlock()

	tx := &txBuffer{}
	itemRepo := &ItemRepo{store: r.store, tx: tx}
	movRepo := &MovementRepo{store: r.store, tx: tx}

	if err := fn(itemRepo, movRepo); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return domain.ErrConflict
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, apply := range tx.pending {
		apply()
	}
	return nil
}

// txBuffer escrituras pendientes de una transacción en memoria.
// Se aplican todas bajo store.mu o ninguna.
type txBuffer struct {
	pending []func()
}

func (t *txBuffer) add(apply func()) {
	t.pending = append(t.pending, apply)
}
