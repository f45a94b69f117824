package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stockledger-api/internal/domain/entity"
	"github.com/jhoicas/stockledger-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación en memoria del ledger (append-only).
// Con tx != nil el append queda en el buffer hasta el commit.
type MovementRepo struct {
	store *Store
	tx    *txBuffer
}

// NewMovementRepository construye el adaptador en modo inmediato (sin tx).
func NewMovementRepository(store *Store) *MovementRepo {
	return &MovementRepo{store: store}
}

// Append asigna ID (y Timestamp si viene en cero) y guarda el movimiento.
func (r *MovementRepo) Append(_ context.Context, movement *entity.Movement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	if movement.Timestamp.IsZero() {
		movement.Timestamp = time.Now()
	}
	if movement.CreatedAt.IsZero() {
		movement.CreatedAt = movement.Timestamp
	}
	stored := cloneMovement(movement)
	if r.tx != nil {
		r.tx.add(func() {
			r.store.movements = append(r.store.movements, stored)
		})
		return nil
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.movements = append(r.store.movements, stored)
	return nil
}

// Query lista movimientos por sku / tipo / rango. Orden descendente por
// defecto; ascendente para reconstrucción de saldos.
func (r *MovementRepo) Query(_ context.Context, filter repository.MovementFilter) ([]*entity.Movement, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var list []*entity.Movement
	for _, m := range r.store.movements {
		if filter.SKU != "" && m.SKU != filter.SKU {
			continue
		}
		if filter.Kind != "" && m.Kind != filter.Kind {
			continue
		}
		if filter.From != nil && m.Timestamp.Before(*filter.From) {
			continue
		}
		if filter.To != nil && m.Timestamp.After(*filter.To) {
			continue
		}
		list = append(list, cloneMovement(m))
	}
	asc := filter.Order == repository.OrderAsc
	sort.SliceStable(list, func(i, j int) bool {
		if asc {
			return list[i].Timestamp.Before(list[j].Timestamp)
		}
		return list[j].Timestamp.Before(list[i].Timestamp)
	})
	return list, nil
}

// Count devuelve el total de movimientos.
func (r *MovementRepo) Count(_ context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return len(r.store.movements), nil
}
