package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/stockledger-api/internal/domain"
	"github.com/jhoicas/stockledger-api/internal/domain/entity"
	"github.com/jhoicas/stockledger-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación en memoria de ItemRepository.
// Con tx != nil las escrituras se acumulan en el buffer de la transacción.
type ItemRepo struct {
	store *Store
	tx    *txBuffer
}

// NewItemRepository construye el adaptador en modo inmediato (sin tx).
func NewItemRepository(store *Store) *ItemRepo {
	return &ItemRepo{store: store}
}

// Create registra un item nuevo. ErrDuplicate si el sku ya existe.
func (r *ItemRepo) Create(_ context.Context, item *entity.Item) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.items[item.SKU]; ok {
		return domain.ErrDuplicate
	}
	r.store.items[item.SKU] = cloneItem(item)
	return nil
}

// GetBySKU devuelve una copia del item o nil si no existe.
func (r *ItemRepo) GetBySKU(_ context.Context, sku string) (*entity.Item, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	it, ok := r.store.items[sku]
	if !ok {
		return nil, nil
	}
	return cloneItem(it), nil
}

// GetBySKUForUpdate en memoria equivale a GetBySKU: la exclusión por sku
// ya la garantiza el mutex que tomó el TxRunner.
func (r *ItemRepo) GetBySKUForUpdate(ctx context.Context, sku string) (*entity.Item, error) {
	return r.GetBySKU(ctx, sku)
}

// List lista items aplicando el filtro opcional, ordenados por sku.
func (r *ItemRepo) List(_ context.Context, filter repository.ItemFilter) ([]*entity.Item, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var list []*entity.Item
	for _, it := range r.store.items {
		if filter.SKU != "" && it.SKU != filter.SKU {
			continue
		}
		if filter.Warehouse != "" && it.Warehouse != filter.Warehouse {
			continue
		}
		if filter.ItemName != "" && !strings.Contains(strings.ToLower(it.ItemName), strings.ToLower(filter.ItemName)) {
			continue
		}
		if filter.UOM != "" && it.UOM != filter.UOM {
			continue
		}
		if filter.Status != "" && it.Status != filter.Status {
			continue
		}
		list = append(list, cloneItem(it))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].SKU < list[j].SKU })
	return list, nil
}

// Update actualiza campos de presentación; preserva los saldos almacenados.
func (r *ItemRepo) Update(_ context.Context, item *entity.Item) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	stored, ok := r.store.items[item.SKU]
	if !ok {
		return domain.ErrNotFound
	}
	cp := cloneItem(item)
	cp.OpeningStock = stored.OpeningStock
	cp.CurrentStock = stored.CurrentStock
	r.store.items[item.SKU] = cp
	return nil
}

// SetStatus cambia el estado Active/Inactive.
func (r *ItemRepo) SetStatus(_ context.Context, sku, status string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	it, ok := r.store.items[sku]
	if !ok {
		return domain.ErrNotFound
	}
	it.Status = status
	return nil
}

// UpdateStock escribe el nuevo saldo. Dentro de una transacción la
// escritura queda en el buffer hasta el commit.
func (r *ItemRepo) UpdateStock(_ context.Context, sku string, newStock int64) error {
	r.store.mu.RLock()
	_, ok := r.store.items[sku]
	r.store.mu.RUnlock()
	if !ok {
		return domain.ErrNotFound
	}
	if r.tx != nil {
		r.tx.add(func() {
			if it, ok := r.store.items[sku]; ok {
				it.CurrentStock = newStock
			}
		})
		return nil
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	it, ok := r.store.items[sku]
	if !ok {
		return domain.ErrNotFound
	}
	it.CurrentStock = newStock
	return nil
}

// Count devuelve el total de items.
func (r *ItemRepo) Count(_ context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return len(r.store.items), nil
}
