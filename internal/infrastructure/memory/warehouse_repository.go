package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/stockledger-api/internal/domain"
	"github.com/jhoicas/stockledger-api/internal/domain/entity"
	"github.com/jhoicas/stockledger-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación en memoria de WarehouseRepository.
type WarehouseRepo struct {
	store *Store
}

// NewWarehouseRepository construye el adaptador.
func NewWarehouseRepository(store *Store) *WarehouseRepo {
	return &WarehouseRepo{store: store}
}

// Create guarda una bodega. Name único (ErrDuplicate).
func (r *WarehouseRepo) Create(_ context.Context, wh *entity.Warehouse) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, w := range r.store.warehouses {
		if w.Name == wh.Name {
			return domain.ErrDuplicate
		}
	}
	r.store.warehouses[wh.ID] = cloneWarehouse(wh)
	return nil
}

// GetByID devuelve una copia de la bodega o nil.
func (r *WarehouseRepo) GetByID(_ context.Context, id string) (*entity.Warehouse, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	w, ok := r.store.warehouses[id]
	if !ok {
		return nil, nil
	}
	return cloneWarehouse(w), nil
}

// List lista bodegas ordenadas por nombre.
func (r *WarehouseRepo) List(_ context.Context) ([]*entity.Warehouse, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	list := make([]*entity.Warehouse, 0, len(r.store.warehouses))
	for _, w := range r.store.warehouses {
		list = append(list, cloneWarehouse(w))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

// Update reemplaza los datos de una bodega existente.
func (r *WarehouseRepo) Update(_ context.Context, wh *entity.Warehouse) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.warehouses[wh.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, w := range r.store.warehouses {
		if id != wh.ID && w.Name == wh.Name {
			return domain.ErrDuplicate
		}
	}
	r.store.warehouses[wh.ID] = cloneWarehouse(wh)
	return nil
}

// Delete elimina una bodega.
func (r *WarehouseRepo) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.warehouses[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.store.warehouses, id)
	return nil
}

// Count devuelve el total de bodegas.
func (r *WarehouseRepo) Count(_ context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return len(r.store.warehouses), nil
}
