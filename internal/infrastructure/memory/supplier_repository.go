package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/stockledger-api/internal/domain"
	"github.com/jhoicas/stockledger-api/internal/domain/entity"
	"github.com/jhoicas/stockledger-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación en memoria de SupplierRepository.
type SupplierRepo struct {
	store *Store
}

// NewSupplierRepository construye el adaptador.
func NewSupplierRepository(store *Store) *SupplierRepo {
	return &SupplierRepo{store: store}
}

// Create guarda un proveedor. GSTNo y EmailID únicos (ErrDuplicate).
func (r *SupplierRepo) Create(_ context.Context, supplier *entity.Supplier) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, s := range r.store.suppliers {
		if s.GSTNo == supplier.GSTNo || s.EmailID == supplier.EmailID {
			return domain.ErrDuplicate
		}
	}
	r.store.suppliers[supplier.ID] = cloneSupplier(supplier)
	return nil
}

// GetByID devuelve una copia del proveedor o nil.
func (r *SupplierRepo) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	s, ok := r.store.suppliers[id]
	if !ok {
		return nil, nil
	}
	return cloneSupplier(s), nil
}

// List lista proveedores ordenados por nombre.
func (r *SupplierRepo) List(_ context.Context) ([]*entity.Supplier, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	list := make([]*entity.Supplier, 0, len(r.store.suppliers))
	for _, s := range r.store.suppliers {
		list = append(list, cloneSupplier(s))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].VendorName < list[j].VendorName })
	return list, nil
}

// Update reemplaza los datos de un proveedor existente.
func (r *SupplierRepo) Update(_ context.Context, supplier *entity.Supplier) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.suppliers[supplier.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, s := range r.store.suppliers {
		if id != supplier.ID && (s.GSTNo == supplier.GSTNo || s.EmailID == supplier.EmailID) {
			return domain.ErrDuplicate
		}
	}
	r.store.suppliers[supplier.ID] = cloneSupplier(supplier)
	return nil
}

// Delete elimina un proveedor.
func (r *SupplierRepo) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.suppliers[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.store.suppliers, id)
	return nil
}

// Count devuelve el total de proveedores.
func (r *SupplierRepo) Count(_ context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return len(r.store.suppliers), nil
}
