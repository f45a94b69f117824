// Package memory implementa los puertos de persistencia en memoria.
// Sirve como driver de desarrollo (STORE_DRIVER=memory) y como backend
// de los tests del motor: mismas semánticas transaccionales que el
// driver PostgreSQL, con mutex por sku en lugar de bloqueo de fila.
package memory

import (
	"sync"

	"github.com/jhoicas/stockledger-api/internal/domain/entity"
)

// Store estado compartido en memoria. Todos los accesos pasan por mu;
// la serialización por item la dan los locks por sku del TxRunner.
type Store struct {
	mu         sync.RWMutex
	items      map[string]*entity.Item // clave: sku
	movements  []*entity.Movement
	suppliers  map[string]*entity.Supplier  // clave: id
	warehouses map[string]*entity.Warehouse // clave: id

	itemLocks sync.Map // sku -> *sync.Mutex
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		items:      make(map[string]*entity.Item),
		suppliers:  make(map[string]*entity.Supplier),
		warehouses: make(map[string]*entity.Warehouse),
	}
}

// lockFor devuelve el mutex del sku, creándolo la primera vez.
// Items distintos tienen locks distintos y no se bloquean entre sí.
func (s *Store) lockFor(sku string) *sync.Mutex {
	actual, _ := s.itemLocks.LoadOrStore(sku, &sync.Mutex{})
	return actual.(*sync.Mutex)
}

func cloneItem(it *entity.Item) *entity.Item {
	cp := *it
	cp.Vendors = append([]string(nil), it.Vendors...)
	return &cp
}

func cloneMovement(m *entity.Movement) *entity.Movement {
	cp := *m
	return &cp
}

func cloneSupplier(s *entity.Supplier) *entity.Supplier {
	cp := *s
	return &cp
}

func cloneWarehouse(w *entity.Warehouse) *entity.Warehouse {
	cp := *w
	return &cp
}
