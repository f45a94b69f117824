package repository

import (
	"context"

	"github.com/jhoicas/stockledger-api/internal/domain/entity"
)

// ItemFilter filtro opcional para listar items (todos los campos opcionales).
type ItemFilter struct {
	SKU       string
	Warehouse string
	ItemName  string // coincidencia parcial, sin distinguir mayúsculas
	UOM       string
	Status    string
}

// ItemRepository define el puerto de persistencia para Item (registro de SKUs).
// CurrentStock solo se escribe vía UpdateStock dentro de la transacción
// del motor de movimientos; ningún otro método toca el saldo.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetBySKU(ctx context.Context, sku string) (*entity.Item, error)
	List(ctx context.Context, filter ItemFilter) ([]*entity.Item, error)
	// Update actualiza campos de presentación; ignora OpeningStock y CurrentStock.
	Update(ctx context.Context, item *entity.Item) error
	SetStatus(ctx context.Context, sku, status string) error
	Count(ctx context.Context) (int, error)
	// GetBySKUForUpdate bloquea la fila del item para update (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción del TxRunner.
	GetBySKUForUpdate(ctx context.Context, sku string) (*entity.Item, error)
	// UpdateStock escribe el nuevo saldo. Solo el motor de movimientos lo llama.
	UpdateStock(ctx context.Context, sku string, newStock int64) error
}
