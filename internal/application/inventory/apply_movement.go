package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stockledger-api/internal/domain"
	"github.com/jhoicas/stockledger-api/internal/domain/entity"
	"github.com/jhoicas/stockledger-api/internal/domain/repository"
)

// applyTimeout límite de la unidad transaccional completa. Al vencer,
// la transacción se revierte: fallida, nunca confirmada a medias.
const applyTimeout = 5 * time.Second

// ApplyMovementUseCase es el único punto por el que un movimiento puede
// afectar el saldo de un item. Garantiza el invariante
// saldo actual == stock de apertura + Σ(cantidad con signo de los movimientos confirmados)
// incluso bajo escrituras concurrentes sobre el mismo sku.
type ApplyMovementUseCase struct {
	txRunner TxRunner
	itemRepo repository.ItemRepository
}

// NewApplyMovementUseCase construye el caso de uso.
func NewApplyMovementUseCase(txRunner TxRunner, itemRepo repository.ItemRepository) *ApplyMovementUseCase {
	return &ApplyMovementUseCase{txRunner: txRunner, itemRepo: itemRepo}
}

// MovementInput entrada para aplicar un movimiento.
type MovementInput struct {
	SKU      string
	Quantity int64 // magnitud, siempre > 0
	Kind     string
	Remarks  string
}

// Result movimiento confirmado y saldo resultante del item.
type Result struct {
	Movement   *entity.Movement
	NewBalance int64
}

// Apply valida la entrada, inicia la unidad atómica, bloquea el item,
// verifica la precondición de saldo y confirma ledger + saldo juntos.
// Errores: ErrInvalidInput, ErrNotFound, ErrInsufficientStock,
// ErrConflict (commit fallido, seguro reintentar).
func (uc *ApplyMovementUseCase) Apply(ctx context.Context, input MovementInput) (*Result, error) {
	if input.SKU == "" || input.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	kind, err := entity.ParseKind(input.Kind)
	if err != nil {
		return nil, err
	}

	// Validación temprana de existencia, fuera de la sección crítica.
	// La verdad definitiva se relee bajo el lock dentro de la transacción.
	item, err := uc.itemRepo.GetBySKU(ctx, input.SKU)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, applyTimeout)
	defer cancel()

	var result Result
	err = uc.txRunner.RunForItem(ctx, input.SKU, func(
		itemRepo repository.ItemRepository,
		movRepo repository.MovementRepository,
	) error {
		// Bloquea la fila del item: serializa escrituras sobre el mismo sku.
		locked, err := itemRepo.GetBySKUForUpdate(ctx, input.SKU)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}

		newBalance := locked.CurrentStock + kind.Sign()*input.Quantity
		if newBalance < 0 {
			return domain.ErrInsufficientStock
		}

		now := time.Now()
		mov := &entity.Movement{
			ID:        uuid.New().String(),
			SKU:       locked.SKU,
			ItemName:  locked.ItemName,
			Quantity:  input.Quantity,
			Kind:      kind,
			Remarks:   input.Remarks,
			Timestamp: now,
			CreatedAt: now,
		}
		if err := movRepo.Append(ctx, mov); err != nil {
			return err
		}
		if err := itemRepo.UpdateStock(ctx, locked.SKU, newBalance); err != nil {
			return err
		}

		result.Movement = mov
		result.NewBalance = newBalance
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
