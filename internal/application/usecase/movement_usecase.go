package usecase

import (
	"context"

	"github.com/jhoicas/stockledger-api/internal/application/dto"
	"github.com/jhoicas/stockledger-api/internal/domain/entity"
	"github.com/jhoicas/stockledger-api/internal/domain/repository"
)

// MovementQueryUseCase consultas de solo lectura sobre el ledger.
// El alta de movimientos no pasa por aquí: es exclusiva del motor
// transaccional (inventory.ApplyMovementUseCase).
type MovementQueryUseCase struct {
	repo repository.MovementRepository
}

// NewMovementQueryUseCase construye el caso de uso.
func NewMovementQueryUseCase(repo repository.MovementRepository) *MovementQueryUseCase {
	return &MovementQueryUseCase{repo: repo}
}

// Query lista movimientos por sku / tipo / rango de fechas.
func (uc *MovementQueryUseCase) Query(ctx context.Context, filter repository.MovementFilter) (*dto.MovementListResponse, error) {
	list, err := uc.repo.Query(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, toMovementResponse(m))
	}
	return &dto.MovementListResponse{Items: items, Total: len(items)}, nil
}

func toMovementResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:        m.ID,
		SKU:       m.SKU,
		ItemName:  m.ItemName,
		Quantity:  m.Quantity,
		Type:      string(m.Kind),
		Remarks:   m.Remarks,
		Timestamp: m.Timestamp,
	}
}
