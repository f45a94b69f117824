package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/stockledger-api/internal/application/dto"
	"github.com/jhoicas/stockledger-api/internal/domain"
	"github.com/jhoicas/stockledger-api/internal/domain/entity"
	"github.com/jhoicas/stockledger-api/internal/domain/repository"
)

const maxVendors = 5

// ItemUseCase casos de uso del registro de SKUs. El saldo (CurrentStock)
// no se toca aquí: toda mutación de saldo pasa por el motor de movimientos.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// Register registra un SKU nuevo. CurrentStock arranca igual a OpeningStock
// y Status en Active. Falla con ErrDuplicate si el sku ya existe y con
// ErrInvalidInput si algún numérico es negativo o MinLvl > MaxLvl.
func (uc *ItemUseCase) Register(ctx context.Context, in dto.RegisterItemRequest) (*dto.ItemResponse, error) {
	if in.SKU == "" || in.ItemName == "" || in.UOM == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.MinLvl < 0 || in.MaxLvl < 0 || in.ReorderQty < 0 || in.OpeningStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.MinLvl > in.MaxLvl {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Vendors) > maxVendors {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.repo.GetBySKU(ctx, in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	item := &entity.Item{
		ID:           uuid.New().String(),
		SKU:          in.SKU,
		ItemName:     in.ItemName,
		UOM:          in.UOM,
		MinLvl:       in.MinLvl,
		MaxLvl:       in.MaxLvl,
		ReorderQty:   in.ReorderQty,
		Warehouse:    in.Warehouse,
		Location:     in.Location,
		OpeningStock: in.OpeningStock,
		CurrentStock: in.OpeningStock,
		Price:        in.Price,
		Vendors:      in.Vendors,
		Status:       entity.ItemStatusActive,
		AddedOn:      now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Find obtiene un SKU por código.
func (uc *ItemUseCase) Find(ctx context.Context, sku string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// List lista SKUs con filtro opcional. Lectura pura.
func (uc *ItemUseCase) List(ctx context.Context, filter repository.ItemFilter) (*dto.ItemListResponse, error) {
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toItemResponse(it))
	}
	return &dto.ItemListResponse{Items: items, Total: len(items)}, nil
}

// SetStatus activa o desactiva un SKU. Los items nunca se borran
// físicamente mientras existan movimientos que los referencien;
// la desactivación es la baja lógica.
func (uc *ItemUseCase) SetStatus(ctx context.Context, sku, status string) (*dto.ItemResponse, error) {
	if status != entity.ItemStatusActive && status != entity.ItemStatusInactive {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.repo.GetBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.SetStatus(ctx, sku, status); err != nil {
		return nil, err
	}
	item.Status = status
	return toItemResponse(item), nil
}

// Update actualiza campos de presentación. Nunca OpeningStock ni CurrentStock.
func (uc *ItemUseCase) Update(ctx context.Context, sku string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.ItemName != nil {
		item.ItemName = *in.ItemName
	}
	if in.UOM != nil {
		item.UOM = *in.UOM
	}
	if in.MinLvl != nil {
		item.MinLvl = *in.MinLvl
	}
	if in.MaxLvl != nil {
		item.MaxLvl = *in.MaxLvl
	}
	if in.ReorderQty != nil {
		item.ReorderQty = *in.ReorderQty
	}
	if in.Warehouse != nil {
		item.Warehouse = *in.Warehouse
	}
	if in.Location != nil {
		item.Location = *in.Location
	}
	if in.Price != nil {
		item.Price = *in.Price
	}
	if in.Vendors != nil {
		if len(in.Vendors) > maxVendors {
			return nil, domain.ErrInvalidInput
		}
		item.Vendors = in.Vendors
	}
	if item.MinLvl < 0 || item.MaxLvl < 0 || item.ReorderQty < 0 || item.MinLvl > item.MaxLvl {
		return nil, domain.ErrInvalidInput
	}
	if item.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

func toItemResponse(it *entity.Item) *dto.ItemResponse {
	if it == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:           it.ID,
		SKU:          it.SKU,
		ItemName:     it.ItemName,
		UOM:          it.UOM,
		MinLvl:       it.MinLvl,
		MaxLvl:       it.MaxLvl,
		ReorderQty:   it.ReorderQty,
		Warehouse:    it.Warehouse,
		Location:     it.Location,
		OpeningStock: it.OpeningStock,
		CurrentStock: it.CurrentStock,
		Price:        it.Price,
		Vendors:      it.Vendors,
		Status:       it.Status,
		AddedOn:      it.AddedOn,
		CreatedAt:    it.CreatedAt,
		UpdatedAt:    it.UpdatedAt,
	}
}
