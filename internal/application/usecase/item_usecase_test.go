package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockledger-api/internal/application/dto"
	"github.com/jhoicas/stockledger-api/internal/application/usecase"
	"github.com/jhoicas/stockledger-api/internal/domain"
	"github.com/jhoicas/stockledger-api/internal/domain/entity"
	"github.com/jhoicas/stockledger-api/internal/domain/repository"
	"github.com/jhoicas/stockledger-api/internal/infrastructure/memory"
)

func newItemUC(t *testing.T) *usecase.ItemUseCase {
	t.Helper()
	return usecase.NewItemUseCase(memory.NewItemRepository(memory.NewStore()))
}

func validRegister() dto.RegisterItemRequest {
	return dto.RegisterItemRequest{
		SKU:          "SKU-001",
		ItemName:     "Tornillo M8",
		UOM:          "unit",
		MinLvl:       5,
		MaxLvl:       100,
		ReorderQty:   20,
		Warehouse:    "Central",
		Location:     "A-01",
		OpeningStock: 30,
		Price:        decimal.NewFromInt(2),
		Vendors:      []string{"ACME"},
	}
}

func TestRegister(t *testing.T) {
	uc := newItemUC(t)

	out, err := uc.Register(context.Background(), validRegister())
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "SKU-001", out.SKU)
	assert.Equal(t, entity.ItemStatusActive, out.Status)
	assert.Equal(t, int64(30), out.OpeningStock)
	assert.Equal(t, int64(30), out.CurrentStock, "el saldo inicial es el stock de apertura")
	assert.False(t, out.AddedOn.IsZero())
}

func TestRegister_SKUDuplicado(t *testing.T) {
	uc := newItemUC(t)
	_, err := uc.Register(context.Background(), validRegister())
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), validRegister())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRegister_Validacion(t *testing.T) {
	uc := newItemUC(t)

	cases := []struct {
		name   string
		mutate func(*dto.RegisterItemRequest)
	}{
		{"sku vacío", func(r *dto.RegisterItemRequest) { r.SKU = "" }},
		{"nombre vacío", func(r *dto.RegisterItemRequest) { r.ItemName = "" }},
		{"uom vacía", func(r *dto.RegisterItemRequest) { r.UOM = "" }},
		{"min negativo", func(r *dto.RegisterItemRequest) { r.MinLvl = -1 }},
		{"apertura negativa", func(r *dto.RegisterItemRequest) { r.OpeningStock = -1 }},
		{"min mayor que max", func(r *dto.RegisterItemRequest) { r.MinLvl = 50; r.MaxLvl = 10 }},
		{"precio negativo", func(r *dto.RegisterItemRequest) { r.Price = decimal.NewFromInt(-1) }},
		{"más de cinco vendors", func(r *dto.RegisterItemRequest) {
			r.Vendors = []string{"a", "b", "c", "d", "e", "f"}
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validRegister()
			tc.mutate(&in)
			_, err := uc.Register(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestFind_NoExiste(t *testing.T) {
	uc := newItemUC(t)
	_, err := uc.Find(context.Background(), "SKU-404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_FiltroPorEstado(t *testing.T) {
	uc := newItemUC(t)
	_, err := uc.Register(context.Background(), validRegister())
	require.NoError(t, err)
	other := validRegister()
	other.SKU = "SKU-002"
	_, err = uc.Register(context.Background(), other)
	require.NoError(t, err)
	_, err = uc.SetStatus(context.Background(), "SKU-002", entity.ItemStatusInactive)
	require.NoError(t, err)

	out, err := uc.List(context.Background(), repository.ItemFilter{Status: entity.ItemStatusActive})
	require.NoError(t, err)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "SKU-001", out.Items[0].SKU)
}

func TestSetStatus(t *testing.T) {
	uc := newItemUC(t)
	_, err := uc.Register(context.Background(), validRegister())
	require.NoError(t, err)

	out, err := uc.SetStatus(context.Background(), "SKU-001", entity.ItemStatusInactive)
	require.NoError(t, err)
	assert.Equal(t, entity.ItemStatusInactive, out.Status)

	// La desactivación es baja lógica: el item sigue consultable.
	found, err := uc.Find(context.Background(), "SKU-001")
	require.NoError(t, err)
	assert.Equal(t, entity.ItemStatusInactive, found.Status)
}

func TestSetStatus_EstadoInvalido(t *testing.T) {
	uc := newItemUC(t)
	_, err := uc.Register(context.Background(), validRegister())
	require.NoError(t, err)

	_, err = uc.SetStatus(context.Background(), "SKU-001", "Archived")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_NoTocaSaldos(t *testing.T) {
	uc := newItemUC(t)
	_, err := uc.Register(context.Background(), validRegister())
	require.NoError(t, err)

	name := "Tornillo M8 galvanizado"
	price := decimal.NewFromInt(3)
	out, err := uc.Update(context.Background(), "SKU-001", dto.UpdateItemRequest{
		ItemName: &name,
		Price:    &price,
	})
	require.NoError(t, err)
	assert.Equal(t, name, out.ItemName)
	assert.True(t, price.Equal(out.Price))
	assert.Equal(t, int64(30), out.OpeningStock, "la edición nunca cambia el stock de apertura")
	assert.Equal(t, int64(30), out.CurrentStock, "la edición nunca cambia el saldo")
}

func TestUpdate_RevalidaNiveles(t *testing.T) {
	uc := newItemUC(t)
	_, err := uc.Register(context.Background(), validRegister())
	require.NoError(t, err)

	min := int64(500) // mayor que MaxLvl=100
	_, err = uc.Update(context.Background(), "SKU-001", dto.UpdateItemRequest{MinLvl: &min})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
