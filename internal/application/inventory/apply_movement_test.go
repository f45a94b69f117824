package inventory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockledger-api/internal/application/inventory"
	"github.com/jhoicas/stockledger-api/internal/domain"
	"github.com/jhoicas/stockledger-api/internal/domain/entity"
	"github.com/jhoicas/stockledger-api/internal/domain/repository"
	"github.com/jhoicas/stockledger-api/internal/infrastructure/memory"
)

func newEngine(t *testing.T) (*inventory.ApplyMovementUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	uc := inventory.NewApplyMovementUseCase(memory.NewTxRunner(store), memory.NewItemRepository(store))
	return uc, store
}

func seedItem(t *testing.T, store *memory.Store, sku string, opening int64) {
	t.Helper()
	now := time.Now()
	err := memory.NewItemRepository(store).Create(context.Background(), &entity.Item{
		ID:           uuid.New().String(),
		SKU:          sku,
		ItemName:     "Item " + sku,
		UOM:          "unit",
		OpeningStock: opening,
		CurrentStock: opening,
		Price:        decimal.NewFromInt(10),
		Status:       entity.ItemStatusActive,
		AddedOn:      now,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	require.NoError(t, err)
}

func currentStock(t *testing.T, store *memory.Store, sku string) int64 {
	t.Helper()
	it, err := memory.NewItemRepository(store).GetBySKU(context.Background(), sku)
	require.NoError(t, err)
	require.NotNil(t, it)
	return it.CurrentStock
}

func ledger(t *testing.T, store *memory.Store, sku string) []*entity.Movement {
	t.Helper()
	movs, err := memory.NewMovementRepository(store).Query(context.Background(), repository.MovementFilter{SKU: sku})
	require.NoError(t, err)
	return movs
}

func TestApply_EntradaAumentaSaldo(t *testing.T) {
	uc, store := newEngine(t)
	seedItem(t, store, "SKU-001", 5)

	res, err := uc.Apply(context.Background(), inventory.MovementInput{
		SKU: "SKU-001", Quantity: 10, Kind: "Purchase", Remarks: "compra inicial",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(15), res.NewBalance)
	assert.Equal(t, int64(15), currentStock(t, store, "SKU-001"))
	assert.NotEmpty(t, res.Movement.ID)
	assert.Equal(t, entity.KindPurchase, res.Movement.Kind)
	assert.Equal(t, int64(10), res.Movement.Quantity, "el ledger guarda la magnitud, no la cantidad con signo")

	movs := ledger(t, store, "SKU-001")
	require.Len(t, movs, 1)
	assert.Equal(t, res.Movement.ID, movs[0].ID)
}

func TestApply_SalidaConSaldoSuficiente(t *testing.T) {
	uc, store := newEngine(t)
	seedItem(t, store, "SKU-001", 50)

	res, err := uc.Apply(context.Background(), inventory.MovementInput{
		SKU: "SKU-001", Quantity: 20, Kind: "Sale",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(30), res.NewBalance)
}

// Un rechazo por saldo insuficiente no debe dejar rastro: ni entrada en
// el ledger ni cambio de saldo.
func TestApply_SalidaInsuficiente_SinEfectos(t *testing.T) {
	uc, store := newEngine(t)
	seedItem(t, store, "SKU-001", 50)

	res, err := uc.Apply(context.Background(), inventory.MovementInput{
		SKU: "SKU-001", Quantity: 20, Kind: "Sale",
	})
	require.NoError(t, err)
	require.Equal(t, int64(30), res.NewBalance)

	_, err = uc.Apply(context.Background(), inventory.MovementInput{
		SKU: "SKU-001", Quantity: 40, Kind: "Sale",
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(30), currentStock(t, store, "SKU-001"))
	assert.Len(t, ledger(t, store, "SKU-001"), 1, "el movimiento rechazado no debe aparecer en el ledger")
}

func TestApply_SalidaQueDejaSaldoCero(t *testing.T) {
	uc, store := newEngine(t)
	seedItem(t, store, "SKU-001", 7)

	res, err := uc.Apply(context.Background(), inventory.MovementInput{
		SKU: "SKU-001", Quantity: 7, Kind: "Adjusted Out",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.NewBalance, "saldo cero exacto es válido; el rechazo es solo para saldo negativo")
}

func TestApply_ValidacionDeEntrada(t *testing.T) {
	uc, store := newEngine(t)
	seedItem(t, store, "SKU-001", 10)

	cases := []struct {
		name  string
		input inventory.MovementInput
		want  error
	}{
		{"cantidad cero", inventory.MovementInput{SKU: "SKU-001", Quantity: 0, Kind: "Purchase"}, domain.ErrInvalidInput},
		{"cantidad negativa", inventory.MovementInput{SKU: "SKU-001", Quantity: -3, Kind: "Purchase"}, domain.ErrInvalidInput},
		{"tipo desconocido", inventory.MovementInput{SKU: "SKU-001", Quantity: 1, Kind: "Transfer"}, domain.ErrInvalidInput},
		{"sku vacío", inventory.MovementInput{Quantity: 1, Kind: "Purchase"}, domain.ErrInvalidInput},
		{"sku inexistente", inventory.MovementInput{SKU: "SKU-404", Quantity: 1, Kind: "Purchase"}, domain.ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Apply(context.Background(), tc.input)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	assert.Empty(t, ledger(t, store, "SKU-001"), "ninguna entrada inválida debe llegar al ledger")
	assert.Equal(t, int64(10), currentStock(t, store, "SKU-001"))
}

// Dos salidas concurrentes que individualmente caben pero no juntas:
// exactamente una debe confirmar.
func TestApply_CarreraPorUltimasUnidades(t *testing.T) {
	uc, store := newEngine(t)
	seedItem(t, store, "SKU-001", 15)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Apply(context.Background(), inventory.MovementInput{
				SKU: "SKU-001", Quantity: 10, Kind: "Sale",
			})
		}(i)
	}
	wg.Wait()

	var ok, insufficient int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrInsufficientStock):
			insufficient++
		default:
			t.Fatalf("error inesperado: %v", err)
		}
	}
	assert.Equal(t, 1, ok, "exactamente una salida debe confirmar")
	assert.Equal(t, 1, insufficient)
	assert.Equal(t, int64(5), currentStock(t, store, "SKU-001"))
	assert.Len(t, ledger(t, store, "SKU-001"), 1)
}

// N escrituras concurrentes sobre el mismo sku: sin actualizaciones
// perdidas, el saldo final refleja las N.
func TestApply_ConcurrenciaMismoSKU(t *testing.T) {
	uc, store := newEngine(t)
	seedItem(t, store, "SKU-001", 0)

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Apply(context.Background(), inventory.MovementInput{
				SKU: "SKU-001", Quantity: 1, Kind: "Purchase",
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(n), currentStock(t, store, "SKU-001"))
	assert.Len(t, ledger(t, store, "SKU-001"), n)
}

// Escrituras sobre skus distintos no se serializan entre sí y cada
// saldo evoluciona por separado.
func TestApply_SKUsIndependientes(t *testing.T) {
	uc, store := newEngine(t)
	seedItem(t, store, "SKU-A", 10)
	seedItem(t, store, "SKU-B", 10)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sku := "SKU-A"
			if i%2 == 1 {
				sku = "SKU-B"
			}
			_, err := uc.Apply(context.Background(), inventory.MovementInput{
				SKU: sku, Quantity: 2, Kind: "Purchase",
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int64(20), currentStock(t, store, "SKU-A"))
	assert.Equal(t, int64(20), currentStock(t, store, "SKU-B"))
}

// Invariante central: saldo == stock de apertura + Σ(cantidad con signo
// de los movimientos confirmados), con rechazos intercalados.
func TestApply_InvarianteDeSaldo(t *testing.T) {
	uc, store := newEngine(t)
	const opening = 100
	seedItem(t, store, "SKU-001", opening)

	ops := []inventory.MovementInput{
		{SKU: "SKU-001", Quantity: 30, Kind: "Sale"},
		{SKU: "SKU-001", Quantity: 10, Kind: "Adjusted Out"},
		{SKU: "SKU-001", Quantity: 500, Kind: "Sale"}, // rechazado
		{SKU: "SKU-001", Quantity: 25, Kind: "Purchase"},
		{SKU: "SKU-001", Quantity: 5, Kind: "Adjusted In"},
		{SKU: "SKU-001", Quantity: 200, Kind: "Adjusted Out"}, // rechazado
	}
	for _, op := range ops {
		_, err := uc.Apply(context.Background(), op)
		if err != nil {
			require.ErrorIs(t, err, domain.ErrInsufficientStock)
		}
	}

	var sum int64
	for _, m := range ledger(t, store, "SKU-001") {
		sum += m.SignedQuantity()
	}
	got := currentStock(t, store, "SKU-001")
	assert.Equal(t, int64(opening)+sum, got)
	assert.GreaterOrEqual(t, got, int64(0))
	assert.Equal(t, int64(90), got) // 100 - 30 - 10 + 25 + 5
}

// Un contexto ya vencido nunca debe confirmar a medias: ErrConflict y
// cero efectos.
func TestApply_ContextoVencido(t *testing.T) {
	uc, store := newEngine(t)
	seedItem(t, store, "SKU-001", 10)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.Apply(ctx, inventory.MovementInput{
		SKU: "SKU-001", Quantity: 1, Kind: "Purchase",
	})
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, int64(10), currentStock(t, store, "SKU-001"))
	assert.Empty(t, ledger(t, store, "SKU-001"))
}
