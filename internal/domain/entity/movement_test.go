package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockledger-api/internal/domain"
	"github.com/jhoicas/stockledger-api/internal/domain/entity"
)

func TestParseKind(t *testing.T) {
	for s, sign := range map[string]int64{
		"Adjusted In":  +1,
		"Purchase":     +1,
		"Adjusted Out": -1,
		"Sale":         -1,
	} {
		k, err := entity.ParseKind(s)
		require.NoError(t, err, s)
		assert.Equal(t, sign, k.Sign(), s)
	}
}

func TestParseKind_Desconocido(t *testing.T) {
	for _, s := range []string{"", "Transfer", "sale", "SALE", "Adjusted  In"} {
		_, err := entity.ParseKind(s)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "el tipo es una enumeración cerrada y sensible a mayúsculas: %q", s)
	}
}

func TestSignedQuantity(t *testing.T) {
	in := entity.Movement{Quantity: 7, Kind: entity.KindPurchase}
	out := entity.Movement{Quantity: 7, Kind: entity.KindSale}
	assert.Equal(t, int64(7), in.SignedQuantity())
	assert.Equal(t, int64(-7), out.SignedQuantity())
	assert.True(t, entity.KindAdjustedIn.Increases())
	assert.False(t, entity.KindAdjustedOut.Increases())
}
