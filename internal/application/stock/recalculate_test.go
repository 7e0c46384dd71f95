package stock_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appstock "github.com/stashkeeper/stashkeeper-api/internal/application/stock"
	"github.com/stashkeeper/stashkeeper-api/internal/domain/entity"
)

func setupRecalc(t *testing.T, stored, initial string) (*memStore, *appstock.RecalculateUseCase) {
	t.Helper()
	s := newMemStore()
	s.addProduct(&entity.Product{
		ID:              "prod-1",
		Code:            "P001",
		Name:            "Açúcar",
		Unit:            "kg",
		Quantity:        dec(stored),
		InitialQuantity: dec(initial),
	})
	return s, appstock.NewRecalculateUseCase(&fakeTxRunner{s: s}, &fakeProductRepo{s: s})
}

func seedLedger(s *memStore, entries ...[3]string) {
	base := time.Now().Add(-24 * time.Hour)
	for i, e := range entries {
		id := "mov-" + e[1] + e[2]
		s.movements[id] = &entity.Movement{
			ID:        id,
			ProductID: "prod-1",
			Type:      e[0],
			Quantity:  dec(e[1]),
			Unit:      e[2],
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
	}
}

func TestRecalculate_ConsistenteNaoMexe(t *testing.T) {
	s, uc := setupRecalc(t, "2.5", "1")
	seedLedger(s,
		[3]string{entity.MovementEntrada, "2", "kg"},
		[3]string{entity.MovementEntrada, "500", "g"},
		[3]string{entity.MovementSaida, "1", "kg"},
	)

	r, err := uc.Recalculate(context.Background(), "prod-1", true)
	require.NoError(t, err)
	assert.True(t, r.Consistent)
	assert.False(t, r.Fixed)
	assert.True(t, r.Recomputed.Equal(dec("2.5")))
	assert.True(t, s.products["prod-1"].Quantity.Equal(dec("2.5")))
}

func TestRecalculate_AuditoriaReportaSemCorrigir(t *testing.T) {
	s, uc := setupRecalc(t, "9", "0")
	seedLedger(s, [3]string{entity.MovementEntrada, "4", "kg"})

	r, err := uc.Recalculate(context.Background(), "prod-1", false)
	require.NoError(t, err)
	assert.False(t, r.Consistent)
	assert.True(t, r.Drift.Equal(dec("5")))
	assert.False(t, r.Fixed)
	assert.True(t, s.products["prod-1"].Quantity.Equal(dec("9")), "sem fix, nada muda")
}

func TestRecalculate_FixSobrescreve(t *testing.T) {
	s, uc := setupRecalc(t, "9", "0")
	seedLedger(s, [3]string{entity.MovementEntrada, "4", "kg"})

	r, err := uc.Recalculate(context.Background(), "prod-1", true)
	require.NoError(t, err)
	assert.True(t, r.Fixed)
	assert.Nil(t, r.CompensationQty)
	assert.True(t, s.products["prod-1"].Quantity.Equal(dec("4")))
}

// Razão reconstituído negativo: entrada corretiva reconcilia em zero, mesma
// regra da compensação de exclusão.
func TestRecalculate_FixNegativoInsereCorretiva(t *testing.T) {
	s, uc := setupRecalc(t, "3", "0")
	seedLedger(s,
		[3]string{entity.MovementEntrada, "2", "kg"},
		[3]string{entity.MovementSaida, "5", "kg"},
	)

	r, err := uc.Recalculate(context.Background(), "prod-1", true)
	require.NoError(t, err)
	assert.True(t, r.Fixed)
	require.NotNil(t, r.CompensationQty)
	assert.True(t, r.CompensationQty.Equal(dec("3")))
	assert.True(t, s.products["prod-1"].Quantity.IsZero())

	var corrective *entity.Movement
	for _, m := range s.movements {
		if m.Notes == appstock.CorrectionNote {
			corrective = m
		}
	}
	require.NotNil(t, corrective)
	assert.Equal(t, entity.MovementEntrada, corrective.Type)
	assert.True(t, corrective.Quantity.Equal(dec("3")))
	assert.False(t, corrective.Deleted)
}

func TestRecalculate_IgnoraMovimentacoesExcluidas(t *testing.T) {
	s, uc := setupRecalc(t, "4", "0")
	seedLedger(s,
		[3]string{entity.MovementEntrada, "4", "kg"},
		[3]string{entity.MovementEntrada, "100", "kg"},
	)
	s.movements["mov-100kg"].Deleted = true

	r, err := uc.Recalculate(context.Background(), "prod-1", false)
	require.NoError(t, err)
	assert.True(t, r.Consistent)
	assert.True(t, r.Recomputed.Equal(dec("4")))
}

func TestRecalculateAll_PercorreOCatalogo(t *testing.T) {
	s, uc := setupRecalc(t, "1", "1")
	s.addProduct(&entity.Product{
		ID: "prod-2", Code: "P002", Unit: "unidade",
		Quantity: dec("7"), InitialQuantity: dec("2"),
	})

	results, err := uc.RecalculateAll(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.True(t, results[0].Consistent) // P001: 1 == 1
	assert.False(t, results[1].Consistent, "P002 armazenado 7, razão 2")
	drift := decimal.NewFromInt(5)
	assert.True(t, results[1].Drift.Equal(drift))
}
