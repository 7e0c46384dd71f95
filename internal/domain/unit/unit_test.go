package unit_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stashkeeper/stashkeeper-api/internal/domain"
	"github.com/stashkeeper/stashkeeper-api/internal/domain/unit"
)

func TestNormalize_Sinonimos(t *testing.T) {
	cases := map[string]string{
		"litro":       "l",
		"Litros":      "l",
		"LT":          "l",
		"lts":         "l",
		"mililitro":   "ml",
		"Mililitros":  "ml",
		"quilo":       "kg",
		"quilograma":  "kg",
		"Quilogramas": "kg",
		"kilo":        "kg",
		"kilos":       "kg",
		"grama":       "g",
		"GRAMAS":      "g",
		"  kg  ":      "kg",
	}
	for raw, want := range cases {
		assert.Equal(t, want, unit.Normalize(raw), "Normalize(%q)", raw)
	}
}

func TestNormalize_UnidadeOpacaPassaAdiante(t *testing.T) {
	assert.Equal(t, "unidade", unit.Normalize("Unidade"))
	assert.Equal(t, "caixa", unit.Normalize(" caixa "))
	assert.Equal(t, "pacote", unit.Normalize("pacote"))
}

func TestConvert_FatoresFixos(t *testing.T) {
	out, err := unit.Convert(decimal.NewFromInt(1000), "g", "kg")
	require.NoError(t, err)
	assert.True(t, out.Equal(decimal.NewFromInt(1)), "convert(1000, g, kg) deve ser 1, obtido %s", out)

	out, err = unit.Convert(decimal.NewFromInt(1), "l", "ml")
	require.NoError(t, err)
	assert.True(t, out.Equal(decimal.NewFromInt(1000)), "convert(1, l, ml) deve ser 1000, obtido %s", out)

	out, err = unit.Convert(decimal.NewFromInt(2500), "g", "kg")
	require.NoError(t, err)
	assert.True(t, out.Equal(decimal.RequireFromString("2.5")))

	out, err = unit.Convert(decimal.RequireFromString("0.25"), "kg", "g")
	require.NoError(t, err)
	assert.True(t, out.Equal(decimal.NewFromInt(250)))
}

func TestConvert_MesmaUnidadeArredondaTresCasas(t *testing.T) {
	out, err := unit.Convert(decimal.RequireFromString("1.23456"), "kg", "quilos")
	require.NoError(t, err)
	assert.True(t, out.Equal(decimal.RequireFromString("1.235")), "obtido %s", out)
}

func TestConvert_UnidadesIncompativeisFalham(t *testing.T) {
	_, err := unit.Convert(decimal.NewFromInt(1), "kg", "l")
	assert.ErrorIs(t, err, domain.ErrIncompatibleUnits)

	_, err = unit.Convert(decimal.NewFromInt(1), "unidade", "caixa")
	assert.ErrorIs(t, err, domain.ErrIncompatibleUnits)

	_, err = unit.Convert(decimal.NewFromInt(1), "ml", "g")
	assert.ErrorIs(t, err, domain.ErrIncompatibleUnits)
}

func TestConvert_UnidadeOpacaIgualEhIdentidade(t *testing.T) {
	out, err := unit.Convert(decimal.NewFromInt(7), "caixa", "Caixa")
	require.NoError(t, err)
	assert.True(t, out.Equal(decimal.NewFromInt(7)))
}

func TestCompatible(t *testing.T) {
	assert.True(t, unit.Compatible("l", "mililitros"))
	assert.True(t, unit.Compatible("quilo", "g"))
	assert.True(t, unit.Compatible("caixa", "caixa"))
	assert.False(t, unit.Compatible("kg", "ml"))
	assert.False(t, unit.Compatible("unidade", "caixa"))
}

// Propriedade: convert(convert(x, A, B), B, A) ≈ x dentro de 0.001 para os
// pares suportados {g,kg} e {ml,l}. O valor de partida respeita o teto de
// precisão de 3 casas: gramas/ml inteiros, kg/l com até 3 casas.
func TestProperty_ConversaoIdaEVolta(t *testing.T) {
	tolerance := decimal.RequireFromString("0.001")
	pairs := [][2]string{{"g", "kg"}, {"kg", "g"}, {"ml", "l"}, {"l", "ml"}}

	properties := gopter.NewProperties(nil)
	properties.Property("ida e volta preserva o valor dentro da tolerância", prop.ForAll(
		func(milli int64, pairIdx int) bool {
			from, to := pairs[pairIdx][0], pairs[pairIdx][1]
			// milli está na menor unidade da família (g ou ml)
			x := decimal.NewFromInt(milli)
			if from == "kg" || from == "l" {
				x = x.Div(decimal.NewFromInt(1000)).Round(3)
			}
			there, err := unit.Convert(x, from, to)
			if err != nil {
				return false
			}
			back, err := unit.Convert(there, to, from)
			if err != nil {
				return false
			}
			return back.Sub(x).Abs().LessThanOrEqual(tolerance)
		},
		gen.Int64Range(0, 1_000_000_000),
		gen.IntRange(0, len(pairs)-1),
	))
	properties.TestingRun(t)
}
