// Package unit implementa a normalização e conversão de unidades de medida
// do estoque (serviço de domínio, puro).
//
// Dimensões suportadas: volume (l, ml) e massa (kg, g). Qualquer outro texto
// é tratado como unidade opaca: compatível apenas consigo mesmo (ex.:
// "unidade", "caixa").
package unit

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/stashkeeper/stashkeeper-api/internal/domain"
)

// Símbolos canônicos.
const (
	Liter      = "l"
	Milliliter = "ml"
	Kilogram   = "kg"
	Gram       = "g"
)

// Precisão de 3 casas decimais em toda conversão: limita o acúmulo de ruído
// de ponto flutuante ao longo de um razão longo de movimentações.
const precision = 3

var thousand = decimal.NewFromInt(1000)

// Sinônimos de escrita livre -> símbolo canônico.
var synonyms = map[string]string{
	"litro":       Liter,
	"litros":      Liter,
	"lt":          Liter,
	"lts":         Liter,
	"mililitro":   Milliliter,
	"mililitros":  Milliliter,
	"quilo":       Kilogram,
	"quilos":      Kilogram,
	"quilograma":  Kilogram,
	"quilogramas": Kilogram,
	"kilo":        Kilogram,
	"kilos":       Kilogram,
	"grama":       Gram,
	"gramas":      Gram,
}

// Normalize reduz a escrita livre de uma unidade ao símbolo canônico.
// Texto não reconhecido passa adiante sem alteração (unidade opaca).
func Normalize(raw string) string {
	u := strings.ToLower(strings.TrimSpace(raw))
	if canonical, ok := synonyms[u]; ok {
		return canonical
	}
	return u
}

// IsVolume indica se a unidade normalizada pertence à família de volume.
func IsVolume(u string) bool {
	n := Normalize(u)
	return n == Liter || n == Milliliter
}

// IsWeight indica se a unidade normalizada pertence à família de massa.
func IsWeight(u string) bool {
	n := Normalize(u)
	return n == Kilogram || n == Gram
}

// Compatible indica se duas unidades podem ser convertidas entre si:
// mesmo símbolo normalizado, ambas de volume ou ambas de massa.
func Compatible(a, b string) bool {
	na, nb := Normalize(a), Normalize(b)
	if na == nb {
		return true
	}
	if IsVolume(na) && IsVolume(nb) {
		return true
	}
	if IsWeight(na) && IsWeight(nb) {
		return true
	}
	return false
}

// Convert converte value de from para to, arredondando a 3 casas decimais.
// Unidades dimensionalmente incompatíveis retornam ErrIncompatibleUnits em
// vez de repassar o valor em silêncio: falhar cedo aqui é o que impede o
// razão de somar litros com quilos.
func Convert(value decimal.Decimal, from, to string) (decimal.Decimal, error) {
	nf, nt := Normalize(from), Normalize(to)
	if nf == nt {
		return value.Round(precision), nil
	}
	switch {
	case nf == Gram && nt == Kilogram:
		return value.Div(thousand).Round(precision), nil
	case nf == Kilogram && nt == Gram:
		return value.Mul(thousand).Round(precision), nil
	case nf == Milliliter && nt == Liter:
		return value.Div(thousand).Round(precision), nil
	case nf == Liter && nt == Milliliter:
		return value.Mul(thousand).Round(precision), nil
	}
	return decimal.Zero, domain.ErrIncompatibleUnits
}
