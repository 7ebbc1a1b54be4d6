// Package brformat concentra a formatação de exibição no padrão brasileiro
// (moeda, inteiros com separador de milhar e datas).
//
// Todos os agregados expostos pela API usam estas funções; o mesmo valor nunca
// deve ser exibido com duas regras de formatação diferentes na mesma visão.
// A localização é feita via golang.org/x/text (locale pt-BR), não por
// substituição de caracteres.
package brformat

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// FormatarMoeda formata um valor monetário como "R$ 1.234,50".
func FormatarMoeda(v decimal.Decimal) string {
	return "R$ " + FormatarNumero(v, 2)
}

// FormatarMoedaFloat versão para float64; NaN/Inf viram string vazia.
func FormatarMoedaFloat(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return FormatarMoeda(decimal.NewFromFloat(v))
}

// FormatarNumero formata um decimal com separador de milhar "." e decimal ","
// e exatamente casas dígitos fracionários.
func FormatarNumero(v decimal.Decimal, casas int) string {
	f, _ := v.Round(int32(casas)).Float64()
	return ptBR.Sprintf("%v", number.Decimal(f,
		number.MinFractionDigits(casas),
		number.MaxFractionDigits(casas),
	))
}

// FormatarInteiro formata um inteiro com separador de milhar: 1234 -> "1.234".
func FormatarInteiro(n int64) string {
	return ptBR.Sprintf("%v", number.Decimal(n))
}

// FormatarPercentual formata um percentual com uma casa: 12.34 -> "12,3%".
func FormatarPercentual(v decimal.Decimal) string {
	return FormatarNumero(v, 1) + "%"
}

// FormatarData formata uma data como DD-MM-YYYY; data nula (zero) vira vazio.
func FormatarData(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02-01-2006")
}

// FormatarDataHora formata data e hora como DD-MM-YYYY HH:MM:SS; nula vira vazio.
func FormatarDataHora(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02-01-2006 15:04:05")
}

// ParseMoeda é o inverso de FormatarMoeda: "R$ 1.234,50" -> 1234.50.
// String vazia devolve zero sem erro.
func ParseMoeda(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "R$"))
	if s == "" {
		return decimal.Zero, nil
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	return decimal.NewFromString(s)
}
