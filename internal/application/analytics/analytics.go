// Package analytics contém os casos de uso de agregação do dashboard.
// Todos operam sobre o snapshot publicado, sem mutação: cada chamada
// deriva suas visões do zero a partir das linhas filtradas.
package analytics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tecnolife/dashboard-vendas/internal/domain"
	"github.com/tecnolife/dashboard-vendas/internal/domain/entity"
)

const layoutDia = "2006-01-02"

// Snapshot porta de leitura do dataset corrente. Devolve nil antes da
// primeira carga.
type Snapshot interface {
	Atual() *entity.Dataset
}

// ── Filtros ───────────────────────────────────────────────────────────────────

// filtrarPorAnos mantém as linhas cujo ano de emissão está na lista.
// Lista vazia = sem filtro. Linhas com emissão nula são excluídas quando
// há filtro (não têm ano para comparar).
func filtrarPorAnos(linhas []entity.LinhaFaturamento, anos []int) []entity.LinhaFaturamento {
	if len(anos) == 0 {
		return linhas
	}
	permitidos := make(map[int]bool, len(anos))
	for _, a := range anos {
		permitidos[a] = true
	}
	var out []entity.LinhaFaturamento
	for i := range linhas {
		if linhas[i].Emissao.IsZero() {
			continue
		}
		if permitidos[linhas[i].Emissao.Year()] {
			out = append(out, linhas[i])
		}
	}
	return out
}

// periodoPadrao menor e maior data de faturamento do conjunto, ignorando
// nulas. ok=false quando nenhuma linha tem data.
func periodoPadrao(linhas []entity.LinhaFaturamento) (min, max time.Time, ok bool) {
	for i := range linhas {
		d := linhas[i].Data
		if d.IsZero() {
			continue
		}
		if !ok {
			min, max, ok = d, d, true
			continue
		}
		if d.Before(min) {
			min = d
		}
		if d.After(max) {
			max = d
		}
	}
	return min, max, ok
}

// parsePeriodo resolve o intervalo [inicio, fim] de uma requisição.
// Strings vazias caem no mínimo/máximo do conjunto; o fim é inclusivo
// até o último instante do dia.
func parsePeriodo(inicio, fim string, linhas []entity.LinhaFaturamento) (time.Time, time.Time, error) {
	minD, maxD, _ := periodoPadrao(linhas)

	ini := minD
	if inicio != "" {
		t, err := time.Parse(layoutDia, inicio)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: inicio %q", domain.ErrEntradaInvalida, inicio)
		}
		ini = t
	}
	fimT := maxD
	if fim != "" {
		t, err := time.Parse(layoutDia, fim)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: fim %q", domain.ErrEntradaInvalida, fim)
		}
		fimT = t
	}
	// Inclusivo até 23:59:59 do último dia.
	fimT = fimT.Add(24*time.Hour - time.Second)
	return ini, fimT, nil
}

// filtrarPorPeriodo mantém as linhas com data de faturamento dentro do
// intervalo. Linhas com data nula são excluídas.
func filtrarPorPeriodo(linhas []entity.LinhaFaturamento, ini, fim time.Time) []entity.LinhaFaturamento {
	var out []entity.LinhaFaturamento
	for i := range linhas {
		d := linhas[i].Data
		if d.IsZero() || d.Before(ini) || d.After(fim) {
			continue
		}
		out = append(out, linhas[i])
	}
	return out
}

// ── Utilidades de agregação ───────────────────────────────────────────────────

// ParseListaAnos converte "2023,2024" em []int. Entradas vazias são
// ignoradas; valor não numérico devolve ErrEntradaInvalida.
func ParseListaAnos(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var anos []int
	for _, parte := range strings.Split(s, ",") {
		parte = strings.TrimSpace(parte)
		if parte == "" {
			continue
		}
		var ano int
		if _, err := fmt.Sscanf(parte, "%d", &ano); err != nil {
			return nil, fmt.Errorf("%w: ano %q", domain.ErrEntradaInvalida, parte)
		}
		anos = append(anos, ano)
	}
	return anos, nil
}

// ParseListaNomes converte "A,B" em fatia de nomes sem espaços nas pontas.
func ParseListaNomes(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var nomes []string
	for _, parte := range strings.Split(s, ",") {
		if parte = strings.TrimSpace(parte); parte != "" {
			nomes = append(nomes, parte)
		}
	}
	return nomes
}

// notasDistintas conta notas fiscais distintas no conjunto (um pedido
// atravessa várias linhas, uma por item).
func notasDistintas(linhas []entity.LinhaFaturamento) int {
	vistas := make(map[int64]bool)
	for i := range linhas {
		vistas[linhas[i].Nota] = true
	}
	return len(vistas)
}

// clientesDistintos conta clientes distintos pela chave de cliente.
func clientesDistintos(linhas []entity.LinhaFaturamento) int {
	vistos := make(map[string]bool)
	for i := range linhas {
		vistos[linhas[i].ChaveCliente()] = true
	}
	return len(vistos)
}

// divisaoSegura a / b arredondado, ou zero quando b é zero.
func divisaoSegura(a decimal.Decimal, b int64, casas int32) decimal.Decimal {
	if b == 0 {
		return decimal.Zero
	}
	return a.DivRound(decimal.NewFromInt(b), casas)
}

// percentual parte / total × 100 com duas casas, ou zero quando o total é zero.
func percentual(parte, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return parte.Mul(decimal.NewFromInt(100)).DivRound(total, 2)
}

// ordenarDesc ordena estável por valor decrescente usando a chave extraída.
func ordenarDesc[T any](itens []T, valor func(T) decimal.Decimal) {
	sort.SliceStable(itens, func(i, j int) bool {
		return valor(itens[i]).GreaterThan(valor(itens[j]))
	})
}
