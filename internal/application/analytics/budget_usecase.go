package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tecnolife/dashboard-vendas/internal/application/dto"
	"github.com/tecnolife/dashboard-vendas/internal/domain"
	"github.com/tecnolife/dashboard-vendas/internal/domain/referencia"
	"github.com/tecnolife/dashboard-vendas/pkg/brformat"
)

// percentualMetaPadrao crescimento aplicado sobre o ano anterior quando a
// requisição não informa outro.
const percentualMetaPadrao = 10

// BudgetUseCase acompanhamento de meta anual: a meta é derivada do
// realizado do ano anterior acrescido de um percentual de crescimento, e
// o ano alvo é acompanhado mês a mês com projeção de fechamento.
//
// A base da meta é o valor faturado (valorfaturado), não o valor de nota:
// a meta comercial é definida sobre mercadoria, sem impostos e frete.
type BudgetUseCase struct {
	store Snapshot
}

// NewBudgetUseCase constrói o caso de uso.
func NewBudgetUseCase(store Snapshot) *BudgetUseCase {
	return &BudgetUseCase{store: store}
}

// Acompanhamento monta o quadro de meta do ano alvo. ano=0 usa o ano mais
// recente com emissão no conjunto; percentualMeta<=0 usa o padrão.
func (uc *BudgetUseCase) Acompanhamento(ano, percentualMeta int) (*dto.BudgetDTO, error) {
	ds := uc.store.Atual()
	if ds == nil {
		return nil, domain.ErrDatasetNaoCarregado
	}
	if percentualMeta <= 0 {
		percentualMeta = percentualMetaPadrao
	}
	if ano == 0 {
		anos := ds.AnosDisponiveis()
		if len(anos) == 0 {
			return &dto.BudgetDTO{PercentualMeta: percentualMeta, SemDados: true, Meses: []dto.BudgetMesDTO{}}, nil
		}
		ano = anos[len(anos)-1]
	}
	anoAnterior := ano - 1

	// Realizado por mês do ano alvo e total do ano anterior, ambos pela
	// data de emissão.
	var anterior decimal.Decimal
	realizado := make([]decimal.Decimal, 12)
	temAlvo := false
	for i := range ds.Linhas {
		e := ds.Linhas[i].Emissao
		if e.IsZero() {
			continue
		}
		switch e.Year() {
		case anoAnterior:
			anterior = anterior.Add(ds.Linhas[i].ValorFaturado)
		case ano:
			realizado[int(e.Month())-1] = realizado[int(e.Month())-1].Add(ds.Linhas[i].ValorFaturado)
			temAlvo = true
		}
	}

	pct := decimal.NewFromInt(int64(percentualMeta))
	metaAnual := anterior.Mul(decimal.NewFromInt(100).Add(pct)).DivRound(decimal.NewFromInt(100), 2)
	metaMensal := metaAnual.DivRound(decimal.NewFromInt(12), 2)

	resp := &dto.BudgetDTO{
		AnoAtual:               ano,
		AnoAnterior:            anoAnterior,
		PercentualMeta:         percentualMeta,
		FaturamentoAnterior:    anterior,
		FaturamentoAnteriorFmt: brformat.FormatarMoeda(anterior),
		MetaAnual:              metaAnual,
		MetaAnualFmt:           brformat.FormatarMoeda(metaAnual),
		MetaMensal:             metaMensal,
		MetaMensalFmt:          brformat.FormatarMoeda(metaMensal),
		Meses:                  make([]dto.BudgetMesDTO, 0, 12),
		SemDados:               !temAlvo && anterior.IsZero(),
	}

	var acumulado decimal.Decimal
	ultimoMes := 0
	for m := 1; m <= 12; m++ {
		r := realizado[m-1]
		acumulado = acumulado.Add(r)
		if r.IsPositive() {
			ultimoMes = m
		}
		resp.Meses = append(resp.Meses, dto.BudgetMesDTO{
			NumMes:       m,
			Mes:          referencia.NomeMes(time.Month(m)),
			Realizado:    r,
			RealizadoFmt: brformat.FormatarMoeda(r),
			Acumulado:    acumulado,
			AcumuladoFmt: brformat.FormatarMoeda(acumulado),
		})
	}

	resp.RealizadoAcumulado = acumulado
	resp.RealizadoAcumuladoFmt = brformat.FormatarMoeda(acumulado)

	// Projeção de fechamento: acumulado + média mensal realizada × meses
	// restantes, tomando o último mês com venda como mês corrente.
	projecao := acumulado
	if ultimoMes > 0 && ultimoMes < 12 {
		media := acumulado.DivRound(decimal.NewFromInt(int64(ultimoMes)), 2)
		projecao = acumulado.Add(media.Mul(decimal.NewFromInt(int64(12 - ultimoMes))))
	}
	resp.ProjecaoAnual = projecao
	resp.ProjecaoAnualFmt = brformat.FormatarMoeda(projecao)
	resp.PercentualAtingido = percentual(acumulado, metaAnual)

	// Desvio percentual do último mês com venda contra a meta mensal:
	// (realizado / meta − 1) × 100.
	resp.UltimoMes = ultimoMes
	if ultimoMes > 0 && !metaMensal.IsZero() {
		resp.VariacaoUltimoMes = percentual(realizado[ultimoMes-1], metaMensal).Sub(decimal.NewFromInt(100))
		resp.VariacaoUltimoMesFmt = brformat.FormatarPercentual(resp.VariacaoUltimoMes)
	}

	return resp, nil
}
