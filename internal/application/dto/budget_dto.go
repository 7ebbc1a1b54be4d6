package dto

import "github.com/shopspring/decimal"

// BudgetRequest parâmetros para GET /api/budget.
type BudgetRequest struct {
	Ano int `query:"ano"` // ano alvo; 0 = ano mais recente do conjunto
	// PercentualMeta crescimento sobre o realizado do ano anterior, em
	// pontos percentuais (ex. 10 = meta de +10%). Padrão 10.
	PercentualMeta int `query:"percentual_meta"`
}

// BudgetMesDTO acompanhamento de um mês do ano alvo.
type BudgetMesDTO struct {
	NumMes       int             `json:"num_mes"`
	Mes          string          `json:"mes"` // nome pt-BR
	Realizado    decimal.Decimal `json:"realizado"`
	RealizadoFmt string          `json:"realizado_fmt"`
	Acumulado    decimal.Decimal `json:"acumulado"`
	AcumuladoFmt string          `json:"acumulado_fmt"`
}

// BudgetDTO resposta completa do acompanhamento de meta anual.
type BudgetDTO struct {
	AnoAtual    int `json:"ano_atual"`
	AnoAnterior int `json:"ano_anterior"`
	// PercentualMeta crescimento aplicado sobre o ano anterior.
	PercentualMeta         int             `json:"percentual_meta"`
	FaturamentoAnterior    decimal.Decimal `json:"faturamento_anterior"`
	FaturamentoAnteriorFmt string          `json:"faturamento_anterior_fmt"`
	MetaAnual              decimal.Decimal `json:"meta_anual"`
	MetaAnualFmt           string          `json:"meta_anual_fmt"`
	MetaMensal             decimal.Decimal `json:"meta_mensal"`
	MetaMensalFmt          string          `json:"meta_mensal_fmt"`
	RealizadoAcumulado     decimal.Decimal `json:"realizado_acumulado"`
	RealizadoAcumuladoFmt  string          `json:"realizado_acumulado_fmt"`
	// ProjecaoAnual acumulado + média mensal realizada × meses restantes.
	ProjecaoAnual      decimal.Decimal `json:"projecao_anual"`
	ProjecaoAnualFmt   string          `json:"projecao_anual_fmt"`
	PercentualAtingido decimal.Decimal `json:"percentual_atingido"` // realizado / meta anual, em %
	// UltimoMes último mês com venda no ano alvo (0 = nenhum) e o desvio
	// percentual do realizado desse mês contra a meta mensal.
	UltimoMes            int             `json:"ultimo_mes"`
	VariacaoUltimoMes    decimal.Decimal `json:"variacao_ultimo_mes"`
	VariacaoUltimoMesFmt string          `json:"variacao_ultimo_mes_fmt"`
	Meses                []BudgetMesDTO  `json:"meses"`
	SemDados             bool            `json:"sem_dados"`
}
