package dto

import "github.com/shopspring/decimal"

// AnaliseClientesRequest parâmetros para GET /api/clientes/analise.
type AnaliseClientesRequest struct {
	Inicio string `query:"inicio"` // YYYY-MM-DD; vazio = desde a primeira data
	Fim    string `query:"fim"`    // YYYY-MM-DD; vazio = até a última data
	UFs    string `query:"ufs"`    // lista separada por vírgula; vazio = todas
}

// TopClienteDTO um cliente no ranking de faturamento.
type TopClienteDTO struct {
	Razao          string          `json:"razao"`
	Faturamento    decimal.Decimal `json:"faturamento"`
	FaturamentoFmt string          `json:"faturamento_fmt"`
}

// RecenciaFaixaDTO quantidade de clientes por faixa de dias desde a
// última compra. A referência de "hoje" é a data mais recente do
// conjunto filtrado, não o relógio do servidor.
type RecenciaFaixaDTO struct {
	Faixa    string `json:"faixa"` // "Até 30 dias", "31-90 dias", "91-180 dias", "Mais de 180 dias"
	Clientes int    `json:"clientes"`
}

// ClientesUFDTO clientes distintos por estado/país bucketizado.
type ClientesUFDTO struct {
	UF       string `json:"uf"`
	Nome     string `json:"nome"`
	Clientes int    `json:"clientes"`
}

// ClientesRegiaoDTO clientes distintos por macro-região.
type ClientesRegiaoDTO struct {
	Regiao   string `json:"regiao"`
	Clientes int    `json:"clientes"`
}

// GrupoValorDTO faturamento agregado de uma categoria de produto.
type GrupoValorDTO struct {
	Grupo          string          `json:"grupo"`
	Faturamento    decimal.Decimal `json:"faturamento"`
	FaturamentoFmt string          `json:"faturamento_fmt"`
}

// HierarquiaDTO nó folha da hierarquia categoria → sub-categoria.
type HierarquiaDTO struct {
	Grupo       string          `json:"grupo"`
	SubGrupo    string          `json:"sub_grupo"`
	Faturamento decimal.Decimal `json:"faturamento"`
}

// ConcentracaoDTO indicadores de concentração geográfica e de mix.
type ConcentracaoDTO struct {
	MaiorUF         string          `json:"maior_uf"`
	MaiorUFPct      decimal.Decimal `json:"maior_uf_pct"` // % dos clientes na UF líder
	Top3RegioesPct  decimal.Decimal `json:"top3_regioes_pct"`
	MaiorGrupo      string          `json:"maior_grupo"`
	MaiorGrupoPct   decimal.Decimal `json:"maior_grupo_pct"` // % do faturamento na categoria líder
	Top3GruposPct   decimal.Decimal `json:"top3_grupos_pct"`
	SubGruposAtivos int             `json:"sub_grupos_ativos"`
}

// ParetoPontoDTO um ponto da curva de concentração de receita.
type ParetoPontoDTO struct {
	PctClientes    decimal.Decimal `json:"pct_clientes"`
	PctFaturamento decimal.Decimal `json:"pct_faturamento"`
}

// ParetoDTO análise 80/20 da carteira.
type ParetoDTO struct {
	// PctClientes80 fração mínima de clientes que concentra 80% da receita.
	PctClientes80 decimal.Decimal  `json:"pct_clientes_80"`
	Curva         []ParetoPontoDTO `json:"curva"`
}

// AnaliseClientesDTO resposta completa da análise de carteira.
// Filtro sem linhas devolve listas vazias e SemDados=true, nunca erro.
type AnaliseClientesDTO struct {
	Periodo             PeriodoDTO          `json:"periodo"`
	TotalClientes       int                 `json:"total_clientes"`
	TotalClientesFmt    string              `json:"total_clientes_fmt"`
	FaturamentoTotal    decimal.Decimal     `json:"faturamento_total"`
	FaturamentoTotalFmt string              `json:"faturamento_total_fmt"`
	TicketMedio         decimal.Decimal     `json:"ticket_medio"`
	TicketMedioFmt      string              `json:"ticket_medio_fmt"`
	MediaPedidosCliente decimal.Decimal     `json:"media_pedidos_cliente"`
	TopClientes         []TopClienteDTO     `json:"top_clientes"`
	Recencia            []RecenciaFaixaDTO  `json:"recencia"`
	PorUF               []ClientesUFDTO     `json:"por_uf"`
	PorRegiao           []ClientesRegiaoDTO `json:"por_regiao"`
	TopGrupos           []GrupoValorDTO     `json:"top_grupos"`
	Hierarquia          []HierarquiaDTO     `json:"hierarquia"`
	Concentracao        ConcentracaoDTO     `json:"concentracao"`
	Pareto              ParetoDTO           `json:"pareto"`
	SemDados            bool                `json:"sem_dados"`
}
