package dto

import "github.com/shopspring/decimal"

// MetricasVendedoresRequest parâmetros para GET /api/vendedores/metricas.
type MetricasVendedoresRequest struct {
	Inicio     string `query:"inicio"`     // YYYY-MM-DD; vazio = desde a primeira data do conjunto
	Fim        string `query:"fim"`        // YYYY-MM-DD; vazio = até a última data
	Vendedores string `query:"vendedores"` // nomes separados por vírgula; vazio = todos
}

// MetricaVendedorDTO métricas de um vendedor no período.
type MetricaVendedorDTO struct {
	Vendedor string `json:"vendedor"`
	// Pedidos contagem de notas distintas, não de itens de nota.
	Pedidos        int             `json:"pedidos"`
	Total          decimal.Decimal `json:"total"`
	TotalFmt       string          `json:"total_fmt"`
	TicketMedio    decimal.Decimal `json:"ticket_medio"`
	TicketMedioFmt string          `json:"ticket_medio_fmt"`
}

// EvolucaoMensalDTO faturamento do conjunto filtrado em um mês.
type EvolucaoMensalDTO struct {
	Periodo        string          `json:"periodo"` // AAAA-MM
	Faturamento    decimal.Decimal `json:"faturamento"`
	FaturamentoFmt string          `json:"faturamento_fmt"`
}

// MetricasVendedoresDTO resposta completa da análise de vendedores.
// Filtro sem linhas devolve listas vazias e SemDados=true, nunca erro.
type MetricasVendedoresDTO struct {
	Periodo    PeriodoDTO           `json:"periodo"`
	Vendedores []MetricaVendedorDTO `json:"vendedores"`
	Evolucao   []EvolucaoMensalDTO  `json:"evolucao_mensal"`
	SemDados   bool                 `json:"sem_dados"`
}
