package dto

import "github.com/shopspring/decimal"

// ── Query parameters ──────────────────────────────────────────────────────────

// FiltroAnosRequest filtro opcional de anos para os agregados de faturamento.
type FiltroAnosRequest struct {
	Anos string `query:"anos"` // lista separada por vírgula, ex. "2023,2024"; vazio = sem filtro
}

// ── Agregados ─────────────────────────────────────────────────────────────────

// FaturamentoEstadoDTO uma linha do agregado por estado/país.
type FaturamentoEstadoDTO struct {
	UF             string          `json:"uf"`   // código bucketizado; "EX" agrupa códigos sem referência
	Nome           string          `json:"nome"` // nome de exibição do estado/país
	Faturamento    decimal.Decimal `json:"faturamento"`
	FaturamentoFmt string          `json:"faturamento_fmt"` // "R$ 1.234,50"
	Latitude       *float64        `json:"latitude"`        // nil para o bucket EX
	Longitude      *float64        `json:"longitude"`
	// TamanhoBolha escala min-max 5..50 calculada sobre o resultado
	// filtrado, para o mapa de bolhas.
	TamanhoBolha float64 `json:"tamanho_bolha"`
}

// FaturamentoMesDTO uma linha do agregado mês a mês.
// Ordenação: (ano asc, num_mes asc); o nome do mês é apenas exibição.
type FaturamentoMesDTO struct {
	Mes            string          `json:"mes"` // nome pt-BR, ex. "Março"
	Ano            int             `json:"ano"`
	NumMes         int             `json:"num_mes"` // 1..12, chave de ordenação
	Faturamento    decimal.Decimal `json:"faturamento"`
	FaturamentoFmt string          `json:"faturamento_fmt"`
}

// FaturamentoSubGrupoDTO uma linha do agregado por sub-categoria.
// Toda sub-categoria do conjunto de referência aparece, zerada quando o
// filtro a deixa sem linhas.
type FaturamentoSubGrupoDTO struct {
	SubGrupo       string          `json:"sub_grupo"`
	Faturamento    decimal.Decimal `json:"faturamento"`
	FaturamentoFmt string          `json:"faturamento_fmt"`
}

// ResumoFaturamentoDTO KPIs gerais da visão de vendas.
type ResumoFaturamentoDTO struct {
	FaturamentoTotal    decimal.Decimal `json:"faturamento_total"`
	FaturamentoTotalFmt string          `json:"faturamento_total_fmt"`
	TotalClientes       int             `json:"total_clientes"`
	TotalClientesFmt    string          `json:"total_clientes_fmt"`
	TicketMedio         decimal.Decimal `json:"ticket_medio"`
	TicketMedioFmt      string          `json:"ticket_medio_fmt"`
	MediaPedidosCliente decimal.Decimal `json:"media_pedidos_cliente"` // 1 casa decimal
	TotalLinhas         int             `json:"total_linhas"`
}
